package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

// PostMessage stores a new message authored by the caller.
func (s *Service) PostMessage(ctx context.Context, in entity.NewMessage) (entity.Message, error) {
	identity, err := entity.IdentityFromCtx(ctx)
	if err != nil {
		return entity.Message{}, err
	}

	in.Title = strings.TrimSpace(in.Title)

	err = validateMessage(in)
	if err != nil {
		return entity.Message{}, err
	}

	m := entity.Message{
		ID:        uuid.Must(uuid.NewV4()),
		Author:    identity.Author(),
		Title:     in.Title,
		Body:      in.Body,
		Kind:      in.Kind,
		Replies:   []entity.Reply{},
		CreatedAt: s.now().UTC(),
	}

	err = s.repo.CreateMessage(ctx, m)
	if err != nil {
		return entity.Message{}, fmt.Errorf("create message: %w", err)
	}

	slog.InfoContext(ctx, "message posted", "message_id", m.ID, "kind", m.Kind)

	return m, nil
}

// ReplyToMessage appends a reply by the caller to the message thread.
func (s *Service) ReplyToMessage(ctx context.Context, id uuid.UUID, body string) (entity.Message, error) {
	identity, err := entity.IdentityFromCtx(ctx)
	if err != nil {
		return entity.Message{}, err
	}

	err = validateReplyBody(body)
	if err != nil {
		return entity.Message{}, err
	}

	if !identity.IsAdmin() {
		if _, err = s.visibleMessage(ctx, identity, id); err != nil {
			return entity.Message{}, err
		}
	}

	m, err := s.repo.AppendReply(ctx, id, entity.Reply{
		Author:    identity.Author(),
		Body:      body,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return entity.Message{}, fmt.Errorf("reply to message %s: %w", id, err)
	}

	return m, nil
}

// ApproveLeave marks the message approved. Approving twice is not an error.
func (s *Service) ApproveLeave(ctx context.Context, id uuid.UUID) (entity.Message, error) {
	admin, err := entity.AdminFromCtx(ctx)
	if err != nil {
		return entity.Message{}, err
	}

	m, err := s.repo.SetApproved(ctx, id)
	if err != nil {
		return entity.Message{}, fmt.Errorf("approve message %s: %w", id, err)
	}

	slog.InfoContext(ctx, "leave approved", "message_id", id, "admin_id", admin.ID)

	return m, nil
}

// ResolveAuthor returns the display name and picture of a message author.
func (s *Service) ResolveAuthor(ctx context.Context, author entity.Author) (entity.ResolvedAuthor, error) {
	switch a := author.(type) {
	case entity.AdminAuthor:
		return entity.ResolvedAuthor{
			Kind:    entity.AccountAdmin,
			Name:    entity.AdminDisplayName,
			Picture: entity.DefaultPicture,
		}, nil
	case entity.GuardAuthor:
		guard, err := s.repo.GuardByGuardID(ctx, a.GuardID)
		if err != nil {
			return entity.ResolvedAuthor{}, fmt.Errorf("resolve guard author %d: %w", a.GuardID, err)
		}

		return entity.ResolvedAuthor{
			Kind:    entity.AccountGuard,
			Name:    guard.DisplayName(),
			Picture: guard.Picture,
		}, nil
	default:
		return entity.ResolvedAuthor{}, fmt.Errorf("%w: unknown author %T", entity.ErrInvalidArgument, author)
	}
}

// Inbox lists the messages written by the guard, newest first.
func (s *Service) Inbox(ctx context.Context, guardID int64) ([]entity.Message, error) {
	identity, err := entity.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if !identity.CanActOnGuard(guardID) {
		return nil, entity.ErrForbidden
	}

	messages, err := s.repo.Messages(ctx, entity.MessageFilter{Author: entity.GuardAuthor{GuardID: guardID}})
	if err != nil {
		return nil, fmt.Errorf("get inbox of guard %d: %w", guardID, err)
	}

	return messages, nil
}

func (s *Service) AllInbox(ctx context.Context, kind entity.MessageKind) ([]entity.Message, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return nil, err
	}

	if kind != "" && !kind.IsValid() {
		return nil, entity.InvalidField("kind")
	}

	messages, err := s.repo.Messages(ctx, entity.MessageFilter{Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}

	return messages, nil
}

// Message returns one thread with replies in timestamp order.
// Guards only see threads they started.
func (s *Service) Message(ctx context.Context, id uuid.UUID) (entity.Message, error) {
	identity, err := entity.IdentityFromCtx(ctx)
	if err != nil {
		return entity.Message{}, err
	}

	m, err := s.visibleMessage(ctx, identity, id)
	if err != nil {
		return entity.Message{}, err
	}

	slices.SortStableFunc(m.Replies, func(a, b entity.Reply) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return m, nil
}

func (s *Service) visibleMessage(ctx context.Context, identity entity.Identity, id uuid.UUID) (entity.Message, error) {
	m, err := s.repo.Message(ctx, id)
	if err != nil {
		return entity.Message{}, fmt.Errorf("get message %s: %w", id, err)
	}

	if identity.IsAdmin() {
		return m, nil
	}

	if author, ok := m.Author.(entity.GuardAuthor); !ok || author.GuardID != identity.GuardID {
		// Hide the thread rather than reveal it exists.
		return entity.Message{}, entity.ErrMessageNotFound
	}

	return m, nil
}
