package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

const (
	messageColumns = `id, author_kind, author_id, title, body, kind, approved, replies, created_at`
	selectMessage  = `SELECT ` + messageColumns + ` FROM messages`
)

type replyDoc struct {
	Author    entity.AuthorRef `json:"author"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"timestamp"`
}

func toReplyDoc(r entity.Reply) replyDoc {
	return replyDoc{
		Author:    entity.RefOf(r.Author),
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
	}
}

func (r *Repository) CreateMessage(ctx context.Context, m entity.Message) error {
	const q = `
	INSERT INTO messages (id, author_kind, author_id, title, body, kind, approved, replies, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9)`

	docs := make([]replyDoc, 0, len(m.Replies))
	for _, reply := range m.Replies {
		docs = append(docs, toReplyDoc(reply))
	}

	replies, err := jsonb(docs)
	if err != nil {
		return err
	}

	ref := entity.RefOf(m.Author)

	_, err = r.db.Exec(ctx, q, m.ID, ref.Kind, ref.ID, m.Title, m.Body, m.Kind, m.Approved, replies, m.CreatedAt)

	return mapErr(err)
}

func (r *Repository) Message(ctx context.Context, id uuid.UUID) (entity.Message, error) {
	m, err := scanMessage(r.db.QueryRow(ctx, selectMessage+" WHERE id = $1", id))
	if err != nil {
		return entity.Message{}, messageErr(err)
	}

	return m, nil
}

// AppendReply atomically appends reply to the message thread and returns the updated message.
func (r *Repository) AppendReply(ctx context.Context, id uuid.UUID, reply entity.Reply) (entity.Message, error) {
	const q = `
	UPDATE messages
	SET replies = replies || jsonb_build_array($1::jsonb)
	WHERE id = $2
	RETURNING ` + messageColumns

	b, err := jsonb(toReplyDoc(reply))
	if err != nil {
		return entity.Message{}, err
	}

	m, err := scanMessage(r.db.QueryRow(ctx, q, b, id))
	if err != nil {
		return entity.Message{}, messageErr(err)
	}

	return m, nil
}

func (r *Repository) SetApproved(ctx context.Context, id uuid.UUID) (entity.Message, error) {
	const q = `UPDATE messages SET approved = true WHERE id = $1 RETURNING ` + messageColumns

	m, err := scanMessage(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return entity.Message{}, messageErr(err)
	}

	return m, nil
}

// Messages lists messages newest first.
func (r *Repository) Messages(ctx context.Context, f entity.MessageFilter) ([]entity.Message, error) {
	stmt := sq.Select(messageColumns).
		From("messages").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if f.Author != nil {
		ref := entity.RefOf(f.Author)
		stmt = stmt.Where(sq.Eq{"author_kind": ref.Kind, "author_id": ref.ID})
	}

	if f.Kind != "" {
		stmt = stmt.Where(sq.Eq{"kind": f.Kind})
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entity.Message

	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}

		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func scanMessage(row pgx.Row) (entity.Message, error) {
	var (
		m    entity.Message
		ref  entity.AuthorRef
		docs []replyDoc
	)

	err := row.Scan(&m.ID, &ref.Kind, &ref.ID, &m.Title, &m.Body, &m.Kind, &m.Approved, &docs, &m.CreatedAt)
	if err != nil {
		return entity.Message{}, mapErr(err)
	}

	m.Author, err = ref.Author()
	if err != nil {
		return entity.Message{}, fmt.Errorf("message %s: %w", m.ID, err)
	}

	m.Replies = make([]entity.Reply, 0, len(docs))

	for _, d := range docs {
		author, err := d.Author.Author()
		if err != nil {
			return entity.Message{}, fmt.Errorf("message %s reply: %w", m.ID, err)
		}

		m.Replies = append(m.Replies, entity.Reply{Author: author, Body: d.Body, CreatedAt: d.CreatedAt})
	}

	return m, nil
}

func messageErr(err error) error {
	if errors.Is(err, entity.ErrNotFound) {
		return entity.ErrMessageNotFound
	}

	return err
}
