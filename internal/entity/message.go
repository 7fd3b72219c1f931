package entity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
)

type MessageKind string

const (
	MessageReport MessageKind = "report"
	MessageLeave  MessageKind = "leave"
	MessageCustom MessageKind = "custom"
)

func (k MessageKind) IsValid() bool {
	switch k {
	case MessageReport, MessageLeave, MessageCustom:
		return true
	}

	return false
}

// Author is either a GuardAuthor or an AdminAuthor.
type Author interface {
	Kind() AccountKind
	isAuthor()
}

type GuardAuthor struct {
	GuardID int64
}

func (GuardAuthor) Kind() AccountKind { return AccountGuard }
func (GuardAuthor) isAuthor()         {}

type AdminAuthor struct {
	AdminID uuid.UUID
}

func (AdminAuthor) Kind() AccountKind { return AccountAdmin }
func (AdminAuthor) isAuthor()         {}

// AuthorRef is the stored form of an Author.
type AuthorRef struct {
	Kind AccountKind `json:"kind"`
	ID   string      `json:"id"`
}

func RefOf(a Author) AuthorRef {
	switch v := a.(type) {
	case GuardAuthor:
		return AuthorRef{Kind: AccountGuard, ID: strconv.FormatInt(v.GuardID, 10)}
	case AdminAuthor:
		return AuthorRef{Kind: AccountAdmin, ID: v.AdminID.String()}
	default:
		return AuthorRef{}
	}
}

func (r AuthorRef) Author() (Author, error) {
	switch r.Kind {
	case AccountGuard:
		id, err := strconv.ParseInt(r.ID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse guard author %q: %w", r.ID, err)
		}

		return GuardAuthor{GuardID: id}, nil
	case AccountAdmin:
		id, err := uuid.FromString(r.ID)
		if err != nil {
			return nil, fmt.Errorf("parse admin author %q: %w", r.ID, err)
		}

		return AdminAuthor{AdminID: id}, nil
	default:
		return nil, fmt.Errorf("%w: author kind %q", ErrInvalidArgument, r.Kind)
	}
}

// ResolvedAuthor is the display form of an Author.
type ResolvedAuthor struct {
	Kind    AccountKind `json:"kind"`
	Name    string      `json:"name"`
	Picture string      `json:"picture"`
}

type Message struct {
	ID        uuid.UUID   `json:"id"`
	Author    Author      `json:"-"`
	Title     string      `json:"title,omitempty"`
	Body      string      `json:"body"`
	Kind      MessageKind `json:"kind"`
	Approved  bool        `json:"approved"`
	Replies   []Reply     `json:"replies"`
	CreatedAt time.Time   `json:"createdAt"`
}

type Reply struct {
	Author    Author    `json:"-"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewMessage struct {
	Title string
	Body  string
	Kind  MessageKind
}

type MessageFilter struct {
	Author Author
	Kind   MessageKind
}
