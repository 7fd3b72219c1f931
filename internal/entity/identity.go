package entity

import (
	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

type AccountKind string

const (
	AccountAdmin AccountKind = "admin"
	AccountGuard AccountKind = "guard"
)

func (a AccountKind) IsValid() bool {
	switch a {
	case AccountAdmin, AccountGuard:
		return true
	}

	return false
}

// Identity is the caller recovered from a verified session token.
type Identity struct {
	ID       uuid.UUID   `json:"id"`
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Account  AccountKind `json:"account"`
	GuardID  int64       `json:"guardId,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Account == AccountAdmin
}

// CanActOnGuard reports whether the identity may read or change data owned by guardID.
func (i Identity) CanActOnGuard(guardID int64) bool {
	if i.IsAdmin() {
		return true
	}

	return i.Account == AccountGuard && i.GuardID == guardID
}

// Author converts the identity into a message author tag.
func (i Identity) Author() Author {
	if i.IsAdmin() {
		return AdminAuthor{AdminID: i.ID}
	}

	return GuardAuthor{GuardID: i.GuardID}
}

type SessionClaims struct {
	ID       uuid.UUID   `json:"id"`
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Account  AccountKind `json:"account"`
	GuardID  int64       `json:"guard_id,omitempty"`
	jwt.RegisteredClaims
}

func (c SessionClaims) Identity() Identity {
	return Identity{
		ID:       c.ID,
		Email:    c.Email,
		Username: c.Username,
		Account:  c.Account,
		GuardID:  c.GuardID,
	}
}

// Token is the login result returned to clients.
type Token struct {
	OK    bool   `json:"ok"`
	Token string `json:"token,omitempty"`
	Error string `json:"error,omitempty"`
}
