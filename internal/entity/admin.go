package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

const (
	AdminDisplayName    = "Administrator"
	DefaultPicture      = "default.jpg"
	UniformLoginFailure = "No user with such credentials exists. Please check your email and password and try again."
)

type Admin struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Picture      string    `json:"picture"`
	CreatedAt    time.Time `json:"createdAt"`
}

type NewAdmin struct {
	Username string
	Email    string
	Password string
}
