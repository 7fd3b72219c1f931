package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
