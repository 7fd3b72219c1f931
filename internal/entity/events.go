package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// WagePosted is published after a payroll transaction is appended.
type WagePosted struct {
	TxID       uuid.UUID       `json:"tx_id"`
	GuardID    int64           `json:"guard_id"`
	GuardName  string          `json:"guard_name"`
	Cellphone  string          `json:"cellphone"`
	Email      string          `json:"email"`
	Amount     decimal.Decimal `json:"amount"`
	Deductions decimal.Decimal `json:"deductions"`
	Currency   string          `json:"currency"`
	Text       string          `json:"text"`
	PostedAt   time.Time       `json:"posted_at"`
}
