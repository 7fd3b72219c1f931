package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Guard struct {
	ID            uuid.UUID     `json:"id"`
	GuardID       int64         `json:"guardId"`
	Email         string        `json:"email"`
	PasswordHash  string        `json:"-"`
	Surname       string        `json:"surname"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	DateOfBirth   time.Time     `json:"dateOfBirth"`
	Gender        string        `json:"gender"`
	NationalID    int64         `json:"nationalId"`
	PostalAddress string        `json:"postalAddress"`
	Cellphone     string        `json:"cellphone"`
	LocationID    uuid.NullUUID `json:"locationId"`
	Picture       string        `json:"picture"`
	EmployedAt    time.Time     `json:"employedAt"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (g Guard) DisplayName() string {
	return g.FirstName + " " + g.LastName
}

// NewGuard is the registration input: the guard record together with its salary terms.
type NewGuard struct {
	GuardID       int64
	Email         string
	Password      string
	Surname       string
	FirstName     string
	LastName      string
	DateOfBirth   time.Time
	Gender        string
	NationalID    int64
	PostalAddress string
	Cellphone     string
	LocationID    uuid.NullUUID
	EmployedAt    time.Time
	Contract      ContractKind
	GrossSalary   decimal.Decimal
	Deductions    []Deduction
}

type GuardBasicInfo struct {
	Surname     string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Gender      string
	NationalID  int64
	LocationID  uuid.NullUUID
	EmployedAt  time.Time
}

type GuardContactInfo struct {
	Email         string
	PostalAddress string
	Cellphone     string
}

type GuardFilter struct {
	LocationID uuid.NullUUID
	Limit      uint64
	Offset     uint64
}
