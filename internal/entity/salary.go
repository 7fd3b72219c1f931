package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ContractKind string

const (
	ContractMonth ContractKind = "month"
	ContractWeek  ContractKind = "week"
	ContractDay   ContractKind = "day"
)

func (c ContractKind) IsValid() bool {
	switch c {
	case ContractMonth, ContractWeek, ContractDay:
		return true
	}

	return false
}

// NextDue returns the moment a wage for this contract becomes payable again after last.
func (c ContractKind) NextDue(last time.Time) time.Time {
	switch c {
	case ContractWeek:
		return last.AddDate(0, 0, 7)
	case ContractMonth:
		return last.AddDate(0, 1, 0)
	default:
		return last.AddDate(0, 0, 1)
	}
}

type Deduction struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PayrollTransaction is an immutable entry of the salary ledger.
type PayrollTransaction struct {
	ID     uuid.UUID       `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Text   string          `json:"text"`
}

type Salary struct {
	ID           uuid.UUID            `json:"id"`
	GuardID      int64                `json:"guardId"`
	Gross        decimal.Decimal      `json:"grossSalary"`
	Deductions   []Deduction          `json:"deductions"`
	Contract     ContractKind         `json:"contract"`
	Transactions []PayrollTransaction `json:"transactions"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func (s Salary) TotalDeductions() decimal.Decimal {
	total := decimal.Zero

	for _, d := range s.Deductions {
		total = total.Add(d.Amount)
	}

	return total
}

func (s Salary) Net() decimal.Decimal {
	return s.Gross.Sub(s.TotalDeductions())
}

func (s Salary) LastTransaction() (PayrollTransaction, bool) {
	if len(s.Transactions) == 0 {
		return PayrollTransaction{}, false
	}

	return s.Transactions[len(s.Transactions)-1], true
}
