package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/guardbook/internal/entity"
)

func TestSalary_TotalDeductions(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		gross      string
		deductions []entity.Deduction
		wantTotal  string
		wantNet    string
	}{
		{
			name:      "no deductions",
			gross:     "1000",
			wantTotal: "0",
			wantNet:   "1000",
		},
		{
			name:  "statutory deductions",
			gross: "25000",
			deductions: []entity.Deduction{
				{Name: "nssf", Amount: decimal.RequireFromString("200")},
				{Name: "nhif", Amount: decimal.RequireFromString("500.50")},
				{Name: "loans", Amount: decimal.RequireFromString("1000")},
			},
			wantTotal: "1700.5",
			wantNet:   "23299.5",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := entity.Salary{
				Gross:      decimal.RequireFromString(tt.gross),
				Deductions: tt.deductions,
			}

			require.True(t, s.TotalDeductions().Equal(decimal.RequireFromString(tt.wantTotal)), s.TotalDeductions().String())
			require.True(t, s.Net().Equal(decimal.RequireFromString(tt.wantNet)), s.Net().String())
		})
	}
}

func TestContractKind_NextDue(t *testing.T) {
	t.Parallel()

	last := time.Date(2024, time.January, 31, 17, 0, 0, 0, time.UTC)

	require.Equal(t, time.Date(2024, time.February, 1, 17, 0, 0, 0, time.UTC), entity.ContractDay.NextDue(last))
	require.Equal(t, time.Date(2024, time.February, 7, 17, 0, 0, 0, time.UTC), entity.ContractWeek.NextDue(last))
	require.Equal(t, last.AddDate(0, 1, 0), entity.ContractMonth.NextDue(last))

	require.True(t, entity.ContractDay.IsValid())
	require.False(t, entity.ContractKind("year").IsValid())
}

func TestSalary_LastTransaction(t *testing.T) {
	t.Parallel()

	_, ok := entity.Salary{}.LastTransaction()
	require.False(t, ok)

	s := entity.Salary{Transactions: []entity.PayrollTransaction{{Text: "first"}, {Text: "second"}}}

	tx, ok := s.LastTransaction()
	require.True(t, ok)
	require.Equal(t, "second", tx.Text)
}
