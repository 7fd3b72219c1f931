package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

// PostDailyWage appends one wage transaction to the guard's salary ledger and publishes WagePosted.
// It does not deduplicate: every call posts a new transaction.
func (s *Service) PostDailyWage(ctx context.Context, guardID int64) (entity.PayrollTransaction, error) {
	guard, err := s.repo.GuardByGuardID(ctx, guardID)
	if err != nil {
		return entity.PayrollTransaction{}, fmt.Errorf("get guard %d: %w", guardID, err)
	}

	salary, err := s.repo.SalaryByGuardID(ctx, guardID)
	if err != nil {
		return entity.PayrollTransaction{}, fmt.Errorf("get salary of guard %d: %w", guardID, err)
	}

	return s.postWage(ctx, guard, salary)
}

func (s *Service) postWage(ctx context.Context, guard entity.Guard, salary entity.Salary) (entity.PayrollTransaction, error) {
	deductions := salary.TotalDeductions()
	text := wageText(guard.GuardID, salary.Contract, s.cfg.Payroll.Currency, salary.Gross.String())

	tx := entity.PayrollTransaction{
		ID:     uuid.Must(uuid.NewV4()),
		Date:   s.now().UTC(),
		Amount: salary.Gross,
		Text:   text,
	}

	_, err := s.repo.AppendSalaryTransaction(ctx, guard.GuardID, tx)
	if err != nil {
		return entity.PayrollTransaction{}, fmt.Errorf("append salary transaction: %w", err)
	}

	slog.InfoContext(ctx, "wage posted",
		"guard_id", guard.GuardID,
		"tx_id", tx.ID,
		"amount", tx.Amount.String(),
		"deductions", deductions.String(),
	)

	s.producer.SendWagePosted(ctx, entity.WagePosted{
		TxID:       tx.ID,
		GuardID:    guard.GuardID,
		GuardName:  guard.DisplayName(),
		Cellphone:  guard.Cellphone,
		Email:      guard.Email,
		Amount:     tx.Amount,
		Deductions: deductions,
		Currency:   s.cfg.Payroll.Currency,
		Text:       text,
		PostedAt:   tx.Date,
	})

	return tx, nil
}

func wageText(guardID int64, contract entity.ContractKind, currency, gross string) string {
	return fmt.Sprintf("Guard ID: %d, Salary for the %s: %s %s", guardID, contract, currency, gross)
}

// PostPeriodicWages posts wages of week and month contracts whose period has elapsed since the last transaction.
func (s *Service) PostPeriodicWages(ctx context.Context) error {
	var errs []error

	now := s.now()

	for _, contract := range []entity.ContractKind{entity.ContractWeek, entity.ContractMonth} {
		salaries, err := s.repo.SalariesByContract(ctx, contract)
		if err != nil {
			return fmt.Errorf("get %s salaries: %w", contract, err)
		}

		for _, salary := range salaries {
			since := salary.CreatedAt
			if last, ok := salary.LastTransaction(); ok {
				since = last.Date
			}

			if now.Before(contract.NextDue(since)) {
				continue
			}

			guard, err := s.repo.GuardByGuardID(ctx, salary.GuardID)
			if err != nil {
				errs = append(errs, fmt.Errorf("get guard %d: %w", salary.GuardID, err))
				continue
			}

			_, err = s.postWage(ctx, guard, salary)
			if err != nil {
				errs = append(errs, fmt.Errorf("guard %d: %w", salary.GuardID, err))
			}
		}
	}

	return errors.Join(errs...)
}

func (s *Service) GuardPaymentInfo(ctx context.Context, guardID int64) (entity.Salary, error) {
	identity, err := entity.IdentityFromCtx(ctx)
	if err != nil {
		return entity.Salary{}, err
	}

	if !identity.CanActOnGuard(guardID) {
		return entity.Salary{}, entity.ErrForbidden
	}

	salary, err := s.repo.SalaryByGuardID(ctx, guardID)
	if err != nil {
		return entity.Salary{}, fmt.Errorf("get salary of guard %d: %w", guardID, err)
	}

	return salary, nil
}

func (s *Service) AllSalaries(ctx context.Context) ([]entity.Salary, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return nil, err
	}

	salaries, err := s.repo.Salaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("get salaries: %w", err)
	}

	return salaries, nil
}
