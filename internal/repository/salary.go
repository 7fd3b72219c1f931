package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

const selectSalary = `SELECT id, guard_id, gross, deductions, contract, transactions, created_at FROM salaries`

func (r *Repository) SalaryByGuardID(ctx context.Context, guardID int64) (entity.Salary, error) {
	return scanSalary(r.db.QueryRow(ctx, selectSalary+" WHERE guard_id = $1", guardID))
}

func (r *Repository) Salaries(ctx context.Context) ([]entity.Salary, error) {
	return r.salaries(ctx, selectSalary+" ORDER BY guard_id")
}

func (r *Repository) SalariesByContract(ctx context.Context, contract entity.ContractKind) ([]entity.Salary, error) {
	return r.salaries(ctx, selectSalary+" WHERE contract = $1 ORDER BY guard_id", contract)
}

// AppendSalaryTransaction atomically appends tx to the guard's ledger and returns the updated salary.
func (r *Repository) AppendSalaryTransaction(
	ctx context.Context,
	guardID int64,
	tx entity.PayrollTransaction,
) (entity.Salary, error) {
	const q = `
	UPDATE salaries
	SET transactions = transactions || jsonb_build_array($1::jsonb)
	WHERE guard_id = $2
	RETURNING id, guard_id, gross, deductions, contract, transactions, created_at`

	b, err := jsonb(tx)
	if err != nil {
		return entity.Salary{}, err
	}

	return scanSalary(r.db.QueryRow(ctx, q, b, guardID))
}

func (r *Repository) salaries(ctx context.Context, q string, args ...any) ([]entity.Salary, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var salaries []entity.Salary

	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, err
		}

		salaries = append(salaries, s)
	}

	return salaries, rows.Err()
}

func scanSalary(row pgx.Row) (s entity.Salary, err error) {
	err = row.Scan(
		&s.ID,
		&s.GuardID,
		&s.Gross,
		&s.Deductions,
		&s.Contract,
		&s.Transactions,
		&s.CreatedAt,
	)
	if err != nil {
		return entity.Salary{}, mapErr(err)
	}

	return s, nil
}
