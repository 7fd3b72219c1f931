package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/samandr77/guardbook/internal/entity"
)

var guardColumns = []string{
	"id",
	"guard_id",
	"email",
	"password_hash",
	"surname",
	"first_name",
	"last_name",
	"date_of_birth",
	"gender",
	"national_id",
	"postal_address",
	"cellphone",
	"location_id",
	"picture",
	"employed_at",
	"created_at",
}

func selectGuards() sq.SelectBuilder {
	return sq.Select(guardColumns...).From("guards").PlaceholderFormat(sq.Dollar)
}

// CreateGuard stores the guard together with its salary document.
func (r *Repository) CreateGuard(ctx context.Context, g entity.Guard, s entity.Salary) error {
	if s.Deductions == nil {
		s.Deductions = []entity.Deduction{}
	}

	if s.Transactions == nil {
		s.Transactions = []entity.PayrollTransaction{}
	}

	deductions, err := jsonb(s.Deductions)
	if err != nil {
		return err
	}

	transactions, err := jsonb(s.Transactions)
	if err != nil {
		return err
	}

	return r.withTx(ctx, func(tx pgx.Tx) error {
		const insertGuard = `
		INSERT INTO guards (
			id,
			guard_id,
			email,
			password_hash,
			surname,
			first_name,
			last_name,
			date_of_birth,
			gender,
			national_id,
			postal_address,
			cellphone,
			location_id,
			picture,
			employed_at,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

		_, err := tx.Exec(ctx, insertGuard,
			g.ID,
			g.GuardID,
			g.Email,
			g.PasswordHash,
			g.Surname,
			g.FirstName,
			g.LastName,
			date(g.DateOfBirth),
			g.Gender,
			g.NationalID,
			g.PostalAddress,
			g.Cellphone,
			g.LocationID,
			g.Picture,
			date(g.EmployedAt),
			g.CreatedAt,
		)
		if err != nil {
			return mapErr(err)
		}

		const insertSalary = `
		INSERT INTO salaries (id, guard_id, gross, deductions, contract, transactions, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6::jsonb, $7)`

		_, err = tx.Exec(ctx, insertSalary,
			s.ID,
			s.GuardID,
			s.Gross,
			deductions,
			s.Contract,
			transactions,
			s.CreatedAt,
		)
		if err != nil {
			return mapErr(err)
		}

		return nil
	})
}

func (r *Repository) Guard(ctx context.Context, id uuid.UUID) (entity.Guard, error) {
	return r.guardWhere(ctx, sq.Eq{"id": id})
}

func (r *Repository) GuardByGuardID(ctx context.Context, guardID int64) (entity.Guard, error) {
	return r.guardWhere(ctx, sq.Eq{"guard_id": guardID})
}

func (r *Repository) GuardByEmail(ctx context.Context, email string) (entity.Guard, error) {
	return r.guardWhere(ctx, sq.Eq{"email": email})
}

func (r *Repository) GuardByNationalID(ctx context.Context, nationalID int64) (entity.Guard, error) {
	return r.guardWhere(ctx, sq.Eq{"national_id": nationalID})
}

func (r *Repository) guardWhere(ctx context.Context, pred sq.Sqlizer) (entity.Guard, error) {
	q, args, err := selectGuards().Where(pred).Limit(1).ToSql()
	if err != nil {
		return entity.Guard{}, err
	}

	return scanGuard(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) Guards(ctx context.Context, f entity.GuardFilter) ([]entity.Guard, error) {
	stmt := selectGuards().OrderBy("guard_id")

	if f.LocationID.Valid {
		stmt = stmt.Where(sq.Eq{"location_id": f.LocationID.UUID})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}

	if f.Offset > 0 {
		stmt = stmt.Offset(f.Offset)
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guards []entity.Guard

	for rows.Next() {
		g, err := scanGuard(rows)
		if err != nil {
			return nil, err
		}

		guards = append(guards, g)
	}

	return guards, rows.Err()
}

func (r *Repository) UpdateGuardBasicInfo(ctx context.Context, guardID int64, info entity.GuardBasicInfo) (entity.Guard, error) {
	return r.updateGuard(ctx, guardID, map[string]any{
		"surname":       info.Surname,
		"first_name":    info.FirstName,
		"last_name":     info.LastName,
		"date_of_birth": date(info.DateOfBirth),
		"gender":        info.Gender,
		"national_id":   info.NationalID,
		"location_id":   info.LocationID,
		"employed_at":   date(info.EmployedAt),
	})
}

func (r *Repository) UpdateGuardContactInfo(ctx context.Context, guardID int64, info entity.GuardContactInfo) (entity.Guard, error) {
	return r.updateGuard(ctx, guardID, map[string]any{
		"email":          info.Email,
		"postal_address": info.PostalAddress,
		"cellphone":      info.Cellphone,
	})
}

func (r *Repository) UpdateGuardPicture(ctx context.Context, guardID int64, picture string) (entity.Guard, error) {
	return r.updateGuard(ctx, guardID, map[string]any{"picture": picture})
}

func (r *Repository) UpdateGuardPassword(ctx context.Context, guardID int64, passwordHash string) error {
	const q = `UPDATE guards SET password_hash = $1 WHERE guard_id = $2`

	result, err := r.db.Exec(ctx, q, passwordHash, guardID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) updateGuard(ctx context.Context, guardID int64, set map[string]any) (entity.Guard, error) {
	q, args, err := sq.Update("guards").
		SetMap(set).
		Where(sq.Eq{"guard_id": guardID}).
		Suffix("RETURNING " + strings.Join(guardColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Guard{}, fmt.Errorf("build update: %w", err)
	}

	return scanGuard(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) CountGuardsInLocation(ctx context.Context, locationID uuid.UUID) (int, error) {
	const q = `SELECT COUNT(*) FROM guards WHERE location_id = $1`

	var n int

	err := r.db.QueryRow(ctx, q, locationID).Scan(&n)
	if err != nil {
		return 0, err
	}

	return n, nil
}

func scanGuard(row pgx.Row) (g entity.Guard, err error) {
	var dob, employed pgtype.Date

	err = row.Scan(
		&g.ID,
		&g.GuardID,
		&g.Email,
		&g.PasswordHash,
		&g.Surname,
		&g.FirstName,
		&g.LastName,
		&dob,
		&g.Gender,
		&g.NationalID,
		&g.PostalAddress,
		&g.Cellphone,
		&g.LocationID,
		&g.Picture,
		&employed,
		&g.CreatedAt,
	)
	if err != nil {
		return entity.Guard{}, mapErr(err)
	}

	g.DateOfBirth = dateOrZero(dob)
	g.EmployedAt = dateOrZero(employed)

	return g, nil
}
