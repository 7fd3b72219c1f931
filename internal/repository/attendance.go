package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

const selectAttendance = `SELECT id, guard_id, date, signed_in_at, signed_out_at FROM attendance`

// CreateAttendance inserts a signed-in record. A second record for the same guard and date fails with ErrDuplicateSignIn.
func (r *Repository) CreateAttendance(ctx context.Context, a entity.Attendance) error {
	const q = `
	INSERT INTO attendance (id, guard_id, date, signed_in_at, signed_out_at)
	VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q, a.ID, a.GuardID, date(a.Date), a.SignedInAt, a.SignedOutAt)

	return mapErr(err)
}

func (r *Repository) Attendance(ctx context.Context, guardID int64, day time.Time) (entity.Attendance, error) {
	q := selectAttendance + " WHERE guard_id = $1 AND date = $2"
	return scanAttendance(r.db.QueryRow(ctx, q, guardID, date(day)))
}

// CompleteAttendance sets the sign-out time on the open record of (guardID, day).
// It fails with ErrNoOpenSignIn when there is no record or it is already complete.
func (r *Repository) CompleteAttendance(
	ctx context.Context,
	guardID int64,
	day time.Time,
	signedOutAt time.Time,
) (entity.Attendance, error) {
	const q = `
	UPDATE attendance
	SET signed_out_at = $1
	WHERE guard_id = $2 AND date = $3 AND signed_out_at IS NULL
	RETURNING id, guard_id, date, signed_in_at, signed_out_at`

	a, err := scanAttendance(r.db.QueryRow(ctx, q, signedOutAt, guardID, date(day)))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Attendance{}, entity.ErrNoOpenSignIn
		}

		return entity.Attendance{}, err
	}

	return a, nil
}

func (r *Repository) AttendanceByGuard(ctx context.Context, guardID int64) ([]entity.Attendance, error) {
	return r.AllAttendance(ctx, entity.AttendanceFilter{GuardID: &guardID})
}

// AllAttendance lists records newest date first.
func (r *Repository) AllAttendance(ctx context.Context, f entity.AttendanceFilter) ([]entity.Attendance, error) {
	stmt := sq.Select("id", "guard_id", "date", "signed_in_at", "signed_out_at").
		From("attendance").
		OrderBy("date DESC", "guard_id").
		PlaceholderFormat(sq.Dollar)

	if f.GuardID != nil {
		stmt = stmt.Where(sq.Eq{"guard_id": *f.GuardID})
	}

	if f.From != nil {
		stmt = stmt.Where(sq.GtOrEq{"date": date(*f.From)})
	}

	if f.To != nil {
		stmt = stmt.Where(sq.LtOrEq{"date": date(*f.To)})
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

	var records []entity.Attendance

	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, a)
	}

	return records, rows.Err()
}

func scanAttendance(row pgx.Row) (a entity.Attendance, err error) {
	err = row.Scan(&a.ID, &a.GuardID, &a.Date, &a.SignedInAt, &a.SignedOutAt)
	if err != nil {
		return entity.Attendance{}, mapErr(err)
	}

	return a, nil
}
