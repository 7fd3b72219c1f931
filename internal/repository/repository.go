package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/guardbook/internal/entity"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// Ping reports whether the store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Repository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	err = fn(tx)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// mapErr converts driver errors into entity errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			if pgErr.ConstraintName == "attendance_guard_date_key" {
				return entity.ErrDuplicateSignIn
			}

			return entity.DuplicateField(uniqueField(pgErr.ConstraintName))
		case foreignKeyViolation:
			if strings.Contains(pgErr.ConstraintName, "location_id") {
				return entity.InvalidField("locationId")
			}

			if strings.Contains(pgErr.ConstraintName, "guard_id") {
				return entity.InvalidField("guardId")
			}
		}
	}

	return err
}

func uniqueField(constraint string) string {
	switch {
	case strings.Contains(constraint, "email"):
		return "email"
	case strings.Contains(constraint, "guard_id"):
		return "guardId"
	case strings.Contains(constraint, "name"):
		return "name"
	default:
		return constraint
	}
}

func date(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}

	return pgtype.Date{Time: t, Valid: true}
}

func dateOrZero(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}

	return d.Time
}

func jsonb(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}

	return b, nil
}
