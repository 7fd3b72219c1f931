package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/samandr77/guardbook/internal/entity"
)

const selectLocation = `SELECT id, name, created_at FROM locations`

func (r *Repository) CreateLocation(ctx context.Context, l entity.Location) error {
	const q = `INSERT INTO locations (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, q, l.ID, l.Name, l.CreatedAt)

	return mapErr(err)
}

func (r *Repository) UpdateLocation(ctx context.Context, id uuid.UUID, name string) (entity.Location, error) {
	const q = `UPDATE locations SET name = $1 WHERE id = $2 RETURNING id, name, created_at`

	return scanLocation(r.db.QueryRow(ctx, q, name, id))
}

// DeleteLocation removes a location nobody is assigned to.
func (r *Repository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM locations WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return entity.ErrLocationInUse
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Location(ctx context.Context, id uuid.UUID) (entity.Location, error) {
	return scanLocation(r.db.QueryRow(ctx, selectLocation+" WHERE id = $1", id))
}

func (r *Repository) LocationByName(ctx context.Context, name string) (entity.Location, error) {
	return scanLocation(r.db.QueryRow(ctx, selectLocation+" WHERE name = $1", name))
}

func (r *Repository) Locations(ctx context.Context) ([]entity.Location, error) {
	rows, err := r.db.Query(ctx, selectLocation+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []entity.Location

	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}

		locations = append(locations, l)
	}

	return locations, rows.Err()
}

func scanLocation(row pgx.Row) (l entity.Location, err error) {
	err = row.Scan(&l.ID, &l.Name, &l.CreatedAt)
	if err != nil {
		return entity.Location{}, mapErr(err)
	}

	return l, nil
}
