package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

const selectAdmin = `SELECT id, username, email, password_hash, picture, created_at FROM admins`

func (r *Repository) CreateAdmin(ctx context.Context, a entity.Admin) error {
	const q = `
	INSERT INTO admins (id, username, email, password_hash, picture, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q, a.ID, a.Username, a.Email, a.PasswordHash, a.Picture, a.CreatedAt)

	return mapErr(err)
}

func (r *Repository) AdminByEmail(ctx context.Context, email string) (entity.Admin, error) {
	return scanAdmin(r.db.QueryRow(ctx, selectAdmin+" WHERE email = $1", email))
}

func (r *Repository) AdminByID(ctx context.Context, id uuid.UUID) (entity.Admin, error) {
	return scanAdmin(r.db.QueryRow(ctx, selectAdmin+" WHERE id = $1", id))
}

func (r *Repository) Admins(ctx context.Context) ([]entity.Admin, error) {
	rows, err := r.db.Query(ctx, selectAdmin+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []entity.Admin

	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}

		admins = append(admins, a)
	}

	return admins, rows.Err()
}

func scanAdmin(row pgx.Row) (a entity.Admin, err error) {
	err = row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Picture, &a.CreatedAt)
	if err != nil {
		return entity.Admin{}, mapErr(err)
	}

	return a, nil
}
