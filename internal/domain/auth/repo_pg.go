package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) FindAdmin(ctx context.Context, username, password string) (*AdminAccount, error) {
	var a AdminAccount
	err := r.pool.QueryRow(ctx,
		`SELECT username FROM admins WHERE username = $1 AND password = $2`,
		username, password).Scan(&a.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) FindDoctor(ctx context.Context, email, password string) (*DoctorAccount, error) {
	var d DoctorAccount
	err := r.pool.QueryRow(ctx,
		`SELECT name, specialty FROM doctors WHERE email = $1 AND password = $2`,
		email, password).Scan(&d.Name, &d.Specialty)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
