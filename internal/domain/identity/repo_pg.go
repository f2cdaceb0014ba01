package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// =========== Patient Repository ===========

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository { return &patientRepoPG{pool: pool} }

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patients (name, email, age, gender, height, weight)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		p.Name, p.Email, p.Age, p.Gender, p.Height, p.Weight).Scan(&p.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *patientRepoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, age, gender, height, weight
		FROM patients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Patient{}
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Age, &p.Gender, &p.Height, &p.Weight); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

// =========== Doctor Repository ===========

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository { return &doctorRepoPG{pool: pool} }

func (r *doctorRepoPG) CreateAll(ctx context.Context, doctors []*Doctor) error {
	for _, d := range doctors {
		err := r.pool.QueryRow(ctx, `
			INSERT INTO doctors (name, specialty, email, password)
			VALUES ($1,$2,$3,$4)
			RETURNING id`,
			d.Name, d.Specialty, d.Email, d.Password).Scan(&d.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, specialty, email, password
		FROM doctors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Doctor{}
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Email, &d.Password); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func (r *doctorRepoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&n)
	return n, err
}

// =========== Admin Repository ===========

type adminRepoPG struct{ pool *pgxpool.Pool }

func NewAdminRepoPG(pool *pgxpool.Pool) AdminRepository { return &adminRepoPG{pool: pool} }

func (r *adminRepoPG) Create(ctx context.Context, a *Admin) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO admins (username, password)
		VALUES ($1,$2)
		RETURNING id`,
		a.Username, a.Password).Scan(&a.ID)
}

func (r *adminRepoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	return n, err
}
