package scheduling

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, date, time, status)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		a.PatientID, a.DoctorID, a.Date, a.Time, a.Status).Scan(&a.ID)
}

// UpdateStatus overwrites the status column unconditionally. The prior state
// is never read; updating an id that matches no row is not an error.
func (r *repoPG) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE appointments SET status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *repoPG) ListByPatientEmail(ctx context.Context, email string) ([]*PatientView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, d.name, a.date, a.time, a.status
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN doctors d ON a.doctor_id = d.id
		WHERE p.email = $1
		ORDER BY a.id`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*PatientView{}
	for rows.Next() {
		var v PatientView
		if err := rows.Scan(&v.ID, &v.Doctor, &v.Date, &v.Time, &v.Status); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

func (r *repoPG) ListByDoctorName(ctx context.Context, name string) ([]*DoctorView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, p.id, p.name, a.date, a.time, a.status
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN doctors d ON a.doctor_id = d.id
		WHERE d.name = $1
		ORDER BY a.id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*DoctorView{}
	for rows.Next() {
		var v DoctorView
		if err := rows.Scan(&v.ID, &v.PatientID, &v.Patient, &v.Date, &v.Time, &v.Status); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

func (r *repoPG) ListAll(ctx context.Context) ([]*AdminView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, p.name, d.name, a.date, a.time, a.status
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN doctors d ON a.doctor_id = d.id
		ORDER BY a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*AdminView{}
	for rows.Next() {
		var v AdminView
		if err := rows.Scan(&v.ID, &v.Patient, &v.Doctor, &v.Date, &v.Time, &v.Status); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}
