package prescription

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO prescriptions (doctor_name, patient_name, age, height, weight, medicines)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at`,
		p.DoctorName, p.PatientName, p.Age, p.Height, p.Weight, p.Medicines).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *repoPG) List(ctx context.Context) ([]*Prescription, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, doctor_name, patient_name, age, height, weight, medicines, created_at
		FROM prescriptions
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Prescription{}
	for rows.Next() {
		var p Prescription
		if err := rows.Scan(&p.ID, &p.DoctorName, &p.PatientName, &p.Age, &p.Height, &p.Weight, &p.Medicines, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}
