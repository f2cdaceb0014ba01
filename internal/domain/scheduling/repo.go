package scheduling

import "context"

// Repository persists appointments and produces the three joined list
// views. All views are inner joins: an appointment whose patient or doctor
// row is missing is silently excluded.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListByPatientEmail(ctx context.Context, email string) ([]*PatientView, error)
	ListByDoctorName(ctx context.Context, name string) ([]*DoctorView, error)
	ListAll(ctx context.Context) ([]*AdminView, error)
}
