package identity

import (
	"context"
	"errors"
)

// ErrDuplicateEmail is returned when a patient registration collides with an
// existing email. The uniqueness check lives in the database as a UNIQUE
// constraint, not as an application-level pre-check.
var ErrDuplicateEmail = errors.New("email already registered")

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	List(ctx context.Context) ([]*Patient, error)
}

type DoctorRepository interface {
	CreateAll(ctx context.Context, doctors []*Doctor) error
	List(ctx context.Context) ([]*Doctor, error)
	Count(ctx context.Context) (int, error)
}

type AdminRepository interface {
	Create(ctx context.Context, a *Admin) error
	Count(ctx context.Context) (int, error)
}
