package identity

import (
	"context"
	"fmt"
)

type Service struct {
	patients PatientRepository
	doctors  DoctorRepository
}

func NewService(patients PatientRepository, doctors DoctorRepository) *Service {
	return &Service{patients: patients, doctors: doctors}
}

// RegisterPatient stores a self-registered patient. The email must not be in
// use; the repository surfaces ErrDuplicateEmail on collision.
func (s *Service) RegisterPatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}
