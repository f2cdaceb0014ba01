package prescription

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Write(ctx context.Context, p *Prescription) error {
	if p.DoctorName == "" {
		return fmt.Errorf("doctorName is required")
	}
	if p.PatientName == "" {
		return fmt.Errorf("patientName is required")
	}
	if p.Medicines == "" {
		return fmt.Errorf("medicines is required")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) List(ctx context.Context) ([]*Prescription, error) {
	return s.repo.List(ctx)
}
