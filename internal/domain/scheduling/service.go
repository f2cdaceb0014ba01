package scheduling

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidStatus is returned when a status update carries anything other
// than "Approved" or "Rejected". The check is case-sensitive and happens
// before any write.
var ErrInvalidStatus = errors.New("status must be Approved or Rejected")

var validDecisions = map[string]bool{
	StatusApproved: true,
	StatusRejected: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Book creates an appointment. The status is forced to Pending regardless
// of any caller-supplied value; patient and doctor ids are stored as-is.
func (s *Service) Book(ctx context.Context, a *Appointment) error {
	if a.PatientID == 0 {
		return fmt.Errorf("patient_id is required")
	}
	if a.DoctorID == 0 {
		return fmt.Errorf("doctor_id is required")
	}
	if a.Date == "" {
		return fmt.Errorf("date is required")
	}
	if a.Time == "" {
		return fmt.Errorf("time is required")
	}
	a.Status = StatusPending
	return s.repo.Create(ctx, a)
}

// UpdateStatus records an admin decision on an appointment.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !validDecisions[status] {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) ListByPatientEmail(ctx context.Context, email string) ([]*PatientView, error) {
	return s.repo.ListByPatientEmail(ctx, email)
}

func (s *Service) ListByDoctorName(ctx context.Context, name string) ([]*DoctorView, error) {
	return s.repo.ListByDoctorName(ctx, name)
}

func (s *Service) ListAll(ctx context.Context) ([]*AdminView, error) {
	return s.repo.ListAll(ctx)
}
