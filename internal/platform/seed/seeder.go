// Package seed populates the fixed accounts the system ships with: a single
// admin and the doctor roster. Seeding runs at startup before the server
// accepts traffic and is idempotent.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/svmhospital/hms/internal/domain/identity"
)

const (
	AdminUsername = "svanam"
	AdminPassword = "admin@2110"

	// Every roster doctor shares the hospital default password.
	DoctorPassword = "svmhospital123"
)

// Roster returns the doctor accounts seeded at first startup. Fresh copies
// each call so callers can't mutate a shared slice.
func Roster() []*identity.Doctor {
	return []*identity.Doctor{
		{Name: "Dr. John Anderson", Specialty: "Cardiology", Email: "john@gmail.com", Password: DoctorPassword},
		{Name: "Dr. Emma Wilson", Specialty: "Neurology", Email: "emma@gmail.com", Password: DoctorPassword},
		{Name: "Dr. Michael Roberts", Specialty: "Orthopedics", Email: "michael@gmail.com", Password: DoctorPassword},
		{Name: "Dr. Olivia Johnson", Specialty: "Dermatology", Email: "olivia@gmail.com", Password: DoctorPassword},
		{Name: "Dr. William Smith", Specialty: "Pediatrics", Email: "william@gmail.com", Password: DoctorPassword},
		{Name: "Dr. Sophia Brown", Specialty: "Gynecology", Email: "sophia@gmail.com", Password: DoctorPassword},
		{Name: "Dr. James Davis", Specialty: "Oncology", Email: "james@gmail.com", Password: DoctorPassword},
		{Name: "Dr. Isabella Martinez", Specialty: "Psychiatry", Email: "isabella@gmail.com", Password: DoctorPassword},
		{Name: "Dr. Benjamin Lee", Specialty: "Radiology", Email: "benjamin@gmail.com", Password: DoctorPassword},
		{Name: "Dr. Mia Taylor", Specialty: "Gastroenterology", Email: "mia@gmail.com", Password: DoctorPassword},
	}
}

type Seeder struct {
	admins  identity.AdminRepository
	doctors identity.DoctorRepository
	logger  zerolog.Logger
}

func NewSeeder(admins identity.AdminRepository, doctors identity.DoctorRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{admins: admins, doctors: doctors, logger: logger}
}

// Run seeds each table only if it is empty, so restarts never duplicate
// accounts and manual edits survive.
func (s *Seeder) Run(ctx context.Context) error {
	adminCount, err := s.admins.Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if adminCount == 0 {
		if err := s.admins.Create(ctx, &identity.Admin{Username: AdminUsername, Password: AdminPassword}); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		s.logger.Info().Str("username", AdminUsername).Msg("seeded admin account")
	}

	doctorCount, err := s.doctors.Count(ctx)
	if err != nil {
		return fmt.Errorf("count doctors: %w", err)
	}
	if doctorCount == 0 {
		roster := Roster()
		if err := s.doctors.CreateAll(ctx, roster); err != nil {
			return fmt.Errorf("seed doctors: %w", err)
		}
		s.logger.Info().Int("count", len(roster)).Msg("seeded doctor roster")
	}

	return nil
}
