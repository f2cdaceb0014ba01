package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/svmhospital/hms/internal/domain/identity"
)

type mockAdminRepo struct {
	admins []*identity.Admin
}

func (m *mockAdminRepo) Create(_ context.Context, a *identity.Admin) error {
	a.ID = int64(len(m.admins) + 1)
	m.admins = append(m.admins, a)
	return nil
}

func (m *mockAdminRepo) Count(_ context.Context) (int, error) {
	return len(m.admins), nil
}

type mockDoctorRepo struct {
	doctors []*identity.Doctor
}

func (m *mockDoctorRepo) CreateAll(_ context.Context, doctors []*identity.Doctor) error {
	for _, d := range doctors {
		d.ID = int64(len(m.doctors) + 1)
		m.doctors = append(m.doctors, d)
	}
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context) ([]*identity.Doctor, error) {
	return m.doctors, nil
}

func (m *mockDoctorRepo) Count(_ context.Context) (int, error) {
	return len(m.doctors), nil
}

func newTestSeeder() (*Seeder, *mockAdminRepo, *mockDoctorRepo) {
	admins := &mockAdminRepo{}
	doctors := &mockDoctorRepo{}
	return NewSeeder(admins, doctors, zerolog.Nop()), admins, doctors
}

func TestRun_SeedsEmptyTables(t *testing.T) {
	seeder, admins, doctors := newTestSeeder()

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(admins.admins) != 1 {
		t.Fatalf("expected 1 admin, got %d", len(admins.admins))
	}
	if admins.admins[0].Username != AdminUsername || admins.admins[0].Password != AdminPassword {
		t.Errorf("unexpected admin: %+v", admins.admins[0])
	}
	if len(doctors.doctors) != 10 {
		t.Fatalf("expected 10 doctors, got %d", len(doctors.doctors))
	}
	if doctors.doctors[0].Name != "Dr. John Anderson" || doctors.doctors[0].Specialty != "Cardiology" {
		t.Errorf("unexpected first doctor: %+v", doctors.doctors[0])
	}
	for _, d := range doctors.doctors {
		if d.Password != DoctorPassword {
			t.Errorf("doctor %s: expected roster password, got %q", d.Name, d.Password)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	seeder, admins, doctors := newTestSeeder()

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(admins.admins) != 1 {
		t.Errorf("expected 1 admin after re-run, got %d", len(admins.admins))
	}
	if len(doctors.doctors) != 10 {
		t.Errorf("expected 10 doctors after re-run, got %d", len(doctors.doctors))
	}
}

func TestRoster_ReturnsFreshCopies(t *testing.T) {
	a := Roster()
	a[0].Name = "mutated"
	b := Roster()
	if b[0].Name != "Dr. John Anderson" {
		t.Errorf("mutating one roster copy must not affect another, got %s", b[0].Name)
	}
}
