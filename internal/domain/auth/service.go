package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when the supplied credentials match
// neither an admin nor a doctor account.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login checks admin accounts first, then doctors. The same identifier field
// is matched against admin usernames and doctor emails, so an admin whose
// username looks like an email shadows any doctor with that address.
func (s *Service) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	admin, err := s.repo.FindAdmin(ctx, identifier, password)
	if err == nil {
		return &LoginResult{Role: RoleAdmin, Username: admin.Username}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	doctor, err := s.repo.FindDoctor(ctx, identifier, password)
	if err == nil {
		return &LoginResult{Role: RoleDoctor, DoctorName: doctor.Name, Specialty: doctor.Specialty}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return nil, ErrInvalidCredentials
}
