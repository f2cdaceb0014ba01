package auth

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no account matches the supplied credentials.
var ErrNotFound = errors.New("no matching account")

type AdminAccount struct {
	Username string
}

type DoctorAccount struct {
	Name      string
	Specialty string
}

// Repository matches credentials against stored accounts. Passwords are
// compared in the query itself; an account with a different password is
// indistinguishable from a missing one.
type Repository interface {
	FindAdmin(ctx context.Context, username, password string) (*AdminAccount, error)
	FindDoctor(ctx context.Context, email, password string) (*DoctorAccount, error)
}
