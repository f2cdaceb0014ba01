package prescription

import "context"

type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	// List returns every prescription, newest first.
	List(ctx context.Context) ([]*Prescription, error)
}
