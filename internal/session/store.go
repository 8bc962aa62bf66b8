package session

import (
	"context"
	"errors"

	"bookingform/internal/domain"
)

// ErrNotFound is returned for unknown or expired form tokens.
var ErrNotFound = errors.New("form session not found")

// Store keeps form state for the lifetime of the on-screen form. Entries
// expire on their own; an expired session is indistinguishable from one that
// never existed.
type Store interface {
	Save(ctx context.Context, form *domain.FormState) error
	Get(ctx context.Context, token string) (*domain.FormState, error)
	Delete(ctx context.Context, token string) error
}
