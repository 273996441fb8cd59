package ports

import (
	"context"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

// UserRepository is the credential store: identities keyed by unique
// lowercase email. Any backing implementation (Mongo collection, in-memory
// map) must enforce email uniqueness itself: a lost race on Create returns
// domain.ErrEmailTaken, never a corrupted record.
type UserRepository interface {
	// FindByEmail resolves an identity by its normalized email, including the
	// password hash. Stores that exclude the hash from their default read
	// projection must request it explicitly here; this is a credentials
	// lookup and the hash never leaves the service layer.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create persists a new identity if the email is not taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
