package ports

import (
	"context"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

// RegisterInput carries raw signup fields. Role may be empty or unrecognized;
// the service downgrades it to buyer rather than rejecting.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Authenticate verifies credentials and mints a session token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Authenticate(ctx context.Context, email, password string) (string, *domain.User, error)
}
