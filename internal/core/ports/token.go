package ports

import (
	"time"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

// Claims are the verified contents of a session token.
type Claims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// TokenIssuer mints and verifies stateless session tokens. There is no
// server-side revocation: the role claim is trusted as of issuance, so a role
// change only takes effect at the user's next sign-in.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	// Decode returns domain.ErrInvalidToken on a bad signature, a malformed
	// token, or expiry; it never panics on hostile input.
	Decode(token string) (*Claims, error)
}
