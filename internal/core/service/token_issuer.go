package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenIssuer mints and verifies HS256 session tokens carrying the identity
// id and role as signed claims. The signing secret is process-wide
// configuration, not identity-specific.
type TokenIssuer struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenIssuer(secret string, tokenTTL time.Duration) *TokenIssuer {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), tokenTTL: tokenTTL}
}

func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(t.tokenTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Decode verifies the signature and expiry and returns the claims. Any
// failure (bad signature, malformed token, wrong algorithm, expiry in the
// past) comes back as domain.ErrInvalidToken.
func (t *TokenIssuer) Decode(token string) (*ports.Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrInvalidToken
	}

	return &ports.Claims{UserID: sub, Role: role, ExpiresAt: exp.Time}, nil
}
