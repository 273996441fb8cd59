package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

// emailShape is the same loose RFC-shaped check the signup form applies.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService implements registration and credential authentication.
type AuthService struct {
	repo   ports.UserRepository
	issuer ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, logger: logger}
}

// Register validates signup input, hashes the password, and persists the new
// identity. Validation is fail-fast: the first violation wins.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)

	if email == "" || input.Password == "" || name == "" {
		return nil, domain.Validation("missing required fields")
	}
	if len(input.Password) < 8 {
		return nil, domain.Validation("password must be at least 8 characters")
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return nil, domain.Validation("name must be between 2 and 50 characters")
	}
	if !emailShape.MatchString(email) {
		return nil, domain.Validation("invalid email address")
	}

	role := domain.NormalizeRole(input.Role)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("role", role).Msg("user registered")
	return created.WithoutPassword(), nil
}

// Authenticate verifies email + password and mints a session token.
// Unknown email and wrong password both yield ErrInvalidCredentials so the
// response never reveals whether an account exists.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user.WithoutPassword(), nil
}

// NormalizeEmail lowercases and trims an email address. All lookups and
// writes against the credential store go through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
