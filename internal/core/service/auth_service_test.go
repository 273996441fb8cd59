package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	stored := cloneUser(user)
	if stored.ID == "" {
		stored.ID = user.Email
	}
	r.users[stored.Email] = cloneUser(stored)
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	issuer := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, issuer, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "Ann@Example.com",
		Password: "password1",
		Name:     "  Ann  ",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "ann@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Name != "Ann" {
		t.Fatalf("expected trimmed name, got %q", user.Name)
	}
	if user.Role != domain.RoleBuyer {
		t.Fatalf("expected default role buyer, got %q", user.Role)
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}

	stored := repo.users["ann@example.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "password1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	cases := []struct {
		name  string
		input ports.RegisterInput
	}{
		{"missing email", ports.RegisterInput{Password: "password1", Name: "Ann"}},
		{"missing password", ports.RegisterInput{Email: "a@x.com", Name: "Ann"}},
		{"missing name", ports.RegisterInput{Email: "a@x.com", Password: "password1"}},
		{"short password", ports.RegisterInput{Email: "a@x.com", Password: "short", Name: "Ann"}},
		{"name too short", ports.RegisterInput{Email: "a@x.com", Password: "password1", Name: "A"}},
		{"bad email", ports.RegisterInput{Email: "not an email", Password: "password1", Name: "Ann"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.input)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_RoleDowngrade(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	cases := []struct {
		requested string
		want      string
	}{
		{"", domain.RoleBuyer},
		{"buyer", domain.RoleBuyer},
		{"seller", domain.RoleSeller},
		{"agent", domain.RoleAgent},
		{"admin", domain.RoleBuyer}, // admin is never self-assignable
		{"superuser", domain.RoleBuyer},
	}

	for i, tc := range cases {
		user, err := svc.Register(context.Background(), ports.RegisterInput{
			Email:    "user" + string(rune('a'+i)) + "@example.com",
			Password: "password1",
			Name:     "Test User",
			Role:     tc.requested,
		})
		if err != nil {
			t.Fatalf("Register(%q) returned error: %v", tc.requested, err)
		}
		if user.Role != tc.want {
			t.Fatalf("requested role %q: expected %q, got %q", tc.requested, tc.want, user.Role)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	input := ports.RegisterInput{Email: "a@x.com", Password: "password1", Name: "Ann"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Authenticate_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	issuer := NewTokenIssuer("secret", time.Hour)
	svc := NewAuthService(repo, issuer, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "carol@example.com",
		Password: "s3cret-pass",
		Name:     "Carol",
		Role:     domain.RoleAgent,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Authenticate(context.Background(), "Carol@Example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Role != domain.RoleAgent {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("authenticated user must not carry the password hash")
	}

	claims, err := issuer.Decode(token)
	if err != nil {
		t.Fatalf("token did not decode: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleAgent {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Authenticate_UniformFailure(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "dave@example.com",
		Password: "goodpass1",
		Name:     "Dave",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown email must be observably identical.
	_, _, wrongPass := svc.Authenticate(context.Background(), "dave@example.com", "badpass99")
	_, _, noUser := svc.Authenticate(context.Background(), "ghost@example.com", "whatever1")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("failure modes are distinguishable: %q vs %q", wrongPass, noUser)
	}
}
