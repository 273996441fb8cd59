// Package memory provides an in-memory credential store. It satisfies the
// same contract as the MongoDB repository and backs tests and local runs
// without a database.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

// UserRepository stores identities in a mutex-guarded map keyed by email.
// The check-then-insert in Create holds the lock across both steps, so two
// concurrent signups with the same email serialize here and the loser gets
// domain.ErrEmailTaken, mirroring the unique index in the Mongo variant.
type UserRepository struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User), nextID: 1}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}

	stored := *user
	stored.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.users[stored.Email] = &stored

	created := stored
	return &created, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}
