package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()

	created, err := repo.Create(context.Background(), &domain.User{
		Email: "a@x.com", Name: "Ann", PasswordHash: "hash", Role: domain.RoleBuyer,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an assigned id")
	}

	found, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.ID != created.ID || found.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", found)
	}

	if _, err := repo.FindByEmail(context.Background(), "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()

	created, _ := repo.Create(context.Background(), &domain.User{Email: "a@x.com", Name: "Ann"})
	created.Name = "Mutated"

	found, _ := repo.FindByEmail(context.Background(), "a@x.com")
	if found.Name != "Ann" {
		t.Fatalf("stored record was mutated through a returned pointer")
	}
}

// Concurrent signups with the same email must yield exactly one success and
// ErrEmailTaken for every loser, never a silent overwrite.
func TestUserRepository_ConcurrentDuplicateCreate(t *testing.T) {
	repo := NewUserRepository()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(context.Background(), &domain.User{
				Email: "race@x.com", Name: "Racer", PasswordHash: "hash",
			})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrEmailTaken):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one winner, got %d", successes)
	}
}
