package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

type stubListingRepo struct {
	created      []*domain.Listing
	lastFilter   ports.ListListingsFilter
	listItems    []domain.Listing
	listTotal    int64
	featured     []domain.Listing
	featuredHits int
}

func (r *stubListingRepo) Create(_ context.Context, l *domain.Listing) (*domain.Listing, error) {
	created := *l
	created.ID = "listing-1"
	r.created = append(r.created, &created)
	return &created, nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	return nil, domain.ErrListingNotFound
}

func (r *stubListingRepo) List(_ context.Context, filter ports.ListListingsFilter) ([]domain.Listing, int64, error) {
	r.lastFilter = filter
	return r.listItems, r.listTotal, nil
}

func (r *stubListingRepo) ListFeatured(_ context.Context, limit int) ([]domain.Listing, error) {
	r.featuredHits++
	return r.featured, nil
}

type stubCache struct {
	cached []domain.Listing
	stored []domain.Listing
	err    error
}

func (c *stubCache) GetFeatured(_ context.Context) ([]domain.Listing, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.cached, nil
}

func (c *stubCache) SetFeatured(_ context.Context, listings []domain.Listing) error {
	c.stored = listings
	return nil
}

func TestListingService_Create(t *testing.T) {
	repo := &stubListingRepo{}
	svc := NewListingService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateListingInput{
		Title:   "Modern Family Home",
		Price:   450000,
		Type:    "house",
		AgentID: "agent-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.ListingActive {
		t.Fatalf("expected new listing to be active, got %q", created.Status)
	}
	if created.AgentID != "agent-1" {
		t.Fatalf("expected agent id agent-1, got %q", created.AgentID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestListingService_List_Pagination(t *testing.T) {
	repo := &stubListingRepo{listTotal: 250}
	svc := NewListingService(repo, nil, zerolog.Nop())

	result, err := svc.List(context.Background(), ports.ListListingsInput{Page: 0, Limit: 1000})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastFilter.Page != 1 {
		t.Fatalf("expected page defaulted to 1, got %d", repo.lastFilter.Page)
	}
	if repo.lastFilter.Limit != 100 {
		t.Fatalf("expected limit capped at 100, got %d", repo.lastFilter.Limit)
	}
	if result.TotalPages != 3 {
		t.Fatalf("expected 3 total pages for 250/100, got %d", result.TotalPages)
	}
}

func TestListingService_Featured_CacheHit(t *testing.T) {
	repo := &stubListingRepo{}
	cache := &stubCache{cached: []domain.Listing{{ID: "cached-1"}}}
	svc := NewListingService(repo, cache, zerolog.Nop())

	listings, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != "cached-1" {
		t.Fatalf("expected cached payload, got %+v", listings)
	}
	if repo.featuredHits != 0 {
		t.Fatalf("cache hit must not touch the store")
	}
}

func TestListingService_Featured_CacheMissFallsThrough(t *testing.T) {
	repo := &stubListingRepo{featured: []domain.Listing{{ID: "fresh-1"}}}
	cache := &stubCache{err: context.DeadlineExceeded}
	svc := NewListingService(repo, cache, zerolog.Nop())

	listings, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != "fresh-1" {
		t.Fatalf("expected store payload, got %+v", listings)
	}
	if repo.featuredHits != 1 {
		t.Fatalf("expected exactly one store read, got %d", repo.featuredHits)
	}
	if len(cache.stored) != 1 {
		t.Fatalf("expected result to be written back to the cache")
	}
}
