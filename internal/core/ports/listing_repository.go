package ports

import (
	"context"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

// ListListingsFilter carries all query parameters for the public listing search.
type ListListingsFilter struct {
	City     string  // optional: exact match on location.city
	Type     string  // optional: listing type
	Status   string  // optional: listing status
	PriceMin float64 // optional: price >= PriceMin when > 0
	PriceMax float64 // optional: price <= PriceMax when > 0
	Page     int     // 1-based
	Limit    int     // max rows per page (capped by the service)
}

// ListingRepository defines persistence operations for property listings.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	// List returns a page of listings matching filter and the total count.
	List(ctx context.Context, filter ListListingsFilter) ([]domain.Listing, int64, error)
	// ListFeatured returns the newest active listings, capped at limit.
	ListFeatured(ctx context.Context, limit int) ([]domain.Listing, error)
}
