package ports

import (
	"context"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

// LocationInput holds a property address.
type LocationInput struct {
	Address string
	City    string
	State   string
	ZipCode string
}

// CreateListingInput carries all data needed to publish a new listing.
// AgentID comes from the verified session claims, never from the body.
type CreateListingInput struct {
	Title       string
	Description string
	Price       float64
	Currency    string
	Location    LocationInput
	Type        string
	Bedrooms    int
	Bathrooms   float64
	AreaSqm     float64
	AgentID     string
}

// ListListingsInput carries all parameters for the list endpoint.
type ListListingsInput struct {
	City     string
	Type     string
	Status   string
	PriceMin float64
	PriceMax float64
	Page     int
	Limit    int
}

// ListListingsResult is returned by List.
type ListListingsResult struct {
	Items      []domain.Listing
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListingService defines use-case operations for property listings.
type ListingService interface {
	Create(ctx context.Context, input CreateListingInput) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, input ListListingsInput) (*ListListingsResult, error)
	Featured(ctx context.Context) ([]domain.Listing, error)
}
