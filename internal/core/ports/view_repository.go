package ports

import (
	"context"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

// ViewRepository handles view-count updates and the audit trail.
type ViewRepository interface {
	// IncrementViews atomically bumps the listing's view counter.
	IncrementViews(ctx context.Context, listingID string) error

	// InsertView persists a view event to the listing_views audit collection.
	InsertView(ctx context.Context, view *domain.ListingView) error
}
