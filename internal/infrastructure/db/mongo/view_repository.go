package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

const viewsCollection = "listing_views"

// ViewRepository persists view counters and the view audit trail.
type ViewRepository struct {
	listings *mongo.Collection
	views    *mongo.Collection
}

func NewViewRepository(db *mongo.Database) *ViewRepository {
	return &ViewRepository{
		listings: db.Collection(listingsCollection),
		views:    db.Collection(viewsCollection),
	}
}

type viewDoc struct {
	ListingID string `bson:"listing_id"`
	Source    string `bson:"source"`
	At        int64  `bson:"at"`
}

// IncrementViews atomically bumps the listing's view counter with $inc.
func (r *ViewRepository) IncrementViews(ctx context.Context, listingID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.listings.UpdateOne(ctx,
		bson.M{"_id": listingID},
		bson.M{"$inc": bson.M{"views": 1}},
	)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// InsertView appends a view event to the audit collection.
func (r *ViewRepository) InsertView(ctx context.Context, view *domain.ListingView) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := viewDoc{
		ListingID: view.ListingID,
		Source:    view.Source,
		At:        view.At.Unix(),
	}
	if _, err := r.views.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert view: %w", err)
	}
	return nil
}
