package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/homefind/marketplace-api/internal/core/domain"
)

const (
	featuredKey = "cache:listings:featured"
	featuredTTL = 5 * time.Minute
)

// ErrCacheMiss reports that the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// ListingCache caches the featured-listings payload as JSON with a short TTL.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// GetFeatured returns the cached featured listings, or ErrCacheMiss.
func (c *ListingCache) GetFeatured(ctx context.Context) ([]domain.Listing, error) {
	raw, err := c.client.Get(ctx, featuredKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var listings []domain.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return listings, nil
}

// SetFeatured stores the featured listings (expires after featuredTTL).
func (c *ListingCache) SetFeatured(ctx context.Context, listings []domain.Listing) error {
	raw, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, featuredKey, raw, featuredTTL).Err()
}
