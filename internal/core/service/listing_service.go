package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/homefind/marketplace-api/internal/api/metrics"
	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	featuredLimit    = 6
)

// FeaturedCache abstracts the short-TTL featured-listings cache (Redis).
// A miss is reported as an error; any cache failure degrades to a store read.
type FeaturedCache interface {
	GetFeatured(ctx context.Context) ([]domain.Listing, error)
	SetFeatured(ctx context.Context, listings []domain.Listing) error
}

type ListingService struct {
	repo   ports.ListingRepository
	cache  FeaturedCache
	logger zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, cache FeaturedCache, logger zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, cache: cache, logger: logger}
}

// Create publishes a new listing. The aggregate starts active; the agent id
// is taken from the verified session, never from the request body.
func (s *ListingService) Create(ctx context.Context, input ports.CreateListingInput) (*domain.Listing, error) {
	now := time.Now().UTC()
	listing := &domain.Listing{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Currency:    input.Currency,
		Location: domain.Location{
			Address: input.Location.Address,
			City:    input.Location.City,
			State:   input.Location.State,
			ZipCode: input.Location.ZipCode,
		},
		Type:      domain.ListingType(input.Type),
		Status:    domain.ListingActive,
		Bedrooms:  input.Bedrooms,
		Bathrooms: input.Bathrooms,
		AreaSqm:   input.AreaSqm,
		AgentID:   input.AgentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, listing)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create listing")
		return nil, err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(input.Type).Inc()
	s.logger.Info().Str("listing_id", created.ID).Str("agent_id", input.AgentID).Msg("listing created")

	return created, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ListingService) List(ctx context.Context, input ports.ListListingsInput) (*ports.ListListingsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListListingsFilter{
		City:     input.City,
		Type:     input.Type,
		Status:   input.Status,
		PriceMin: input.PriceMin,
		PriceMax: input.PriceMax,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListListingsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Featured serves the homepage carousel: newest active listings, cached in
// Redis with a short TTL. Cache failures are logged and fall through to the
// store so the endpoint keeps working without Redis.
func (s *ListingService) Featured(ctx context.Context) ([]domain.Listing, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFeatured(ctx)
		if err == nil {
			metrics.FeaturedCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}
	metrics.FeaturedCacheTotal.WithLabelValues("miss").Inc()

	listings, err := s.repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetFeatured(ctx, listings); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache featured listings")
		}
	}

	return listings, nil
}
