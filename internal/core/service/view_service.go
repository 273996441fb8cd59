package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/homefind/marketplace-api/internal/api/metrics"
	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

type viewService struct {
	views ports.ViewRepository
	log   zerolog.Logger
}

// NewViewService returns a ViewService implementation backed by the given
// repository.
func NewViewService(views ports.ViewRepository, log zerolog.Logger) ports.ViewService {
	return &viewService{views: views, log: log}
}

// Process applies a single view event: bump the counter, then append to the
// audit trail. The audit insert is non-fatal.
func (s *viewService) Process(ctx context.Context, in ports.ViewEventInput) error {
	start := time.Now()

	if in.ListingID == "" {
		metrics.ViewsErrorsTotal.WithLabelValues("missing_listing_id").Inc()
		return fmt.Errorf("process view: empty listing id")
	}

	if err := s.views.IncrementViews(ctx, in.ListingID); err != nil {
		metrics.ViewsErrorsTotal.WithLabelValues("increment_failed").Inc()
		return fmt.Errorf("process view: %w", err)
	}

	view := &domain.ListingView{
		ListingID: in.ListingID,
		Source:    in.Source,
		At:        in.At,
	}
	if err := s.views.InsertView(ctx, view); err != nil {
		s.log.Warn().Err(err).Str("listing_id", in.ListingID).Msg("failed to insert view audit record")
	}

	metrics.ViewsProcessedTotal.WithLabelValues(in.Source).Inc()
	metrics.ViewProcessingDuration.Observe(time.Since(start).Seconds())

	s.log.Debug().Str("listing_id", in.ListingID).Str("source", in.Source).Msg("view processed")
	return nil
}
