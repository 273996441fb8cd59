package ports

import (
	"context"
	"time"
)

// ViewEventInput is the DTO passed from the transport layer to ViewService.
type ViewEventInput struct {
	ListingID string
	Source    string
	At        time.Time
}

// ViewService processes listing view events.
type ViewService interface {
	Process(ctx context.Context, event ViewEventInput) error
}
