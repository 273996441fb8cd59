package domain

import "time"

// ListingView records a single detail-page read of a listing.
type ListingView struct {
	ListingID string
	Source    string
	At        time.Time
}
