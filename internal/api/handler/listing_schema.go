package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type locationRequest struct {
	Address string `json:"address"  validate:"required"`
	City    string `json:"city"     validate:"required"`
	State   string `json:"state"    validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

type createListingRequest struct {
	Title       string          `json:"title"       validate:"required,min=3,max=120"`
	Description string          `json:"description" validate:"required"`
	Price       float64         `json:"price"       validate:"required,gt=0"`
	Currency    string          `json:"currency"    validate:"required,len=3"`
	Location    locationRequest `json:"location"    validate:"required"`
	Type        string          `json:"type"        validate:"required,oneof=house apartment condo land"`
	Bedrooms    int             `json:"bedrooms"    validate:"gte=0"`
	Bathrooms   float64         `json:"bathrooms"   validate:"gte=0"`
	AreaSqm     float64         `json:"area_sqm"    validate:"required,gt=0"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type listingLinks struct {
	Self string `json:"self"`
}

type locationResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type listingResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Currency    string           `json:"currency"`
	Location    locationResponse `json:"location"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	Bedrooms    int              `json:"bedrooms"`
	Bathrooms   float64          `json:"bathrooms"`
	AreaSqm     float64          `json:"area_sqm"`
	AgentID     string           `json:"agent_id"`
	Views       int64            `json:"views"`
	CreatedAt   time.Time        `json:"created_at"`
	Links       listingLinks     `json:"_links"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listListingsResponse struct {
	Data       []listingResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type featuredListingsResponse struct {
	Data []listingResponse `json:"data"`
}
