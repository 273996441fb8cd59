package domain

import (
	"errors"
	"time"
)

// ListingType categorizes a property listing.
type ListingType string

const (
	TypeHouse     ListingType = "house"
	TypeApartment ListingType = "apartment"
	TypeCondo     ListingType = "condo"
	TypeLand      ListingType = "land"
)

// ListingStatus represents the sale state of a listing.
type ListingStatus string

const (
	ListingActive  ListingStatus = "active"
	ListingPending ListingStatus = "pending"
	ListingSold    ListingStatus = "sold"
)

var ErrListingNotFound = errors.New("listing not found")
var ErrForbidden = errors.New("access forbidden")

// Location is the physical address of a listed property.
type Location struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
}

// Listing is the property aggregate published by an agent.
type Listing struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Price       float64       `json:"price" bson:"price"`
	Currency    string        `json:"currency" bson:"currency"`
	Location    Location      `json:"location" bson:"location"`
	Type        ListingType   `json:"type" bson:"type"`
	Status      ListingStatus `json:"status" bson:"status"`
	Bedrooms    int           `json:"bedrooms" bson:"bedrooms"`
	Bathrooms   float64       `json:"bathrooms" bson:"bathrooms"`
	AreaSqm     float64       `json:"area_sqm" bson:"area_sqm"`
	AgentID     string        `json:"agent_id" bson:"agent_id"`
	Views       int64         `json:"views" bson:"views"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
