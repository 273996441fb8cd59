package handler

import (
	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateListingInput(req createListingRequest, agentID string) ports.CreateListingInput {
	return ports.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Location: ports.LocationInput{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			ZipCode: req.Location.ZipCode,
		},
		Type:      req.Type,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		AreaSqm:   req.AreaSqm,
		AgentID:   agentID,
	}
}

// --- Domain → HTTP response ---

func toListingResponse(l domain.Listing) listingResponse {
	return listingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Currency:    l.Currency,
		Location: locationResponse{
			Address: l.Location.Address,
			City:    l.Location.City,
			State:   l.Location.State,
			ZipCode: l.Location.ZipCode,
		},
		Type:      string(l.Type),
		Status:    string(l.Status),
		Bedrooms:  l.Bedrooms,
		Bathrooms: l.Bathrooms,
		AreaSqm:   l.AreaSqm,
		AgentID:   l.AgentID,
		Views:     l.Views,
		CreatedAt: l.CreatedAt.UTC(),
		Links:     listingLinks{Self: "/v1/listings/" + l.ID},
	}
}

func toListResponse(r *ports.ListListingsResult) listListingsResponse {
	items := make([]listingResponse, len(r.Items))
	for i, l := range r.Items {
		items[i] = toListingResponse(l)
	}
	return listListingsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toFeaturedResponse(listings []domain.Listing) featuredListingsResponse {
	items := make([]listingResponse, len(listings))
	for i, l := range listings {
		items[i] = toListingResponse(l)
	}
	return featuredListingsResponse{Data: items}
}
