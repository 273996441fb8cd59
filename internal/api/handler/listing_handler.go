package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

// ViewDispatcher is the interface the handler uses to enqueue view events.
type ViewDispatcher interface {
	Enqueue(event ports.ViewEventInput)
}

// ListingHandler handles HTTP requests for property listings.
type ListingHandler struct {
	service ports.ListingService
	views   ViewDispatcher
}

func NewListingHandler(service ports.ListingService, views ViewDispatcher) *ListingHandler {
	return &ListingHandler{service: service, views: views}
}

// Create handles POST /v1/listings — agent and admin only.
//
// @Summary      Publish a new listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	agentID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), toCreateListingInput(req, agentID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toListingResponse(*created))
}

// Get handles GET /v1/listings/:id — public. Each successful read enqueues a
// view event; counting happens off the request path.
//
// @Summary      Get a listing by id
// @Tags         listings
// @Produce      json
// @Param        id  path      string  true  "Listing id"
// @Success      200  {object}  listingResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	id := c.Param("id")

	listing, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "listing not found"})
		}
		return err
	}

	source := c.QueryParam("source")
	if source == "" {
		source = "web"
	}
	h.views.Enqueue(ports.ViewEventInput{
		ListingID: listing.ID,
		Source:    source,
		At:        time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, toListingResponse(*listing))
}

// List handles GET /v1/listings — public search with filters and paging.
//
// @Summary      Search listings
// @Tags         listings
// @Produce      json
// @Param        city       query     string  false  "Filter by city"
// @Param        type       query     string  false  "Filter by property type"
// @Param        status     query     string  false  "Filter by status"
// @Param        price_min  query     number  false  "Minimum price"
// @Param        price_max  query     number  false  "Maximum price"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Success      200  {object}  listListingsResponse
// @Router       /v1/listings [get]
func (h *ListingHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	priceMin, _ := strconv.ParseFloat(c.QueryParam("price_min"), 64)
	priceMax, _ := strconv.ParseFloat(c.QueryParam("price_max"), 64)

	result, err := h.service.List(c.Request().Context(), ports.ListListingsInput{
		City:     c.QueryParam("city"),
		Type:     c.QueryParam("type"),
		Status:   c.QueryParam("status"),
		PriceMin: priceMin,
		PriceMax: priceMax,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Featured handles GET /v1/listings/featured — the homepage carousel.
//
// @Summary      Featured listings
// @Tags         listings
// @Produce      json
// @Success      200  {object}  featuredListingsResponse
// @Router       /v1/listings/featured [get]
func (h *ListingHandler) Featured(c echo.Context) error {
	listings, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFeaturedResponse(listings))
}
