// Trip HTTP handlers.
//
// This file exposes REST endpoints for saved trips:
//   - POST   /trips                (save a trip, optionally with itinerary)
//   - GET    /trips                (list, paginated)
//   - GET    /trips/{id}           (fetch one)
//   - PUT    /trips/{id}/itinerary (replace the stored itinerary)
//   - DELETE /trips/{id}           (soft delete)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/govasco/go-trip-backend/internal/domain"
	"github.com/govasco/go-trip-backend/internal/utils"
	"github.com/govasco/go-trip-backend/internal/validate"
)

// TripService defines trip lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type TripService interface {
	// Create saves a trip for userID from a validated request.
	Create(ctx context.Context, userID string, req *domain.TripRequest, itinerary *domain.Itinerary) (*domain.Trip, error)
	// ListPage returns a page of trips for a user and the total count.
	ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.Trip, int64, error)
	// Get fetches a trip that belongs to userID.
	Get(ctx context.Context, userID, tripID string) (*domain.Trip, error)
	// UpdateItinerary replaces the itinerary of a trip that belongs to userID.
	UpdateItinerary(ctx context.Context, userID, tripID string, itinerary *domain.Itinerary) error
	// Delete soft-deletes a trip that belongs to userID.
	Delete(ctx context.Context, userID, tripID string) error
}

// TripHandlers groups HTTP endpoints for saved trips.
type TripHandlers struct {
	svc TripService
}

// NewTripHandlers constructs a TripHandlers bound to the given service.
func NewTripHandlers(svc TripService) *TripHandlers {
	return &TripHandlers{svc: svc}
}

// userID extracts the authenticated user id from the X-User-ID header (set by
// the reverse proxy after authentication; tests use it directly), falling
// back to "demo-user" for unauthenticated local use.
func userID(c *gin.Context) string {
	if h := c.GetHeader("X-User-ID"); h != "" {
		return h
	}
	return "demo-user"
}

//
// DTOs
//

// SaveTripRequest is the JSON payload for saving a trip: the generation
// parameters plus an optional itinerary to attach.
type SaveTripRequest struct {
	Request   domain.TripRequest `json:"request"`
	Itinerary *domain.Itinerary  `json:"itinerary,omitempty"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListTripsResponse wraps a page of trips and pagination information.
type ListTripsResponse struct {
	Trips      []domain.Trip `json:"trips"`
	Pagination Pagination    `json:"pagination"`
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// CreateTrip godoc
// @ID          createTrip
// @Summary     Save a trip
// @Description Saves a trip for the current user, optionally attaching a generated itinerary, and returns the trip resource.
// @Tags        Trips
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       body       body    handlers.SaveTripRequest  true  "Trip payload"
//
// @Success     201  {object}  domain.Trip
// @Failure     400  {object}  handlers.ErrorResponse  "Validation error"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /trips [post]
func (h *TripHandlers) CreateTrip(c *gin.Context) {
	var req SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeValidationError, "Données invalides", "corps JSON invalide")
		return
	}
	if verrs := validate.TripRequest(&req.Request); verrs != nil {
		fail(c, http.StatusBadRequest, CodeValidationError, "Données invalides", validate.Format(verrs))
		return
	}
	if req.Itinerary != nil {
		if verrs := validate.Itinerary(req.Itinerary); verrs != nil {
			fail(c, http.StatusBadRequest, CodeValidationError, "Itinéraire invalide", validate.Format(verrs))
			return
		}
	}

	trip, err := h.svc.Create(c.Request.Context(), userID(c), &req.Request, req.Itinerary)
	if err != nil {
		fail(c, http.StatusInternalServerError, CodeInternalError, "Une erreur inattendue s'est produite", "")
		return
	}
	ok(c, http.StatusCreated, trip)
}

// ListTrips godoc
// @ID          listTrips
// @Summary     List trips (paginated)
// @Description Returns a page of the user's saved trips, most recent first.
// @Tags        Trips
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID"        example(user123)
// @Param       page       query   int     false "Page number"    minimum(1) default(1)
// @Param       page_size  query   int     false "Items per page" minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListTripsResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /trips [get]
func (h *TripHandlers) ListTrips(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.svc.ListPage(c.Request.Context(), userID(c), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, CodeInternalError, "Une erreur inattendue s'est produite", "")
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListTripsResponse{
		Trips: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetTrip godoc
// @ID          getTrip
// @Summary     Fetch a trip
// @Description Returns a single trip owned by the current user.
// @Tags        Trips
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID"        example(user123)
// @Param       id         path    string  true  "Trip ID (UUID)" format(uuid)
//
// @Success     200  {object} domain.Trip
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Trip not found"
// @Router      /trips/{id} [get]
func (h *TripHandlers) GetTrip(c *gin.Context) {
	tripID := c.Param("id")
	if _, err := uuid.Parse(tripID); err != nil {
		fail(c, http.StatusBadRequest, CodeValidationError, "Données invalides", "l'identifiant doit être un UUID")
		return
	}

	trip, err := h.svc.Get(c.Request.Context(), userID(c), tripID)
	if err != nil {
		fail(c, http.StatusNotFound, CodeNotFound, "Voyage introuvable", "")
		return
	}
	ok(c, http.StatusOK, trip)
}

// UpdateTripItinerary godoc
// @ID          updateTripItinerary
// @Summary     Replace a trip's itinerary
// @Description Replaces the stored itinerary of a trip owned by the current user.
// @Tags        Trips
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID"        example(user123)
// @Param       id         path    string  true  "Trip ID (UUID)" format(uuid)
// @Param       body       body    domain.Itinerary  true  "New itinerary"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Validation error"
// @Failure     404  {object} handlers.ErrorResponse "Trip not found"
// @Router      /trips/{id}/itinerary [put]
func (h *TripHandlers) UpdateTripItinerary(c *gin.Context) {
	tripID := c.Param("id")
	if _, err := uuid.Parse(tripID); err != nil {
		fail(c, http.StatusBadRequest, CodeValidationError, "Données invalides", "l'identifiant doit être un UUID")
		return
	}

	var it domain.Itinerary
	if err := c.ShouldBindJSON(&it); err != nil {
		fail(c, http.StatusBadRequest, CodeValidationError, "Données invalides", "corps JSON invalide")
		return
	}
	if verrs := validate.Itinerary(&it); verrs != nil {
		fail(c, http.StatusBadRequest, CodeValidationError, "Itinéraire invalide", validate.Format(verrs))
		return
	}

	if err := h.svc.UpdateItinerary(c.Request.Context(), userID(c), tripID, &it); err != nil {
		fail(c, http.StatusNotFound, CodeNotFound, "Voyage introuvable", "")
		return
	}
	noContent(c)
}

// DeleteTrip godoc
// @ID          deleteTrip
// @Summary     Delete a trip
// @Description Soft-deletes a trip owned by the current user. The row is retained for history.
// @Tags        Trips
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID"        example(user123)
// @Param       id         path    string  true  "Trip ID (UUID)" format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Trip not found"
// @Router      /trips/{id} [delete]
func (h *TripHandlers) DeleteTrip(c *gin.Context) {
	tripID := c.Param("id")
	if _, err := uuid.Parse(tripID); err != nil {
		fail(c, http.StatusBadRequest, CodeValidationError, "Données invalides", "l'identifiant doit être un UUID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID(c), tripID); err != nil {
		fail(c, http.StatusNotFound, CodeNotFound, "Voyage introuvable", "")
		return
	}
	noContent(c)
}
