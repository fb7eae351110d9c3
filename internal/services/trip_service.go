// Package services – TripService
//
// This file implements the TripService, which manages the lifecycle of saved
// trips. It coordinates repository operations for creating, listing (with
// pagination), fetching, updating, and soft-deleting trips, and enforces
// ownership rules. Input validation happens at the handler layer; this
// service only persists already-validated data.
//
// Service-level errors (e.g., ErrTripNotFound) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/govasco/go-trip-backend/internal/domain"
)

// TripRepo defines the repository contract required by TripService.
// Implementations are responsible for persistence of trip aggregates.
type TripRepo interface {
	// CreateTrip inserts a new trip row for the given user.
	CreateTrip(ctx context.Context, db *gorm.DB, userID string, req *domain.TripRequest, itinerary json.RawMessage) (*domain.Trip, error)

	// CountTrips returns the total number of trips for pagination.
	CountTrips(ctx context.Context, db *gorm.DB, userID string) (int64, error)

	// ListTripsPage returns a page of trips belonging to the user.
	ListTripsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Trip, error)

	// GetTrip fetches a trip by ID ensuring it belongs to the user.
	GetTrip(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Trip, error)

	// UpdateTripItinerary replaces a trip's stored itinerary (only if it
	// belongs to the user).
	UpdateTripItinerary(ctx context.Context, db *gorm.DB, id, userID string, itinerary json.RawMessage) error

	// DeleteTrip soft-deletes a trip (only if it belongs to the user).
	DeleteTrip(ctx context.Context, db *gorm.DB, id, userID string) error
}

// TripService provides trip-level operations such as saving generated
// itineraries and managing a user's trip collection.
type TripService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the trip repository used by this service.
	Repo TripRepo
}

// NewTripService constructs a TripService.
func NewTripService(db *gorm.DB, r TripRepo) *TripService {
	return &TripService{DB: db, Repo: r}
}

// Create saves a trip owned by userID from a validated request, optionally
// attaching a validated itinerary.
func (s *TripService) Create(ctx context.Context, userID string, req *domain.TripRequest, itinerary *domain.Itinerary) (*domain.Trip, error) {
	var raw json.RawMessage
	if itinerary != nil {
		b, err := json.Marshal(itinerary)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return s.Repo.CreateTrip(ctx, s.DB, userID, req, raw)
}

// ListPage returns a page of trips for a user (paginated).
// It applies defaults for invalid page/pageSize and returns the total count.
func (s *TripService) ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.Trip, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountTrips(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Trip{}, 0, nil
	}

	items, err := s.Repo.ListTripsPage(ctx, s.DB, userID, offset, pageSize)
	return items, total, err
}

// Get fetches a trip by ID, ensuring it belongs to the given user.
func (s *TripService) Get(ctx context.Context, userID, tripID string) (*domain.Trip, error) {
	t, err := s.Repo.GetTrip(ctx, s.DB, tripID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return t, nil
}

// UpdateItinerary replaces the stored itinerary of a trip, ensuring the trip
// exists and belongs to the given user.
func (s *TripService) UpdateItinerary(ctx context.Context, userID, tripID string, itinerary *domain.Itinerary) error {
	raw, err := json.Marshal(itinerary)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdateTripItinerary(ctx, s.DB, tripID, userID, raw); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTripNotFound
		}
		return err
	}
	return nil
}

// Delete soft-deletes a trip, ensuring it belongs to the given user.
func (s *TripService) Delete(ctx context.Context, userID, tripID string) error {
	if err := s.Repo.DeleteTrip(ctx, s.DB, tripID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTripNotFound
		}
		return err
	}
	return nil
}
