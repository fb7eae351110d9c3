// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Trip model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a trip is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Deletion is soft: DeleteTrip sets deleted_at and every query here excludes
// soft-deleted rows through GORM's default scope.
package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/govasco/go-trip-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateTrip inserts a new Trip row owned by userID from the generation
// request, optionally with an already-validated itinerary attached.
// The trip ID is a randomly generated UUID (string).
//
// On success, it returns the persisted Trip. On failure, it returns a DB error.
func CreateTrip(ctx context.Context, db *gorm.DB, userID string, req *domain.TripRequest, itinerary json.RawMessage) (*domain.Trip, error) {
	interests, err := json.Marshal(req.Interests)
	if err != nil {
		return nil, err
	}

	t := &domain.Trip{
		ID:          uuid.NewString(),
		UserID:      userID,
		Destination: req.Destination,
		Days:        req.Days,
		Budget:      req.Budget,
		Interests:   interests,
		Pace:        req.Pace,
		Travelers:   req.Travelers,
		Itinerary:   itinerary,
		CreatedAt:   time.Now().UTC(),
	}
	if req.StartDate != "" {
		sd := req.StartDate
		t.StartDate = &sd
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// CountTrips returns the total number of live trips owned by userID.
// On DB error, it returns the error.
func CountTrips(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Trip{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListTripsPage returns a paginated slice of trips for userID, ordered by
// creation time descending. Use CountTrips to obtain the total for pagination
// metadata. On DB error, it returns the error.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListTripsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Trip, error) {
	var out []domain.Trip
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetTrip fetches a single trip by its ID and owner (userID). If the record
// does not exist (or was soft-deleted), it returns ErrNotFound. On other DB
// errors, the raw error is returned.
func GetTrip(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Trip, error) {
	var t domain.Trip
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTripItinerary replaces the stored itinerary of a trip identified by
// id and owned by userID. If no rows are affected (trip missing or not owned
// by userID), it returns ErrNotFound. On DB error, the raw error is returned.
func UpdateTripItinerary(ctx context.Context, db *gorm.DB, id, userID string, itinerary json.RawMessage) error {
	res := db.WithContext(ctx).
		Model(&domain.Trip{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("itinerary", itinerary)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteTrip soft-deletes a trip identified by id and owned by userID.
// If no rows are affected, it returns ErrNotFound. On DB error, the raw
// error is returned.
func DeleteTrip(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Trip{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
