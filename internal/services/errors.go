// Package services defines the business logic for itinerary generation and
// trip management. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

var (
	// ErrMissingAPIKey indicates the generation service was started without
	// a provider API key and cannot serve generation requests.
	ErrMissingAPIKey = errors.New("generation api key missing")

	// ErrTripNotFound indicates that the requested trip does not exist or is
	// not accessible to the current user.
	ErrTripNotFound = errors.New("trip not found")
)

// GenerationError is returned when every generation attempt failed. Detail
// carries the last attempt's diagnostic for the response body and logs.
type GenerationError struct {
	Detail   string
	Attempts int
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return "itinerary generation failed: " + e.Detail
}
