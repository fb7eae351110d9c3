// Package domain defines the persistence models for trips. These types are
// mapped with GORM and form the data layer of the trip backend.
package domain

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Trip represents a saved journey owned by a user. The generation parameters
// are stored alongside the (optional) validated itinerary so the trip can be
// re-rendered or re-generated later.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: identifier of the trip owner; indexed for efficient retrieval.
//   - Destination/Days/Budget/Pace/Travelers/StartDate: generation input.
//   - Interests: JSON-encoded ordered interest list.
//   - Itinerary: JSON-encoded validated itinerary; null until one is attached.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for restore/history).
type Trip struct {
	ID          string          `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID      string          `json:"user_id"     gorm:"type:varchar(64);not null;index:idx_user_trips"`
	Destination string          `json:"destination" gorm:"type:varchar(100);not null"`
	Days        int             `json:"days"        gorm:"not null"`
	Budget      Budget          `json:"budget"      gorm:"type:varchar(16);not null;check:budget IN ('economic','balanced','comfort')"`
	Interests   json.RawMessage `json:"interests"   gorm:"type:text;not null"`
	Pace        Pace            `json:"pace"        gorm:"type:varchar(16);not null;check:pace IN ('relaxed','balanced','intense')"`
	Travelers   *int            `json:"travelers,omitempty"`
	StartDate   *string         `json:"start_date,omitempty" gorm:"type:varchar(10)"`
	Itinerary   json.RawMessage `json:"itinerary,omitempty"  gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-"           gorm:"index"`
}

// TableName returns the database table name for Trip.
func (Trip) TableName() string { return "trips" }
