// Package domain contains the core data types for the Trip Planner application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned trip to a single destination.
// A trip is the top-level aggregate; day plans belong to a trip.
// StartDate and EndDate are calendar days (the time-of-day component is
// ignored everywhere); a valid trip has StartDate <= EndDate.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
