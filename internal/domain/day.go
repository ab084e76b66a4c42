package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDayIcon is the glyph assigned to every freshly derived day plan.
const DefaultDayIcon = "📅"

// DayPlan represents a single calendar day of a trip with its ordered
// activity list, free-text notes, and display icon.
//
// Activities holds the string form of each activity (plain text plus
// optional inline tags, see the activity package). Order is significant —
// it drives numbering and map-marker indices — and is mutated only through
// the itinerary package's operations, never in place.
type DayPlan struct {
	ID         uuid.UUID `json:"id"`
	TripID     uuid.UUID `json:"trip_id"`
	Date       time.Time `json:"date"`
	Activities []string  `json:"activities"`
	Notes      string    `json:"notes"`
	Icon       string    `json:"icon"`
}

// DayPatch carries the mutable fields of a DayPlan for a partial update.
// Nil pointers mean "leave unchanged".
type DayPatch struct {
	Activities *[]string
	Notes      *string
	Icon       *string
}
