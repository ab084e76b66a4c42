// Package itinerary owns the day-plan collection logic: deriving one plan
// per calendar day of a trip and applying add/remove/reorder/update
// operations to the ordered day and activity lists.
//
// All functions are pure over []domain.DayPlan: they return a fresh slice
// and never mutate their input, so callers replace their state wholesale.
// The collection assumes a single logical writer (one request at a time
// per trip); the service layer serializes access.
package itinerary

import (
	"time"

	"github.com/google/uuid"

	"github.com/tripkit/trip-planner/backend/internal/domain"
)

// DeriveDayPlans produces one empty DayPlan per calendar day in
// [trip.StartDate, trip.EndDate] inclusive, ascending, each with a freshly
// generated id, no activities, empty notes, and the default icon.
// A start after the end yields an empty slice — a defined outcome, not an
// error; the caller validates date order at the API boundary.
func DeriveDayPlans(trip domain.Trip) []domain.DayPlan {
	start := startOfDay(trip.StartDate)
	end := startOfDay(trip.EndDate)

	days := []domain.DayPlan{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, domain.DayPlan{
			ID:         uuid.New(),
			TripID:     trip.ID,
			Date:       d,
			Activities: []string{},
			Notes:      "",
			Icon:       domain.DefaultDayIcon,
		})
	}
	return days
}

// UpdateDay replaces the day matching dayID with a copy merged with the
// patch, leaving every other day and the overall order untouched.
// An unknown dayID returns the collection unchanged.
func UpdateDay(days []domain.DayPlan, dayID uuid.UUID, patch domain.DayPatch) []domain.DayPlan {
	out := copyDays(days)
	for i, day := range out {
		if day.ID != dayID {
			continue
		}
		if patch.Activities != nil {
			day.Activities = append([]string{}, *patch.Activities...)
		}
		if patch.Notes != nil {
			day.Notes = *patch.Notes
		}
		if patch.Icon != nil {
			day.Icon = *patch.Icon
		}
		out[i] = day
	}
	return out
}

// AddActivity appends the activity string to the end of the day matching
// dayID and returns the updated collection plus the id of the day actually
// written — the effective selection.
//
// When dayID is uuid.Nil (nothing selected) or does not resolve, the first
// day is used instead. This fallback is a deliberate product behavior, not
// a bug workaround; do not tighten it to an error. An empty collection
// returns domain.ErrNoDaySelected and the edit is dropped.
func AddActivity(days []domain.DayPlan, dayID uuid.UUID, activity string) ([]domain.DayPlan, uuid.UUID, error) {
	if len(days) == 0 {
		return days, uuid.Nil, domain.ErrNoDaySelected
	}

	target := dayID
	if _, ok := indexOf(days, target); !ok {
		target = days[0].ID
	}

	out := copyDays(days)
	for i, day := range out {
		if day.ID == target {
			out[i].Activities = append(append([]string{}, day.Activities...), activity)
		}
	}
	return out, target, nil
}

// RemoveActivity deletes the activity at index (0-based) from the day
// matching dayID; later activities shift down by one. An unknown dayID or
// out-of-range index returns the collection unchanged.
func RemoveActivity(days []domain.DayPlan, dayID uuid.UUID, index int) []domain.DayPlan {
	i, ok := indexOf(days, dayID)
	if !ok || index < 0 || index >= len(days[i].Activities) {
		return copyDays(days)
	}

	out := copyDays(days)
	activities := append([]string{}, out[i].Activities...)
	out[i].Activities = append(activities[:index], activities[index+1:]...)
	return out
}

// ReorderActivities removes the activity at fromIndex and reinserts it at
// toIndex within the same day, shifting the others accordingly. Indices
// outside the current bounds return the collection unchanged.
func ReorderActivities(days []domain.DayPlan, dayID uuid.UUID, fromIndex, toIndex int) []domain.DayPlan {
	i, ok := indexOf(days, dayID)
	if !ok {
		return copyDays(days)
	}

	out := copyDays(days)
	out[i].Activities = splice(out[i].Activities, fromIndex, toIndex)
	return out
}

// ReorderDays applies the same splice semantics to the top-level day
// collection. Day selection is tracked by id, not index, so it is
// unaffected by the move.
func ReorderDays(days []domain.DayPlan, fromIndex, toIndex int) []domain.DayPlan {
	return splice(copyDays(days), fromIndex, toIndex)
}

// SelectDayForDate returns the id of the day whose date falls on the same
// calendar day as date. Each value's year/month/day is read in its own
// location, so a query parsed in the server's zone still matches a stored
// date held at UTC midnight. A miss returns false and callers must leave
// their view state unchanged.
func SelectDayForDate(days []domain.DayPlan, date time.Time) (uuid.UUID, bool) {
	for _, day := range days {
		if sameCalendarDay(day.Date, date) {
			return day.ID, true
		}
	}
	return uuid.Nil, false
}

// sameCalendarDay reports whether two times share a calendar date, each in
// its own location. Comparing components rather than normalized instants
// keeps the check independent of the zones the two values were parsed in.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// splice moves the element at from to position to, as in the JS
// array-splice idiom the drag-and-drop UI speaks. Out-of-range indices
// leave the slice unchanged.
func splice[T any](s []T, from, to int) []T {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return s
	}
	moved := s[from]
	s = append(s[:from], s[from+1:]...)
	s = append(s[:to], append([]T{moved}, s[to:]...)...)
	return s
}

// copyDays returns a shallow copy of the day slice with the per-day
// activity slices copied as well, so engine results never alias caller
// state.
func copyDays(days []domain.DayPlan) []domain.DayPlan {
	out := make([]domain.DayPlan, len(days))
	for i, day := range days {
		day.Activities = append([]string{}, day.Activities...)
		out[i] = day
	}
	return out
}

// indexOf returns the position of the day with the given id.
func indexOf(days []domain.DayPlan, dayID uuid.UUID) (int, bool) {
	for i, day := range days {
		if day.ID == dayID {
			return i, true
		}
	}
	return 0, false
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
