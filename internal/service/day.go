package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tripkit/trip-planner/backend/internal/activity"
	"github.com/tripkit/trip-planner/backend/internal/domain"
	"github.com/tripkit/trip-planner/backend/internal/itinerary"
	"github.com/tripkit/trip-planner/backend/internal/repo"
)

// DayService implements the day-plan and activity operations.
// It loads a trip's full day collection, applies the pure itinerary
// engine, and persists the result wholesale — mirroring how the engine
// replaces the collection by value on every mutation. It holds the trip
// repo as well because every operation verifies the parent trip exists
// before touching its days.
type DayService struct {
	trips repo.TripRepo
	days  repo.DayRepo
}

// NewDayService constructs a DayService backed by the provided repos.
func NewDayService(trips repo.TripRepo, days repo.DayRepo) *DayService {
	return &DayService{trips: trips, days: days}
}

// UpdateDay merges the patch into the day matching dayID and returns the
// updated day. Returns domain.ErrNotFound if the trip or day does not
// exist — the engine's silent no-op on an unknown id stays an engine-level
// behavior; the API reports the miss.
func (s *DayService) UpdateDay(ctx context.Context, tripID, dayID uuid.UUID, patch domain.DayPatch) (domain.DayPlan, error) {
	days, err := s.load(ctx, tripID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.UpdateDay: %w", err)
	}
	if !containsDay(days, dayID) {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.UpdateDay: day: %w", domain.ErrNotFound)
	}

	updated := itinerary.UpdateDay(days, dayID, patch)
	if err := s.days.ReplaceAll(ctx, tripID, updated); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.UpdateDay: %w", err)
	}
	return dayByID(updated, dayID), nil
}

// AddActivity appends the activity string to the given day and returns the
// day actually written. A nil or unknown dayID falls back to the trip's
// first day; the returned day's id is the new effective selection.
// Returns domain.ErrNoDaySelected when the trip has no days at all.
func (s *DayService) AddActivity(ctx context.Context, tripID, dayID uuid.UUID, activityStr string) (domain.DayPlan, error) {
	days, err := s.load(ctx, tripID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.AddActivity: %w", err)
	}

	updated, effectiveID, err := itinerary.AddActivity(days, dayID, activityStr)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.AddActivity: %w", err)
	}
	if err := s.days.ReplaceAll(ctx, tripID, updated); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.AddActivity: %w", err)
	}
	return dayByID(updated, effectiveID), nil
}

// RemoveActivity deletes the activity at index from the given day.
// An out-of-range index is a no-op and returns the day unchanged, per the
// engine contract; an unknown trip or day returns domain.ErrNotFound.
func (s *DayService) RemoveActivity(ctx context.Context, tripID, dayID uuid.UUID, index int) (domain.DayPlan, error) {
	days, err := s.load(ctx, tripID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.RemoveActivity: %w", err)
	}
	if !containsDay(days, dayID) {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.RemoveActivity: day: %w", domain.ErrNotFound)
	}

	updated := itinerary.RemoveActivity(days, dayID, index)
	if err := s.days.ReplaceAll(ctx, tripID, updated); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.RemoveActivity: %w", err)
	}
	return dayByID(updated, dayID), nil
}

// ReorderActivities moves the activity at fromIndex to toIndex within the
// given day. The drag-and-drop UI guarantees valid indices; out-of-range
// values leave the order unchanged.
func (s *DayService) ReorderActivities(ctx context.Context, tripID, dayID uuid.UUID, fromIndex, toIndex int) (domain.DayPlan, error) {
	days, err := s.load(ctx, tripID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.ReorderActivities: %w", err)
	}
	if !containsDay(days, dayID) {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.ReorderActivities: day: %w", domain.ErrNotFound)
	}

	updated := itinerary.ReorderActivities(days, dayID, fromIndex, toIndex)
	if err := s.days.ReplaceAll(ctx, tripID, updated); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.ReorderActivities: %w", err)
	}
	return dayByID(updated, dayID), nil
}

// ReorderDays moves the day at fromIndex to toIndex in the trip's day list
// and returns the full reordered collection. Day selection is id-tracked,
// so callers keep their selection across the move.
func (s *DayService) ReorderDays(ctx context.Context, tripID uuid.UUID, fromIndex, toIndex int) ([]domain.DayPlan, error) {
	days, err := s.load(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.ReorderDays: %w", err)
	}

	updated := itinerary.ReorderDays(days, fromIndex, toIndex)
	if err := s.days.ReplaceAll(ctx, tripID, updated); err != nil {
		return nil, fmt.Errorf("service.DayService.ReorderDays: %w", err)
	}
	return updated, nil
}

// SelectDayForDate returns the id of the trip's day matching the given
// calendar date. Returns domain.ErrNotFound on a miss — callers must not
// change their view state in that case.
func (s *DayService) SelectDayForDate(ctx context.Context, tripID uuid.UUID, date time.Time) (uuid.UUID, error) {
	days, err := s.load(ctx, tripID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.DayService.SelectDayForDate: %w", err)
	}

	dayID, ok := itinerary.SelectDayForDate(days, date)
	if !ok {
		return uuid.Nil, fmt.Errorf("service.DayService.SelectDayForDate: no day for date: %w", domain.ErrNotFound)
	}
	return dayID, nil
}

// GetDay returns a single day plan scoped to its trip.
// Returns domain.ErrNotFound if no day with that ID exists under the trip.
func (s *DayService) GetDay(ctx context.Context, tripID, dayID uuid.UUID) (domain.DayPlan, error) {
	day, err := s.days.GetByID(ctx, tripID, dayID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.GetDay: %w", err)
	}
	return day, nil
}

// MapView derives the map/display form of a day's activities, with
// explicit tag locations taking precedence over inferred ones.
func (s *DayService) MapView(ctx context.Context, tripID, dayID uuid.UUID) ([]domain.MapActivity, error) {
	day, err := s.days.GetByID(ctx, tripID, dayID)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.MapView: %w", err)
	}
	return activity.MapActivities(day), nil
}

// SetActivityLocation rewrites the location tag of the activity at index,
// via a parse/overwrite/format round trip through the codec. Adding a
// location and editing one are the same operation. Returns
// domain.ErrValidation for an out-of-range index.
func (s *DayService) SetActivityLocation(ctx context.Context, tripID, dayID uuid.UUID, index int, location string) (domain.DayPlan, error) {
	days, err := s.load(ctx, tripID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.SetActivityLocation: %w", err)
	}
	if !containsDay(days, dayID) {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.SetActivityLocation: day: %w", domain.ErrNotFound)
	}

	day := dayByID(days, dayID)
	if index < 0 || index >= len(day.Activities) {
		return domain.DayPlan{}, fmt.Errorf("%w: activity index out of range", domain.ErrValidation)
	}

	activities := append([]string{}, day.Activities...)
	activities[index] = activity.SetLocation(activities[index], location)

	updated := itinerary.UpdateDay(days, dayID, domain.DayPatch{Activities: &activities})
	if err := s.days.ReplaceAll(ctx, tripID, updated); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayService.SetActivityLocation: %w", err)
	}
	return dayByID(updated, dayID), nil
}

// load verifies the parent trip exists and returns its day collection.
func (s *DayService) load(ctx context.Context, tripID uuid.UUID) ([]domain.DayPlan, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, err
	}
	return s.days.ListByTripID(ctx, tripID)
}

// containsDay reports whether the collection holds a day with the given id.
func containsDay(days []domain.DayPlan, dayID uuid.UUID) bool {
	for _, d := range days {
		if d.ID == dayID {
			return true
		}
	}
	return false
}

// dayByID returns the day with the given id, or a zero DayPlan if absent.
// Callers check membership first via containsDay.
func dayByID(days []domain.DayPlan, dayID uuid.UUID) domain.DayPlan {
	for _, d := range days {
		if d.ID == dayID {
			return d
		}
	}
	return domain.DayPlan{}
}
