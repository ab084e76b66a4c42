// Package service contains the business logic for the Trip Planner API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls and the itinerary engine. No SQL lives here — services depend on
// repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripkit/trip-planner/backend/internal/domain"
	"github.com/tripkit/trip-planner/backend/internal/itinerary"
	"github.com/tripkit/trip-planner/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// Creating a trip also derives its day-plan collection: one empty plan per
// calendar day of the trip, persisted alongside the trip itself.
type TripService struct {
	trips repo.TripRepo
	days  repo.DayRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, days repo.DayRepo) *TripService {
	return &TripService{trips: trips, days: days}
}

// Create validates and persists a new trip plus its derived day plans.
// Returns domain.ErrValidation if the destination is empty or the end date
// precedes the start date.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, []domain.DayPlan, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, nil, err
	}

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.TripService.Create: %w", err)
	}

	days := itinerary.DeriveDayPlans(created)
	if err := s.days.ReplaceAll(ctx, created.ID, days); err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.TripService.Create: %w", err)
	}

	return created, days, nil
}

// GetByID returns a single trip and its ordered day plans.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, []domain.DayPlan, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.TripService.GetByID: %w", err)
	}

	days, err := s.days.ListByTripID(ctx, id)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.TripService.GetByID: %w", err)
	}

	return trip, days, nil
}

// ListPaged returns one page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Delete removes a trip and (via cascade) its day plans.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules for trip creation.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - EndDate must not be before StartDate: the engine would derive an
//     empty day collection, which is a defined outcome internally but a
//     user error at the API boundary.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}
