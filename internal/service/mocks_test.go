package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripkit/trip-planner/backend/internal/domain"
	"github.com/tripkit/trip-planner/backend/internal/repo"
)

// mockTripRepo is a hand-written mock of repo.TripRepo. Tests set only the
// func fields they need; calling an unset method panics, which makes an
// unexpected repo call an immediate test failure.
type mockTripRepo struct {
	CreateFunc    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPagedFunc func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.CreateFunc(ctx, trip)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.ListPagedFunc(ctx, p)
}

func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

// mockDayRepo is a hand-written mock of repo.DayRepo.
type mockDayRepo struct {
	ListByTripIDFunc func(ctx context.Context, tripID uuid.UUID) ([]domain.DayPlan, error)
	GetByIDFunc      func(ctx context.Context, tripID, dayID uuid.UUID) (domain.DayPlan, error)
	ReplaceAllFunc   func(ctx context.Context, tripID uuid.UUID, days []domain.DayPlan) error
}

var _ repo.DayRepo = (*mockDayRepo)(nil)

func (m *mockDayRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.DayPlan, error) {
	return m.ListByTripIDFunc(ctx, tripID)
}

func (m *mockDayRepo) GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.DayPlan, error) {
	return m.GetByIDFunc(ctx, tripID, dayID)
}

func (m *mockDayRepo) ReplaceAll(ctx context.Context, tripID uuid.UUID, days []domain.DayPlan) error {
	return m.ReplaceAllFunc(ctx, tripID, days)
}

// mockNoteRepo is a hand-written mock of repo.NoteRepo.
type mockNoteRepo struct {
	PutFunc func(ctx context.Context, dayID uuid.UUID, value string) error
	GetFunc func(ctx context.Context, dayID uuid.UUID) (string, error)
}

var _ repo.NoteRepo = (*mockNoteRepo)(nil)

func (m *mockNoteRepo) Put(ctx context.Context, dayID uuid.UUID, value string) error {
	return m.PutFunc(ctx, dayID, value)
}

func (m *mockNoteRepo) Get(ctx context.Context, dayID uuid.UUID) (string, error) {
	return m.GetFunc(ctx, dayID)
}

// tripReturning builds a trip repo whose GetByID always succeeds with the
// given trip, the common precondition for day-level operations.
func tripReturning(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
}
