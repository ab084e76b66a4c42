package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripkit/trip-planner/backend/internal/domain"
	"github.com/tripkit/trip-planner/backend/internal/service"
)

func TestExportService_Export(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), Destination: "Paris"}
	days := []domain.DayPlan{
		{
			ID:     uuid.New(),
			TripID: trip.ID,
			Date:   date(2026, time.June, 1),
			Icon:   "🗼",
			Activities: []string{
				"Visit the Eiffel Tower",
				"Dinner [at: Le Procope] [time: 8pm]",
			},
		},
		{
			ID:         uuid.New(),
			TripID:     trip.ID,
			Date:       date(2026, time.June, 2),
			Icon:       domain.DefaultDayIcon,
			Activities: []string{},
		},
	}

	dayRepo := &mockDayRepo{
		ListByTripIDFunc: func(ctx context.Context, tripID uuid.UUID) ([]domain.DayPlan, error) {
			return days, nil
		},
	}
	svc := service.NewExportService(tripReturning(trip), dayRepo)

	rows, err := svc.Export(context.Background(), trip.ID)

	require.NoError(t, err)
	require.Len(t, rows, 3, "two activity rows plus one empty-day row")

	assert.Equal(t, "2026-06-01", rows[0].DayDate)
	assert.Equal(t, "Paris", rows[0].TripDestination)
	assert.Equal(t, 1, rows[0].ActivityIndex)
	assert.Equal(t, "Visit the Eiffel Tower", rows[0].ActivityText)
	assert.Equal(t, "Eiffel Tower", rows[0].ActivityLocation)
	assert.True(t, rows[0].AutoDetected)

	assert.Equal(t, 2, rows[1].ActivityIndex)
	assert.Equal(t, "Dinner", rows[1].ActivityText)
	assert.Equal(t, "Le Procope", rows[1].ActivityLocation)
	assert.Equal(t, "8pm", rows[1].ActivityTime)
	assert.False(t, rows[1].AutoDetected)

	assert.Equal(t, "2026-06-02", rows[2].DayDate)
	assert.Zero(t, rows[2].ActivityIndex)
	assert.Empty(t, rows[2].ActivityText)
}

func TestExportService_Export_TripNotFound(t *testing.T) {
	trips := &mockTripRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewExportService(trips, &mockDayRepo{})

	_, err := svc.Export(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportService_Export_NoDays(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), Destination: "Rome"}
	dayRepo := &mockDayRepo{
		ListByTripIDFunc: func(ctx context.Context, tripID uuid.UUID) ([]domain.DayPlan, error) {
			return []domain.DayPlan{}, nil
		},
	}
	svc := service.NewExportService(tripReturning(trip), dayRepo)

	rows, err := svc.Export(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}
