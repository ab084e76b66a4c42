package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tripkit/trip-planner/backend/internal/activity"
	"github.com/tripkit/trip-planner/backend/internal/domain"
	"github.com/tripkit/trip-planner/backend/internal/repo"
)

// ExportService assembles a flat export of one trip: one row per activity,
// day fields repeated, with tag metadata parsed out into columns.
type ExportService struct {
	trips repo.TripRepo
	days  repo.DayRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, days repo.DayRepo) *ExportService {
	return &ExportService{trips: trips, days: days}
}

// Export returns the flat row view of the trip in day order.
// Days with no activities contribute one row with empty activity fields.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	days, err := s.days.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, day := range days {
		base := domain.ExportRow{
			TripID:          trip.ID.String(),
			TripDestination: trip.Destination,
			DayDate:         day.Date.Format("2006-01-02"),
			DayIcon:         day.Icon,
		}

		if len(day.Activities) == 0 {
			rows = append(rows, base)
			continue
		}

		for i, m := range activity.MapActivities(day) {
			row := base
			row.ActivityIndex = i + 1
			row.ActivityText = m.Title
			row.ActivityLocation = m.Location
			row.ActivityTime = m.Time
			row.AutoDetected = m.IsAutoDetected
			rows = append(rows, row)
		}
	}

	return rows, nil
}
