package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripkit/trip-planner/backend/internal/domain"
)

// DayRepo defines the persistence operations for day plans.
//
// The itinerary engine replaces a trip's day collection wholesale on every
// mutation, so the write path mirrors that: ReplaceAll persists the full
// ordered collection rather than patching individual rows. Order is stored
// in an explicit position column because day reordering can detach list
// order from date order.
type DayRepo interface {
	// ListByTripID returns all day plans for a trip in stored list order.
	// A trip with no days yields an empty, non-nil slice.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.DayPlan, error)

	// GetByID retrieves a single day plan by its UUID, scoped to the given
	// tripID. Returns domain.ErrNotFound if no day with that ID exists
	// under that trip.
	GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.DayPlan, error)

	// ReplaceAll atomically replaces the trip's entire day collection with
	// the given ordered slice. Positions are assigned from slice order.
	ReplaceAll(ctx context.Context, tripID uuid.UUID, days []domain.DayPlan) error
}

// pgDayRepo is the Postgres implementation of DayRepo.
type pgDayRepo struct {
	db db
}

// NewDayRepo constructs a DayRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDayRepo(db db) DayRepo {
	return &pgDayRepo{db: db}
}

// ListByTripID returns the trip's day plans ordered by position ascending.
func (r *pgDayRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.DayPlan, error) {
	const q = `
		SELECT id, trip_id, date, activities, notes, icon
		FROM day_plans
		WHERE trip_id = @trip_id
		ORDER BY position ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	days := []domain.DayPlan{}
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.ListByTripID: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: rows: %w", err)
	}

	return days, nil
}

// GetByID retrieves a day plan by id, scoped to its trip.
func (r *pgDayRepo) GetByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.DayPlan, error) {
	const q = `
		SELECT id, trip_id, date, activities, notes, icon
		FROM day_plans
		WHERE trip_id = @trip_id AND id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "id": dayID})
	d, err := scanDay(row)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}
	return d, nil
}

// ReplaceAll deletes the trip's existing day rows and inserts the new
// collection in order. The statements run in a batch so the swap is a
// single round trip; pass a pgx.Tx when callers need full atomicity with
// other writes.
func (r *pgDayRepo) ReplaceAll(ctx context.Context, tripID uuid.UUID, days []domain.DayPlan) error {
	const delQ = `DELETE FROM day_plans WHERE trip_id = @trip_id`
	const insQ = `
		INSERT INTO day_plans (id, trip_id, date, position, activities, notes, icon)
		VALUES (@id, @trip_id, @date, @position, @activities, @notes, @icon)`

	batch := &pgx.Batch{}
	batch.Queue(delQ, pgx.NamedArgs{"trip_id": tripID})
	for i, day := range days {
		batch.Queue(insQ, pgx.NamedArgs{
			"id":         day.ID,
			"trip_id":    tripID,
			"date":       day.Date,
			"position":   i,
			"activities": day.Activities,
			"notes":      day.Notes,
			"icon":       day.Icon,
		})
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("repo.DayRepo.ReplaceAll: statement %d: %w", i, err)
		}
	}
	return nil
}

// scanDay maps a single database row into a domain.DayPlan.
func scanDay(s scanner) (domain.DayPlan, error) {
	var (
		d      domain.DayPlan
		id     pgtype.UUID
		tripID pgtype.UUID
		date   pgtype.Date
	)

	err := s.Scan(&id, &tripID, &date, &d.Activities, &d.Notes, &d.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DayPlan{}, domain.ErrNotFound
		}
		return domain.DayPlan{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Date = date.Time
	if d.Activities == nil {
		d.Activities = []string{}
	}

	return d, nil
}
