package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tripkit/trip-planner/backend/internal/domain"
)

// noteKeyPrefix namespaces note entries in the key-value store.
// Day ids are freshly generated every time a trip is derived, so entries
// for discarded trips are simply orphaned under their old keys.
const noteKeyPrefix = "tripplanner_day_"

// NoteRepo defines the per-day note key-value store: one string entry per
// day id, last-write-wins. It deliberately mirrors a browser localStorage
// contract rather than a relational one.
type NoteRepo interface {
	// Put stores the note text for a day id, overwriting any previous value.
	Put(ctx context.Context, dayID uuid.UUID, value string) error

	// Get returns the stored note text for a day id.
	// Returns domain.ErrNotFound if no entry exists.
	Get(ctx context.Context, dayID uuid.UUID) (string, error)
}

// pgNoteRepo is the Postgres implementation of NoteRepo.
type pgNoteRepo struct {
	db db
}

// NewNoteRepo constructs a NoteRepo backed by the provided db connection.
func NewNoteRepo(db db) NoteRepo {
	return &pgNoteRepo{db: db}
}

// Put upserts the note entry for a day id.
func (r *pgNoteRepo) Put(ctx context.Context, dayID uuid.UUID, value string) error {
	const q = `
		INSERT INTO day_notes (key, value, updated_at)
		VALUES (@key, @value, now())
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": noteKey(dayID), "value": value}); err != nil {
		return fmt.Errorf("repo.NoteRepo.Put: %w", err)
	}
	return nil
}

// Get returns the note entry for a day id.
func (r *pgNoteRepo) Get(ctx context.Context, dayID uuid.UUID) (string, error) {
	const q = `SELECT value FROM day_notes WHERE key = @key`

	var value string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": noteKey(dayID)}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("repo.NoteRepo.Get: %w", domain.ErrNotFound)
		}
		return "", fmt.Errorf("repo.NoteRepo.Get: %w", err)
	}
	return value, nil
}

// noteKey builds the namespaced storage key for a day id.
func noteKey(dayID uuid.UUID) string {
	return noteKeyPrefix + dayID.String()
}
