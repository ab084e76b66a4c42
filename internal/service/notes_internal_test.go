package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripkit/trip-planner/backend/internal/domain"
)

// countingNoteRepo records every Put so tests can assert exactly which
// values reached the store.
type countingNoteRepo struct {
	mu     sync.Mutex
	writes []string
}

func (r *countingNoteRepo) Put(ctx context.Context, dayID uuid.UUID, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, value)
	return nil
}

func (r *countingNoteRepo) Get(ctx context.Context, dayID uuid.UUID) (string, error) {
	return "", domain.ErrNotFound
}

// A timer can fire just as Save replaces its entry, leaving the fired
// callback holding a pointer to the superseded pendingNote. Such a stale
// flush must not touch the store or the replacement entry, otherwise the
// replacement is written before its own debounce window elapses.
func TestNotesService_StaleFlushIsNoop(t *testing.T) {
	store := &countingNoteRepo{}
	svc := NewNotesService(store, time.Minute, nil)
	dayID := uuid.New()

	svc.Save(dayID, "superseded")
	svc.mu.Lock()
	stale := svc.pending[dayID]
	svc.mu.Unlock()
	stale.timer.Stop()

	svc.Save(dayID, "current")

	// Simulate the superseded timer firing after the replacement landed.
	svc.flush(dayID, stale)

	store.mu.Lock()
	assert.Empty(t, store.writes)
	store.mu.Unlock()

	svc.mu.Lock()
	current := svc.pending[dayID]
	svc.mu.Unlock()
	require.NotNil(t, current)
	assert.Equal(t, "current", current.value)

	// The replacement still flushes normally with the latest text.
	require.NoError(t, svc.Close(context.Background()))
	store.mu.Lock()
	assert.Equal(t, []string{"current"}, store.writes)
	store.mu.Unlock()
}
