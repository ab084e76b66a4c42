package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripkit/trip-planner/backend/internal/repo"
)

// DefaultNotesDebounce is how long NotesService waits after the last edit
// before writing a day's note to the store.
const DefaultNotesDebounce = 500 * time.Millisecond

// noteWriteTimeout bounds the background write; the originating request
// has usually completed by the time the debounce timer fires.
const noteWriteTimeout = 5 * time.Second

// NotesService persists per-day note text to the keyed note store with a
// debounce, so a user typing doesn't amplify into one write per keystroke.
//
// Each Save cancels and replaces any pending timer for the same day id,
// guaranteeing at most one pending write per day at a time; the write that
// eventually lands carries the latest text (last-write-wins). Close flushes
// everything still pending.
type NotesService struct {
	notes   repo.NoteRepo
	delay   time.Duration
	onError func(dayID uuid.UUID, err error)

	mu      sync.Mutex
	pending map[uuid.UUID]*pendingNote
}

// pendingNote is one scheduled write: the timer and the text it will write.
type pendingNote struct {
	timer *time.Timer
	value string
}

// NewNotesService constructs a NotesService writing through the given
// store. A non-positive delay falls back to DefaultNotesDebounce. onError,
// if non-nil, is invoked when a background write fails; a dropped note is
// the documented worst case, so there is nothing to retry.
func NewNotesService(notes repo.NoteRepo, delay time.Duration, onError func(dayID uuid.UUID, err error)) *NotesService {
	if delay <= 0 {
		delay = DefaultNotesDebounce
	}
	return &NotesService{
		notes:   notes,
		delay:   delay,
		onError: onError,
		pending: make(map[uuid.UUID]*pendingNote),
	}
}

// Save schedules the note text for the given day to be written after the
// debounce window. Calling again within the window for the same day
// replaces both the timer and the text.
func (s *NotesService) Save(dayID uuid.UUID, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[dayID]; ok {
		p.timer.Stop()
	}

	p := &pendingNote{value: value}
	p.timer = time.AfterFunc(s.delay, func() { s.flush(dayID, p) })
	s.pending[dayID] = p
}

// Get returns the stored note text for a day, preferring a pending
// (not-yet-written) value over the store so readers always see the latest
// edit. Returns domain.ErrNotFound when the day has no note at all.
func (s *NotesService) Get(ctx context.Context, dayID uuid.UUID) (string, error) {
	s.mu.Lock()
	if p, ok := s.pending[dayID]; ok {
		value := p.value
		s.mu.Unlock()
		return value, nil
	}
	s.mu.Unlock()

	value, err := s.notes.Get(ctx, dayID)
	if err != nil {
		return "", fmt.Errorf("service.NotesService.Get: %w", err)
	}
	return value, nil
}

// Close cancels all pending timers and writes their values immediately.
// Call on shutdown so the last edits are not lost.
func (s *NotesService) Close(ctx context.Context) error {
	s.mu.Lock()
	remaining := make(map[uuid.UUID]string, len(s.pending))
	for dayID, p := range s.pending {
		p.timer.Stop()
		remaining[dayID] = p.value
	}
	s.pending = make(map[uuid.UUID]*pendingNote)
	s.mu.Unlock()

	var firstErr error
	for dayID, value := range remaining {
		if err := s.notes.Put(ctx, dayID, value); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("service.NotesService.Close: %w", err)
		}
	}
	return firstErr
}

// flush performs the scheduled write for the given pending entry. A timer
// can fire and then block on the mutex while Save replaces the entry; the
// identity check makes such a stale flush a no-op instead of letting it
// write the replacement early.
func (s *NotesService) flush(dayID uuid.UUID, p *pendingNote) {
	s.mu.Lock()
	if s.pending[dayID] != p {
		s.mu.Unlock()
		return
	}
	delete(s.pending, dayID)
	value := p.value
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), noteWriteTimeout)
	defer cancel()

	if err := s.notes.Put(ctx, dayID, value); err != nil && s.onError != nil {
		s.onError(dayID, err)
	}
}
