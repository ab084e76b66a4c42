package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripkit/trip-planner/backend/internal/domain"
	"github.com/tripkit/trip-planner/backend/internal/handler"
)

// The handler tests exercise the real chi router via httptest, with
// hand-written mocks behind the servicer interfaces. Tests set only the
// func fields they need; an unexpected call panics and fails the test.

type mockTripService struct {
	CreateFunc    func(ctx context.Context, trip domain.Trip) (domain.Trip, []domain.DayPlan, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (domain.Trip, []domain.DayPlan, error)
	ListPagedFunc func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
}

var _ handler.TripServicer = (*mockTripService)(nil)

func (m *mockTripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, []domain.DayPlan, error) {
	return m.CreateFunc(ctx, trip)
}

func (m *mockTripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, []domain.DayPlan, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.ListPagedFunc(ctx, p)
}

func (m *mockTripService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type mockDayService struct {
	GetDayFunc              func(ctx context.Context, tripID, dayID uuid.UUID) (domain.DayPlan, error)
	UpdateDayFunc           func(ctx context.Context, tripID, dayID uuid.UUID, patch domain.DayPatch) (domain.DayPlan, error)
	AddActivityFunc         func(ctx context.Context, tripID, dayID uuid.UUID, activity string) (domain.DayPlan, error)
	RemoveActivityFunc      func(ctx context.Context, tripID, dayID uuid.UUID, index int) (domain.DayPlan, error)
	ReorderActivitiesFunc   func(ctx context.Context, tripID, dayID uuid.UUID, fromIndex, toIndex int) (domain.DayPlan, error)
	ReorderDaysFunc         func(ctx context.Context, tripID uuid.UUID, fromIndex, toIndex int) ([]domain.DayPlan, error)
	SelectDayForDateFunc    func(ctx context.Context, tripID uuid.UUID, date time.Time) (uuid.UUID, error)
	MapViewFunc             func(ctx context.Context, tripID, dayID uuid.UUID) ([]domain.MapActivity, error)
	SetActivityLocationFunc func(ctx context.Context, tripID, dayID uuid.UUID, index int, location string) (domain.DayPlan, error)
}

var _ handler.DayServicer = (*mockDayService)(nil)

func (m *mockDayService) GetDay(ctx context.Context, tripID, dayID uuid.UUID) (domain.DayPlan, error) {
	return m.GetDayFunc(ctx, tripID, dayID)
}

func (m *mockDayService) UpdateDay(ctx context.Context, tripID, dayID uuid.UUID, patch domain.DayPatch) (domain.DayPlan, error) {
	return m.UpdateDayFunc(ctx, tripID, dayID, patch)
}

func (m *mockDayService) AddActivity(ctx context.Context, tripID, dayID uuid.UUID, activity string) (domain.DayPlan, error) {
	return m.AddActivityFunc(ctx, tripID, dayID, activity)
}

func (m *mockDayService) RemoveActivity(ctx context.Context, tripID, dayID uuid.UUID, index int) (domain.DayPlan, error) {
	return m.RemoveActivityFunc(ctx, tripID, dayID, index)
}

func (m *mockDayService) ReorderActivities(ctx context.Context, tripID, dayID uuid.UUID, fromIndex, toIndex int) (domain.DayPlan, error) {
	return m.ReorderActivitiesFunc(ctx, tripID, dayID, fromIndex, toIndex)
}

func (m *mockDayService) ReorderDays(ctx context.Context, tripID uuid.UUID, fromIndex, toIndex int) ([]domain.DayPlan, error) {
	return m.ReorderDaysFunc(ctx, tripID, fromIndex, toIndex)
}

func (m *mockDayService) SelectDayForDate(ctx context.Context, tripID uuid.UUID, date time.Time) (uuid.UUID, error) {
	return m.SelectDayForDateFunc(ctx, tripID, date)
}

func (m *mockDayService) MapView(ctx context.Context, tripID, dayID uuid.UUID) ([]domain.MapActivity, error) {
	return m.MapViewFunc(ctx, tripID, dayID)
}

func (m *mockDayService) SetActivityLocation(ctx context.Context, tripID, dayID uuid.UUID, index int, location string) (domain.DayPlan, error) {
	return m.SetActivityLocationFunc(ctx, tripID, dayID, index, location)
}

type mockNotesService struct {
	SaveFunc func(dayID uuid.UUID, value string)
	GetFunc  func(ctx context.Context, dayID uuid.UUID) (string, error)
}

var _ handler.NotesServicer = (*mockNotesService)(nil)

func (m *mockNotesService) Save(dayID uuid.UUID, value string) {
	m.SaveFunc(dayID, value)
}

func (m *mockNotesService) Get(ctx context.Context, dayID uuid.UUID) (string, error) {
	return m.GetFunc(ctx, dayID)
}

type mockExportService struct {
	ExportFunc func(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

var _ handler.ExportServicer = (*mockExportService)(nil)

func (m *mockExportService) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	return m.ExportFunc(ctx, tripID)
}

// newTestServer mounts the full route tree over the given mocks. Nil mocks
// are replaced with empty ones, so tests only construct what they use.
func newTestServer(trips *mockTripService, days *mockDayService, notes *mockNotesService, export *mockExportService) *httptest.Server {
	if trips == nil {
		trips = &mockTripService{}
	}
	if days == nil {
		days = &mockDayService{}
	}
	if notes == nil {
		notes = &mockNotesService{}
	}
	if export == nil {
		export = &mockExportService{}
	}
	return httptest.NewServer(handler.NewServer(trips, days, notes, export).Routes())
}

// do issues a request against the test server and returns the response.
// An empty body sends no payload.
func do(ts *httptest.Server, method, path, body string) (*http.Response, error) {
	var payload io.Reader
	if body != "" {
		payload = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, payload)
	if err != nil {
		return nil, err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.Client().Do(req)
}
