package orchestrators

import (
	"context"
	"testing"
	"time"

	performanceStore "boxoffice/internal/adapters/storage/performance"
	"boxoffice/internal/domain/performance"
)

type mockPerformanceStore struct {
	performances map[int64]performance.Performance
	ticketCount  map[int64]int
	knownPlays   map[int64]bool
	nextID       int64
}

func newMockPerformanceStore() *mockPerformanceStore {
	return &mockPerformanceStore{
		performances: make(map[int64]performance.Performance),
		ticketCount:  make(map[int64]int),
		knownPlays:   map[int64]bool{1: true},
	}
}

func (m *mockPerformanceStore) Create(_ context.Context, p performance.Performance) (int64, error) {
	if !m.knownPlays[p.PlayID] {
		return 0, performanceStore.ErrPlayMissing
	}
	m.nextID++
	p.ID = m.nextID
	m.performances[p.ID] = p
	return p.ID, nil
}

func (m *mockPerformanceStore) Update(_ context.Context, p performance.Performance) error {
	if _, ok := m.performances[p.ID]; !ok {
		return performanceStore.ErrNotFound
	}
	if !m.knownPlays[p.PlayID] {
		return performanceStore.ErrPlayMissing
	}
	m.performances[p.ID] = p
	return nil
}

func (m *mockPerformanceStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.performances[id]; !ok {
		return performanceStore.ErrNotFound
	}
	if m.ticketCount[id] > 0 {
		return performanceStore.ErrHasTickets
	}
	delete(m.performances, id)
	return nil
}

func validPerformanceInput() PerformanceInput {
	return PerformanceInput{
		PlayID:         1,
		DateTime:       time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC),
		Venue:          "Main Stage",
		AvailableSeats: 120,
	}
}

func TestExecuteCreatePerformance(t *testing.T) {
	store := newMockPerformanceStore()

	id, err := ExecuteCreatePerformance(context.Background(), validPerformanceInput(), SavePerformanceDeps{PerformanceStore: store})
	if err != nil {
		t.Fatalf("ExecuteCreatePerformance failed: %v", err)
	}
	if store.performances[id].Venue != "Main Stage" {
		t.Errorf("stored performance = %+v", store.performances[id])
	}
}

func TestExecuteCreatePerformance_Errors(t *testing.T) {
	store := newMockPerformanceStore()
	deps := SavePerformanceDeps{PerformanceStore: store}

	noVenue := validPerformanceInput()
	noVenue.Venue = ""
	if _, err := ExecuteCreatePerformance(context.Background(), noVenue, deps); err == nil {
		t.Error("expected validation error for missing venue")
	}

	danglingPlay := validPerformanceInput()
	danglingPlay.PlayID = 999
	if _, err := ExecuteCreatePerformance(context.Background(), danglingPlay, deps); err != performanceStore.ErrPlayMissing {
		t.Errorf("dangling play error = %v, want %v", err, performanceStore.ErrPlayMissing)
	}

	if len(store.performances) != 0 {
		t.Error("no insert may happen for rejected input")
	}
}

func TestExecuteUpdatePerformance(t *testing.T) {
	store := newMockPerformanceStore()
	deps := SavePerformanceDeps{PerformanceStore: store}

	id, err := ExecuteCreatePerformance(context.Background(), validPerformanceInput(), deps)
	if err != nil {
		t.Fatalf("ExecuteCreatePerformance failed: %v", err)
	}

	changed := validPerformanceInput()
	changed.AvailableSeats = 80
	if err := ExecuteUpdatePerformance(context.Background(), id, changed, deps); err != nil {
		t.Fatalf("ExecuteUpdatePerformance failed: %v", err)
	}
	if store.performances[id].AvailableSeats != 80 {
		t.Errorf("seats = %d after update", store.performances[id].AvailableSeats)
	}

	if err := ExecuteUpdatePerformance(context.Background(), 999, changed, deps); err != performanceStore.ErrNotFound {
		t.Errorf("unknown performance error = %v, want %v", err, performanceStore.ErrNotFound)
	}
}

func TestExecuteDeletePerformance(t *testing.T) {
	store := newMockPerformanceStore()
	deps := SavePerformanceDeps{PerformanceStore: store}

	id, err := ExecuteCreatePerformance(context.Background(), validPerformanceInput(), deps)
	if err != nil {
		t.Fatalf("ExecuteCreatePerformance failed: %v", err)
	}

	store.ticketCount[id] = 1
	if err := ExecuteDeletePerformance(context.Background(), id, deps); err != performanceStore.ErrHasTickets {
		t.Fatalf("delete with tickets error = %v, want %v", err, performanceStore.ErrHasTickets)
	}

	store.ticketCount[id] = 0
	if err := ExecuteDeletePerformance(context.Background(), id, deps); err != nil {
		t.Fatalf("ExecuteDeletePerformance failed: %v", err)
	}
}
