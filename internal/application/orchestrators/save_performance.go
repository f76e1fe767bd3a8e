package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"boxoffice/internal/domain/performance"
)

// PerformanceStoreForSave defines the store interface needed by the
// performance mutation orchestrators.
type PerformanceStoreForSave interface {
	Create(ctx context.Context, value performance.Performance) (int64, error)
	Update(ctx context.Context, value performance.Performance) error
	Delete(ctx context.Context, id int64) error
}

// PerformanceInput carries the form fields of a performance.
type PerformanceInput struct {
	PlayID         int64
	DateTime       time.Time
	Venue          string
	AvailableSeats int
}

// SavePerformanceDeps holds dependencies for the performance mutation
// orchestrators.
type SavePerformanceDeps struct {
	PerformanceStore PerformanceStoreForSave
}

// ExecuteCreatePerformance coordinates scheduling a performance.
// The play reference is not pre-checked; a dangling play_id surfaces as
// the store's foreign-key error at write time.
// PRE: Input fields have passed form validation
// POST: Performance row inserted; returns its ID
func ExecuteCreatePerformance(ctx context.Context, input PerformanceInput, deps SavePerformanceDeps) (int64, error) {
	p := performance.Performance{
		PlayID:         input.PlayID,
		DateTime:       input.DateTime,
		Venue:          input.Venue,
		AvailableSeats: input.AvailableSeats,
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	id, err := deps.PerformanceStore.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	slog.Info("repertoire_event", "event", "performance_created", "performance_id", id, "play_id", p.PlayID)
	return id, nil
}

// ExecuteUpdatePerformance coordinates editing a performance.
// PRE: id refers to an existing performance; input has passed form validation
// POST: Performance row updated, or a store error
func ExecuteUpdatePerformance(ctx context.Context, id int64, input PerformanceInput, deps SavePerformanceDeps) error {
	p := performance.Performance{
		ID:             id,
		PlayID:         input.PlayID,
		DateTime:       input.DateTime,
		Venue:          input.Venue,
		AvailableSeats: input.AvailableSeats,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := deps.PerformanceStore.Update(ctx, p); err != nil {
		return err
	}
	slog.Info("repertoire_event", "event", "performance_updated", "performance_id", id)
	return nil
}

// ExecuteDeletePerformance coordinates removing a performance.
// PRE: id is positive
// POST: Performance row removed, or the store's restriction error when
// tickets have been sold
func ExecuteDeletePerformance(ctx context.Context, id int64, deps SavePerformanceDeps) error {
	if err := deps.PerformanceStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("repertoire_event", "event", "performance_deleted", "performance_id", id)
	return nil
}
