package orchestrators

import (
	"context"
	"log/slog"

	"boxoffice/internal/domain/play"
)

// PlayStoreForSave defines the store interface needed by the play
// mutation orchestrators.
type PlayStoreForSave interface {
	Create(ctx context.Context, value play.Play) (int64, error)
	Update(ctx context.Context, value play.Play) error
	Delete(ctx context.Context, id int64) error
}

// PlayInput carries the form fields of a play.
type PlayInput struct {
	Title       string
	Description string
	Genre       string
	Duration    int
}

// SavePlayDeps holds dependencies for the play mutation orchestrators.
type SavePlayDeps struct {
	PlayStore PlayStoreForSave
}

// ExecuteCreatePlay coordinates adding a play to the repertoire.
// PRE: Input fields have passed form validation
// POST: Play row inserted; returns its ID
func ExecuteCreatePlay(ctx context.Context, input PlayInput, deps SavePlayDeps) (int64, error) {
	p := play.Play{
		Title:       input.Title,
		Description: input.Description,
		Genre:       input.Genre,
		Duration:    input.Duration,
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	id, err := deps.PlayStore.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	slog.Info("repertoire_event", "event", "play_created", "play_id", id, "title", p.Title)
	return id, nil
}

// ExecuteUpdatePlay coordinates editing a play.
// PRE: id refers to an existing play; input has passed form validation
// POST: Play row updated, or the store's not-found error
func ExecuteUpdatePlay(ctx context.Context, id int64, input PlayInput, deps SavePlayDeps) error {
	p := play.Play{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Genre:       input.Genre,
		Duration:    input.Duration,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := deps.PlayStore.Update(ctx, p); err != nil {
		return err
	}
	slog.Info("repertoire_event", "event", "play_updated", "play_id", id)
	return nil
}

// ExecuteDeletePlay coordinates removing a play.
// A play with scheduled performances is kept; the store reports
// ErrHasPerformances per its RESTRICT policy.
// PRE: id is positive
// POST: Play row removed, or the store's restriction error
func ExecuteDeletePlay(ctx context.Context, id int64, deps SavePlayDeps) error {
	if err := deps.PlayStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("repertoire_event", "event", "play_deleted", "play_id", id)
	return nil
}
