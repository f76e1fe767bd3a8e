package play

import (
	"context"
	"errors"

	domain "boxoffice/internal/domain/play"
)

// Store persists Play state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Play, error)
	ListAll(ctx context.Context) ([]domain.Play, error)
	Create(ctx context.Context, value domain.Play) (int64, error)
	Update(ctx context.Context, value domain.Play) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, keyword, genre string) ([]domain.Play, error)
}

// Store errors
var (
	ErrNotFound        = errors.New("play not found")
	ErrHasPerformances = errors.New("play still has scheduled performances")
)
