package performance

import (
	"context"
	"errors"
	"time"

	domain "boxoffice/internal/domain/performance"
)

// Detail is a Performance joined to its parent play's title.
type Detail struct {
	ID             int64
	PlayID         int64
	PlayTitle      string
	DateTime       time.Time
	Venue          string
	AvailableSeats int
}

// Store persists Performance state.
type Store interface {
	GetByID(ctx context.Context, id int64) (Detail, error)
	ListByPlay(ctx context.Context, playID int64) ([]domain.Performance, error)
	ListAll(ctx context.Context) ([]Detail, error)
	Create(ctx context.Context, value domain.Performance) (int64, error)
	Update(ctx context.Context, value domain.Performance) error
	Delete(ctx context.Context, id int64) error
}

// Store errors
var (
	ErrNotFound    = errors.New("performance not found")
	ErrPlayMissing = errors.New("performance references a play that does not exist")
	ErrHasTickets  = errors.New("performance still has sold tickets")
)
