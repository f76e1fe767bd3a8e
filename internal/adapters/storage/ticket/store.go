package ticket

import (
	"context"
	"errors"
	"time"

	domain "boxoffice/internal/domain/ticket"
)

// UserTicket is a Ticket joined to its performance and play for the
// profile page.
type UserTicket struct {
	ID           int64
	Reference    string
	PlayTitle    string
	DateTime     time.Time
	Venue        string
	Price        float64
	PurchaseDate time.Time
}

// Store persists Ticket state.
type Store interface {
	// Purchase atomically claims one seat on the performance and
	// inserts the ticket row in a single transaction.
	Purchase(ctx context.Context, value domain.Ticket) (domain.Ticket, error)
	ListByUser(ctx context.Context, userID int64) ([]UserTicket, error)
	CountByPerformance(ctx context.Context, performanceID int64) (int, error)
}

// Store errors
var (
	ErrSoldOut            = errors.New("no seats available for this performance")
	ErrPerformanceMissing = errors.New("ticket references a performance that does not exist")
)
