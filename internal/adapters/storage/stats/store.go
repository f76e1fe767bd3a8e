package stats

import "context"

// Store computes the aggregate statistics. Each method is a single SQL
// aggregate query; the application performs no aggregation of its own.
type Store interface {
	// AverageTicketPrice returns the mean ticket price across all of a
	// play's performances. ok is false when the play has no tickets.
	AverageTicketPrice(ctx context.Context, playID int64) (value float64, ok bool, err error)

	// OccupancyRate returns sold / (sold + available) for one
	// performance as a percentage. ok is false when the performance
	// does not exist or has neither sold nor available seats.
	OccupancyRate(ctx context.Context, performanceID int64) (value float64, ok bool, err error)

	// TotalTicketsSold counts tickets across all of a play's
	// performances. A play with no tickets yields zero.
	TotalTicketsSold(ctx context.Context, playID int64) (int, error)
}
