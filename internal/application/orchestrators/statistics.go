package orchestrators

import (
	"context"
	"errors"

	"boxoffice/internal/adapters/storage/stats"
)

// Statistic kinds selectable on the admin statistics page.
const (
	StatAveragePrice  = "average_price"
	StatOccupancyRate = "occupancy_rate"
	StatTotalSold     = "total_sold"
)

// ComputeStatisticInput selects the statistic and its subject.
// average_price and total_sold are keyed by play, occupancy_rate by
// performance.
type ComputeStatisticInput struct {
	Kind          string
	PlayID        int64
	PerformanceID int64
}

// ComputeStatisticDeps holds dependencies for ComputeStatistic.
type ComputeStatisticDeps struct {
	StatsStore stats.Store
}

// StatisticResult carries the computed value. HasData is false when
// the underlying entity has no tickets (or capacity) to aggregate over.
type StatisticResult struct {
	Kind    string
	Value   float64
	Count   int
	HasData bool
}

// ErrInvalidStatistic is returned for an unknown kind or a missing
// subject ID.
var ErrInvalidStatistic = errors.New("unknown statistic or missing selection")

// ExecuteComputeStatistic dispatches to the stats store. All
// aggregation happens inside the store's SQL; this is a passthrough.
// PRE: Kind names a known statistic and the matching ID is positive
// POST: Returns the store's aggregate untouched
func ExecuteComputeStatistic(ctx context.Context, input ComputeStatisticInput, deps ComputeStatisticDeps) (StatisticResult, error) {
	switch input.Kind {
	case StatAveragePrice:
		if input.PlayID <= 0 {
			return StatisticResult{}, ErrInvalidStatistic
		}
		value, ok, err := deps.StatsStore.AverageTicketPrice(ctx, input.PlayID)
		if err != nil {
			return StatisticResult{}, err
		}
		return StatisticResult{Kind: input.Kind, Value: value, HasData: ok}, nil

	case StatOccupancyRate:
		if input.PerformanceID <= 0 {
			return StatisticResult{}, ErrInvalidStatistic
		}
		value, ok, err := deps.StatsStore.OccupancyRate(ctx, input.PerformanceID)
		if err != nil {
			return StatisticResult{}, err
		}
		return StatisticResult{Kind: input.Kind, Value: value, HasData: ok}, nil

	case StatTotalSold:
		if input.PlayID <= 0 {
			return StatisticResult{}, ErrInvalidStatistic
		}
		n, err := deps.StatsStore.TotalTicketsSold(ctx, input.PlayID)
		if err != nil {
			return StatisticResult{}, err
		}
		return StatisticResult{Kind: input.Kind, Count: n, HasData: true}, nil

	default:
		return StatisticResult{}, ErrInvalidStatistic
	}
}
