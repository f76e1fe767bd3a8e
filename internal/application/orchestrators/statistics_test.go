package orchestrators

import (
	"context"
	"testing"
)

// fakeStatsStore returns canned aggregates keyed by ID.
type fakeStatsStore struct {
	avgPrice  map[int64]float64
	occupancy map[int64]float64
	sold      map[int64]int
}

func (f *fakeStatsStore) AverageTicketPrice(_ context.Context, playID int64) (float64, bool, error) {
	v, ok := f.avgPrice[playID]
	return v, ok, nil
}

func (f *fakeStatsStore) OccupancyRate(_ context.Context, performanceID int64) (float64, bool, error) {
	v, ok := f.occupancy[performanceID]
	return v, ok, nil
}

func (f *fakeStatsStore) TotalTicketsSold(_ context.Context, playID int64) (int, error) {
	return f.sold[playID], nil
}

func TestExecuteComputeStatistic(t *testing.T) {
	deps := ComputeStatisticDeps{StatsStore: &fakeStatsStore{
		avgPrice:  map[int64]float64{1: 450.0},
		occupancy: map[int64]float64{7: 20.0},
		sold:      map[int64]int{1: 3},
	}}

	tests := []struct {
		name  string
		input ComputeStatisticInput
		want  StatisticResult
	}{
		{
			"average price",
			ComputeStatisticInput{Kind: StatAveragePrice, PlayID: 1},
			StatisticResult{Kind: StatAveragePrice, Value: 450.0, HasData: true},
		},
		{
			"average price without tickets",
			ComputeStatisticInput{Kind: StatAveragePrice, PlayID: 2},
			StatisticResult{Kind: StatAveragePrice, HasData: false},
		},
		{
			"occupancy rate",
			ComputeStatisticInput{Kind: StatOccupancyRate, PerformanceID: 7},
			StatisticResult{Kind: StatOccupancyRate, Value: 20.0, HasData: true},
		},
		{
			"total sold",
			ComputeStatisticInput{Kind: StatTotalSold, PlayID: 1},
			StatisticResult{Kind: StatTotalSold, Count: 3, HasData: true},
		},
		{
			"total sold without tickets",
			ComputeStatisticInput{Kind: StatTotalSold, PlayID: 2},
			StatisticResult{Kind: StatTotalSold, Count: 0, HasData: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExecuteComputeStatistic(context.Background(), tt.input, deps)
			if err != nil {
				t.Fatalf("ExecuteComputeStatistic failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("result = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExecuteComputeStatistic_Invalid(t *testing.T) {
	deps := ComputeStatisticDeps{StatsStore: &fakeStatsStore{}}

	tests := []struct {
		name  string
		input ComputeStatisticInput
	}{
		{"unknown kind", ComputeStatisticInput{Kind: "median_price", PlayID: 1}},
		{"average price without play", ComputeStatisticInput{Kind: StatAveragePrice}},
		{"occupancy without performance", ComputeStatisticInput{Kind: StatOccupancyRate}},
		{"total sold without play", ComputeStatisticInput{Kind: StatTotalSold}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExecuteComputeStatistic(context.Background(), tt.input, deps); err != ErrInvalidStatistic {
				t.Errorf("error = %v, want %v", err, ErrInvalidStatistic)
			}
		})
	}
}
