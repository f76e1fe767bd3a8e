package performance_test

import (
	"testing"
	"time"

	"boxoffice/internal/domain/performance"
)

// TestPerformance_Validate tests validation of Performance.
func TestPerformance_Validate(t *testing.T) {
	when := time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		perf    performance.Performance
		wantErr error
	}{
		{
			name: "valid performance",
			perf: performance.Performance{
				PlayID:         1,
				DateTime:       when,
				Venue:          "Main Stage",
				AvailableSeats: 120,
			},
			wantErr: nil,
		},
		{
			name: "zero seats is allowed",
			perf: performance.Performance{
				PlayID:         1,
				DateTime:       when,
				Venue:          "Studio",
				AvailableSeats: 0,
			},
			wantErr: nil,
		},
		{
			name:    "missing play",
			perf:    performance.Performance{DateTime: when, Venue: "v", AvailableSeats: 10},
			wantErr: performance.ErrMissingPlay,
		},
		{
			name:    "zero time",
			perf:    performance.Performance{PlayID: 1, Venue: "v", AvailableSeats: 10},
			wantErr: performance.ErrZeroDateTime,
		},
		{
			name:    "empty venue",
			perf:    performance.Performance{PlayID: 1, DateTime: when, AvailableSeats: 10},
			wantErr: performance.ErrEmptyVenue,
		},
		{
			name:    "negative seats",
			perf:    performance.Performance{PlayID: 1, DateTime: when, Venue: "v", AvailableSeats: -1},
			wantErr: performance.ErrNegativeSeats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.perf.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestParseDateTime tests the fixed form time format.
func TestParseDateTime(t *testing.T) {
	got, err := performance.ParseDateTime("2026-09-12T19:30")
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	want := time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateTime = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "12/09/2026", "2026-09-12 19:30:00", "next tuesday"} {
		if _, err := performance.ParseDateTime(bad); err != performance.ErrInvalidTimeInput {
			t.Errorf("ParseDateTime(%q) error = %v, want %v", bad, err, performance.ErrInvalidTimeInput)
		}
	}
}
