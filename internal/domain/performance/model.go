package performance

import (
	"errors"
	"strings"
	"time"
)

// FormTimeLayout is the textual format performances are entered in.
const FormTimeLayout = "2006-01-02T15:04"

// Domain errors
var (
	ErrMissingPlay      = errors.New("performance must reference a play")
	ErrZeroDateTime     = errors.New("date and time must be set")
	ErrEmptyVenue       = errors.New("venue cannot be empty")
	ErrNegativeSeats    = errors.New("available seats cannot be negative")
	ErrInvalidTimeInput = errors.New("date and time must be in YYYY-MM-DDTHH:MM form")
)

// Performance is one scheduled showing of a Play at a venue and time
// with a seat capacity.
type Performance struct {
	ID             int64
	PlayID         int64
	DateTime       time.Time
	Venue          string
	AvailableSeats int
}

// Validate checks if the Performance has valid data.
// PRE: Performance struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Performance) Validate() error {
	if p.PlayID <= 0 {
		return ErrMissingPlay
	}
	if p.DateTime.IsZero() {
		return ErrZeroDateTime
	}
	if strings.TrimSpace(p.Venue) == "" {
		return ErrEmptyVenue
	}
	if p.AvailableSeats < 0 {
		return ErrNegativeSeats
	}
	return nil
}

// ParseDateTime parses the fixed textual form format used by the
// performance forms.
// PRE: value is non-empty
// POST: Returns the parsed time or ErrInvalidTimeInput
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(FormTimeLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidTimeInput
	}
	return t, nil
}
