package ticket

import (
	"errors"
	"time"
)

// DefaultPrice is the price pre-filled into the purchase form.
const DefaultPrice = 400.00

// Domain errors
var (
	ErrMissingPerformance = errors.New("ticket must reference a performance")
	ErrMissingUser        = errors.New("ticket must reference a user")
	ErrNegativePrice      = errors.New("price cannot be negative")
)

// Ticket is a purchase record binding one User to one Performance at
// a price. Reference is an opaque code printed on the ticket and
// encoded into its QR code.
type Ticket struct {
	ID            int64
	PerformanceID int64
	UserID        int64
	Reference     string
	Price         float64
	PurchaseDate  time.Time
}

// Validate checks if the Ticket has valid data.
// PRE: Ticket struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Ticket) Validate() error {
	if t.PerformanceID <= 0 {
		return ErrMissingPerformance
	}
	if t.UserID <= 0 {
		return ErrMissingUser
	}
	if t.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}
