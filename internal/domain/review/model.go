package review

import (
	"errors"
	"strings"
	"time"
)

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 10
)

// Domain errors
var (
	ErrMissingUser = errors.New("review must reference a user")
	ErrRatingRange = errors.New("rating must be between 1 and 10")
	ErrEmptyText   = errors.New("review text cannot be empty")
)

// Review is a rating plus text feedback record authored by a User.
// It is not tied to a specific Play or Performance.
type Review struct {
	ID         int64
	UserID     int64
	Rating     int
	Text       string
	DatePosted time.Time
}

// Validate checks if the Review has valid data.
// PRE: Review struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Review) Validate() error {
	if r.UserID <= 0 {
		return ErrMissingUser
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrRatingRange
	}
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	return nil
}
