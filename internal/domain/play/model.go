package play

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrEmptyGenre       = errors.New("genre cannot be empty")
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
)

// Play is a theatrical work, independent of any scheduled showing.
type Play struct {
	ID          int64
	Title       string
	Description string
	Genre       string
	Duration    int // minutes
}

// Validate checks if the Play has valid data.
// PRE: Play struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Play) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(p.Genre) == "" {
		return ErrEmptyGenre
	}
	if p.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
