package review

import (
	"context"
	"time"

	domain "boxoffice/internal/domain/review"
)

// PostedReview is a Review joined to the posting user's name for the
// public listing.
type PostedReview struct {
	ID         int64
	Username   string
	Rating     int
	Text       string
	DatePosted time.Time
}

// Store persists Review state.
type Store interface {
	Add(ctx context.Context, value domain.Review) (int64, error)
	ListAll(ctx context.Context) ([]PostedReview, error)
	ListPage(ctx context.Context, limit, offset int) ([]PostedReview, error)
	Count(ctx context.Context) (int, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Review, error)
}
