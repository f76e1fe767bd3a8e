package orchestrators

import (
	"context"
	"log/slog"

	"boxoffice/internal/domain/review"
)

// ReviewStoreForAdd defines the store interface needed by AddReview.
type ReviewStoreForAdd interface {
	Add(ctx context.Context, value review.Review) (int64, error)
}

// AddReviewInput carries input for the review orchestrator.
type AddReviewInput struct {
	UserID int64
	Rating int
	Text   string
}

// AddReviewDeps holds dependencies for AddReview.
type AddReviewDeps struct {
	ReviewStore ReviewStoreForAdd
}

// ExecuteAddReview coordinates posting a theatre review.
// PRE: Rating and text have passed form validation; UserID comes from
// the session
// POST: Review row inserted stamped with the server's current date
func ExecuteAddReview(ctx context.Context, input AddReviewInput, deps AddReviewDeps) (int64, error) {
	r := review.Review{
		UserID:     input.UserID,
		Rating:     input.Rating,
		Text:       input.Text,
		DatePosted: timeNow(),
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}

	id, err := deps.ReviewStore.Add(ctx, r)
	if err != nil {
		return 0, err
	}
	slog.Info("review_event", "event", "review_posted", "review_id", id, "user_id", input.UserID, "rating", input.Rating)
	return id, nil
}
