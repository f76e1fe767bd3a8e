package orchestrators

import (
	"context"
	"testing"
	"time"

	"boxoffice/internal/domain/review"
)

type mockReviewStore struct {
	reviews []review.Review
	nextID  int64
}

func (m *mockReviewStore) Add(_ context.Context, r review.Review) (int64, error) {
	m.nextID++
	r.ID = m.nextID
	m.reviews = append(m.reviews, r)
	return r.ID, nil
}

func TestExecuteAddReview(t *testing.T) {
	store := &mockReviewStore{}

	fixed := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	id, err := ExecuteAddReview(context.Background(), AddReviewInput{
		UserID: 42, Rating: 8, Text: "A spirited ensemble.",
	}, AddReviewDeps{ReviewStore: store})
	if err != nil {
		t.Fatalf("ExecuteAddReview failed: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
	saved := store.reviews[0]
	if !saved.DatePosted.Equal(fixed) {
		t.Errorf("date posted = %v, want %v", saved.DatePosted, fixed)
	}
}

func TestExecuteAddReview_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input AddReviewInput
	}{
		{"rating too low", AddReviewInput{UserID: 42, Rating: 0, Text: "x"}},
		{"rating too high", AddReviewInput{UserID: 42, Rating: 11, Text: "x"}},
		{"empty text", AddReviewInput{UserID: 42, Rating: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockReviewStore{}
			if _, err := ExecuteAddReview(context.Background(), tt.input, AddReviewDeps{ReviewStore: store}); err == nil {
				t.Error("expected validation error")
			}
			if len(store.reviews) != 0 {
				t.Error("no insert may happen for invalid input")
			}
		})
	}
}
