package review

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"boxoffice/internal/adapters/storage"
	domain "boxoffice/internal/domain/review"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new ReviewStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Add inserts a new Review and returns its generated ID.
// PRE: entity has been validated
// POST: Row inserted
func (s *SQLiteStore) Add(ctx context.Context, entity domain.Review) (int64, error) {
	query := "INSERT INTO review (user_id, rating, text, date_posted) VALUES (?, ?, ?, ?)"
	res, err := s.db.ExecContext(ctx, query,
		entity.UserID,
		entity.Rating,
		entity.Text,
		entity.DatePosted.Format(storage.DateFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("insert review: %w", err)
	}
	return res.LastInsertId()
}

// ListAll retrieves every review joined to the poster's username,
// newest first.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]PostedReview, error) {
	query := `SELECT r.review_id, u.username, r.rating, r.text, r.date_posted
		FROM review r
		JOIN user u ON r.user_id = u.user_id
		ORDER BY r.date_posted DESC, r.review_id DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	results := []PostedReview{}
	for rows.Next() {
		var r PostedReview
		var datePosted string
		if err := rows.Scan(&r.ID, &r.Username, &r.Rating, &r.Text, &datePosted); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		r.DatePosted = parseStoredDate(datePosted)
		results = append(results, r)
	}
	return results, rows.Err()
}

// ListPage retrieves one page of reviews joined to the poster's
// username, newest first.
// PRE: limit > 0, offset >= 0
// POST: Returns at most limit rows
func (s *SQLiteStore) ListPage(ctx context.Context, limit, offset int) ([]PostedReview, error) {
	query := `SELECT r.review_id, u.username, r.rating, r.text, r.date_posted
		FROM review r
		JOIN user u ON r.user_id = u.user_id
		ORDER BY r.date_posted DESC, r.review_id DESC
		LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	results := []PostedReview{}
	for rows.Next() {
		var r PostedReview
		var datePosted string
		if err := rows.Scan(&r.ID, &r.Username, &r.Rating, &r.Text, &datePosted); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		r.DatePosted = parseStoredDate(datePosted)
		results = append(results, r)
	}
	return results, rows.Err()
}

// Count returns the total number of reviews.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM review").Scan(&n); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

// ListByUser retrieves a user's own reviews, newest first.
// PRE: userID is positive
// POST: Returns matching rows, possibly empty
func (s *SQLiteStore) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	query := `SELECT review_id, user_id, rating, text, date_posted
		FROM review WHERE user_id = ?
		ORDER BY date_posted DESC, review_id DESC`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	results := []domain.Review{}
	for rows.Next() {
		var entity domain.Review
		var datePosted string
		if err := rows.Scan(&entity.ID, &entity.UserID, &entity.Rating, &entity.Text, &datePosted); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		entity.DatePosted = parseStoredDate(datePosted)
		results = append(results, entity)
	}
	return results, rows.Err()
}

func parseStoredDate(value string) time.Time {
	t, err := time.Parse(storage.DateFormat, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
