package stats

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new StatsStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// AverageTicketPrice averages ticket prices over all performances of a play.
// PRE: playID is positive
// POST: ok is false iff no ticket exists for the play
func (s *SQLiteStore) AverageTicketPrice(ctx context.Context, playID int64) (float64, bool, error) {
	query := `SELECT AVG(t.price)
		FROM ticket t
		JOIN performance p ON t.performance_id = p.performance_id
		WHERE p.play_id = ?`
	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx, query, playID).Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("average ticket price: %w", err)
	}
	return avg.Float64, avg.Valid, nil
}

// OccupancyRate computes sold/(sold+available) for a performance as a
// percentage. Seats claimed by purchases are counted back in via the
// ticket table, so the rate is stable even though available_seats is
// decremented on every sale.
// PRE: performanceID is positive
// POST: ok is false iff the performance is missing or has zero capacity
func (s *SQLiteStore) OccupancyRate(ctx context.Context, performanceID int64) (float64, bool, error) {
	query := `SELECT p.available_seats,
		(SELECT COUNT(*) FROM ticket t WHERE t.performance_id = p.performance_id)
		FROM performance p
		WHERE p.performance_id = ?`
	var available, sold int
	err := s.db.QueryRowContext(ctx, query, performanceID).Scan(&available, &sold)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("occupancy rate: %w", err)
	}
	capacity := available + sold
	if capacity == 0 {
		return 0, false, nil
	}
	return float64(sold) / float64(capacity) * 100, true, nil
}

// TotalTicketsSold counts tickets over all performances of a play.
// PRE: playID is positive
// POST: Returns zero for a play with no tickets
func (s *SQLiteStore) TotalTicketsSold(ctx context.Context, playID int64) (int, error) {
	query := `SELECT COUNT(*)
		FROM ticket t
		JOIN performance p ON t.performance_id = p.performance_id
		WHERE p.play_id = ?`
	var n int
	if err := s.db.QueryRowContext(ctx, query, playID).Scan(&n); err != nil {
		return 0, fmt.Errorf("total tickets sold: %w", err)
	}
	return n, nil
}
