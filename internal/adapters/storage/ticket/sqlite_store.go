package ticket

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"boxoffice/internal/adapters/storage"
	domain "boxoffice/internal/domain/ticket"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new TicketStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Purchase decrements the performance's seat count and inserts the
// ticket in one transaction. The decrement is conditional on a seat
// still being available, which closes the oversell race between
// concurrent purchases.
// PRE: entity has been validated and carries a reference code
// POST: Exactly one ticket row exists per successful call; seat count
// reduced by one; ErrSoldOut / ErrPerformanceMissing otherwise
func (s *SQLiteStore) Purchase(ctx context.Context, entity domain.Ticket) (domain.Ticket, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("begin purchase: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE performance SET available_seats = available_seats - 1 WHERE performance_id = ? AND available_seats > 0",
		entity.PerformanceID,
	)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("claim seat: %w", err)
	}
	claimed, err := res.RowsAffected()
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("claim seat: %w", err)
	}
	if claimed == 0 {
		// Either the performance does not exist or it has no seats left.
		var exists int
		err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM performance WHERE performance_id = ?", entity.PerformanceID,
		).Scan(&exists)
		if err != nil {
			return domain.Ticket{}, fmt.Errorf("check performance: %w", err)
		}
		if exists == 0 {
			return domain.Ticket{}, ErrPerformanceMissing
		}
		return domain.Ticket{}, ErrSoldOut
	}

	res, err = tx.ExecContext(ctx,
		"INSERT INTO ticket (performance_id, user_id, reference, price, purchase_date) VALUES (?, ?, ?, ?, ?)",
		entity.PerformanceID,
		entity.UserID,
		entity.Reference,
		entity.Price,
		entity.PurchaseDate.Format(storage.DateFormat),
	)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return domain.Ticket{}, ErrPerformanceMissing
		}
		return domain.Ticket{}, fmt.Errorf("insert ticket: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("insert ticket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Ticket{}, fmt.Errorf("commit purchase: %w", err)
	}

	entity.ID = id
	return entity, nil
}

// ListByUser retrieves a user's tickets joined to performance and play,
// newest purchase first.
// PRE: userID is positive
// POST: Returns matching rows, possibly empty
func (s *SQLiteStore) ListByUser(ctx context.Context, userID int64) ([]UserTicket, error) {
	query := `SELECT t.ticket_id, t.reference, pl.title, p.date_time, p.venue, t.price, t.purchase_date
		FROM ticket t
		JOIN performance p ON t.performance_id = p.performance_id
		JOIN play pl ON p.play_id = pl.play_id
		WHERE t.user_id = ?
		ORDER BY t.ticket_id DESC`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}
	defer rows.Close()

	results := []UserTicket{}
	for rows.Next() {
		var t UserTicket
		var dateTime, purchaseDate string
		if err := rows.Scan(&t.ID, &t.Reference, &t.PlayTitle, &dateTime, &t.Venue, &t.Price, &purchaseDate); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		if parsed, perr := time.Parse(storage.TimeFormat, dateTime); perr == nil {
			t.DateTime = parsed
		}
		if parsed, perr := time.Parse(storage.DateFormat, purchaseDate); perr == nil {
			t.PurchaseDate = parsed
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// CountByPerformance returns the number of tickets sold for a performance.
func (s *SQLiteStore) CountByPerformance(ctx context.Context, performanceID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM ticket WHERE performance_id = ?", performanceID,
	).Scan(&n)
	return n, err
}
