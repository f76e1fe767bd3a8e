package performance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"boxoffice/internal/adapters/storage"
	domain "boxoffice/internal/domain/performance"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new PerformanceStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Performance joined to its play title.
// PRE: id is positive
// POST: Returns the detail row or ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (Detail, error) {
	query := `SELECT p.performance_id, p.play_id, pl.title, p.date_time, p.venue, p.available_seats
		FROM performance p
		JOIN play pl ON p.play_id = pl.play_id
		WHERE p.performance_id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	var d Detail
	var dateTime string
	err := row.Scan(&d.ID, &d.PlayID, &d.PlayTitle, &dateTime, &d.Venue, &d.AvailableSeats)
	if err == sql.ErrNoRows {
		return Detail{}, ErrNotFound
	}
	if err != nil {
		return Detail{}, fmt.Errorf("scan performance detail: %w", err)
	}
	d.DateTime = parseStoredTime(dateTime)
	return d, nil
}

// ListByPlay retrieves all performances of a play ordered by date_time
// ascending.
// PRE: playID is positive
// POST: Returns matching rows, possibly empty
func (s *SQLiteStore) ListByPlay(ctx context.Context, playID int64) ([]domain.Performance, error) {
	query := `SELECT performance_id, play_id, date_time, venue, available_seats
		FROM performance WHERE play_id = ? ORDER BY date_time`
	rows, err := s.db.QueryContext(ctx, query, playID)
	if err != nil {
		return nil, fmt.Errorf("query performances: %w", err)
	}
	defer rows.Close()

	results := []domain.Performance{}
	for rows.Next() {
		var entity domain.Performance
		var dateTime string
		if err := rows.Scan(&entity.ID, &entity.PlayID, &dateTime, &entity.Venue, &entity.AvailableSeats); err != nil {
			return nil, fmt.Errorf("scan performance: %w", err)
		}
		entity.DateTime = parseStoredTime(dateTime)
		results = append(results, entity)
	}
	return results, rows.Err()
}

// ListAll retrieves every performance joined to its play title, ordered
// by date_time ascending. Used by the admin statistics page selectors.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]Detail, error) {
	query := `SELECT p.performance_id, p.play_id, pl.title, p.date_time, p.venue, p.available_seats
		FROM performance p
		JOIN play pl ON p.play_id = pl.play_id
		ORDER BY p.date_time`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query performances: %w", err)
	}
	defer rows.Close()

	results := []Detail{}
	for rows.Next() {
		var d Detail
		var dateTime string
		if err := rows.Scan(&d.ID, &d.PlayID, &d.PlayTitle, &dateTime, &d.Venue, &d.AvailableSeats); err != nil {
			return nil, fmt.Errorf("scan performance detail: %w", err)
		}
		d.DateTime = parseStoredTime(dateTime)
		results = append(results, d)
	}
	return results, rows.Err()
}

// Create inserts a new Performance and returns its generated ID.
// PRE: entity has been validated
// POST: Row inserted; ErrPlayMissing if the play FK does not resolve
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Performance) (int64, error) {
	query := "INSERT INTO performance (play_id, date_time, venue, available_seats) VALUES (?, ?, ?, ?)"
	res, err := s.db.ExecContext(ctx, query,
		entity.PlayID,
		entity.DateTime.Format(storage.TimeFormat),
		entity.Venue,
		entity.AvailableSeats,
	)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return 0, ErrPlayMissing
		}
		return 0, fmt.Errorf("insert performance: %w", err)
	}
	return res.LastInsertId()
}

// Update replaces the stored fields of a Performance.
// PRE: entity has been validated and carries an existing ID
// POST: Row updated; ErrNotFound / ErrPlayMissing on failure
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Performance) error {
	query := `UPDATE performance SET play_id = ?, date_time = ?, venue = ?, available_seats = ?
		WHERE performance_id = ?`
	res, err := s.db.ExecContext(ctx, query,
		entity.PlayID,
		entity.DateTime.Format(storage.TimeFormat),
		entity.Venue,
		entity.AvailableSeats,
		entity.ID,
	)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return ErrPlayMissing
		}
		return fmt.Errorf("update performance: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a Performance.
// Foreign keys are RESTRICT: a performance with sold tickets is kept
// and ErrHasTickets is returned.
// PRE: id is positive
// POST: Row removed, or ErrHasTickets / ErrNotFound
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM performance WHERE performance_id = ?", id)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return ErrHasTickets
		}
		return fmt.Errorf("delete performance: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func parseStoredTime(value string) time.Time {
	t, err := time.Parse(storage.TimeFormat, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
