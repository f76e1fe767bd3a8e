package play

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"boxoffice/internal/adapters/storage"
	domain "boxoffice/internal/domain/play"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new PlayStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const playColumns = "play_id, title, description, genre, duration"

// GetByID retrieves a Play by its ID.
// PRE: id is positive
// POST: Returns the entity or ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Play, error) {
	query := "SELECT " + playColumns + " FROM play WHERE play_id = ?"
	return scanPlay(s.db.QueryRowContext(ctx, query, id).Scan)
}

// ListAll retrieves all Plays ordered by title.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Play, error) {
	query := "SELECT " + playColumns + " FROM play ORDER BY title"
	return s.queryPlays(ctx, query)
}

// Create inserts a new Play and returns its generated ID.
// PRE: entity has been validated
// POST: Row inserted
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Play) (int64, error) {
	query := "INSERT INTO play (title, description, genre, duration) VALUES (?, ?, ?, ?)"
	res, err := s.db.ExecContext(ctx, query, entity.Title, entity.Description, entity.Genre, entity.Duration)
	if err != nil {
		return 0, fmt.Errorf("insert play: %w", err)
	}
	return res.LastInsertId()
}

// Update replaces the stored fields of a Play.
// PRE: entity has been validated and carries an existing ID
// POST: Row updated; ErrNotFound if no row matched
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Play) error {
	query := "UPDATE play SET title = ?, description = ?, genre = ?, duration = ? WHERE play_id = ?"
	res, err := s.db.ExecContext(ctx, query, entity.Title, entity.Description, entity.Genre, entity.Duration, entity.ID)
	if err != nil {
		return fmt.Errorf("update play: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a Play.
// Foreign keys are RESTRICT: a play with scheduled performances is not
// deleted and ErrHasPerformances is returned instead.
// PRE: id is positive
// POST: Row removed, or ErrHasPerformances / ErrNotFound
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM play WHERE play_id = ?", id)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return ErrHasPerformances
		}
		return fmt.Errorf("delete play: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Search filters plays by title keyword and/or genre substring. Both
// filters are optional; each is applied only when non-empty and they
// combine as a logical AND. Callers must not invoke Search with both
// parameters empty — that case is the "no search performed" sentinel
// handled a layer up.
func (s *SQLiteStore) Search(ctx context.Context, keyword, genre string) ([]domain.Play, error) {
	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString("SELECT " + playColumns + " FROM play WHERE 1=1")
	if keyword != "" {
		queryBuilder.WriteString(" AND title LIKE ?")
		args = append(args, "%"+keyword+"%")
	}
	if genre != "" {
		queryBuilder.WriteString(" AND genre LIKE ?")
		args = append(args, "%"+genre+"%")
	}
	queryBuilder.WriteString(" ORDER BY title")

	return s.queryPlays(ctx, queryBuilder.String(), args...)
}

func (s *SQLiteStore) queryPlays(ctx context.Context, query string, args ...any) ([]domain.Play, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query plays: %w", err)
	}
	defer rows.Close()

	results := []domain.Play{}
	for rows.Next() {
		entity, err := scanPlay(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanPlay(scan func(dest ...any) error) (domain.Play, error) {
	var entity domain.Play
	err := scan(&entity.ID, &entity.Title, &entity.Description, &entity.Genre, &entity.Duration)
	if err == sql.ErrNoRows {
		return domain.Play{}, ErrNotFound
	}
	if err != nil {
		return domain.Play{}, fmt.Errorf("scan play: %w", err)
	}
	return entity, nil
}
