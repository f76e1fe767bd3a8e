package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"boxoffice/internal/adapters/storage"
	domain "boxoffice/internal/domain/user"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new UserStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Create inserts a new User and returns its generated ID.
// PRE: entity has been validated and the password hash is set
// POST: Row inserted; ErrUsernameTaken if the username is in use
func (s *SQLiteStore) Create(ctx context.Context, entity domain.User) (int64, error) {
	query := "INSERT INTO user (username, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?)"
	res, err := s.db.ExecContext(ctx, query,
		entity.Username,
		entity.Email,
		entity.PasswordHash,
		entity.Role,
		entity.CreatedAt.Format(storage.TimeFormat),
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

// GetByID retrieves a User by its ID.
// PRE: id is positive
// POST: Returns the entity or ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.User, error) {
	query := "SELECT user_id, username, email, password_hash, role, created_at FROM user WHERE user_id = ?"
	return scanUser(s.db.QueryRowContext(ctx, query, id).Scan)
}

// GetByUsername retrieves a User by username.
// PRE: username is non-empty
// POST: Returns the entity or ErrNotFound
func (s *SQLiteStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	query := "SELECT user_id, username, email, password_hash, role, created_at FROM user WHERE username = ?"
	return scanUser(s.db.QueryRowContext(ctx, query, username).Scan)
}

// Count returns the total number of users.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM user").Scan(&n)
	return n, err
}

func scanUser(scan func(dest ...any) error) (domain.User, error) {
	var entity domain.User
	var createdAt string
	err := scan(&entity.ID, &entity.Username, &entity.Email, &entity.PasswordHash, &entity.Role, &createdAt)
	if err == sql.ErrNoRows {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("scan user: %w", err)
	}
	if t, perr := time.Parse(storage.TimeFormat, createdAt); perr == nil {
		entity.CreatedAt = t
	}
	return entity, nil
}
