package storage

import (
	"database/sql"
	"fmt"
)

// TimeFormat is how timestamps are stored in the database.
const TimeFormat = "2006-01-02T15:04:05Z07:00"

// DateFormat is how date-only values (ticket purchase dates, review
// posting dates) are stored.
const DateFormat = "2006-01-02"

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled, foreign keys enforced
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement. Deleting a play with scheduled
	// performances (or a performance with sold tickets) is rejected by
	// the store rather than cascading.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS user (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS play (
		play_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		genre TEXT NOT NULL,
		duration INTEGER NOT NULL CHECK (duration > 0)
	);

	CREATE TABLE IF NOT EXISTS performance (
		performance_id INTEGER PRIMARY KEY AUTOINCREMENT,
		play_id INTEGER NOT NULL,
		date_time TEXT NOT NULL,
		venue TEXT NOT NULL,
		available_seats INTEGER NOT NULL CHECK (available_seats >= 0),
		FOREIGN KEY (play_id) REFERENCES play(play_id)
	);

	CREATE TABLE IF NOT EXISTS ticket (
		ticket_id INTEGER PRIMARY KEY AUTOINCREMENT,
		performance_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		reference TEXT NOT NULL UNIQUE,
		price REAL NOT NULL CHECK (price >= 0),
		purchase_date TEXT NOT NULL,
		FOREIGN KEY (performance_id) REFERENCES performance(performance_id),
		FOREIGN KEY (user_id) REFERENCES user(user_id)
	);

	CREATE TABLE IF NOT EXISTS review (
		review_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 10),
		text TEXT NOT NULL,
		date_posted TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES user(user_id)
	);

	CREATE INDEX IF NOT EXISTS idx_performance_play ON performance(play_id, date_time);
	CREATE INDEX IF NOT EXISTS idx_ticket_performance ON ticket(performance_id);
	CREATE INDEX IF NOT EXISTS idx_ticket_user ON ticket(user_id);
	CREATE INDEX IF NOT EXISTS idx_review_user ON review(user_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
