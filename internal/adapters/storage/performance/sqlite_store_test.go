package performance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"boxoffice/internal/adapters/storage"
	performanceStore "boxoffice/internal/adapters/storage/performance"
	domain "boxoffice/internal/domain/performance"
)

func newStore(t *testing.T) (*performanceStore.SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return performanceStore.NewSQLiteStore(db), db
}

func seedPlay(t *testing.T, db *sql.DB, title string) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO play (title, description, genre, duration) VALUES (?, 'About things.', 'Drama', 120)",
		title,
	)
	if err != nil {
		t.Fatalf("seed play failed: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

func seedTicket(t *testing.T, db *sql.DB, performanceID int64) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO user (username, email, password_hash, role, created_at) VALUES ('alice', 'a@x.com', 'h', 'user', '2026-01-01T00:00:00Z')",
	)
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	_, err = db.Exec(
		"INSERT INTO ticket (performance_id, user_id, reference, price, purchase_date) VALUES (?, 1, 'REF-1', 35.0, '2026-08-01')",
		performanceID,
	)
	if err != nil {
		t.Fatalf("seed ticket failed: %v", err)
	}
}

// TestCreateAndGetByID verifies the play title join and the stored
// timestamp round trip.
func TestCreateAndGetByID(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	playID := seedPlay(t, db, "Hamlet")
	when := time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC)

	id, err := store.Create(ctx, domain.Performance{
		PlayID:         playID,
		DateTime:       when,
		Venue:          "Main Stage",
		AvailableSeats: 80,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.PlayTitle != "Hamlet" {
		t.Errorf("PlayTitle = %q, want Hamlet", got.PlayTitle)
	}
	if !got.DateTime.Equal(when) {
		t.Errorf("DateTime = %v, want %v", got.DateTime, when)
	}
	if got.Venue != "Main Stage" || got.AvailableSeats != 80 {
		t.Errorf("detail fields wrong: %+v", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	store, _ := newStore(t)
	if _, err := store.GetByID(context.Background(), 999); err != performanceStore.ErrNotFound {
		t.Errorf("GetByID error = %v, want ErrNotFound", err)
	}
}

// TestCreateUnknownPlay verifies the foreign key is enforced.
func TestCreateUnknownPlay(t *testing.T) {
	store, _ := newStore(t)
	_, err := store.Create(context.Background(), domain.Performance{
		PlayID:         42,
		DateTime:       time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC),
		Venue:          "Main Stage",
		AvailableSeats: 80,
	})
	if err != performanceStore.ErrPlayMissing {
		t.Errorf("Create error = %v, want ErrPlayMissing", err)
	}
}

// TestListByPlay verifies ordering by date and per-play filtering.
func TestListByPlay(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	hamlet := seedPlay(t, db, "Hamlet")
	othello := seedPlay(t, db, "Othello")

	later := time.Date(2026, 9, 20, 19, 30, 0, 0, time.UTC)
	earlier := time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC)

	if _, err := store.Create(ctx, domain.Performance{PlayID: hamlet, DateTime: later, Venue: "Main Stage", AvailableSeats: 80}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, domain.Performance{PlayID: hamlet, DateTime: earlier, Venue: "Studio", AvailableSeats: 40}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, domain.Performance{PlayID: othello, DateTime: earlier, Venue: "Main Stage", AvailableSeats: 80}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.ListByPlay(ctx, hamlet)
	if err != nil {
		t.Fatalf("ListByPlay failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByPlay returned %d rows, want 2", len(got))
	}
	if !got[0].DateTime.Equal(earlier) || !got[1].DateTime.Equal(later) {
		t.Errorf("ListByPlay not ordered by date: %+v", got)
	}
}

// TestListAll verifies the joined listing across plays.
func TestListAll(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	hamlet := seedPlay(t, db, "Hamlet")
	othello := seedPlay(t, db, "Othello")

	if _, err := store.Create(ctx, domain.Performance{PlayID: othello, DateTime: time.Date(2026, 9, 20, 19, 30, 0, 0, time.UTC), Venue: "Main Stage", AvailableSeats: 80}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, domain.Performance{PlayID: hamlet, DateTime: time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC), Venue: "Studio", AvailableSeats: 40}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListAll returned %d rows, want 2", len(all))
	}
	if all[0].PlayTitle != "Hamlet" || all[1].PlayTitle != "Othello" {
		t.Errorf("ListAll order/join wrong: %+v", all)
	}
}

func TestUpdate(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	playID := seedPlay(t, db, "Hamlet")
	id, err := store.Create(ctx, domain.Performance{
		PlayID:         playID,
		DateTime:       time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC),
		Venue:          "Main Stage",
		AvailableSeats: 80,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	moved := time.Date(2026, 9, 13, 20, 0, 0, 0, time.UTC)
	err = store.Update(ctx, domain.Performance{
		ID:             id,
		PlayID:         playID,
		DateTime:       moved,
		Venue:          "Studio",
		AvailableSeats: 40,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.DateTime.Equal(moved) || got.Venue != "Studio" || got.AvailableSeats != 40 {
		t.Errorf("Update not applied: %+v", got)
	}

	err = store.Update(ctx, domain.Performance{ID: 999, PlayID: playID, DateTime: moved, Venue: "Studio", AvailableSeats: 40})
	if err != performanceStore.ErrNotFound {
		t.Errorf("Update of missing row error = %v, want ErrNotFound", err)
	}
}

// TestDelete verifies deletion and that sold tickets block it.
func TestDelete(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	playID := seedPlay(t, db, "Hamlet")
	id, err := store.Create(ctx, domain.Performance{
		PlayID:         playID,
		DateTime:       time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC),
		Venue:          "Main Stage",
		AvailableSeats: 80,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	seedTicket(t, db, id)
	if err := store.Delete(ctx, id); err != performanceStore.ErrHasTickets {
		t.Fatalf("Delete with tickets error = %v, want ErrHasTickets", err)
	}

	if _, err := db.Exec("DELETE FROM ticket"); err != nil {
		t.Fatalf("clear tickets failed: %v", err)
	}
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, id); err != performanceStore.ErrNotFound {
		t.Errorf("GetByID after delete error = %v, want ErrNotFound", err)
	}

	if err := store.Delete(ctx, 999); err != performanceStore.ErrNotFound {
		t.Errorf("Delete of missing row error = %v, want ErrNotFound", err)
	}
}
