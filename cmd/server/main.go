package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "boxoffice/internal/adapters/email"
	web "boxoffice/internal/adapters/http"
	"boxoffice/internal/adapters/storage"
	performanceStore "boxoffice/internal/adapters/storage/performance"
	playStore "boxoffice/internal/adapters/storage/play"
	reviewStore "boxoffice/internal/adapters/storage/review"
	statsStore "boxoffice/internal/adapters/storage/stats"
	ticketStore "boxoffice/internal/adapters/storage/ticket"
	userStore "boxoffice/internal/adapters/storage/user"
	"boxoffice/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("BOXOFFICE_DB", "boxoffice.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}
	log.Println("Database initialized successfully!")

	users := userStore.NewSQLiteStore(db)
	stores := &web.Stores{
		UserStore:        users,
		PlayStore:        playStore.NewSQLiteStore(db),
		PerformanceStore: performanceStore.NewSQLiteStore(db),
		TicketStore:      ticketStore.NewSQLiteStore(db),
		ReviewStore:      reviewStore.NewSQLiteStore(db),
		StatsStore:       statsStore.NewSQLiteStore(db),
	}

	// Seed the admin account if it does not exist yet
	adminEmail := envOrDefault("BOXOFFICE_ADMIN_EMAIL", "boxoffice@theatre.example")
	adminPassword := envOrDefault("BOXOFFICE_ADMIN_PASSWORD", "stagedoor")
	seedDeps := orchestrators.SeedAdminDeps{UserStore: users}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("BOXOFFICE_RESEND_KEY")
	emailFrom := envOrDefault("BOXOFFICE_EMAIL_FROM", "Box Office <tickets@theatre.example>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom)
		if os.Getenv("BOXOFFICE_ENV") == "production" {
			log.Println("WARNING: BOXOFFICE_RESEND_KEY is not set — ticket emails are DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set BOXOFFICE_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux(stores)

	addr := envOrDefault("BOXOFFICE_ADDR", ":8080")
	log.Printf("Box office %s starting on %s (env=%s)", version, addr, envOrDefault("BOXOFFICE_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
