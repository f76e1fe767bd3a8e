package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/securecookie"

	"boxoffice/internal/adapters/email"
	"boxoffice/internal/adapters/http/middleware"
	performanceStore "boxoffice/internal/adapters/storage/performance"
	playStore "boxoffice/internal/adapters/storage/play"
	reviewStore "boxoffice/internal/adapters/storage/review"
	statsStore "boxoffice/internal/adapters/storage/stats"
	ticketStore "boxoffice/internal/adapters/storage/ticket"
	userStore "boxoffice/internal/adapters/storage/user"
)

// Stores holds all storage dependencies.
type Stores struct {
	UserStore        userStore.Store
	PlayStore        playStore.Store
	PerformanceStore performanceStore.Store
	TicketStore      ticketStore.Store
	ReviewStore      reviewStore.Store
	StatsStore       statsStore.Store
}

// loadCSRFKey reads the CSRF secret from BOXOFFICE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("BOXOFFICE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("BOXOFFICE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("BOXOFFICE_ENV") == "production" {
		log.Fatal("BOXOFFICE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set BOXOFFICE_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global flash cookie codec (set by NewMux)
var flashCodec *securecookie.SecureCookie

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from string) {
	emailSender = sender
	emailFromAddress = from
}

// NewMux wires HTTP handlers for the app.
func NewMux(s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("BOXOFFICE_ENV") == "production"

	// CSRF key: 32-byte hex-encoded secret from env var. The flash
	// cookie codec signs with the same key.
	csrfKey := loadCSRFKey()
	flashCodec = securecookie.New(csrfKey, nil)

	mux := http.NewServeMux()
	registerRoutes(mux)

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: SecurityHeaders -> CSRF -> Auth -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}

const staticDir = "internal/adapters/http/static"

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleIndex)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Auth
	mux.HandleFunc("/register", handleRegister)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	// Plays
	mux.HandleFunc("/plays", handlePlays)
	mux.HandleFunc("/play/add", handlePlayAdd)
	mux.HandleFunc("/play/{id}", handlePlayDetail)
	mux.HandleFunc("/play/{id}/edit", handlePlayEdit)
	mux.HandleFunc("/play/{id}/delete", handlePlayDelete)
	mux.HandleFunc("/search", handleSearch)

	// Performances
	mux.HandleFunc("/performances", handlePerformances)
	mux.HandleFunc("/performance/add", handlePerformanceAdd)
	mux.HandleFunc("/performance/{id}", handlePerformanceDetail)
	mux.HandleFunc("/performance/{id}/edit", handlePerformanceEdit)
	mux.HandleFunc("/performance/{id}/delete", handlePerformanceDelete)
	mux.HandleFunc("/play/{id}/performances", handlePlayPerformances)

	// Tickets
	mux.HandleFunc("/performance/{id}/buy", handleBuyTicket)
	mux.HandleFunc("/profile", handleProfile)

	// Reviews
	mux.HandleFunc("/reviews/add", handleReviewAdd)
	mux.HandleFunc("/reviews_all", handleReviewsAll)

	// Statistics
	mux.HandleFunc("/admin/statistics", handleStatistics)
}
