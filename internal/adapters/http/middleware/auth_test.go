package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainUser "boxoffice/internal/domain/user"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	ss := NewSessionStore()

	token, err := ss.Create(42, "alice", domainUser.RoleUser)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(token))
	}

	sess, ok := ss.Get(token)
	if !ok {
		t.Fatal("session not found")
	}
	if sess.UserID != 42 || sess.Username != "alice" || sess.Role != domainUser.RoleUser {
		t.Errorf("session = %+v", sess)
	}

	ss.Delete(token)
	if _, ok := ss.Get(token); ok {
		t.Error("session survived delete")
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	ss := NewSessionStore()
	if _, ok := ss.Get("deadbeef"); ok {
		t.Error("unknown token resolved to a session")
	}
}

func TestAuth_BindsSessionToContext(t *testing.T) {
	ss := NewSessionStore()
	token, err := ss.Create(42, "alice", domainUser.RoleAdmin)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var got Session
	var ok bool
	handler := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetSessionFromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if !ok {
		t.Fatal("no session in context")
	}
	if got.UserID != 42 || got.Role != domainUser.RoleAdmin {
		t.Errorf("session = %+v", got)
	}
	if !IsAdmin(ContextWithSession(r.Context(), got)) {
		t.Error("IsAdmin = false for admin session")
	}
}

func TestAuth_NoCookiePassesThrough(t *testing.T) {
	ss := NewSessionStore()

	called := false
	handler := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := GetSessionFromContext(r.Context()); ok {
			t.Error("unexpected session in context")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if !called {
		t.Fatal("handler not reached")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Second)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d rejected within limit", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request allowed beyond limit")
	}
	// A different client is unaffected
	if !rl.Allow("10.0.0.2") {
		t.Error("other client rejected")
	}
}
