package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/securecookie"
)

func setupFlashCodec(t *testing.T) {
	t.Helper()
	flashCodec = securecookie.New([]byte("0123456789abcdef0123456789abcdef"), nil)
}

func carryCookies(t *testing.T, rec *httptest.ResponseRecorder, r *http.Request) {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
}

func TestFlash_RoundTrip(t *testing.T) {
	setupFlashCodec(t)

	rec := httptest.NewRecorder()
	setFlash(rec, httptest.NewRequest("GET", "/", nil), FlashSuccess, "saved")

	next := httptest.NewRequest("GET", "/", nil)
	carryCookies(t, rec, next)

	rec2 := httptest.NewRecorder()
	flashes := popFlashes(rec2, next)
	if len(flashes) != 1 || flashes[0].Level != FlashSuccess || flashes[0].Text != "saved" {
		t.Fatalf("flashes = %+v", flashes)
	}

	// popFlashes must expire the cookie
	cleared := false
	for _, c := range rec2.Result().Cookies() {
		if c.Name == flashCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie not cleared after pop")
	}
}

func TestFlash_Accumulates(t *testing.T) {
	setupFlashCodec(t)

	rec := httptest.NewRecorder()
	first := httptest.NewRequest("GET", "/", nil)
	setFlash(rec, first, FlashWarning, "one")

	second := httptest.NewRequest("GET", "/", nil)
	carryCookies(t, rec, second)
	rec2 := httptest.NewRecorder()
	setFlash(rec2, second, FlashDanger, "two")

	third := httptest.NewRequest("GET", "/", nil)
	carryCookies(t, rec2, third)
	flashes := popFlashes(httptest.NewRecorder(), third)
	if len(flashes) != 2 || flashes[0].Text != "one" || flashes[1].Text != "two" {
		t.Fatalf("flashes = %+v", flashes)
	}
}

func TestFlash_TamperedCookieIgnored(t *testing.T) {
	setupFlashCodec(t)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: flashCookieName, Value: "forged"})
	if flashes := popFlashes(httptest.NewRecorder(), r); flashes != nil {
		t.Fatalf("tampered cookie yielded flashes: %+v", flashes)
	}
}
