package web

import (
	"net/http"

	"boxoffice/internal/adapters/http/middleware"
)

const flashCookieName = "boxoffice_flash"

// Flash levels, matched by template styling.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level string
	Text  string
}

// setFlash queues a flash message in a signed cookie. A tampered or
// unsigned cookie is discarded on read.
// PRE: flashCodec has been initialized by NewMux
// POST: The next popFlashes call on this client returns the message
func setFlash(w http.ResponseWriter, r *http.Request, level, text string) {
	flashes := peekFlashes(r)
	flashes = append(flashes, Flash{Level: level, Text: text})

	encoded, err := flashCodec.Encode(flashCookieName, flashes)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   middleware.SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   300,
	})
}

// peekFlashes decodes queued flashes without clearing them.
func peekFlashes(r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	var flashes []Flash
	if err := flashCodec.Decode(flashCookieName, cookie.Value, &flashes); err != nil {
		return nil
	}
	return flashes
}

// popFlashes reads and clears the queued flash messages. Called once
// per page render.
func popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := peekFlashes(r)
	if flashes == nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   middleware.SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
	return flashes
}
