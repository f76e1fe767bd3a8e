package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"boxoffice/internal/adapters/http/middleware"
	"boxoffice/internal/adapters/storage"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

const templatesDir = "internal/adapters/http/templates"

// formatID renders an entity ID for use in a redirect path.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// pathID parses the {id} path segment as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())
	flashes := popFlashes(w, r)

	funcMap := template.FuncMap{
		"currentUsername": func() string { return sess.Username },
		"currentRole":     func() string { return sess.Role },
		"isLoggedIn":      func() bool { return loggedIn },
		"isAdmin":         func() bool { return loggedIn && middleware.IsAdmin(r.Context()) },
		"csrfToken":       func() string { return csrf.Token(r) },
		"flashes":         func() []Flash { return flashes },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"formatDateTime": func(t time.Time) string { return t.Format("2 January 2006 15:04") },
		"formatDate":     func(t time.Time) string { return t.Format(storage.DateFormat) },
		"formatPrice":    func(p float64) string { return fmt.Sprintf("%.2f", p) },
		"formInput":      func(t time.Time) string { return t.Format("2006-01-02T15:04") },
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// requireLogin resolves the session or redirects to /login with a
// warning flash. Returns false if the request should not proceed.
func requireLogin(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		slog.Warn("auth_denied", "path", r.URL.Path, "reason", "no session")
		setFlash(w, r, FlashWarning, "Please log in to continue.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return middleware.Session{}, false
	}
	return sess, true
}

// requireAdmin resolves the session and checks the admin role. The
// same policy guards every repertoire mutation and the statistics page.
// Returns false if the request should not proceed.
func requireAdmin(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := requireLogin(w, r)
	if !ok {
		return middleware.Session{}, false
	}
	if !middleware.IsAdmin(r.Context()) {
		slog.Warn("auth_denied", "path", r.URL.Path, "user_id", sess.UserID, "role", sess.Role, "required", "admin")
		setFlash(w, r, FlashDanger, "That page is for administrators only.")
		http.Redirect(w, r, "/plays", http.StatusSeeOther)
		return middleware.Session{}, false
	}
	return sess, true
}

// handleIndex renders the landing page. The root pattern also catches
// unknown paths, which get a plain 404.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	renderTemplate(w, r, "index.html", nil)
}
