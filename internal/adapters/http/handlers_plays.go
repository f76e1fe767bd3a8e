package web

import (
	"errors"
	"net/http"

	playStore "boxoffice/internal/adapters/storage/play"
	"boxoffice/internal/application/orchestrators"
	"boxoffice/internal/application/projections"
)

// handlePlays lists the repertoire.
func handlePlays(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	plays, err := stores.PlayStore.ListAll(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "plays.html", map[string]any{"Plays": plays})
}

// handlePlayDetail shows one play. An unknown id bounces back to the
// list with a flash instead of a bare 404 page.
func handlePlayDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	p, err := stores.PlayStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, playStore.ErrNotFound) {
			setFlash(w, r, FlashWarning, "That play is not in the repertoire.")
			http.Redirect(w, r, "/plays", http.StatusSeeOther)
			return
		}
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "play_detail.html", map[string]any{"Play": p})
}

// handlePlayAdd handles GET (form) and POST (create) for /play/add. Admin only.
func handlePlayAdd(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	if r.Method == "GET" {
		renderTemplate(w, r, "play_form.html", map[string]any{
			"Form":   PlayForm{},
			"Errors": fieldErrors{},
		})
		return
	}

	if r.Method == "POST" {
		form, errs := parsePlayForm(r)
		if len(errs) > 0 {
			renderTemplate(w, r, "play_form.html", map[string]any{"Form": form, "Errors": errs})
			return
		}

		id, err := orchestrators.ExecuteCreatePlay(r.Context(), orchestrators.PlayInput{
			Title:       form.Title,
			Description: form.Description,
			Genre:       form.Genre,
			Duration:    form.Duration,
		}, orchestrators.SavePlayDeps{PlayStore: stores.PlayStore})
		if err != nil {
			internalError(w, err)
			return
		}

		setFlash(w, r, FlashSuccess, "Play added to the repertoire.")
		http.Redirect(w, r, "/play/"+formatID(id), http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePlayEdit handles GET (prefilled form) and POST (update) for
// /play/{id}/edit. Admin only.
func handlePlayEdit(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.Method == "GET" {
		p, err := stores.PlayStore.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, playStore.ErrNotFound) {
				setFlash(w, r, FlashWarning, "That play is not in the repertoire.")
				http.Redirect(w, r, "/plays", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "play_form.html", map[string]any{
			"Form":   PlayForm{Title: p.Title, Description: p.Description, Genre: p.Genre, Duration: p.Duration},
			"Errors": fieldErrors{},
			"PlayID": id,
		})
		return
	}

	if r.Method == "POST" {
		form, errs := parsePlayForm(r)
		if len(errs) > 0 {
			renderTemplate(w, r, "play_form.html", map[string]any{"Form": form, "Errors": errs, "PlayID": id})
			return
		}

		err := orchestrators.ExecuteUpdatePlay(r.Context(), id, orchestrators.PlayInput{
			Title:       form.Title,
			Description: form.Description,
			Genre:       form.Genre,
			Duration:    form.Duration,
		}, orchestrators.SavePlayDeps{PlayStore: stores.PlayStore})
		if err != nil {
			if errors.Is(err, playStore.ErrNotFound) {
				setFlash(w, r, FlashWarning, "That play is not in the repertoire.")
				http.Redirect(w, r, "/plays", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}

		setFlash(w, r, FlashSuccess, "Play updated.")
		http.Redirect(w, r, "/play/"+formatID(id), http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePlayDelete handles POST /play/{id}/delete. Admin only. A play
// with scheduled performances is kept.
func handlePlayDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	err = orchestrators.ExecuteDeletePlay(r.Context(), id, orchestrators.SavePlayDeps{PlayStore: stores.PlayStore})
	if err != nil {
		switch {
		case errors.Is(err, playStore.ErrHasPerformances):
			setFlash(w, r, FlashDanger, "Cancel its performances before removing this play.")
			http.Redirect(w, r, "/play/"+formatID(id), http.StatusSeeOther)
		case errors.Is(err, playStore.ErrNotFound):
			setFlash(w, r, FlashWarning, "That play is not in the repertoire.")
			http.Redirect(w, r, "/plays", http.StatusSeeOther)
		default:
			internalError(w, err)
		}
		return
	}

	setFlash(w, r, FlashSuccess, "Play removed from the repertoire.")
	http.Redirect(w, r, "/plays", http.StatusSeeOther)
}

// handleSearch filters plays by keyword and genre. Without any filter
// the page shows its initial state rather than an empty result.
func handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := projections.SearchPlaysQuery{
		Keyword: r.URL.Query().Get("keyword"),
		Genre:   r.URL.Query().Get("genre"),
	}
	result, err := projections.QuerySearchPlays(r.Context(), query, projections.SearchPlaysDeps{PlayStore: stores.PlayStore})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "search.html", map[string]any{
		"Keyword":   query.Keyword,
		"Genre":     query.Genre,
		"Performed": result.Performed,
		"Plays":     result.Plays,
	})
}
