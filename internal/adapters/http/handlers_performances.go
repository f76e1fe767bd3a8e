package web

import (
	"errors"
	"net/http"

	performanceStore "boxoffice/internal/adapters/storage/performance"
	playStore "boxoffice/internal/adapters/storage/play"
	"boxoffice/internal/application/orchestrators"
)

// handlePerformances lists every scheduled performance joined to its
// play title. Feeds the statistics page's selection dropdown too.
func handlePerformances(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	performances, err := stores.PerformanceStore.ListAll(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "performances.html", map[string]any{"Performances": performances})
}

// handlePlayPerformances lists one play's performances, soonest first.
func handlePlayPerformances(w http.ResponseWriter, r *http.Request) {
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

	performances, err := stores.PerformanceStore.ListByPlay(r.Context(), id)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "play_performances.html", map[string]any{
		"Play":         p,
		"Performances": performances,
	})
}

// performanceDetailData assembles the detail page payload: the joined
// row plus how many tickets have been sold so far.
func performanceDetailData(w http.ResponseWriter, r *http.Request, id int64) (map[string]any, bool) {
	detail, err := stores.PerformanceStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, performanceStore.ErrNotFound) {
			setFlash(w, r, FlashWarning, "That performance is not on the schedule.")
			http.Redirect(w, r, "/performances", http.StatusSeeOther)
			return nil, false
		}
		internalError(w, err)
		return nil, false
	}
	sold, err := stores.TicketStore.CountByPerformance(r.Context(), id)
	if err != nil {
		internalError(w, err)
		return nil, false
	}
	return map[string]any{
		"Performance": detail,
		"TicketsSold": sold,
	}, true
}

// handlePerformanceDetail shows one performance with its play title.
func handlePerformanceDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data, ok := performanceDetailData(w, r, id)
	if !ok {
		return
	}
	renderTemplate(w, r, "performance_detail.html", data)
}

// performanceFormPlays loads the plays for the form's selection list.
func performanceFormPlays(w http.ResponseWriter, r *http.Request) (any, bool) {
	plays, err := stores.PlayStore.ListAll(r.Context())
	if err != nil {
		internalError(w, err)
		return nil, false
	}
	return plays, true
}

// handlePerformanceAdd handles GET (form) and POST (create) for
// /performance/add. Admin only.
func handlePerformanceAdd(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	if r.Method == "GET" {
		plays, ok := performanceFormPlays(w, r)
		if !ok {
			return
		}
		renderTemplate(w, r, "performance_form.html", map[string]any{
			"Form":   PerformanceForm{},
			"Errors": fieldErrors{},
			"Plays":  plays,
		})
		return
	}

	if r.Method == "POST" {
		form, errs := parsePerformanceForm(r)
		if len(errs) > 0 {
			plays, ok := performanceFormPlays(w, r)
			if !ok {
				return
			}
			renderTemplate(w, r, "performance_form.html", map[string]any{"Form": form, "Errors": errs, "Plays": plays})
			return
		}

		id, err := orchestrators.ExecuteCreatePerformance(r.Context(), orchestrators.PerformanceInput{
			PlayID:         form.PlayID,
			DateTime:       form.DateTime,
			Venue:          form.Venue,
			AvailableSeats: form.AvailableSeats,
		}, orchestrators.SavePerformanceDeps{PerformanceStore: stores.PerformanceStore})
		if err != nil {
			if errors.Is(err, performanceStore.ErrPlayMissing) {
				setFlash(w, r, FlashDanger, "The selected play no longer exists.")
				http.Redirect(w, r, "/performance/add", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}

		setFlash(w, r, FlashSuccess, "Performance scheduled.")
		http.Redirect(w, r, "/performance/"+formatID(id), http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePerformanceEdit handles GET (prefilled form) and POST (update)
// for /performance/{id}/edit. Admin only.
func handlePerformanceEdit(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.Method == "GET" {
		detail, err := stores.PerformanceStore.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, performanceStore.ErrNotFound) {
				setFlash(w, r, FlashWarning, "That performance is not on the schedule.")
				http.Redirect(w, r, "/performances", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}
		plays, ok := performanceFormPlays(w, r)
		if !ok {
			return
		}
		renderTemplate(w, r, "performance_form.html", map[string]any{
			"Form": PerformanceForm{
				PlayID:         detail.PlayID,
				DateTime:       detail.DateTime,
				Venue:          detail.Venue,
				AvailableSeats: detail.AvailableSeats,
			},
			"Errors":        fieldErrors{},
			"Plays":         plays,
			"PerformanceID": id,
		})
		return
	}

	if r.Method == "POST" {
		form, errs := parsePerformanceForm(r)
		if len(errs) > 0 {
			plays, ok := performanceFormPlays(w, r)
			if !ok {
				return
			}
			renderTemplate(w, r, "performance_form.html", map[string]any{
				"Form": form, "Errors": errs, "Plays": plays, "PerformanceID": id,
			})
			return
		}

		err := orchestrators.ExecuteUpdatePerformance(r.Context(), id, orchestrators.PerformanceInput{
			PlayID:         form.PlayID,
			DateTime:       form.DateTime,
			Venue:          form.Venue,
			AvailableSeats: form.AvailableSeats,
		}, orchestrators.SavePerformanceDeps{PerformanceStore: stores.PerformanceStore})
		if err != nil {
			switch {
			case errors.Is(err, performanceStore.ErrNotFound):
				setFlash(w, r, FlashWarning, "That performance is not on the schedule.")
				http.Redirect(w, r, "/performances", http.StatusSeeOther)
			case errors.Is(err, performanceStore.ErrPlayMissing):
				setFlash(w, r, FlashDanger, "The selected play no longer exists.")
				http.Redirect(w, r, "/performance/"+formatID(id)+"/edit", http.StatusSeeOther)
			default:
				internalError(w, err)
			}
			return
		}

		setFlash(w, r, FlashSuccess, "Performance updated.")
		http.Redirect(w, r, "/performance/"+formatID(id), http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePerformanceDelete handles POST /performance/{id}/delete. Admin
// only. A performance with sold tickets is kept.
func handlePerformanceDelete(w http.ResponseWriter, r *http.Request) {
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

	err = orchestrators.ExecuteDeletePerformance(r.Context(), id, orchestrators.SavePerformanceDeps{PerformanceStore: stores.PerformanceStore})
	if err != nil {
		switch {
		case errors.Is(err, performanceStore.ErrHasTickets):
			setFlash(w, r, FlashDanger, "Tickets have been sold for this performance; it cannot be removed.")
			http.Redirect(w, r, "/performance/"+formatID(id), http.StatusSeeOther)
		case errors.Is(err, performanceStore.ErrNotFound):
			setFlash(w, r, FlashWarning, "That performance is not on the schedule.")
			http.Redirect(w, r, "/performances", http.StatusSeeOther)
		default:
			internalError(w, err)
		}
		return
	}

	setFlash(w, r, FlashSuccess, "Performance removed from the schedule.")
	http.Redirect(w, r, "/performances", http.StatusSeeOther)
}
