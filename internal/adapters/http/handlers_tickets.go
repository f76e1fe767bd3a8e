package web

import (
	"errors"
	"log/slog"
	"net/http"

	performanceStore "boxoffice/internal/adapters/storage/performance"
	"boxoffice/internal/application/orchestrators"
	"boxoffice/internal/application/projections"
)

// handleBuyTicket handles GET (confirmation page) and POST (purchase)
// for /performance/{id}/buy. Login required.
func handleBuyTicket(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireLogin(w, r)
	if !ok {
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
		renderTemplate(w, r, "buy_ticket.html", map[string]any{
			"Performance": detail,
			"Form":        BuyTicketForm{},
			"Errors":      fieldErrors{},
		})
		return
	}

	if r.Method == "POST" {
		form, errs := parseBuyTicketForm(r)
		if len(errs) > 0 {
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
			renderTemplate(w, r, "buy_ticket.html", map[string]any{
				"Performance": detail, "Form": form, "Errors": errs,
			})
			return
		}

		bought, err := orchestrators.ExecuteBuyTicket(r.Context(), orchestrators.BuyTicketInput{
			PerformanceID: id,
			UserID:        sess.UserID,
			Price:         form.Price,
		}, orchestrators.BuyTicketDeps{
			PerformanceStore: stores.PerformanceStore,
			TicketStore:      stores.TicketStore,
			UserStore:        stores.UserStore,
			Sender:           emailSender,
			EmailFrom:        emailFromAddress,
		})
		if err != nil {
			switch {
			case errors.Is(err, orchestrators.ErrPerformanceNotFound):
				setFlash(w, r, FlashWarning, "That performance is not on the schedule.")
				http.Redirect(w, r, "/performances", http.StatusSeeOther)
			case errors.Is(err, orchestrators.ErrSoldOut):
				setFlash(w, r, FlashDanger, "Sorry, this performance is sold out.")
				http.Redirect(w, r, "/performance/"+formatID(id), http.StatusSeeOther)
			default:
				// Purchase is the one flow where a store failure comes
				// back as a flash, not an error page.
				slog.Error("purchase_event", "event", "purchase_failed",
					"performance_id", id, "user_id", sess.UserID, "error", err.Error())
				setFlash(w, r, FlashDanger, "We could not complete your purchase. Please try again.")
				http.Redirect(w, r, "/performance/"+formatID(id), http.StatusSeeOther)
			}
			return
		}

		setFlash(w, r, FlashSuccess, "Enjoy the show! Your ticket reference is "+bought.Reference+".")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleProfile shows the signed-in user's account, tickets and
// reviews. Login required.
func handleProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireLogin(w, r)
	if !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetProfile(r.Context(), projections.GetProfileQuery{UserID: sess.UserID}, projections.GetProfileDeps{
		UserStore:   stores.UserStore,
		TicketStore: stores.TicketStore,
		ReviewStore: stores.ReviewStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "profile.html", map[string]any{
		"User":    result.User,
		"Tickets": result.Tickets,
		"Reviews": result.Reviews,
	})
}
