package web

import (
	"net/http"

	"boxoffice/internal/application/listutil"
	"boxoffice/internal/application/orchestrators"
)

// handleReviewAdd handles GET (form) and POST (publish) for
// /reviews/add. Login required.
func handleReviewAdd(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireLogin(w, r)
	if !ok {
		return
	}

	if r.Method == "GET" {
		renderTemplate(w, r, "review_form.html", map[string]any{
			"Form":   ReviewForm{},
			"Errors": fieldErrors{},
		})
		return
	}

	if r.Method == "POST" {
		form, errs := parseReviewForm(r)
		if len(errs) > 0 {
			renderTemplate(w, r, "review_form.html", map[string]any{"Form": form, "Errors": errs})
			return
		}

		_, err := orchestrators.ExecuteAddReview(r.Context(), orchestrators.AddReviewInput{
			UserID: sess.UserID,
			Rating: form.Rating,
			Text:   form.Text,
		}, orchestrators.AddReviewDeps{ReviewStore: stores.ReviewStore})
		if err != nil {
			internalError(w, err)
			return
		}

		setFlash(w, r, FlashSuccess, "Thanks for your review.")
		http.Redirect(w, r, "/reviews_all", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleReviewsAll lists reviews newest first, one page at a time.
func handleReviewsAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	pp := listutil.ParsePageParams(r.URL.Query())
	total, err := stores.ReviewStore.Count(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	info := listutil.NewPageInfo(pp.Page, pp.PerPage, total)

	reviews, err := stores.ReviewStore.ListPage(r.Context(), info.PerPage, info.Offset())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "reviews.html", map[string]any{
		"Reviews": reviews,
		"Page":    info,
	})
}
