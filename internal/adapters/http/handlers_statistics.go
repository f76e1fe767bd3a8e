package web

import (
	"errors"
	"net/http"

	"boxoffice/internal/application/orchestrators"
)

// statisticsPageData loads the selection lists for the statistics form
// and the registered-user count shown alongside them.
func statisticsPageData(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	plays, err := stores.PlayStore.ListAll(r.Context())
	if err != nil {
		internalError(w, err)
		return nil, false
	}
	performances, err := stores.PerformanceStore.ListAll(r.Context())
	if err != nil {
		internalError(w, err)
		return nil, false
	}
	userCount, err := stores.UserStore.Count(r.Context())
	if err != nil {
		internalError(w, err)
		return nil, false
	}
	return map[string]any{
		"Plays":           plays,
		"Performances":    performances,
		"RegisteredUsers": userCount,
		"Form":            StatisticForm{},
		"Errors":          fieldErrors{},
	}, true
}

// handleStatistics handles GET (selection form) and POST (compute) for
// /admin/statistics. Admin only; the aggregates run inside the store's
// SQL.
func handleStatistics(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	if r.Method == "GET" {
		data, ok := statisticsPageData(w, r)
		if !ok {
			return
		}
		renderTemplate(w, r, "statistics.html", data)
		return
	}

	if r.Method == "POST" {
		form, errs := parseStatisticForm(r)
		data, ok := statisticsPageData(w, r)
		if !ok {
			return
		}
		data["Form"] = form
		data["Errors"] = errs
		if len(errs) > 0 {
			renderTemplate(w, r, "statistics.html", data)
			return
		}

		result, err := orchestrators.ExecuteComputeStatistic(r.Context(), orchestrators.ComputeStatisticInput{
			Kind:          form.Kind,
			PlayID:        form.PlayID,
			PerformanceID: form.PerformanceID,
		}, orchestrators.ComputeStatisticDeps{StatsStore: stores.StatsStore})
		if err != nil {
			if errors.Is(err, orchestrators.ErrInvalidStatistic) {
				errs["kind"] = "pick a statistic and a matching play or performance"
				renderTemplate(w, r, "statistics.html", data)
				return
			}
			internalError(w, err)
			return
		}

		data["Result"] = result
		renderTemplate(w, r, "statistics.html", data)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
