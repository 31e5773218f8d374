package handler

import (
	"net/http"

	"github.com/somework/landing-api/internal/usecases/insighting"
)

// GetAnalytics relatório do Threads. Sempre responde 200, falhas vão no campo error.
func GetAnalytics(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := insighting.CoerceDays(r.URL.Query().Get("days"))

		writeJSON(w, http.StatusOK, service.GetAnalytics(r.Context(), days))
	}
}
