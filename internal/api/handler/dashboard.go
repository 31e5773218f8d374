package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/internal/usecases/dashboard"
	"github.com/somework/landing-api/pkg/apiErrors"
)

// DashboardProvider localiza um dashboard pelo nome (implementado por dashboard.Registry)
type DashboardProvider interface {
	Get(name string) (dashboard.Dashboard, bool)
}

// GetDashboard carrega o dashboard no range pedido e aguarda o resultado.
// Com refresh=true força uma nova carga mesmo que o range já esteja pronto.
func GetDashboard(dashboards DashboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		d, ok := dashboards.Get(name)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Dashboard não encontrado", nil)
			return
		}

		query := r.URL.Query()
		rng := domain.ParseTimeRange(query.Get("range"), d.DefaultRange())
		refresh, _ := strconv.ParseBool(query.Get("refresh"))

		var pending *dashboard.Pending
		if refresh {
			pending = d.Load(rng)
		} else {
			pending = d.Ensure(rng)
		}

		state := d.State()
		if pending != nil {
			state = pending.Wait(r.Context())
		}

		writeJSON(w, http.StatusOK, renderState(state))
	}
}

// renderState em erro mostra apenas o aviso, sem o snapshot anterior
func renderState(state dashboard.State) dashboard.State {
	if state.Status == dashboard.StatusError {
		state.Snapshot = nil
		state.Stale = false
	}
	return state
}
