package handler

import (
	"net/http"

	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/internal/usecases/configuring"
	"github.com/somework/landing-api/pkg/apiErrors"
	"github.com/somework/landing-api/pkg/log"
)

// GetSettings retorna as configurações do site. Em caso de falha no banco os padrões são retornados.
func GetSettings(service configuring.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.GetSettings(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao carregar configurações do site")
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

func SaveSettings(service configuring.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings domain.SiteSettings
		if err := decodeBody(r, &settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		saved, err := service.SaveSettings(r.Context(), settings)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao salvar configurações do site")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configurações", nil)
			return
		}

		writeJSON(w, http.StatusOK, saved)
	}
}
