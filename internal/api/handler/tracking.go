package handler

import (
	"errors"
	"net/http"

	"github.com/somework/landing-api/internal/usecases/tracking"
	"github.com/somework/landing-api/pkg/apiErrors"
)

type PageViewRequest struct {
	Path string `json:"path"`
}

type ClickRequest struct {
	ResourceID    string `json:"resource_id"`
	ResourceTitle string `json:"resource_title"`
}

// TrackPageView registra a visita em background e responde 202 imediatamente
func TrackPageView(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PageViewRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Path == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "path é obrigatório", nil)
			return
		}

		tracked := service.TrackPageView(r.Context(), req.Path, r.UserAgent())

		writeJSON(w, http.StatusAccepted, map[string]bool{"tracked": tracked})
	}
}

// TrackClick registra o clique em um resource em background
func TrackClick(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClickRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.TrackClick(r.Context(), req.ResourceID, req.ResourceTitle); err != nil {
			if errors.Is(err, tracking.ErrMissingResource) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar clique", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]bool{"tracked": true})
	}
}
