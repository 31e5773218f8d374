package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/internal/usecases/resourcing"
	"github.com/somework/landing-api/pkg/apiErrors"
	"github.com/somework/landing-api/pkg/log"
)

// handleResourceError converte erros do resourcing no código da API
func handleResourceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, resourcing.ErrResourceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Resource não encontrado", nil)
	case resourcing.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao acessar resources")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar resources", nil)
	}
}

func resourceIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

// Landing payload público da página inicial
func Landing(service resourcing.Resourcer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := service.Landing(r.Context())
		if err != nil {
			handleResourceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

func ListPublicResources(service resourcing.Resourcer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resources, err := service.ListPublic(r.Context())
		if err != nil {
			handleResourceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resourcesOrEmpty(resources))
	}
}

func ListAdminResources(service resourcing.Resourcer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resources, err := service.ListAdmin(r.Context())
		if err != nil {
			handleResourceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resourcesOrEmpty(resources))
	}
}

func GetResource(service resourcing.Resourcer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource, err := service.Get(r.Context(), resourceIDParam(r))
		if err != nil {
			handleResourceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resource)
	}
}

func CreateResource(service resourcing.Resourcer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ResourceRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		resource, err := service.Create(r.Context(), &req)
		if err != nil {
			handleResourceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, resource)
	}
}

func UpdateResource(service resourcing.Resourcer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ResourceRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		resource, err := service.Update(r.Context(), resourceIDParam(r), &req)
		if err != nil {
			handleResourceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resource)
	}
}

func DeleteResource(service resourcing.Resourcer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), resourceIDParam(r)); err != nil {
			handleResourceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ResourceStats contagem de resources do dashboard principal
func ResourceStats(service resourcing.Resourcer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats(r.Context())
		if err != nil {
			handleResourceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func resourcesOrEmpty(resources []*domain.Resource) []*domain.Resource {
	if resources == nil {
		return []*domain.Resource{}
	}
	return resources
}
