package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/internal/usecases/authenticating"
	"github.com/somework/landing-api/pkg/apiErrors"
	"github.com/somework/landing-api/pkg/middleware"
)

// CreateUserRequest corpo de criação de usuário do painel
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

// CreateUser cria um novo usuário do painel
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		user, err := service.CreateUser(&domain.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: req.Password,
			RoleID:       req.RoleID,
		})
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// ListUsers lista todos os usuários
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuários", nil)
			return
		}

		if users == nil {
			users = []*domain.User{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser atualiza informações do usuário. Editores só alteram o próprio perfil.
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || (userClaims.UserID != id && userClaims.UserRoleID != domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar este usuário", nil)
			return
		}

		var updateReq domain.UpdateUserRequest
		if err := decodeBody(r, &updateReq); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		updateReq.ID = id

		if (updateReq.RoleID != nil || updateReq.Active != nil) && userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar tipo ou status do usuário", nil)
			return
		}

		if err := service.UpdateUser(&updateReq); err != nil {
			logrus.Error(err)
			handleAuthError(w, err, "Erro ao atualizar usuário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
