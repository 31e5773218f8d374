package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/internal/usecases/authenticating"
	"github.com/somework/landing-api/pkg/apiErrors"
	"github.com/somework/landing-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// handleAuthError converte erros do authenticating no código da API
func handleAuthError(w http.ResponseWriter, err error, fallback string) {
	if code, ok := authenticating.CodeOf(err); ok {
		apiErrors.WriteError(w, code, err.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	case errors.Is(err, authenticating.ErrWeakPassword):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// userIDParam lê o :id da rota
func userIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
		return 0, false
	}

	return id, true
}

// ChangePassword permite que o usuário altere a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var req ChangePasswordRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if userClaims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		if err := service.ChangePassword(targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			logrus.Error(err)
			handleAuthError(w, err, "Erro ao alterar senha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GeneratePassword gera uma senha forte para um usuário, apenas administradores
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		targetUserID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		newPassword, err := service.GenerateStrongPassword(userClaims.UserID, targetUserID)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err, "Erro ao gerar senha")
			return
		}

		writeJSON(w, http.StatusOK, GeneratePasswordResponse{Password: newPassword})
	}
}
