package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos devolvidos no campo "code" do corpo de erro
const (
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"
	ErrUserAlreadyExists     = "AUTH_009"

	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	ErrNotFound         = "RES_001"
	ErrMethodNotAllowed = "RES_002"

	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusConflict,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError é o corpo padrão das respostas de erro
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusOf devolve o status HTTP do código. Códigos desconhecidos viram 500.
func StatusOf(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado na resposta
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
