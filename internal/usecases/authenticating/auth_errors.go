package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrUserDisabled          = errors.New("usuário desativado")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrUserAlreadyExists     = errors.New("usuário já existe")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrNoAdminPrivileges     = errors.New("apenas administradores podem realizar esta ação")

	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")

	ErrWeakPassword    = errors.New("senha fraca")
	ErrSamePassword    = errors.New("nova senha deve ser diferente da atual")
	ErrCurrentPassword = errors.New("senha atual incorreta")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError carrega o código de API que o handler devolve ao cliente
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	if e.UserID > 0 {
		return fmt.Sprintf("%s (usuário %d): %s", e.Err.Error(), e.UserID, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// CodeOf devolve o código de API de um AuthError embrulhado em err
func CodeOf(err error) (string, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code, true
	}
	return "", false
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Details: details}
}
