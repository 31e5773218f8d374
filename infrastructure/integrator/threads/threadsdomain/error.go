package threadsdomain

import "fmt"

// ErrorResponse representa a estrutura de erro da Graph API do Threads
type ErrorResponse struct {
	Error *ErrorDetails `json:"error,omitempty"`
}

// ErrorDetails contém os detalhes de erro da Graph API
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é o erro devolvido quando a API responde com um payload de erro.
// A mensagem é repassada sem alteração.
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.Message != "" {
		return e.Details.Message
	}
	return fmt.Sprintf("threads api returned status %d", e.StatusCode)
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *APIError) IsTokenExpired() bool {
	// O código 190 representa "token expirado"; 460, 463 e 467 são subcódigos de sessão inválida
	return e.Details.Code == 190 ||
		(e.Details.Type == "OAuthException" && (e.Details.ErrorSubcode == 460 || e.Details.ErrorSubcode == 463 || e.Details.ErrorSubcode == 467))
}
