package resourcing

import (
	"errors"

	"github.com/somework/landing-api/infrastructure/repository"
)

var (
	ErrTitleRequired = errors.New("título é obrigatório")
	ErrLinkRequired  = errors.New("link é obrigatório")
	ErrInvalidType   = errors.New("tipo deve ser free ou paid")

	ErrResourceNotFound = repository.ErrResourceNotFound
)

// IsValidationError indica erros causados pelos dados enviados
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrLinkRequired) ||
		errors.Is(err, ErrInvalidType)
}
