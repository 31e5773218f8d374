package dashboard

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classificação das falhas publicadas no estado do dashboard
type ErrorKind string

const (
	KindNone         ErrorKind = ""
	KindUnconfigured ErrorKind = "unconfigured"
	KindUpstream     ErrorKind = "upstream"
	KindTransport    ErrorKind = "transport"
	KindEmptyResult  ErrorKind = "empty_result"
	KindTransform    ErrorKind = "transform"
)

const MessageCredentialsMissing = "Credentials missing"

// LoadError erro classificado de uma carga de dashboard
type LoadError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func Unconfigured(message string) error {
	if message == "" {
		message = MessageCredentialsMissing
	}
	return &LoadError{Kind: KindUnconfigured, Message: message}
}

func Upstream(message string) error {
	return &LoadError{Kind: KindUpstream, Message: message}
}

func EmptyResult(message string) error {
	return &LoadError{Kind: KindEmptyResult, Message: message}
}

func Transport(err error) error {
	return &LoadError{Kind: KindTransport, Message: err.Error(), Err: err}
}

func Transform(err error) error {
	return &LoadError{Kind: KindTransform, Message: err.Error(), Err: err}
}

// Classify garante que todo erro que chega ao estado tenha um ErrorKind.
// Erros sem classificação são tratados como falha de transporte com a mensagem original.
func Classify(err error) *LoadError {
	if err == nil {
		return nil
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &LoadError{Kind: KindTransport, Message: fmt.Sprintf("timeout: %s", err.Error()), Err: err}
	}

	return &LoadError{Kind: KindTransport, Message: err.Error(), Err: err}
}
