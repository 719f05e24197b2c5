package upstream

import (
	"errors"
	"fmt"
)

var (
	ErrUpstreamUnavailable = errors.New("API de operações indisponível")
	ErrUpstreamStatus      = errors.New("API de operações respondeu com erro")
	ErrInvalidPayload      = errors.New("payload de cobertura inválido")
)

// StatusError carrega o status HTTP devolvido pela API de operações
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d", ErrUpstreamStatus, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrUpstreamStatus, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstreamStatus
}

// IsClientError indica erro 4xx (problema da requisição, não da API)
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
