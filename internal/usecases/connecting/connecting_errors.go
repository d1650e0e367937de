package connecting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("Missing required credentials")
	ErrUnknownPlatform    = errors.New("Unknown platform")
)

// ConnectionError carrega o código de API de uma falha de conexão com plataforma
type ConnectionError struct {
	Err     error
	Code    string
	Details string
}

func (e *ConnectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(err error, code string, details string) *ConnectionError {
	return &ConnectionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
