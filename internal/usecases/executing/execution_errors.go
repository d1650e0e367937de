package executing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingActionID = errors.New("Missing actionId")
	ErrActionNotFound  = errors.New("Action not found")
	ErrAlreadyApplied  = errors.New("Action already applied")
	ErrLoadAction      = errors.New("error loading action")
	ErrApplyAction     = errors.New("error applying action")
)

// ExecutionError carrega o código de API de uma falha de execução ou simulação
type ExecutionError struct {
	Err     error
	Code    string
	Details string
}

func (e *ExecutionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func NewExecutionError(err error, code string, details string) *ExecutionError {
	return &ExecutionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
