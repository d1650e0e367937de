package diagnosing

import (
	"errors"
	"fmt"
)

var (
	ErrNoData      = errors.New("No data available")
	ErrLoadDataset = errors.New("error loading dataset")
)

// DiagnosisError representa uma falha ao carregar ou analisar um dataset
type DiagnosisError struct {
	Err     error
	Code    string
	Details string
}

func (e *DiagnosisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DiagnosisError) Unwrap() error {
	return e.Err
}

func NewDiagnosisError(err error, code string, details string) *DiagnosisError {
	return &DiagnosisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
