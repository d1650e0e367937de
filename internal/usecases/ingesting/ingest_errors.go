package ingesting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile  = errors.New("no file uploaded")
	ErrMalformedCSV = errors.New("CSV parsing failed")
	ErrFileTooLarge = errors.New("file exceeds the upload limit")
	ErrSaveAccount  = errors.New("error saving account")
	ErrSaveDataset  = errors.New("error saving dataset")
)

// IngestError carrega o código de API e os detalhes de uma falha de importação
type IngestError struct {
	Err     error
	Code    string
	Details any
}

func (e *IngestError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

func NewIngestError(err error, code string, details any) *IngestError {
	return &IngestError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
