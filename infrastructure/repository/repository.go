package repository

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrConflict indica que a linha não estava no estado esperado pela escrita condicional
var ErrConflict = errors.New("registro já foi alterado por outra operação")

// scanner é implementado por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}
