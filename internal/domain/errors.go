package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable indica que o banco de dados não pôde ser alcançado
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrWriteFailed indica que uma escrita administrativa foi abortada
	ErrWriteFailed = errors.New("write failed")
	// ErrInvalidFilter indica um parâmetro de filtro que não pôde ser interpretado
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrNotFound indica que o registro solicitado não existe
	ErrNotFound = errors.New("not found")
)

// StoreError carrega a operação que falhou, o erro de domínio e a causa do driver
type StoreError struct {
	Op    string
	Err   error
	Cause error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Err, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

// Unwrap permite errors.Is tanto com o sentinel quanto com a causa original
func (e *StoreError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewStoreError(op string, kind error, cause error) *StoreError {
	return &StoreError{Op: op, Err: kind, Cause: cause}
}

// FilterError descreve qual parâmetro de filtro foi rejeitado
type FilterError struct {
	Field string
	Value string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("%s: %s=%q", ErrInvalidFilter, e.Field, e.Value)
}

func (e *FilterError) Unwrap() error {
	return ErrInvalidFilter
}

func NewFilterError(field, value string) *FilterError {
	return &FilterError{Field: field, Value: value}
}
