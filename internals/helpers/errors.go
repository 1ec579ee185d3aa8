// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"fmt"
)

/* =========================================================
   Taksonomi error repository.
   Repository tidak pernah melempar error mentah ke handler:
   semua dibungkus jadi salah satu tipe di bawah ini.
========================================================= */

// ValidationError: error per-field, dikembalikan inline (bukan panic/throw).
type ValidationError struct {
	FieldErrors map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validasi gagal (%d field)", len(e.FieldErrors))
}

func NewValidationError(fieldErrors map[string][]string) *ValidationError {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return &ValidationError{FieldErrors: fieldErrors}
}

// SingleFieldError: shortcut untuk satu field satu pesan.
func SingleFieldError(field, message string) *ValidationError {
	return NewValidationError(map[string][]string{field: {message}})
}

// NotFoundError: record yang diminta tidak ada.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// PersistenceError: kegagalan store/jaringan di bawah repository.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

/* ========= Type checks ========= */

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
