package utils

import "errors"

// StatusError is a custom error type that includes an HTTP status code.
type StatusError struct {
	error
	status int
}

// Status returns the status code of the error.
func (se StatusError) Status() int {
	return se.status
}

// NewStatusError creates a new StatusError.
func NewStatusError(err error, s int) error {
	return StatusError{error: err, status: s}
}

// StatusOf returns the HTTP status carried by err, or fallback when err does
// not carry one.
func StatusOf(err error, fallback int) int {
	var se StatusError
	if errors.As(err, &se) {
		return se.Status()
	}
	return fallback
}
