package utils

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusError(t *testing.T) {
	err := NewStatusError(errors.New("upstream down"), http.StatusInternalServerError)

	var se StatusError
	if !errors.As(err, &se) {
		t.Fatal("NewStatusError did not produce a StatusError")
	}
	if se.Status() != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", se.Status())
	}
	if err.Error() != "upstream down" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestStatusOf(t *testing.T) {
	err := NewStatusError(errors.New("nope"), http.StatusBadRequest)

	if got := StatusOf(err, http.StatusInternalServerError); got != http.StatusBadRequest {
		t.Errorf("StatusOf = %d, want 400", got)
	}
	if got := StatusOf(errors.New("plain"), http.StatusInternalServerError); got != http.StatusInternalServerError {
		t.Errorf("StatusOf fallback = %d, want 500", got)
	}
}
