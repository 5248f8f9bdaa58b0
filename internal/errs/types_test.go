package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestTypedErrorsSurviveWrapping(t *testing.T) {
	nf := fmt.Errorf("load: %w", NewNotFoundError("widget not found"))
	if !IsNotFound(nf) {
		t.Fatalf("expected wrapped not-found error to match")
	}
	if IsValidation(nf) || IsIntegrity(nf) {
		t.Fatalf("not-found error matched another type")
	}

	v := fmt.Errorf("set: %w", NewValidationError("bad alpha"))
	if !IsValidation(v) {
		t.Fatalf("expected wrapped validation error to match")
	}

	i := NewIntegrityError("catalog too short")
	if !IsIntegrity(i) {
		t.Fatalf("expected integrity error to match")
	}
	if i.Error() != "catalog too short" {
		t.Fatalf("unexpected message %q", i.Error())
	}
}

func TestDatabaseErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := fmt.Errorf("save: %w", NewDatabaseError("write", "failed to save settings", cause))
	if !IsDatabase(err) {
		t.Fatal("expected database error to match")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if got := err.Error(); got != "save: write: failed to save settings: disk full" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestResponse(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{NewNotFoundError("widget not found"), http.StatusNotFound, "not_found"},
		{fmt.Errorf("apply: %w", NewValidationError("bad alpha")), http.StatusBadRequest, "invalid_input"},
		{NewIntegrityError("catalog too short"), http.StatusInternalServerError, "internal_error"},
		{NewDatabaseError("read", "failed", nil), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		status, body := Response(tt.err)
		if status != tt.status || body.Code != tt.code {
			t.Errorf("Response(%v) = %d %q, want %d %q", tt.err, status, body.Code, tt.status, tt.code)
		}
	}
	if _, body := Response(NewIntegrityError("secret detail")); body.Message == "secret detail" {
		t.Fatal("internal error message leaked")
	}
}
