package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusAndMessageThroughWrapping(t *testing.T) {
	base := NotFound("project %q not found", "p9")
	wrapped := fmt.Errorf("lookup: %w", base)

	if got := StatusOf(wrapped); got != http.StatusNotFound {
		t.Fatalf("StatusOf = %d, want %d", got, http.StatusNotFound)
	}
	if got := MessageOf(wrapped); got != `project "p9" not found` {
		t.Fatalf("MessageOf = %q", got)
	}
	if !IsCode(wrapped, CodeNotFound) {
		t.Fatal("expected NOT_FOUND code")
	}
}

func TestPlainErrorDefaults(t *testing.T) {
	err := errors.New("boom")
	if got := StatusOf(err); got != http.StatusInternalServerError {
		t.Fatalf("StatusOf = %d", got)
	}
	if got := MessageOf(err); got != "Internal server error" {
		t.Fatalf("MessageOf = %q", got)
	}
}

func TestCauseIsUnwrapped(t *testing.T) {
	cause := errors.New("disk full")
	err := Storage("save like flag", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}
	if err.Error() != "save like flag: disk full" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestFromContext(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{context.Canceled, CodeCanceled, StatusClientClosedRequest},
		{fmt.Errorf("increment view: %w", context.Canceled), CodeCanceled, StatusClientClosedRequest},
		{context.DeadlineExceeded, CodeTimeout, http.StatusGatewayTimeout},
	}
	for _, tc := range cases {
		got := FromContext(tc.err)
		if !IsCode(got, tc.code) || StatusOf(got) != tc.status {
			t.Errorf("FromContext(%v) = %v (status %d), want %s/%d", tc.err, got, StatusOf(got), tc.code, tc.status)
		}
		if !errors.Is(got, tc.err) {
			t.Errorf("FromContext(%v) lost its cause", tc.err)
		}
	}

	plain := errors.New("boom")
	if FromContext(plain) != plain || FromContext(nil) != nil {
		t.Fatal("non-context errors must pass through unchanged")
	}
}
