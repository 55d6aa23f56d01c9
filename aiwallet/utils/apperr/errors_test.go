package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", Invalid("amount", "amount must be a decimal number"), http.StatusBadRequest, "amount must be a decimal number"},
		{"not found", NotFound("Wallet"), http.StatusNotFound, "Wallet not found"},
		{"wrapped not found", fmt.Errorf("process send transaction: %w", NotFound("Wallet")), http.StatusNotFound, "Wallet not found"},
		{"bare not found", fmt.Errorf("load: %w", ErrNotFound), http.StatusNotFound, "Not found"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"constraint", fmt.Errorf("create wallet: %w", ErrConstraint), http.StatusConflict, "Resource already exists"},
		{"unavailable", Unavailable("generate reply", errors.New("timeout")), http.StatusServiceUnavailable, "AI Service Unavailable. Check API Key."},
		{"internal", errors.New("pq: connection reset"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := Status(tc.err)
			if status != tc.status || msg != tc.msg {
				t.Errorf("expected %d %q, got %d %q", tc.status, tc.msg, status, msg)
			}
		})
	}
}

func TestNotFoundMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("Chat"))
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFound should match ErrNotFound")
	}
	var nerr *NotFoundError
	if !errors.As(err, &nerr) || nerr.Entity != "Chat" {
		t.Errorf("expected entity Chat, got %+v", nerr)
	}
}
