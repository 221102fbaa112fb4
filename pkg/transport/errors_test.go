package transport

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *StatusError
		expected string
	}{
		{
			name: "unauthorized",
			err: &StatusError{
				Endpoint:   "getCountries",
				StatusCode: 401,
				Status:     "401 Unauthorized",
			},
			expected: "booking getCountries request failed: 401 Unauthorized",
		},
		{
			name: "server error",
			err: &StatusError{
				Endpoint:   "getHotels",
				StatusCode: 503,
				Status:     "503 Service Unavailable",
			},
			expected: "booking getHotels request failed: 503 Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsStatus(t *testing.T) {
	statusErr := &StatusError{
		Endpoint:   "getCountries",
		StatusCode: http.StatusUnauthorized,
		Status:     "401 Unauthorized",
	}

	if !IsStatus(statusErr, http.StatusUnauthorized) {
		t.Error("IsStatus() = false for matching code, want true")
	}
	if IsStatus(statusErr, http.StatusNotFound) {
		t.Error("IsStatus() = true for mismatched code, want false")
	}
	if IsStatus(errors.New("plain"), http.StatusUnauthorized) {
		t.Error("IsStatus() = true for non-status error, want false")
	}

	// Wrapped status errors still match.
	wrapped := fmt.Errorf("fetch page: %w", statusErr)
	if !IsStatus(wrapped, http.StatusUnauthorized) {
		t.Error("IsStatus() = false for wrapped error, want true")
	}
}
