package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"teammeet/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
			message: "You don't have permission to access this resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("start time must be before end time"),
			code:    http.StatusBadRequest,
			message: "start time must be before end time",
		},
		{
			name:    "BadRequest wraps an error",
			err:     failure.BadRequest(errors.New("validation failed")),
			code:    http.StatusBadRequest,
			message: "validation failed",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("missing token"),
			code:    http.StatusUnauthorized,
			message: "missing token",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("room is already booked for this slot"),
			code:    http.StatusConflict,
			message: "room is already booked for this slot",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("only the booking owner can modify it"),
			code:    http.StatusForbidden,
			message: "only the booking owner can modify it",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "Unimplemented",
			err:     failure.Unimplemented("Frobnicate"),
			code:    http.StatusNotImplemented,
			message: "Frobnicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestNilConstructors(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "direct failure",
			err:      failure.NotFound("booking not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure",
			err:      fmt.Errorf("outer: %w", failure.Conflict("room is already booked for this slot")),
			expected: http.StatusConflict,
		},
		{
			name:     "plain error defaults to internal",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, code)
			}
		})
	}
}
