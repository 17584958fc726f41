package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"venue/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Message: "menu is locked",
	}

	if f.Error() != "menu is locked" {
		t.Errorf("expected error message to be 'menu is locked', got %s", f.Error())
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
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("malformed body")),
			code:    http.StatusBadRequest,
			message: "malformed body",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("update request cannot be empty"),
			code:    http.StatusBadRequest,
			message: "update request cannot be empty",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("not authorized"),
			code:    http.StatusUnauthorized,
			message: "not authorized",
		},
		{
			name:    "not found",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("menu is locked"),
			code:    http.StatusConflict,
			message: "menu is locked",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("cannot delete your own account"),
			code:    http.StatusForbidden,
			message: "cannot delete your own account",
		},
		{
			name:    "internal",
			err:     failure.InternalError(errors.New("connection reset")),
			code:    http.StatusInternalServerError,
			message: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if !errors.As(tt.err, &f) {
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
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestValidation(t *testing.T) {
	err := failure.ValidationField("endDate", "endDate must be on or after startDate")

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}

	fields := failure.GetFields(err)
	if fields["endDate"] != "endDate must be on or after startDate" {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("open menu: %w", failure.Conflict("menu is locked")),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetFields(t *testing.T) {
	if failure.GetFields(errors.New("plain")) != nil {
		t.Error("expected nil fields for a plain error")
	}

	if failure.GetFields(failure.NotFound("x")) != nil {
		t.Error("expected nil fields for a failure without fields")
	}
}
