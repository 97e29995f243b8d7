package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "recipe not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "recipe not found" {
		t.Errorf("expected message 'recipe not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeUnavailable, "fetch failed", cause)

	if err.Code != ErrCodeUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeUnavailable, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("unexpected EOF")
	ctx := map[string]any{
		"recipe": 42,
		"path":   "/api/recipe/42/",
	}

	err := WrapWithContext(ErrCodeMalformedData, "decode failed", cause, ctx)

	if err.Code != ErrCodeMalformedData {
		t.Errorf("expected code %s, got %s", ErrCodeMalformedData, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["recipe"] != 42 {
		t.Errorf("expected recipe to be 42")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeInvalidConfig, "token or username required"),
			expected: "[INVALID_CONFIG] token or username required",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeDevice, "write failed", errors.New("broken pipe")),
			expected: "[DEVICE] write failed: broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"config", New(ErrCodeInvalidConfig, "x"), 1},
		{"unauthorized", New(ErrCodeUnauthorized, "x"), 2},
		{"not found", New(ErrCodeNotFound, "x"), 2},
		{"unavailable", New(ErrCodeUnavailable, "x"), 2},
		{"malformed", New(ErrCodeMalformedData, "x"), 3},
		{"device", New(ErrCodeDevice, "x"), 4},
		{"plain error", errors.New("x"), 1},
		{"wrapped structured", fmt.Errorf("recipe 3: %w", New(ErrCodeMalformedData, "x")), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeInvalidConfig,
		ErrCodeUnauthorized,
		ErrCodeNotFound,
		ErrCodeUnavailable,
		ErrCodeMalformedData,
		ErrCodeDevice,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
