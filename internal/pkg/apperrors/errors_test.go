package apperrors

import (
	"errors"
	"testing"
)

func TestCustomErrorMatchesSentinel(t *testing.T) {
	err := NewCustomError(ErrInvalidStatus, "invalid enrollment status \"done\"")

	if !errors.Is(err, ErrInvalidStatus) {
		t.Error("expected errors.Is to match the wrapped sentinel")
	}
	if errors.Is(err, ErrValidationFailed) {
		t.Error("unrelated sentinel should not match")
	}
	if got := err.Error(); got != "invalid enrollment status \"done\"" {
		t.Errorf("Error() = %q, want the message", got)
	}
}

func TestCustomErrorMessageFallback(t *testing.T) {
	err := NewCustomError(ErrCourseNotFound, "")
	if got := err.Error(); got != ErrCourseNotFound.Error() {
		t.Errorf("Error() = %q, want underlying error text", got)
	}
}

func TestCustomErrorWithDetails(t *testing.T) {
	details := map[string]interface{}{"courseId": int64(3), "status": "done"}
	err := NewCustomError(ErrInvalidStatus, "invalid enrollment status").WithDetails(details)

	if err.Details["courseId"] != int64(3) {
		t.Errorf("details courseId = %v, want 3", err.Details["courseId"])
	}

	var custom *CustomError
	if !errors.As(error(err), &custom) {
		t.Fatal("expected errors.As to recover *CustomError")
	}
	if custom.Details["status"] != "done" {
		t.Errorf("details status = %v, want %q", custom.Details["status"], "done")
	}
}
