// internal/core/errors_test.go
package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := &Error{Code: "TEST_ERROR", Message: "test message"}
	if err.Error() != "[TEST_ERROR] test message" {
		t.Errorf("unexpected error string: %s", err.Error())
	}
}

func TestError_ErrorWithCause(t *testing.T) {
	err := WrapError(ErrDatasetInvalid, errors.New("line 3: bad year"))
	want := "[DATASET_INVALID] dataset is malformed: line 3: bad year"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{Code: "WRAP", Message: "wrapped", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should return cause")
	}
}

func TestError_Is(t *testing.T) {
	if !errors.Is(ErrViewNotFound, ErrViewNotFound) {
		t.Error("same error should match")
	}
	if errors.Is(ErrViewNotFound, ErrInvalidQuery) {
		t.Error("different codes should not match")
	}
}

func TestError_IsThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("loading dataset: %w", WrapError(ErrDatasetUnavailable, errors.New("no such file")))
	if !errors.Is(err, ErrDatasetUnavailable) {
		t.Error("expected wrapped error to match by code")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original")
	wrapped := WrapError(ErrInvalidQuery, cause)
	if wrapped.Cause != cause {
		t.Error("cause not set")
	}
	if wrapped.Code != ErrInvalidQuery.Code {
		t.Error("code not preserved")
	}
}
