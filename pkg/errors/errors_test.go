package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeStoreFailure, cause, "save document")

	if err.Code != ErrCodeStoreFailure {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStoreFailure)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	expected := "STORE_FAILURE: save document: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeNodeNotFound, "missing"), ErrCodeNodeNotFound, true},
		{"different code", New(ErrCodeNodeNotFound, "missing"), ErrCodeInvalidInput, false},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"wrapped structured error", Wrap(ErrCodeRenderFailure, New(ErrCodeInvalidStyle, "bad"), "render"), ErrCodeRenderFailure, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %v) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeCacheFailure, "boom")); got != ErrCodeCacheFailure {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeCacheFailure)
	}

	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode on plain error = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidDocument, "document name cannot be empty")
	if got := UserMessage(err); got != "document name cannot be empty" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := errors.New("something broke")
	if got := UserMessage(plain); got != "something broke" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
