package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOfWrappedError(t *testing.T) {
	base := New(CodeDuplicateID, "node already exists", nil)
	wrapped := fmt.Errorf("add node: %w", base)

	if CodeOf(wrapped) != CodeDuplicateID {
		t.Fatalf("expected duplicate_id code, got %s", CodeOf(wrapped))
	}
	if !IsCode(wrapped, CodeDuplicateID) {
		t.Fatalf("IsCode should match through the wrap chain")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if CodeOf(errors.New("plain")) != CodeUnknown {
		t.Fatalf("plain error should map to unknown code")
	}
}

func TestErrorMessagePrecedence(t *testing.T) {
	inner := errors.New("inner failure")

	cases := []struct {
		name string
		err  Error
		want string
	}{
		{"message wins", New(CodeNotFound, "node missing", inner), "node missing"},
		{"falls back to wrapped", New(CodeNotFound, "", inner), "inner failure"},
		{"falls back to code", New(CodeNotFound, "", nil), "not_found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsStructural(t *testing.T) {
	structural := []Code{CodeDuplicateID, CodeDanglingParent, CodeSelfParent}
	for _, code := range structural {
		if !IsStructural(New(code, "", nil)) {
			t.Fatalf("%s should be structural", code)
		}
	}
	if IsStructural(New(CodeNotFound, "", nil)) {
		t.Fatalf("not_found should not be structural")
	}
}
