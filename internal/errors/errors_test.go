package errors

import "testing"

func TestKindsAreDistinguishable(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{InvalidInputf("bad title"), ErrInvalidInput},
		{NotFoundf("task %s not found", "abc"), ErrNotFound},
		{Conflictf("session already active"), ErrConflict},
	}

	kinds := []error{ErrInvalidInput, ErrNotFound, ErrConflict}
	for _, tc := range cases {
		for _, kind := range kinds {
			got := Is(tc.err, kind)
			want := kind == tc.kind
			if got != want {
				t.Errorf("Is(%v, %v) = %v, want %v", tc.err, kind, got, want)
			}
		}
	}
}

func TestMessageFormatting(t *testing.T) {
	err := NotFoundf("task %s not found", "abc")
	if err.Error() != "task abc not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestFormat(t *testing.T) {
	if Format(nil) != "" {
		t.Error("nil error should format to empty string")
	}
	if got := Format(Conflictf("busy")); got != "Error: busy" {
		t.Errorf("unexpected format: %q", got)
	}
}
