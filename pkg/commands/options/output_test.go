package options

import (
	"errors"
	"fmt"
	"testing"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/media"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: abc", app.ErrNotFound), "not_found"},
		{fmt.Errorf("%w: mood is required", app.ErrValidation), "validation"},
		{&media.Error{Op: "copy", Path: "/x", Err: errors.New("boom")}, "media"},
		{errors.New("other"), "error"},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Fatalf("%v: expected %s, got %s", tt.err, tt.want, got)
		}
	}
}

func TestHandleErrorWithoutJSON(t *testing.T) {
	err := errors.New("plain")
	if got := (&OutputOptions{}).HandleError(err); got != err {
		t.Fatalf("expected the error unchanged, got %v", got)
	}
	if got := (&OutputOptions{JSON: true}).HandleError(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
