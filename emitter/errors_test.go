package emitter

import (
	"errors"
	"strings"
	"testing"
)

func TestInvalidArgumentError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *InvalidArgumentError
		want []string
	}{
		{
			name: "listener",
			err:  &InvalidArgumentError{Arg: "listener", Name: "a.1", Err: ErrInvalidListener},
			want: []string{"listener", `"a.1"`},
		},
		{
			name: "event name with detail",
			err: &InvalidArgumentError{
				Arg:    "event name",
				Name:   "a.1.2.3",
				Err:    ErrInvalidName,
				Detail: "more than one weight segment",
			},
			want: []string{"event name", `"a.1.2.3"`, "more than one weight segment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, fragment := range tt.want {
				if !strings.Contains(msg, fragment) {
					t.Errorf("message %q missing %q", msg, fragment)
				}
			}
		})
	}
}

func TestInvalidArgumentError_Unwrap(t *testing.T) {
	err := &InvalidArgumentError{Arg: "listener", Err: ErrInvalidListener}
	if !errors.Is(err, ErrInvalidListener) {
		t.Error("errors.Is failed to match the sentinel")
	}
	if errors.Is(err, ErrInvalidName) {
		t.Error("errors.Is matched the wrong sentinel")
	}
}
