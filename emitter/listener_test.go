package emitter

import "testing"

func TestValidListener(t *testing.T) {
	fn := Func(func(args ...any) {})

	tests := []struct {
		name     string
		listener Listener
		want     bool
	}{
		{"bare func", fn, true},
		{"wrap of func", Wrap{Listener: fn}, true},
		{"nil interface", nil, false},
		{"nil func", Func(nil), false},
		{"wrap of nil", Wrap{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validListener(tt.listener); got != tt.want {
				t.Errorf("validListener() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap_UnwrapsOneLevel(t *testing.T) {
	called := false
	w := Wrap{Listener: func(args ...any) { called = true }}

	w.invocable()()

	if !called {
		t.Error("wrapped function was not invoked")
	}
}
