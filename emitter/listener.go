package emitter

// Func is an invocable listener. It receives the arguments forwarded by
// Emit.
type Func func(args ...any)

// Wrap carries an invocable listener one level deep. It exists for callers
// that pass listeners around as records; deeper nesting is unrepresentable.
type Wrap struct {
	Listener Func
}

// Listener is the closed set of values accepted by On and Once: a bare Func,
// or a Wrap whose Listener field is set. The unexported method keeps the set
// closed.
type Listener interface {
	invocable() Func
}

func (f Func) invocable() Func { return f }

func (w Wrap) invocable() Func { return w.Listener }

// validListener reports whether l carries an invocable function. A nil
// interface, a nil Func and a Wrap around a nil Func are all rejected.
func validListener(l Listener) bool {
	return l != nil && l.invocable() != nil
}
