// Package emitter provides a weighted publish/subscribe dispatcher.
//
// Listeners subscribe under an event key with an optional numeric weight
// encoded in the registration name. At emit time, delivery order is
// determined by weight alone: heavier listeners run first, listeners sharing
// a weight run in registration order, and listeners registered without a
// weight run last.
//
// # Registration Names
//
// The weight rides in the name's suffix (see the weight package for the full
// grammar):
//
//	e := emitter.New()
//	e.On("deploy.2", emitter.Func(notify))   // weight 2
//	e.On("deploy", emitter.Func(audit))      // no weight, delivered last
//	e.On("deploy.1", emitter.Func(record))   // weight 1
//	e.Emit("deploy", id)                     // notify, record, audit
//
// Emit always takes the bare key; the weighted name exists only at
// registration time.
//
// # Dispatch Semantics
//
// Dispatch is synchronous. The delivery sequence for one Emit call is
// computed in full before the first listener runs, so a listener that
// subscribes or unsubscribes mid-dispatch (including its own once-removal)
// influences later calls only. Listener panics propagate to the Emit caller
// unless a panic handler is installed with WithPanicHandler.
//
// # Errors
//
// Only On, Once and OffAll can fail, and only with *InvalidArgumentError
// identifying the listener or the event name as the rejected argument. Off,
// Emit and OffAllMatch treat unknown keys as silent no-ops.
package emitter
