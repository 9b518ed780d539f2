package emitter

import "log/slog"

// PanicHandler is called with the event key and the recovered value when a
// listener panics and recovery is enabled.
type PanicHandler func(key string, recovered any)

// Option configures an Emitter.
type Option func(*config)

// config contains configuration for an emitter.
type config struct {
	// logger receives debug records for subscribe, remove and emit.
	logger *slog.Logger

	// panicHandler, when set, recovers listener panics. When nil a
	// panicking listener aborts dispatch, matching the synchronous
	// fail-fast contract.
	panicHandler PanicHandler
}

func defaultConfig() config {
	return config{}
}

// WithLogger attaches a structured logger. Nil leaves logging disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithPanicHandler enables panic recovery during dispatch and routes the
// recovered value to h.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		if h != nil {
			c.panicHandler = h
		}
	}
}
