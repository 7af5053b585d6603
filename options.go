package sigwait

import "log/slog"

// Option configures a Listener at construction time.
type Option func(*Listener)

// WithLogger sets the logger used for loop diagnostics. By default all
// output is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Listener) {
		if logger != nil {
			l.log = logger
		}
	}
}

// WithSignalSource replaces the subscription backend. It is primarily
// useful for injecting mocks during testing.
func WithSignalSource(src SignalSource) Option {
	return func(l *Listener) {
		if src != nil {
			l.source = src
		}
	}
}

// WithQueueDepth sets the capacity of the pending-signal channel. The
// default of 1 follows the os/signal convention: repeated deliveries of the
// same signal before the loop consumes them coalesce, giving at least one
// wakeup per quiescent period rather than an exact count. Values below 1
// are ignored.
func WithQueueDepth(n int) Option {
	return func(l *Listener) {
		if n > 0 {
			l.queueDepth = n
		}
	}
}
