package sigwait

import "errors"

// Configuration errors: the requested signal or timeout can never be valid,
// regardless of listener state.
var (
	// ErrInvalidSignal indicates a signal number outside the range this
	// platform defines.
	ErrInvalidSignal = errors.New("sigwait: invalid signal number")

	// ErrReservedSignal indicates a signal whose disposition the OS does
	// not allow a process to change, such as SIGKILL or SIGSTOP.
	ErrReservedSignal = errors.New("sigwait: signal cannot be intercepted")

	// ErrInvalidTimeout indicates a negative timeout duration.
	ErrInvalidTimeout = errors.New("sigwait: negative timeout")
)

// State errors: the operation was invoked while the listener is in a state
// that cannot serve it. Neither is recoverable by the listener itself;
// misconfiguration never proceeds silently.
var (
	// ErrNotInitialized indicates Listen was called before Init succeeded,
	// or again after a previous Listen terminated.
	ErrNotInitialized = errors.New("sigwait: listener not initialized")

	// ErrNoHandlers indicates Listen was called with an empty registry.
	ErrNoHandlers = errors.New("sigwait: no signal handlers registered")
)
