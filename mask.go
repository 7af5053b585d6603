package sigwait

import (
	"fmt"
	"os"
	"syscall"
)

// captureAll is the moral equivalent of a block-all mask: once the pending
// channel is subscribed to every signal, no catchable signal can reach its
// default disposition. The calling thread's OS-level mask is set to
// block-all first, so threads created afterwards (for example by cgo
// libraries) inherit a fully blocked mask; the thread mask is applied
// before the subscription so a failure leaves the listener untouched.
func (l *Listener) captureAll() error {
	if err := threadBlockAll(); err != nil {
		return fmt.Errorf("sigwait: block all signals: %w", err)
	}
	l.source.Notify(l.pending)

	return nil
}

// applyMonitoredMask replaces the capture-all subscription with exactly the
// registry's key set. Every signal absent from the set reverts to its
// OS-default disposition for the remainder of the process: a replacement,
// not a narrowing. The monitored set is subscribed before the rest is
// released, so no monitored signal can slip through to a default
// disposition during the swap.
func (l *Listener) applyMonitoredMask() error {
	// The thread mask is the only fallible step; apply it first so a
	// failure leaves the subscriptions untouched.
	if err := threadApplyMask(l.monitoredSet()); err != nil {
		return fmt.Errorf("sigwait: set monitored signal mask: %w", err)
	}

	monitored := make([]os.Signal, 0, len(l.handlers))
	for sig := range l.handlers {
		monitored = append(monitored, sig)
	}
	l.source.Notify(l.pending, monitored...)

	others := make([]os.Signal, 0, int(sigMax)-len(monitored))
	for sig := syscall.Signal(1); sig <= sigMax; sig++ {
		if _, ok := l.handlers[sig]; !ok {
			others = append(others, sig)
		}
	}
	l.source.Reset(others...)

	return nil
}

// monitoredSet returns the registry's key set, the signals the wait
// primitive consumes. Order is irrelevant.
func (l *Listener) monitoredSet() []syscall.Signal {
	set := make([]syscall.Signal, 0, len(l.handlers))
	for sig := range l.handlers {
		set = append(set, sig)
	}

	return set
}
