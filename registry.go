package sigwait

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// Action is a handler invoked by the listen loop in ordinary goroutine
// context; no async-signal-safety restrictions apply to its body. State an
// Action captures by reference must outlive its registration and any call
// to Listen.
type Action func()

// handlerEntry is one registry slot: the action to run when its signal is
// consumed and whether consumption terminates the listen loop.
type handlerEntry struct {
	action    Action
	terminate bool
}

// SetHandler registers action for sig and adds sig to the monitored set.
// If terminate is true, consuming sig stops the listen loop after the
// action returns. Re-registering a signal overwrites the previous entry;
// only the latest action and flag are honored.
//
// Signals the OS refuses to let a process intercept (SIGKILL, SIGSTOP) and
// numbers outside the platform's signal range are rejected, leaving the
// registry unchanged.
func (l *Listener) SetHandler(sig syscall.Signal, action Action, terminate bool) error {
	if err := checkSignal(sig); err != nil {
		return err
	}
	l.handlers[sig] = handlerEntry{action: action, terminate: terminate}

	return nil
}

// SetTerminateSignal monitors sig and stops the listen loop on delivery
// without running any caller logic. It is equivalent to
// SetHandler(sig, nil, true).
func (l *Listener) SetTerminateSignal(sig syscall.Signal) error {
	return l.SetHandler(sig, nil, true)
}

// SetSigIgnore monitors sig and consumes it with a no-op. The signal still
// interrupts the wait loop; it is not given the OS "always ignore"
// disposition, so deliveries produce a wakeup with no user-visible effect.
// It is equivalent to SetHandler(sig, nil, false).
func (l *Listener) SetSigIgnore(sig syscall.Signal) error {
	return l.SetHandler(sig, nil, false)
}

// checkSignal rejects signal numbers that can never be monitored.
func checkSignal(sig syscall.Signal) error {
	if sig <= 0 || sig > sigMax {
		return fmt.Errorf("%w: %d", ErrInvalidSignal, int(sig))
	}
	if reservedSignal(sig) {
		return fmt.Errorf("%w: %s", ErrReservedSignal, unix.SignalName(sig))
	}

	return nil
}
