// Package sigwait provides a synchronous, single-consumer dispatcher for
// Unix signals. A process captures all signals up front (before spawning
// worker threads), then delegates exactly one goroutine to consume a
// configured subset of them, running ordinary handler code in normal
// goroutine context instead of inside an asynchronous signal handler.
//
// Typical use: construct a Listener, call Init before any worker threads
// exist, register handlers, then call Listen from the goroutine that owns
// signal consumption. Listen blocks until a handler registered with the
// terminate flag fires.
package sigwait

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// listenerState tracks the listener's lifecycle. Transitions are strictly
// forward: created -> initialized -> listening -> terminated.
type listenerState uint8

const (
	stateCreated listenerState = iota
	stateInitialized
	stateListening
	stateTerminated
)

func (s listenerState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateInitialized:
		return "initialized"
	case stateListening:
		return "listening"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Listener owns a handler registry, a timeout policy, and the listen loop
// that dispatches into them.
//
// A Listener is not safe for concurrent use. All configuration must
// complete before Listen is invoked, and exactly one goroutine may call
// Listen. Synchronization with worker goroutines (for example, notifying
// them from a handler) is the caller's responsibility inside its actions.
type Listener struct {
	state      listenerState
	handlers   map[syscall.Signal]handlerEntry
	timeout    timeoutSpec
	pending    chan os.Signal
	queueDepth int
	source     SignalSource
	log        *slog.Logger
}

// New constructs a Listener in the created state. The zero configuration
// uses the real os/signal backend, a 600-second no-op timeout policy, a
// pending queue of depth 1, and a discarded logger.
func New(opts ...Option) *Listener {
	l := &Listener{
		handlers:   make(map[syscall.Signal]handlerEntry),
		timeout:    timeoutSpec{wait: defaultTimeout},
		queueDepth: 1,
		source:     defaultSignalSource{},
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.pending = make(chan os.Signal, l.queueDepth)

	return l
}

// Init diverts every catchable signal away from its default disposition and
// into the listener's pending queue, and sets the calling thread's signal
// mask to block-all so that threads created afterwards inherit a fully
// blocked mask.
//
// Init must run before any worker thread is spawned: a thread's initial
// mask is fixed at creation time, so the ordering is an obligation on the
// caller that the listener cannot enforce. On failure the listener's state
// is left unchanged.
func (l *Listener) Init() error {
	if err := l.captureAll(); err != nil {
		return err
	}
	l.state = stateInitialized
	l.log.Debug("all signals captured")

	return nil
}

// Listen blocks the calling goroutine, consuming monitored signals and
// running their actions synchronously until an entry registered with the
// terminate flag fires. There is no other way out of the loop.
//
// On entry the capture-all subscription installed by Init is replaced with
// exactly the monitored set; every other signal reverts to its OS-default
// disposition for the remainder of the process, and that monitored-only
// state remains in place after Listen returns. Callers needing further
// changes must make them themselves.
//
// The OS may coalesce repeated deliveries of the same signal before the
// loop consumes them, so callers are guaranteed at least one action
// invocation per quiescent period, not an exact count.
//
// Actions run on the listening goroutine and block further signal
// consumption for their duration; work that must not stall responsiveness
// should be handed off rather than done inline.
func (l *Listener) Listen() error {
	if l.state != stateInitialized {
		return fmt.Errorf("%w: state is %s", ErrNotInitialized, l.state)
	}
	if len(l.handlers) == 0 {
		return ErrNoHandlers
	}

	// Pin the loop to one OS thread so the monitored mask stays with it.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := l.applyMonitoredMask(); err != nil {
		return err
	}
	l.state = stateListening
	l.log.Debug("listening", "monitored", len(l.handlers), "timeout", l.timeout.wait)

	for {
		timer := time.NewTimer(l.timeout.wait)
		select {
		case raw := <-l.pending:
			timer.Stop()
			sig, ok := raw.(syscall.Signal)
			if !ok {
				// Deliveries on Unix are always syscall.Signal; anything
				// else is a foreign wakeup. Re-enter the wait.
				l.log.Debug("ignoring non-signal wakeup", "value", raw)
				continue
			}
			entry, ok := l.handlers[sig]
			if !ok {
				// A signal outside the monitored set can only have been
				// queued before the subscription swap. Consume and retry.
				l.log.Debug("ignoring unmonitored signal", "signal", unix.SignalName(sig))
				continue
			}
			l.log.Debug("dispatching signal",
				"signal", unix.SignalName(sig), "terminate", entry.terminate)
			if entry.action != nil {
				entry.action()
			}
			if entry.terminate {
				l.state = stateTerminated

				return nil
			}
		case <-timer.C:
			l.log.Debug("wait timed out", "after", l.timeout.wait)
			if l.timeout.action != nil {
				l.timeout.action()
			}
		}
	}
}
