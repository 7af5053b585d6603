package sigwait

import (
	"fmt"
	"time"
)

// defaultTimeout bounds the wait when no timeout handler has been
// configured: one wakeup every ten minutes.
const defaultTimeout = 600 * time.Second

// timeoutSpec pairs the wait bound with the fallback action that runs when
// the bound elapses with no monitored signal pending.
type timeoutSpec struct {
	wait   time.Duration
	action Action
}

// SetTimeoutHandler replaces the current timeout policy. The action runs
// whenever d elapses with no monitored signal pending, and the window
// re-arms after every wakeup; it measures idle time since the last event,
// not an absolute deadline.
//
// A zero duration is accepted and makes the action fire continuously while
// no signal is pending, a valid but degenerate configuration. Negative
// durations are rejected.
func (l *Listener) SetTimeoutHandler(d time.Duration, action Action) error {
	if d < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimeout, d)
	}
	l.timeout = timeoutSpec{wait: d, action: action}

	return nil
}
