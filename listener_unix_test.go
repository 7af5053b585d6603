//go:build linux || darwin

package sigwait

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// End-to-end delivery through the real os/signal backend: the process
// signals itself and the listener consumes the deliveries synchronously.
func TestListenRealDelivery(t *testing.T) {
	l := New()
	require.NoError(t, l.Init())

	usr1 := make(chan struct{}, 1)
	require.NoError(t, l.SetHandler(unix.SIGUSR1, func() {
		select {
		case usr1 <- struct{}{}:
		default:
		}
	}, false))
	require.NoError(t, l.SetTerminateSignal(unix.SIGUSR2))

	errCh := make(chan error, 1)
	go func() { errCh <- l.Listen() }()

	// Give the loop a moment to install the monitored subscription.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGUSR1))
	select {
	case <-usr1:
	case <-time.After(2 * time.Second):
		t.Fatal("SIGUSR1 handler did not run")
	}

	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGUSR2))
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("listen did not terminate on SIGUSR2")
	}
}
