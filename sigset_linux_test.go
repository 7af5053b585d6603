//go:build linux

package sigwait

import (
	"runtime"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSigsetAddBits(t *testing.T) {
	var set unix.Sigset_t
	for _, sig := range []syscall.Signal{1, 31, 32, 33, 64} {
		assert.False(t, sigsetContains(&set, sig), "signal %d set before add", sig)
		sigsetAdd(&set, sig)
		assert.True(t, sigsetContains(&set, sig), "signal %d missing after add", sig)
	}
	assert.False(t, sigsetContains(&set, syscall.SIGINT))
}

func TestThreadMaskRoundTrip(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var saved unix.Sigset_t
	require.NoError(t, unix.PthreadSigmask(unix.SIG_SETMASK, nil, &saved))
	defer func() {
		_ = unix.PthreadSigmask(unix.SIG_SETMASK, &saved, nil)
	}()

	require.NoError(t, threadBlockAll())

	var cur unix.Sigset_t
	require.NoError(t, unix.PthreadSigmask(unix.SIG_SETMASK, nil, &cur))
	for sig := syscall.Signal(1); sig <= sigMax; sig++ {
		if reservedSignal(sig) {
			// The kernel silently refuses to block these.
			continue
		}
		assert.True(t, sigsetContains(&cur, sig), "signal %d not blocked", sig)
	}

	require.NoError(t, threadApplyMask([]syscall.Signal{unix.SIGUSR1, unix.SIGUSR2}))
	require.NoError(t, unix.PthreadSigmask(unix.SIG_SETMASK, nil, &cur))
	assert.True(t, sigsetContains(&cur, unix.SIGUSR1))
	assert.True(t, sigsetContains(&cur, unix.SIGUSR2))
	assert.False(t, sigsetContains(&cur, unix.SIGHUP), "mask replacement must drop unmonitored signals")
}
