//go:build darwin

package sigwait

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// sigMax is the highest deliverable signal number on Darwin, which has no
// real-time signal range.
const sigMax = syscall.Signal(31)

// reservedSignal reports whether the OS fixes sig to an unblockable,
// uncatchable disposition.
func reservedSignal(sig syscall.Signal) bool {
	return sig == unix.SIGKILL || sig == unix.SIGSTOP
}

// sigsetAdd sets the bit for sig. Signal numbers are 1-indexed; bit 0
// corresponds to signal 1.
func sigsetAdd(set *unix.Sigset_t, sig syscall.Signal) {
	*set |= 1 << (uint32(sig) - 1)
}

// sigsetContains reports whether the bit for sig is set.
func sigsetContains(set *unix.Sigset_t, sig syscall.Signal) bool {
	return *set&(1<<(uint32(sig)-1)) != 0
}

// threadBlockAll sets the calling thread's signal mask to block every
// signal. Threads created afterwards inherit the mask.
func threadBlockAll() error {
	var set unix.Sigset_t
	for sig := syscall.Signal(1); sig <= sigMax; sig++ {
		sigsetAdd(&set, sig)
	}

	return unix.PthreadSigmask(unix.SIG_SETMASK, &set, nil)
}

// threadApplyMask replaces the calling thread's signal mask with exactly
// the given set.
func threadApplyMask(sigs []syscall.Signal) error {
	var set unix.Sigset_t
	for _, sig := range sigs {
		sigsetAdd(&set, sig)
	}

	return unix.PthreadSigmask(unix.SIG_SETMASK, &set, nil)
}
