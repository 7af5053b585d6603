//go:build linux

package sigwait

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// sigMax is the highest deliverable signal number, including the Linux
// real-time range.
const sigMax = syscall.Signal(64)

// wordBits is the width of one Sigset_t word: 64 on 64-bit kernels, 32 on
// 32-bit ones.
const wordBits = uint(8 * unsafe.Sizeof(unix.Sigset_t{}.Val[0]))

// reservedSignal reports whether the OS fixes sig to an unblockable,
// uncatchable disposition.
func reservedSignal(sig syscall.Signal) bool {
	return sig == unix.SIGKILL || sig == unix.SIGSTOP
}

// sigsetAdd sets the bit for sig. Signal numbers are 1-indexed; bit 0
// corresponds to signal 1.
func sigsetAdd(set *unix.Sigset_t, sig syscall.Signal) {
	n := uint(sig) - 1
	set.Val[n/wordBits] |= 1 << (n % wordBits)
}

// sigsetContains reports whether the bit for sig is set.
func sigsetContains(set *unix.Sigset_t, sig syscall.Signal) bool {
	n := uint(sig) - 1

	return set.Val[n/wordBits]&(1<<(n%wordBits)) != 0
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
