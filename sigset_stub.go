//go:build unix && !linux && !darwin

package sigwait

import "syscall"

// Thread-level masking is not wired on this platform; the subscription swap
// alone provides the monitored-set semantics.

// sigMax is the highest deliverable signal number assumed here.
const sigMax = syscall.Signal(31)

// reservedSignal reports whether the OS fixes sig to an unblockable,
// uncatchable disposition.
func reservedSignal(sig syscall.Signal) bool {
	return sig == syscall.SIGKILL || sig == syscall.SIGSTOP
}

func threadBlockAll() error { return nil }

func threadApplyMask([]syscall.Signal) error { return nil }
