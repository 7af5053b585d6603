package sigwait

import (
	"os"
	"os/signal"
)

// SignalSource is an interface used to abstract signal subscription.
// It is primarily useful for injecting mocks during testing.
type SignalSource interface {
	// Notify registers the provided channel to receive the given signals.
	// With no signals, the channel receives every incoming signal.
	Notify(ch chan<- os.Signal, sig ...os.Signal)

	// Reset undoes the effect of any prior Notify for the given signals
	// and restores their OS-default dispositions.
	Reset(sig ...os.Signal)
}

// defaultSignalSource is the production implementation of SignalSource.
// It delegates to the standard library's os/signal package.
type defaultSignalSource struct{}

// Notify registers the provided channel to receive the specified OS signals.
func (defaultSignalSource) Notify(ch chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(ch, sig...)
}

// Reset restores the OS-default dispositions for the specified signals.
func (defaultSignalSource) Reset(sig ...os.Signal) {
	signal.Reset(sig...)
}
