package match

import "go.uber.org/atomic"

// StopSignal is a process-wide cancellation capability injected into the driver rather than
// read from a package-level global, so tests can drive it deterministically and multiple
// drivers in the same process can share or not share one as the caller sees fit (§9).
type StopSignal struct {
	stop *atomic.Bool
}

// NewStopSignal creates an unset stop signal.
func NewStopSignal() StopSignal {
	return StopSignal{stop: atomic.NewBool(false)}
}

// Set marks the signal as tripped. Idempotent.
func (s StopSignal) Set() {
	s.stop.Store(true)
}

// IsSet reports whether the signal has been tripped.
func (s StopSignal) IsSet() bool {
	return s.stop.Load()
}
