package match

import "time"

// Player is one side's clock, color, accumulated result, and timeout budget. Lifecycle is
// one match (§3).
type Player struct {
	Handle EngineHandle
	Color  string // "w" or "b"

	tc        TimeControl
	remaining time.Duration
	used      time.Duration

	Result Result
}

// NewPlayer creates a player with the given time control's base budget as its initial
// remaining time.
func NewPlayer(h EngineHandle, color string, tc TimeControl) *Player {
	return &Player{Handle: h, Color: color, tc: tc, remaining: tc.Base}
}

// Config is a convenience accessor over the underlying handle's static descriptor.
func (p *Player) Config() EngineConfig {
	return p.Handle.Config()
}

// TimeControl returns the player's time control, for Go().
func (p *Player) TimeControl() TimeControl {
	return p.tc
}

// UpdateTime subtracts the measured elapsed wall time from the player's remaining budget,
// then credits the increment (as real clocks do, regardless of whether the move beat the
// deadline). Returns false iff remaining time went below zero: a timeout.
func (p *Player) UpdateTime(elapsed time.Duration) bool {
	p.remaining -= elapsed
	timeout := p.remaining < 0
	p.remaining += p.tc.Increment
	return !timeout
}

// TimeoutThreshold returns the deadline read_engine should use: remaining time plus a
// configured grace period, absorbing scheduling jitter that isn't the engine's fault.
func (p *Player) TimeoutThreshold(graceMS int) time.Duration {
	d := p.remaining + time.Duration(graceMS)*time.Millisecond
	if d < 0 {
		return 0
	}
	return d
}

// Remaining returns the player's current remaining time budget.
func (p *Player) Remaining() time.Duration {
	return p.remaining
}
