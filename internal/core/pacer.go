package core

import "time"

// Pacer caps the tick rate. It computes how much of the frame budget is left
// after a tick's work so the caller can yield for the remainder.
type Pacer struct {
	target time.Duration
}

// NewPacer creates a pacer for the given tick rate. Non-positive rates fall
// back to 60 ticks per second.
func NewPacer(tickRate int) Pacer {
	return Pacer{target: RuntimeConfig{TickRate: tickRate}.FrameTime()}
}

// Target returns the frame budget.
func (p Pacer) Target() time.Duration {
	return p.target
}

// Remaining returns the time left in the frame that started at frameStart.
// Zero means the frame is already over budget.
func (p Pacer) Remaining(frameStart, now time.Time) time.Duration {
	left := frameStart.Add(p.target).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
