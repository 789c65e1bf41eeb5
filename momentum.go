package swirl

import "math"

// Momentum decay. Spin left behind by a drag is not reset when the gesture
// ends; it shrinks exponentially on a fixed-period tick until it reaches an
// exact-zero rest state. Decay runs whether or not a drag is active: a
// drag impulse and a decay tick both read-modify-write spin through the
// container, and whichever lands later in a given period wins.

// Tick applies one decay step: spin below the rest epsilon snaps to exactly
// zero (no asymptotic jitter), anything larger is multiplied by the decay
// factor. Safe to call from any goroutine; usually driven by Start or
// Advance rather than directly.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	t := &e.tun
	e.state.UpdateSpin(func(spin float64) float64 {
		if math.Abs(spin) < t.RestEpsilon {
			return 0
		}
		return spin * t.DecayFactor
	})
}

// Advance accumulates dt seconds of wall time and runs one decay tick per
// elapsed DecayStep, carrying the remainder. Frame-driven hosts call this
// once per frame instead of running the background ticker, which keeps
// decay on the game goroutine and frame-rate independent.
func (e *Engine) Advance(dt float64) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	step := e.tun.DecayStep.Seconds()
	if step <= 0 {
		e.mu.Unlock()
		return
	}
	e.pending += dt
	var steps int
	for e.pending >= step {
		e.pending -= step
		steps++
	}
	e.mu.Unlock()

	for i := 0; i < steps; i++ {
		e.Tick()
	}
}
