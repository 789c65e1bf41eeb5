package swirl

import (
	"sync"
	"time"
)

// Engine interprets raw pointer, touch, and wheel input into normalized
// interaction signals and writes them to a SceneState. It owns only the
// transient pointer tracker and the last centroid/distance/drag references;
// every long-lived signal lives in the container.
//
// All handler methods and decay ticks are serialized by one internal mutex:
// each runs to completion atomically, in call order. Frame-driven hosts call
// the handlers and Advance from their game loop; headless hosts can instead
// Start the background decay ticker and must Close the engine when done.
type Engine struct {
	mu    sync.Mutex
	state SceneState
	tun   Tuning

	surfaceW float64
	surfaceH float64

	tracker pointerTracker

	// Multi-pointer move references. Valid only between consecutive
	// multi-pointer moves; cleared on hover and full release.
	lastCentroid Vec2
	hasCentroid  bool
	lastDist     float64
	hasDist      bool

	// Single-pointer drag reference.
	lastDrag Vec2
	hasDrag  bool

	// Fixed-timestep accumulator for Advance.
	pending float64

	now func() time.Time

	running bool
	closed  bool
	done    chan struct{}
}

// NewEngine creates an engine writing to state, with surface dimensions in
// pixels used for pointer normalization. The decay ticker is not started;
// frame-driven hosts drive decay through Advance instead.
func NewEngine(state SceneState, tun Tuning, surfaceW, surfaceH float64) *Engine {
	return &Engine{
		state:    state,
		tun:      tun,
		surfaceW: surfaceW,
		surfaceH: surfaceH,
		now:      time.Now,
	}
}

// SetSurfaceSize updates the dimensions used for pointer normalization,
// e.g. after a window resize.
func (e *Engine) SetSurfaceSize(w, h float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.surfaceW = w
	e.surfaceH = h
}

// Tuning returns the engine's gesture tuning.
func (e *Engine) Tuning() Tuning {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tun
}

// SetClock overrides the time source used to stamp clicks. Intended for
// tests and replay tooling.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// Start launches the background decay ticker. It fires every
// Tuning.DecayStep and shares the engine mutex with the input handlers, so
// ticks interleave with events at handler boundaries. No-op if already
// running or closed.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running || e.closed {
		return
	}
	e.running = true
	e.done = make(chan struct{})
	go e.runTicker(e.done, e.tun.DecayStep)
}

func (e *Engine) runTicker(done chan struct{}, step time.Duration) {
	t := time.NewTicker(step)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			e.Tick()
		}
	}
}

// Close tears the engine down: the decay ticker is stopped and every
// handler becomes a no-op, so nothing can mutate the container afterwards.
// Close is idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	running := e.running
	e.running = false
	done := e.done
	e.mu.Unlock()

	if running {
		close(done)
	}
}

// normalize converts a raw surface coordinate to the [0,1]x[0,1] space
// (approximately; coordinates outside the surface are not clamped).
// Callers hold e.mu.
func (e *Engine) normalize(x, y float64) Vec2 {
	w, h := e.surfaceW, e.surfaceH
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Vec2{X: x / w, Y: y / h}
}
