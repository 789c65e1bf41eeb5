package swirl

import (
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SceneState is the capability set the engine needs from the application's
// interaction-state container. Accumulators take a function of the previous
// stored value rather than a literal: the container must apply the transform
// to its current value, not a stale snapshot, so engine deltas and decay
// compose with whatever batching the container does.
//
// Implementations must tolerate calls from whichever goroutine drives the
// engine (the game loop, or the background decay ticker).
type SceneState interface {
	// SetPointer publishes the current normalized pointer position.
	SetPointer(p Vec2)
	// ClearPointer publishes that no pointer is active.
	ClearPointer()
	// ResetHoverProgress zeroes the hover-driven accumulation.
	ResetHoverProgress()
	// SetClickTime records the moment of the latest click.
	SetClickTime(t time.Time)
	// UpdateSpin applies f to the stored rotational momentum.
	UpdateSpin(f func(prev float64) float64)
	// UpdatePan applies f to the stored pan offset.
	UpdatePan(f func(prev Vec2) Vec2)
	// UpdateZoom applies f to the stored zoom offset.
	UpdateZoom(f func(prev float64) float64)
	// TogglePhase flips the scene phase to its opposite state.
	TogglePhase()
}

// Signals is a point-in-time copy of every interaction signal.
type Signals struct {
	Pointer       Vec2
	HasPointer    bool
	HoverProgress float64
	ClickTime     time.Time
	Spin          float64
	Pan           Vec2
	Zoom          float64
	Phase         ScenePhase
}

// hoverRampSeconds is how long the pointer must dwell for hover progress to
// ramp from 0 to 1.
const hoverRampSeconds = 2.5

// MemoryState is a goroutine-safe in-memory SceneState. It is the container
// used by the demos and a convenient default for applications that do not
// bring their own store.
//
// Hover progress ramps from 0 to 1 while a pointer signal is present,
// advanced by AdvanceHover from the host frame loop; a click restarts the
// ramp from zero.
type MemoryState struct {
	mu sync.Mutex

	pointer    Vec2
	hasPointer bool
	clickTime  time.Time
	spin       float64
	pan        Vec2
	zoom       float64
	phase      ScenePhase

	hoverProgress float64
	hoverTween    *gween.Tween
}

// NewMemoryState creates an empty container in the formed phase.
func NewMemoryState() *MemoryState {
	return &MemoryState{
		hoverTween: gween.New(0, 1, hoverRampSeconds, ease.OutQuad),
	}
}

// SetPointer implements SceneState.
func (m *MemoryState) SetPointer(p Vec2) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointer = p
	m.hasPointer = true
}

// ClearPointer implements SceneState.
func (m *MemoryState) ClearPointer() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hasPointer = false
}

// ResetHoverProgress implements SceneState. The ramp restarts from zero.
func (m *MemoryState) ResetHoverProgress() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hoverProgress = 0
	m.hoverTween = gween.New(0, 1, hoverRampSeconds, ease.OutQuad)
}

// SetClickTime implements SceneState.
func (m *MemoryState) SetClickTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clickTime = t
}

// UpdateSpin implements SceneState.
func (m *MemoryState) UpdateSpin(f func(prev float64) float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spin = f(m.spin)
}

// UpdatePan implements SceneState.
func (m *MemoryState) UpdatePan(f func(prev Vec2) Vec2) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pan = f(m.pan)
}

// UpdateZoom implements SceneState.
func (m *MemoryState) UpdateZoom(f func(prev float64) float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zoom = f(m.zoom)
}

// TogglePhase implements SceneState.
func (m *MemoryState) TogglePhase() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase == PhaseFormed {
		m.phase = PhaseScattered
	} else {
		m.phase = PhaseFormed
	}
}

// AdvanceHover advances the hover-progress ramp by dt seconds. Progress only
// accumulates while a pointer signal is present. Call once per frame.
func (m *MemoryState) AdvanceHover(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasPointer || m.hoverTween == nil {
		return
	}
	val, done := m.hoverTween.Update(float32(dt))
	m.hoverProgress = float64(val)
	if done {
		m.hoverTween = nil // ramp complete, hold at 1 until the next reset
	}
}

// Snapshot returns a consistent copy of all signals.
func (m *MemoryState) Snapshot() Signals {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Signals{
		Pointer:       m.pointer,
		HasPointer:    m.hasPointer,
		HoverProgress: m.hoverProgress,
		ClickTime:     m.clickTime,
		Spin:          m.spin,
		Pan:           m.pan,
		Zoom:          m.zoom,
		Phase:         m.phase,
	}
}
