package swirl

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var hostEpoch = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestHost() (*Host, *Engine, *fakeState) {
	e, state := newTestEngine()
	h := NewHost(e)
	return h, e, state
}

// --- Mouse synthesis ---

func TestHostMouseDrag(t *testing.T) {
	h, _, state := newTestHost()

	h.feed(frameInput{mouseX: 100, mouseY: 100, buttons: ButtonLeft}, hostEpoch)
	h.feed(frameInput{mouseX: 80, mouseY: 100, buttons: ButtonLeft}, hostEpoch)
	h.feed(frameInput{mouseX: 80, mouseY: 100}, hostEpoch)

	if math.Abs(state.spin-0.2) > eps {
		t.Errorf("spin = %v, want 0.2 from a 20px drag", state.spin)
	}
	if state.clears != 1 {
		t.Error("release should clear the pointer signal")
	}
	// 20px of travel is past the dead zone: no click.
	if state.hoverResets != 0 {
		t.Error("a drag must not emit a click")
	}
}

func TestHostMouseClick(t *testing.T) {
	h, _, state := newTestHost()

	h.feed(frameInput{mouseX: 100, mouseY: 100, buttons: ButtonLeft}, hostEpoch)
	h.feed(frameInput{mouseX: 102, mouseY: 101}, hostEpoch.Add(50*time.Millisecond))

	// 2.2px of travel is inside the dead zone.
	if state.hoverResets != 1 {
		t.Error("press+release within the dead zone should emit a click")
	}
}

func TestHostMouseHeldWithoutMotionEmitsNothing(t *testing.T) {
	h, _, state := newTestHost()

	h.feed(frameInput{mouseX: 100, mouseY: 100, buttons: ButtonLeft}, hostEpoch)
	sets := state.pointerSets
	h.feed(frameInput{mouseX: 100, mouseY: 100, buttons: ButtonLeft}, hostEpoch)

	if state.pointerSets != sets {
		t.Error("a held, motionless mouse should not synthesize moves")
	}
}

// --- Double-click pairing ---

func clickAt(h *Host, x, y float64, at time.Time) {
	h.feed(frameInput{mouseX: x, mouseY: y, buttons: ButtonLeft}, at)
	h.feed(frameInput{mouseX: x, mouseY: y}, at)
}

func TestHostDoubleClick(t *testing.T) {
	h, _, state := newTestHost()

	clickAt(h, 100, 100, hostEpoch)
	clickAt(h, 105, 100, hostEpoch.Add(200*time.Millisecond))

	if state.toggles != 1 {
		t.Errorf("toggles = %d, want 1 from a double-click", state.toggles)
	}

	// The pair was consumed: a third click starts a fresh pairing.
	clickAt(h, 105, 100, hostEpoch.Add(350*time.Millisecond))
	if state.toggles != 1 {
		t.Errorf("toggles = %d, triple-click should not double-toggle", state.toggles)
	}
}

func TestHostSlowClicksDoNotPair(t *testing.T) {
	h, _, state := newTestHost()

	clickAt(h, 100, 100, hostEpoch)
	clickAt(h, 100, 100, hostEpoch.Add(time.Second))

	if state.toggles != 0 {
		t.Error("clicks a second apart must not pair")
	}
}

func TestHostDistantClicksDoNotPair(t *testing.T) {
	h, _, state := newTestHost()

	clickAt(h, 100, 100, hostEpoch)
	clickAt(h, 400, 100, hostEpoch.Add(100*time.Millisecond))

	if state.toggles != 0 {
		t.Error("clicks far apart on screen must not pair")
	}
}

// --- Touch synthesis ---

func TestHostTouchTap(t *testing.T) {
	h, _, state := newTestHost()

	h.feed(frameInput{touches: []touchPoint{{id: 7, x: 50, y: 50}}}, hostEpoch)
	if !state.hasPointer {
		t.Fatal("touch contact should emit a pointer signal")
	}

	h.feed(frameInput{}, hostEpoch.Add(100*time.Millisecond))
	if state.hoverResets != 1 {
		t.Error("a short motionless contact should count as a tap")
	}
	if state.clears != 1 {
		t.Error("lifting the only contact should clear the pointer signal")
	}
}

func TestHostTouchPinch(t *testing.T) {
	h, _, state := newTestHost()

	h.feed(frameInput{touches: []touchPoint{
		{id: 1, x: 100, y: 100},
		{id: 2, x: 200, y: 100},
	}}, hostEpoch)
	h.feed(frameInput{touches: []touchPoint{
		{id: 1, x: 100, y: 50},
		{id: 2, x: 250, y: 50},
	}}, hostEpoch)

	if math.Abs(state.pan.X-0.5) > eps || math.Abs(state.pan.Y-1.0) > eps {
		t.Errorf("pan = %+v, want (0.5, 1.0)", state.pan)
	}
	if math.Abs(state.zoom-(-0.5)) > eps {
		t.Errorf("zoom = %v, want -0.5", state.zoom)
	}
}

func TestHostTouchSlotReuse(t *testing.T) {
	h, _, _ := newTestHost()

	h.feed(frameInput{touches: []touchPoint{{id: 7, x: 50, y: 50}}}, hostEpoch)
	if got := h.slotOf(ebiten.TouchID(7)); got != 1 {
		t.Fatalf("first contact slot = %d, want 1", got)
	}

	h.feed(frameInput{}, hostEpoch)
	h.feed(frameInput{touches: []touchPoint{{id: 8, x: 60, y: 60}}}, hostEpoch)
	if got := h.slotOf(ebiten.TouchID(8)); got != 1 {
		t.Errorf("slot after release = %d, want 1 reused", got)
	}
}

func TestHostTouchDragSuppressesTap(t *testing.T) {
	h, _, state := newTestHost()

	h.feed(frameInput{touches: []touchPoint{{id: 1, x: 100, y: 100}}}, hostEpoch)
	h.feed(frameInput{touches: []touchPoint{{id: 1, x: 160, y: 100}}}, hostEpoch)
	h.feed(frameInput{}, hostEpoch)

	if state.hoverResets != 0 {
		t.Error("a 60px swipe must not emit a tap")
	}
	// The swipe fed the spin impulse instead.
	if math.Abs(state.spin-(-0.6)) > eps {
		t.Errorf("spin = %v, want -0.6", state.spin)
	}
}

// --- Wheel ---

func TestHostWheelZoom(t *testing.T) {
	h, _, state := newTestHost()

	h.feed(frameInput{mouseX: 500, mouseY: 250, wheelY: 1}, hostEpoch)

	// One notch up is -120px deltaY: zoom += 0.24.
	if math.Abs(state.zoom-0.24) > eps {
		t.Errorf("zoom = %v, want 0.24", state.zoom)
	}
	if math.Abs(state.pointer.X-0.5) > eps || math.Abs(state.pointer.Y-0.5) > eps {
		t.Errorf("pointer = %+v, want (0.5, 0.5)", state.pointer)
	}
}
