package swirl

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	// wheelNotchPixels converts Ebitengine wheel notches to the pixel-scale
	// deltaY the engine expects.
	wheelNotchPixels = 120.0

	// doubleClickRadius is the maximum distance between two clicks for them
	// to pair into a double-click.
	doubleClickRadius = 32.0
)

// touchPoint is one touch contact observed this frame.
type touchPoint struct {
	id   ebiten.TouchID
	x, y float64
}

// frameInput is a per-frame snapshot of the host input devices. Kept
// separate from the Ebitengine polling so the synthesis logic is testable
// with constructed frames.
type frameInput struct {
	mouseX, mouseY float64
	buttons        Buttons
	touches        []touchPoint
	wheelY         float64 // in notches; positive = scroll up
}

// Host polls Ebitengine input once per frame and synthesizes pointer,
// wheel, click, and double-click events for an Engine. Mouse is pointer 0;
// touch contacts are allocated slots 1-9 for the duration of the contact.
//
// Call Update from your game's Update method:
//
//	func (g *Game) Update() error {
//		g.host.Update()
//		return nil
//	}
type Host struct {
	engine *Engine
	now    func() time.Time

	// Mouse state.
	mouseDown      bool
	pressX, pressY float64
	lastMouseX     float64
	lastMouseY     float64

	// Touch slot allocation.
	touchUsed   [maxPointers]bool
	touchMap    [maxPointers]ebiten.TouchID
	touchStartX [maxPointers]float64
	touchStartY [maxPointers]float64
	touchLastX  [maxPointers]float64
	touchLastY  [maxPointers]float64

	prevTouchIDs []ebiten.TouchID
	touchBuf     []touchPoint

	// Click pairing for double-click detection.
	haveLastClick bool
	lastClickAt   time.Time
	lastClickX    float64
	lastClickY    float64
}

// NewHost creates a host adapter feeding the given engine.
func NewHost(engine *Engine) *Host {
	return &Host{
		engine: engine,
		now:    time.Now,
	}
}

// Update polls input devices, feeds the engine, and advances momentum decay
// by one frame. Call once per Ebitengine update tick.
func (h *Host) Update() {
	h.feed(h.readFrame(), h.now())
	h.engine.Advance(1.0 / float64(ebiten.TPS()))
}

// readFrame snapshots the Ebitengine input state.
func (h *Host) readFrame() frameInput {
	mx, my := ebiten.CursorPosition()

	var buttons Buttons
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= ButtonLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= ButtonRight
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= ButtonMiddle
	}

	h.prevTouchIDs = ebiten.AppendTouchIDs(h.prevTouchIDs[:0])
	h.touchBuf = h.touchBuf[:0]
	for _, tid := range h.prevTouchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		h.touchBuf = append(h.touchBuf, touchPoint{id: tid, x: float64(tx), y: float64(ty)})
	}

	_, wheelY := ebiten.Wheel()

	return frameInput{
		mouseX:  float64(mx),
		mouseY:  float64(my),
		buttons: buttons,
		touches: h.touchBuf,
		wheelY:  wheelY,
	}
}

// feed diffs one input frame against the previous one and emits the
// resulting engine events in a fixed order: mouse, touches, wheel.
func (h *Host) feed(frame frameInput, now time.Time) {
	h.feedMouse(frame, now)
	h.feedTouches(frame, now)

	if frame.wheelY != 0 {
		// Ebitengine reports notches with scroll-up positive; the engine
		// takes pixel deltas with scroll-down positive.
		h.engine.Wheel(frame.mouseX, frame.mouseY, -frame.wheelY*wheelNotchPixels)
	}
}

func (h *Host) feedMouse(frame frameInput, now time.Time) {
	pressed := frame.buttons != 0
	moved := frame.mouseX != h.lastMouseX || frame.mouseY != h.lastMouseY

	switch {
	case pressed && !h.mouseDown:
		h.mouseDown = true
		h.pressX = frame.mouseX
		h.pressY = frame.mouseY
		h.engine.PointerDown(0, frame.mouseX, frame.mouseY, PointerMouse)
	case pressed && h.mouseDown:
		if moved {
			h.engine.PointerMove(0, frame.mouseX, frame.mouseY, frame.buttons)
		}
	case !pressed && h.mouseDown:
		h.mouseDown = false
		h.engine.PointerUp(0)
		dx := frame.mouseX - h.pressX
		dy := frame.mouseY - h.pressY
		if math.Sqrt(dx*dx+dy*dy) <= h.engine.Tuning().ClickDeadZone {
			h.emitClick(frame.mouseX, frame.mouseY, now)
		}
	}

	h.lastMouseX = frame.mouseX
	h.lastMouseY = frame.mouseY
}

func (h *Host) feedTouches(frame frameInput, now time.Time) {
	var activeSlots [maxPointers]bool

	for _, tp := range frame.touches {
		slot := h.slotOf(tp.id)
		if slot < 0 {
			// New contact.
			slot = h.allocSlot(tp.id)
			if slot < 0 {
				continue // all slots busy
			}
			h.touchStartX[slot] = tp.x
			h.touchStartY[slot] = tp.y
			h.touchLastX[slot] = tp.x
			h.touchLastY[slot] = tp.y
			h.engine.PointerDown(slot, tp.x, tp.y, PointerTouch)
		} else if tp.x != h.touchLastX[slot] || tp.y != h.touchLastY[slot] {
			h.touchLastX[slot] = tp.x
			h.touchLastY[slot] = tp.y
			h.engine.PointerMove(slot, tp.x, tp.y, 0)
		}
		activeSlots[slot] = true
	}

	// Lift slots whose contact vanished this frame. A contact that never
	// strayed past the dead zone counts as a tap.
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !activeSlots[i] {
			h.engine.PointerUp(i)
			dx := h.touchLastX[i] - h.touchStartX[i]
			dy := h.touchLastY[i] - h.touchStartY[i]
			if math.Sqrt(dx*dx+dy*dy) <= h.engine.Tuning().ClickDeadZone {
				h.emitClick(h.touchLastX[i], h.touchLastY[i], now)
			}
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// slotOf returns the slot already mapped to tid, or -1.
func (h *Host) slotOf(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	return -1
}

// allocSlot claims a free touch slot (1-9) for tid. Returns -1 when all
// slots are busy.
func (h *Host) allocSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// emitClick forwards a click and pairs it with the previous one into a
// double-click when both land inside the time window and radius. A pair
// consumes both clicks, so a triple-click is a double plus a fresh single.
func (h *Host) emitClick(x, y float64, now time.Time) {
	h.engine.Click(x, y)

	if h.haveLastClick {
		dx := x - h.lastClickX
		dy := y - h.lastClickY
		if now.Sub(h.lastClickAt) <= h.engine.Tuning().DoubleClickWindow &&
			math.Sqrt(dx*dx+dy*dy) <= doubleClickRadius {
			h.engine.DoubleClick()
			h.haveLastClick = false
			return
		}
	}
	h.haveLastClick = true
	h.lastClickAt = now
	h.lastClickX = x
	h.lastClickY = y
}
