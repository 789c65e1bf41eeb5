package swirl

// Input handlers. Each corresponds to one host input event and runs to
// completion under the engine mutex. Handlers never fail: unknown pointer
// ids are ignored, missing delta references mean "no delta this event", and
// every accumulator write is clamped, so no out-of-range value is ever
// observable in the container.

// PointerDown registers a pointer and publishes its normalized position.
// If this is exactly the second active pointer, the centroid and
// pinch-distance references are baselined from the two samples so the next
// move produces a zero delta instead of a jump.
func (e *Engine) PointerDown(id int, x, y float64, kind PointerKind) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.tracker.put(pointerSample{id: id, x: x, y: y, kind: kind})
	e.state.SetPointer(e.normalize(x, y))

	if e.tracker.count() == 2 {
		e.lastCentroid = e.tracker.centroid()
		e.hasCentroid = true
		e.lastDist = e.tracker.pinchDistance()
		e.hasDist = true
	}
}

// PointerMove updates a tracked pointer and interprets the transition.
// Moves for untracked ids are ignored entirely: they are stray events for
// pointers cancelled before their down was processed.
//
// The interpretation mode is chosen by the active-pointer count after the
// update: a lone dragging pointer feeds spin, two or more feed pan and zoom,
// and anything else (a hovering pointer) clears the multi-pointer
// references so a later second pointer never sees a stale centroid.
func (e *Engine) PointerMove(id int, x, y float64, buttons Buttons) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	prev, ok := e.tracker.update(id, x, y)
	if !ok {
		return
	}

	// Last mover wins for the displayed pointer position, even mid-pinch.
	e.state.SetPointer(e.normalize(x, y))

	t := &e.tun
	switch n := e.tracker.count(); {
	case n == 1 && (buttons != 0 || prev.kind == PointerTouch):
		// Horizontal drag maps to a rotational velocity impulse, not an
		// absolute angle: small repeated drags accumulate momentum.
		ref := e.lastDrag
		if !e.hasDrag {
			ref = Vec2{X: prev.x, Y: prev.y}
		}
		dx := x - ref.X
		e.state.UpdateSpin(func(spin float64) float64 {
			return clamp(spin-dx*t.DragFactor, -t.SpinMax, t.SpinMax)
		})
		e.lastDrag = Vec2{X: x, Y: y}
		e.hasDrag = true

	case n >= 2:
		centroid := e.tracker.centroid()
		dist := e.tracker.pinchDistance()

		if e.hasCentroid {
			dX := centroid.X - e.lastCentroid.X
			dY := centroid.Y - e.lastCentroid.Y
			e.state.UpdatePan(func(pan Vec2) Vec2 {
				return Vec2{
					X: clamp(pan.X+dX*t.PanFactor, -t.PanMaxX, t.PanMaxX),
					// Vertical axis is inverted: dragging down moves the
					// scene up.
					Y: clamp(pan.Y-dY*t.PanFactor, -t.PanMaxY, t.PanMaxY),
				}
			})
		}
		if e.hasDist {
			dd := dist - e.lastDist
			e.state.UpdateZoom(func(zoom float64) float64 {
				return clamp(zoom-dd*t.PinchFactor, t.ZoomMin, t.ZoomMax)
			})
		}

		e.lastCentroid = centroid
		e.hasCentroid = true
		e.lastDist = dist
		e.hasDist = true

	default:
		e.hasCentroid = false
		e.hasDist = false
	}
}

// PointerUp deregisters a pointer. When the last pointer lifts, the pointer
// signal and all delta references are cleared. When pointers remain, the
// earliest-registered survivor becomes the single-pointer drag reference
// and its position is re-published, so lifting one finger of a multi-touch
// gesture hands off smoothly instead of jumping.
func (e *Engine) PointerUp(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.tracker.remove(id)

	rest, ok := e.tracker.first()
	if !ok {
		e.state.ClearPointer()
		e.hasCentroid = false
		e.hasDist = false
		e.hasDrag = false
		return
	}
	e.lastDrag = Vec2{X: rest.x, Y: rest.y}
	e.hasDrag = true
	e.state.SetPointer(e.normalize(rest.x, rest.y))
}

// PointerCancel is the host aborting a pointer (palm rejection, window
// losing focus). Identical to PointerUp.
func (e *Engine) PointerCancel(id int) {
	e.PointerUp(id)
}

// Wheel publishes the normalized pointer at the wheel coordinate and feeds
// deltaY (positive = scroll down, in pixels) into zoom. Wheel is independent
// of the tracker and needs no active pointer.
func (e *Engine) Wheel(x, y, deltaY float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.state.SetPointer(e.normalize(x, y))
	t := &e.tun
	e.state.UpdateZoom(func(zoom float64) float64 {
		return clamp(zoom-deltaY*t.WheelFactor, t.ZoomMin, t.ZoomMax)
	})
}

// Click publishes the normalized pointer at the click coordinate, stamps the
// click time for one-shot effects, and interrupts any in-progress
// hover-driven accumulation.
func (e *Engine) Click(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.state.SetPointer(e.normalize(x, y))
	e.state.SetClickTime(e.now())
	e.state.ResetHoverProgress()
}

// DoubleClick flips the scene phase between formed and scattered. Each
// invocation toggles again; two in a row restore the original phase.
func (e *Engine) DoubleClick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.state.TogglePhase()
}
