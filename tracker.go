package swirl

import "math"

// pointerSample is the last observed raw position of one active pointer, in
// surface pixel space. Samples live from down to up/cancel.
type pointerSample struct {
	id   int
	x, y float64
	kind PointerKind
}

// pointerTracker maintains the set of active pointers in insertion order.
// Storage is a linear slice: pointer counts are tiny, and slice order pins
// which two samples the pinch distance reads and which sample survives a
// partial release; map iteration would make both nondeterministic.
type pointerTracker struct {
	samples []pointerSample
}

// put inserts a sample, or overwrites in place if the id is already active.
// Re-inserting a live id keeps its original slot.
func (t *pointerTracker) put(s pointerSample) {
	for i := range t.samples {
		if t.samples[i].id == s.id {
			t.samples[i] = s
			return
		}
	}
	t.samples = append(t.samples, s)
}

// update moves an active pointer and returns its previous sample.
// Unknown ids are left alone and reported via ok=false.
func (t *pointerTracker) update(id int, x, y float64) (prev pointerSample, ok bool) {
	for i := range t.samples {
		if t.samples[i].id == id {
			prev = t.samples[i]
			t.samples[i].x = x
			t.samples[i].y = y
			return prev, true
		}
	}
	return pointerSample{}, false
}

// remove deregisters a pointer. Removing an unknown id is a no-op.
func (t *pointerTracker) remove(id int) {
	for i := range t.samples {
		if t.samples[i].id == id {
			copy(t.samples[i:], t.samples[i+1:])
			t.samples = t.samples[:len(t.samples)-1]
			return
		}
	}
}

// count returns the number of active pointers.
func (t *pointerTracker) count() int {
	return len(t.samples)
}

// first returns the earliest-inserted active sample.
func (t *pointerTracker) first() (pointerSample, bool) {
	if len(t.samples) == 0 {
		return pointerSample{}, false
	}
	return t.samples[0], true
}

// get returns the sample for id.
func (t *pointerTracker) get(id int) (pointerSample, bool) {
	for i := range t.samples {
		if t.samples[i].id == id {
			return t.samples[i], true
		}
	}
	return pointerSample{}, false
}

// centroid returns the arithmetic mean of all active samples. Only
// meaningful with two or more pointers; callers guard on count.
func (t *pointerTracker) centroid() Vec2 {
	var c Vec2
	n := len(t.samples)
	if n == 0 {
		return c
	}
	for i := range t.samples {
		c.X += t.samples[i].x
		c.Y += t.samples[i].y
	}
	c.X /= float64(n)
	c.Y /= float64(n)
	return c
}

// pinchDistance returns the Euclidean distance between the first two active
// samples in insertion order. A third or later pointer shifts the centroid
// but never this distance.
func (t *pointerTracker) pinchDistance() float64 {
	if len(t.samples) < 2 {
		return 0
	}
	dx := t.samples[1].x - t.samples[0].x
	dy := t.samples[1].y - t.samples[0].y
	return math.Sqrt(dx*dx + dy*dy)
}
