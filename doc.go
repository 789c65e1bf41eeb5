// Package swirl interprets raw pointer, touch, and wheel input into a small
// set of normalized interaction signals for driving an interactive visual
// scene: pointer position, click timing, rotational momentum, pan offset,
// zoom offset, and a two-state scene-phase toggle.
//
// The package does not render anything and does not store the signals it
// produces. An [Engine] consumes host input events, derives semantic deltas
// from multi-pointer transitions, and writes them to a [SceneState]
// container owned by the application. The renderer reads that container on
// its own schedule.
//
// # Quick start
//
// With Ebitengine, wire a [Host] into your game loop:
//
//	state := swirl.NewMemoryState()
//	engine := swirl.NewEngine(state, swirl.DefaultTuning(), 1280, 720)
//	host := swirl.NewHost(engine)
//
//	func (g *Game) Update() error {
//		g.host.Update()
//		g.state.AdvanceHover(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
// then read [MemoryState.Snapshot] from Draw and apply Spin, Pan, Zoom, and
// Phase to your scene.
//
// # Gestures
//
// A single dragging pointer converts horizontal motion into spin, a
// momentum impulse that keeps the scene rotating after release and decays
// exponentially on a fixed tick. Two or more pointers pan the scene by
// their centroid delta and zoom it by the pinch-distance delta between the
// first two contacts. The wheel zooms. A click stamps the click time and
// interrupts hover accumulation; a double-click (or double-tap) toggles the
// scene between its formed and scattered phases.
//
// # Other hosts
//
// Hosts that deliver events instead of polling call the [Engine] handler
// methods directly ([Engine.PointerDown], [Engine.PointerMove], ...). Every
// handler runs atomically under one mutex, so any delivery goroutine works;
// start the decay ticker with [Engine.Start] and release everything with
// [Engine.Close]. Recorded gestures can be replayed from JSON with
// [LoadScript].
package swirl
