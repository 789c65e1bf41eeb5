package ecs

import (
	"time"

	"github.com/phanxgames/swirl"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SignalKind identifies which interaction signal an engine update touched.
type SignalKind uint8

const (
	SignalPointer SignalKind = iota
	SignalHover
	SignalClick
	SignalSpin
	SignalPan
	SignalZoom
	SignalPhase
)

// SignalData is the component holding every interaction signal. One
// singleton entity carries it per world.
type SignalData struct {
	Pointer       swirl.Vec2
	HasPointer    bool
	HoverProgress float64
	ClickTime     time.Time
	Spin          float64
	Pan           swirl.Vec2
	Zoom          float64
	Phase         swirl.ScenePhase
}

// Signals is the Donburi component type for SignalData.
var Signals = donburi.NewComponentType[SignalData]()

// SignalEvent is published after every engine update to the signal entity.
type SignalEvent struct {
	Kind SignalKind
	Data SignalData // signal values after the update
}

// SignalEventType is the Donburi event type for signal updates. Subscribe to
// this in your ECS systems; events are queued until ProcessEvents runs.
var SignalEventType = events.NewEventType[SignalEvent]()

type donburiState struct {
	world donburi.World
	entry *donburi.Entry
}

// NewDonburiState creates a SceneState backed by a Donburi world. The
// signals live in a fresh singleton entity with the Signals component;
// every update mutates that component and publishes a SignalEvent.
func NewDonburiState(world donburi.World) swirl.SceneState {
	entity := world.Create(Signals)
	return &donburiState{
		world: world,
		entry: world.Entry(entity),
	}
}

// Entry returns the Donburi entry of the signal entity for direct reads.
func Entry(state swirl.SceneState) (*donburi.Entry, bool) {
	ds, ok := state.(*donburiState)
	if !ok {
		return nil, false
	}
	return ds.entry, true
}

func (s *donburiState) publish(kind SignalKind) {
	SignalEventType.Publish(s.world, SignalEvent{
		Kind: kind,
		Data: *Signals.Get(s.entry),
	})
}

func (s *donburiState) SetPointer(p swirl.Vec2) {
	d := Signals.Get(s.entry)
	d.Pointer = p
	d.HasPointer = true
	s.publish(SignalPointer)
}

func (s *donburiState) ClearPointer() {
	Signals.Get(s.entry).HasPointer = false
	s.publish(SignalPointer)
}

func (s *donburiState) ResetHoverProgress() {
	Signals.Get(s.entry).HoverProgress = 0
	s.publish(SignalHover)
}

func (s *donburiState) SetClickTime(t time.Time) {
	Signals.Get(s.entry).ClickTime = t
	s.publish(SignalClick)
}

func (s *donburiState) UpdateSpin(f func(prev float64) float64) {
	d := Signals.Get(s.entry)
	d.Spin = f(d.Spin)
	s.publish(SignalSpin)
}

func (s *donburiState) UpdatePan(f func(prev swirl.Vec2) swirl.Vec2) {
	d := Signals.Get(s.entry)
	d.Pan = f(d.Pan)
	s.publish(SignalPan)
}

func (s *donburiState) UpdateZoom(f func(prev float64) float64) {
	d := Signals.Get(s.entry)
	d.Zoom = f(d.Zoom)
	s.publish(SignalZoom)
}

func (s *donburiState) TogglePhase() {
	d := Signals.Get(s.entry)
	if d.Phase == swirl.PhaseFormed {
		d.Phase = swirl.PhaseScattered
	} else {
		d.Phase = swirl.PhaseFormed
	}
	s.publish(SignalPhase)
}
