package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/swirl"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiState(t *testing.T) {
	world := donburi.NewWorld()
	state := NewDonburiState(world)
	if state == nil {
		t.Fatal("NewDonburiState returned nil")
	}
	if _, ok := Entry(state); !ok {
		t.Fatal("Entry should resolve for a donburi state")
	}
}

func TestDonburiState_DrivenByEngine(t *testing.T) {
	world := donburi.NewWorld()
	state := NewDonburiState(world)
	engine := swirl.NewEngine(state, swirl.DefaultTuning(), 1000, 500)

	engine.PointerDown(1, 300, 100, swirl.PointerMouse)
	engine.PointerMove(1, 280, 100, swirl.ButtonLeft)
	engine.Wheel(0, 0, 100)
	engine.DoubleClick()

	entry, _ := Entry(state)
	d := Signals.Get(entry)

	if math.Abs(d.Spin-0.2) > 1e-9 {
		t.Errorf("Spin = %v, want 0.2", d.Spin)
	}
	if math.Abs(d.Zoom-(-0.2)) > 1e-9 {
		t.Errorf("Zoom = %v, want -0.2", d.Zoom)
	}
	if d.Phase != swirl.PhaseScattered {
		t.Errorf("Phase = %v, want scattered", d.Phase)
	}
	if !d.HasPointer {
		t.Error("HasPointer should be set")
	}
}

func TestDonburiState_PublishesEvents(t *testing.T) {
	world := donburi.NewWorld()
	state := NewDonburiState(world)

	var received []SignalEvent
	SignalEventType.Subscribe(world, func(w donburi.World, e SignalEvent) {
		received = append(received, e)
	})

	state.UpdateSpin(func(prev float64) float64 { return prev + 1 })
	state.TogglePhase()

	// Events are queued until processed.
	SignalEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != SignalSpin || received[0].Data.Spin != 1 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != SignalPhase || received[1].Data.Phase != swirl.PhaseScattered {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiState_ImplementsSceneState(t *testing.T) {
	world := donburi.NewWorld()
	var state swirl.SceneState = NewDonburiState(world)
	_ = state // compile-time interface check
}

func TestDonburiState_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	state := NewDonburiState(world)

	var count1, count2 int
	SignalEventType.Subscribe(world, func(w donburi.World, e SignalEvent) { count1++ })
	SignalEventType.Subscribe(world, func(w donburi.World, e SignalEvent) { count2++ })

	state.ResetHoverProgress()
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
