package swirl

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// PointerKind identifies the class of device behind a pointer.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

// Buttons is a bitmask of mouse buttons currently held during a pointer event.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonMiddle
)

// ScenePhase is the two-state display toggle flipped by double-click:
// particles gathered into their formation, or scattered into free drift.
type ScenePhase uint8

const (
	PhaseFormed ScenePhase = iota
	PhaseScattered
)

// String returns a human-readable phase name.
func (p ScenePhase) String() string {
	if p == PhaseScattered {
		return "scattered"
	}
	return "formed"
}

// --- Tuning ---

// Tuning bundles the gesture factors, signal bounds, and decay parameters.
// All factors are positive magnitudes; directional signs are fixed in the
// interpretation step. The zero value is not usable; start from
// DefaultTuning or LoadTuning.
type Tuning struct {
	// DragFactor converts horizontal single-pointer drag pixels into spin.
	DragFactor float64 `json:"dragFactor,omitempty"`
	// SpinMax bounds spin to [-SpinMax, SpinMax].
	SpinMax float64 `json:"spinMax,omitempty"`

	// PanFactor converts centroid delta pixels into pan offset units.
	PanFactor float64 `json:"panFactor,omitempty"`
	// PanMaxX and PanMaxY bound pan per axis: [-PanMaxX, PanMaxX] and
	// [-PanMaxY, PanMaxY].
	PanMaxX float64 `json:"panMaxX,omitempty"`
	PanMaxY float64 `json:"panMaxY,omitempty"`

	// PinchFactor converts pinch-distance delta pixels into zoom units.
	PinchFactor float64 `json:"pinchFactor,omitempty"`
	// WheelFactor converts wheel deltaY pixels into zoom units.
	WheelFactor float64 `json:"wheelFactor,omitempty"`
	// ZoomMin and ZoomMax bound zoom to [ZoomMin, ZoomMax].
	ZoomMin float64 `json:"zoomMin,omitempty"`
	ZoomMax float64 `json:"zoomMax,omitempty"`

	// DecayFactor multiplies spin once per decay step.
	DecayFactor float64 `json:"decayFactor,omitempty"`
	// RestEpsilon is the magnitude below which spin snaps to exactly zero.
	RestEpsilon float64 `json:"restEpsilon,omitempty"`
	// DecayStep is the fixed decay tick period.
	DecayStep time.Duration `json:"decayStep,omitempty"`

	// ClickDeadZone is the maximum press-to-release travel in pixels for a
	// press to count as a click (host adapter).
	ClickDeadZone float64 `json:"clickDeadZone,omitempty"`
	// DoubleClickWindow is the maximum gap between two clicks for them to
	// count as a double-click (host adapter).
	DoubleClickWindow time.Duration `json:"doubleClickWindow,omitempty"`
}

// DefaultTuning returns the standard gesture tuning.
func DefaultTuning() Tuning {
	return Tuning{
		DragFactor:        0.01,
		SpinMax:           3,
		PanFactor:         0.02,
		PanMaxX:           15,
		PanMaxY:           10,
		PinchFactor:       0.01,
		WheelFactor:       0.002,
		ZoomMin:           -20,
		ZoomMax:           40,
		DecayFactor:       0.94,
		RestEpsilon:       1e-3,
		DecayStep:         16 * time.Millisecond,
		ClickDeadZone:     4.0,
		DoubleClickWindow: 300 * time.Millisecond,
	}
}

// LoadTuning parses tuning overrides from JSON. Fields absent from the
// document keep their DefaultTuning values, so a partial override like
// {"spinMax": 5} is valid.
func LoadTuning(jsonData []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := json.Unmarshal(jsonData, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	return t, nil
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
