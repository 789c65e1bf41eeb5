// nebula renders a drifting point cloud driven entirely by swirl's
// interaction signals: drag to spin it, pinch or scroll to zoom, two-finger
// drag to pan, double-click to scatter and re-form it.
package main

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/swirl"
)

const (
	screenW = 1280
	screenH = 720

	particleCount = 900
	ringRadius    = 220.0
	morphSeconds  = 1.2
)

type particle struct {
	// formed position on the ring (unit sphere shell projected flat).
	fx, fy float64
	// scattered drift position.
	sx, sy float64
	size   float32
}

type game struct {
	state  *swirl.MemoryState
	engine *swirl.Engine
	host   *swirl.Host

	particles [particleCount]particle
	angle     float64

	// morph eases between formed (0) and scattered (1) layouts.
	morph      float64
	morphTween *gween.Tween
	lastPhase  swirl.ScenePhase
}

func newGame() *game {
	state := swirl.NewMemoryState()
	engine := swirl.NewEngine(state, swirl.DefaultTuning(), screenW, screenH)

	g := &game{
		state:  state,
		engine: engine,
		host:   swirl.NewHost(engine),
	}

	for i := range g.particles {
		theta := rand.Float64() * 2 * math.Pi
		r := ringRadius * (0.85 + 0.3*rand.Float64())
		g.particles[i] = particle{
			fx:   math.Cos(theta) * r,
			fy:   math.Sin(theta) * r * 0.35, // squashed into a disc
			sx:   (rand.Float64() - 0.5) * float64(screenW),
			sy:   (rand.Float64() - 0.5) * float64(screenH),
			size: float32(1 + rand.Float64()*2),
		}
	}
	return g
}

func (g *game) Update() error {
	g.host.Update()

	dt := 1.0 / float64(ebiten.TPS())
	g.state.AdvanceHover(dt)

	sig := g.state.Snapshot()

	// Spin is momentum, not angle: integrate it every frame.
	g.angle += sig.Spin * dt

	// Double-click flipped the phase: retarget the morph tween.
	if sig.Phase != g.lastPhase {
		g.lastPhase = sig.Phase
		target := float32(0)
		if sig.Phase == swirl.PhaseScattered {
			target = 1
		}
		g.morphTween = gween.New(float32(g.morph), target, morphSeconds, ease.OutCubic)
	}
	if g.morphTween != nil {
		val, done := g.morphTween.Update(float32(dt))
		g.morph = float64(val)
		if done {
			g.morphTween = nil
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{6, 8, 16, 255})

	sig := g.state.Snapshot()

	scale := math.Pow(1.04, sig.Zoom)
	cx := screenW/2 + sig.Pan.X*12
	cy := screenH/2 - sig.Pan.Y*12

	sin, cos := math.Sincos(g.angle)
	for i := range g.particles {
		p := &g.particles[i]

		// Rotate the formed layout, leave the scattered one static.
		rx := p.fx*cos - p.fy*sin
		ry := p.fx*sin + p.fy*cos

		x := rx + (p.sx-rx)*g.morph
		y := ry + (p.sy-ry)*g.morph

		vector.DrawFilledCircle(screen,
			float32(cx+x*scale), float32(cy+y*scale),
			p.size, color.RGBA{140, 180, 255, 220}, true)
	}

	// Hover progress brightens a halo around the pointer.
	if sig.HasPointer && sig.HoverProgress > 0 {
		a := uint8(60 * sig.HoverProgress)
		vector.DrawFilledCircle(screen,
			float32(sig.Pointer.X*screenW), float32(sig.Pointer.Y*screenH),
			24, color.RGBA{255, 220, 160, a}, true)
	}
}

func (g *game) Layout(w, h int) (int, int) {
	g.engine.SetSurfaceSize(float64(w), float64(h))
	return w, h
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("swirl nebula")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
