package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"downwindfoil/sim"
)

// Game is the ebiten frame driver. It owns the simulation context and the
// cosmetic systems that read it; per frame the order is fixed: input, one
// physics step, race bookkeeping (inside the step), then camera and
// cosmetics. Later stages never feed back into the simulation.
type Game struct {
	ctx      *sim.SimulationContext
	camera   *Camera
	renderer *Renderer
	spray    *SpraySystem
	hud      *HUD
	scores   *ScoreStore
	config   Config

	lastUpdateTime time.Time
	prevAltEnter   bool
}

// NewGame creates a game instance from the configuration.
func NewGame(config Config) *Game {
	camera := NewCamera(float64(config.ScreenWidth), float64(config.ScreenHeight))
	g := &Game{
		ctx:            sim.NewSimulationContext(config.FoilProfile, config.WindSpeed, config.CourseLengthKm),
		camera:         camera,
		renderer:       NewRenderer(camera),
		spray:          NewSpraySystem(),
		hud:            NewHUD(),
		scores:         LoadScores(config.ScoresPath),
		config:         config,
		lastUpdateTime: time.Now(),
	}
	camera.X = g.ctx.Rider.Position.X
	camera.Z = g.ctx.Rider.Position.Z
	return g
}

// Update advances the simulation by one frame.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if dt <= 0 {
		return nil
	}

	in := g.pollInput()
	wasCrashed := g.ctx.State == sim.StateCrashed

	events := g.ctx.Step(dt, in)
	for _, e := range events {
		switch e.Type {
		case sim.EventPumpFired:
			rider := &g.ctx.Rider
			g.spray.Burst(rider.Position.X, rider.Position.Z, rider.Heading)
			g.hud.NotifyPump()
		case sim.EventKmSplit:
			log.Printf("km %d split %.1fs", e.Km, e.Split)
		case sim.EventRaceFinished:
			saved := g.scores.Record(g.ctx.Race.CourseLengthKm, e.Elapsed)
			g.hud.NotifyFinish(saved)
			log.Printf("race finished in %s (best-3: %v)", sim.FormatRaceTime(e.Elapsed), saved)
		case sim.EventCrashed:
			log.Printf("off foil at z=%.0f after %.0f m", g.ctx.Rider.Position.Z, g.ctx.Rider.DistanceTravelled)
		}
	}
	if wasCrashed && g.ctx.State == sim.StateStarting {
		g.hud.Reset()
	}

	rider := &g.ctx.Rider
	g.camera.Follow(rider.Position.X, rider.Position.Z, dt)
	g.spray.Update(dt, rider.Position.X, rider.Position.Z, rider.Heading, rider.Speed,
		g.ctx.State == sim.StateRiding && rider.OnFoil)
	g.hud.Update(dt)
	return nil
}

// Draw renders one frame: ocean, course, spray, rider, overlays, HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawOcean(screen, g.ctx)
	g.renderer.DrawCourse(screen, g.ctx)
	g.spray.Draw(screen, g.camera)
	g.renderer.DrawRider(screen, g.ctx)
	if g.ctx.State == sim.StateCrashed {
		g.renderer.DrawCrashOverlay(screen)
	}
	g.hud.Draw(screen, g.ctx, g.scores)
}

// Layout reports the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
