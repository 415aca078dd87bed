package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"downwindfoil/sim"
)

// readInput maps the keyboard to this frame's control intent. Held keys map
// to held intents; pump, launch, and restart are edge-triggered so a held
// key produces exactly one command.
func readInput() sim.Input {
	return sim.Input{
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		PitchUp:   ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		PitchDown: ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Pump:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Launch:    inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// handleTuningKeys processes the debug tuning hotkeys: wind speed up/down
// and foil preset cycling. Preset swaps mid-ride are allowed and take
// effect on the next physics step.
func (g *Game) handleTuningKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.setWindSpeed(g.ctx.WindSpeed - windSpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.setWindSpeed(g.ctx.WindSpeed + windSpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleProfile()
	}
}

func (g *Game) setWindSpeed(w float64) {
	if w < windSpeedMin {
		w = windSpeedMin
	}
	if w > windSpeedMax {
		w = windSpeedMax
	}
	g.ctx.SetWindSpeed(w)
}

func (g *Game) cycleProfile() {
	names := sim.ProfileNames()
	for i, name := range names {
		if name == g.ctx.Profile.Name {
			g.ctx.SetProfile(names[(i+1)%len(names)])
			return
		}
	}
	g.ctx.SetProfile(names[0])
}

// pollInput reads the frame's control intent and handles the Alt+Enter
// fullscreen toggle. Enter alone is the launch command; with Alt held it
// toggles fullscreen instead.
func (g *Game) pollInput() sim.Input {
	in := readInput()

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	altEnter := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnter && !g.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.prevAltEnter = altEnter
	if altPressed {
		in.Launch = false
	}

	g.handleTuningKeys()
	return in
}
