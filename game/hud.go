package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"downwindfoil/sim"
)

// HUD layout constants
const (
	hudMarginX      = 12
	hudMarginY      = 12
	hudLineHeight   = 16
	energyBarWidth  = 160.0
	energyBarHeight = 10.0
)

var (
	colorEnergyBack = color.NRGBA{R: 40, G: 40, B: 40, A: 200}
	colorEnergyFill = color.NRGBA{R: 80, G: 220, B: 120, A: 255}
	colorEnergyLow  = color.NRGBA{R: 230, G: 80, B: 60, A: 255}
	colorFlashText  = color.NRGBA{R: 255, G: 230, B: 120, A: 255}
)

// HUD renders the instrument readouts and race information.
type HUD struct {
	face       *basicfont.Face
	pumpPulse  float64 // seconds remaining on the pump feedback pulse
	lastSaved  bool    // whether the last finish made the best list
	showResult bool
}

// NewHUD creates the HUD with the stock bitmap face.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// NotifyPump starts the brief pump feedback pulse.
func (h *HUD) NotifyPump() {
	h.pumpPulse = 0.25
}

// NotifyFinish records whether the finish time entered the best list, for
// the results screen.
func (h *HUD) NotifyFinish(saved bool) {
	h.showResult = true
	h.lastSaved = saved
}

// Reset clears transient HUD state on restart.
func (h *HUD) Reset() {
	h.pumpPulse = 0
	h.showResult = false
	h.lastSaved = false
}

// Update advances HUD timers.
func (h *HUD) Update(dt float64) {
	if h.pumpPulse > 0 {
		h.pumpPulse -= dt
		if h.pumpPulse < 0 {
			h.pumpPulse = 0
		}
	}
}

// Draw renders the full HUD for the current simulation state.
func (h *HUD) Draw(screen *ebiten.Image, ctx *sim.SimulationContext, scores *ScoreStore) {
	rider := &ctx.Rider
	y := hudMarginY

	line := func(s string) {
		ebitenutil.DebugPrintAt(screen, s, hudMarginX, y)
		y += hudLineHeight
	}

	line(fmt.Sprintf("speed  %5.1f m/s (%5.1f km/h)", rider.Speed, rider.Speed*3.6))
	line(fmt.Sprintf("height %5.2f m", rider.RideHeight))
	line(fmt.Sprintf("wind   %5.1f   foil %s", ctx.WindSpeed, ctx.Profile.Name))
	line(fmt.Sprintf("dist   %6.0f m", rider.DistanceTravelled))

	h.drawEnergyBar(screen, rider.Energy, float64(y))
	y += int(energyBarHeight) + 8

	race := &ctx.Race.Data
	if race.Active || race.Finished {
		line(fmt.Sprintf("race   %s", sim.FormatRaceTime(race.TotalElapsed)))
		for i, split := range race.KmSplits {
			line(fmt.Sprintf("  km %d  %s", i+1, sim.FormatRaceTime(split)))
		}
	}

	if race.FlashTimer > 0 {
		h.drawCentered(screen, race.FlashMessage, -60, colorFlashText)
	}
	if h.pumpPulse > 0 {
		h.drawCentered(screen, "PUMP", -90, color.NRGBA{R: 140, G: 220, B: 255, A: 255})
	}

	switch ctx.State {
	case sim.StateStarting:
		h.drawCentered(screen, "ENTER to launch", 0, color.White)
		h.drawBestTimes(screen, ctx, scores)
	case sim.StateCrashed:
		h.drawCentered(screen, "OFF FOIL - R to restart", 0, color.White)
	}
	if race.Finished && h.showResult {
		msg := fmt.Sprintf("FINISH  %s", sim.FormatRaceTime(race.TotalElapsed))
		if h.lastSaved {
			msg += "  (best 3)"
		}
		h.drawCentered(screen, msg, -30, colorFlashText)
		h.drawBestTimes(screen, ctx, scores)
	}
}

func (h *HUD) drawEnergyBar(screen *ebiten.Image, energy, y float64) {
	vector.DrawFilledRect(screen, hudMarginX, float32(y), energyBarWidth, energyBarHeight,
		colorEnergyBack, false)
	fill := colorEnergyFill
	if energy < sim.PumpCost {
		fill = colorEnergyLow
	}
	w := energyBarWidth * energy / sim.EnergyMax
	vector.DrawFilledRect(screen, hudMarginX, float32(y), float32(w), energyBarHeight, fill, false)
}

func (h *HUD) drawCentered(screen *ebiten.Image, msg string, offsetY int, clr color.Color) {
	bounds := text.BoundString(h.face, msg)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy()/2 + offsetY
	text.Draw(screen, msg, h.face, x, y, clr)
}

func (h *HUD) drawBestTimes(screen *ebiten.Image, ctx *sim.SimulationContext, scores *ScoreStore) {
	best := scores.Best(ctx.Race.CourseLengthKm)
	if len(best) == 0 {
		return
	}
	y := screen.Bounds().Dy()/2 + 30
	title := fmt.Sprintf("best times, %d km", ctx.Race.CourseLengthKm)
	text.Draw(screen, title, h.face, screen.Bounds().Dx()/2-60, y, color.White)
	for i, e := range best {
		y += hudLineHeight
		row := fmt.Sprintf("%d. %s", i+1, sim.FormatRaceTime(e.TimeSeconds))
		text.Draw(screen, row, h.face, screen.Bounds().Dx()/2-60, y, color.White)
	}
}
