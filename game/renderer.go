package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"downwindfoil/sim"
)

// Color constants
var (
	colorOceanDeep  = color.NRGBA{R: 8, G: 48, B: 82, A: 255}
	colorOceanCrest = color.NRGBA{R: 40, G: 110, B: 150, A: 255}
	colorBoard      = color.NRGBA{R: 250, G: 240, B: 80, A: 255}
	colorBoardDown  = color.NRGBA{R: 200, G: 120, B: 60, A: 255}
	colorCourseLine = color.NRGBA{R: 255, G: 90, B: 90, A: 255}
	colorKmMark     = color.NRGBA{R: 255, G: 255, B: 255, A: 140}
	colorCrashTint  = color.NRGBA{R: 120, G: 20, B: 20, A: 90}
)

// oceanCellPx is the screen-space size of one ocean shading cell.
const oceanCellPx = 16

// Renderer draws the world through a camera.
type Renderer struct {
	camera *Camera
}

// NewRenderer creates a renderer bound to a camera.
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{camera: camera}
}

// DrawOcean tints a coarse grid of cells by the cheap wave height, which is
// plenty for top-down swell shading and avoids the full surface solve.
func (r *Renderer) DrawOcean(screen *ebiten.Image, ctx *sim.SimulationContext) {
	screen.Fill(colorOceanDeep)

	bound := ctx.Waves.MaxAmplitude(ctx.WindSpeed)
	if bound <= 0 {
		return
	}
	t := ctx.Now()
	for sy := 0; sy < int(r.camera.Height)+oceanCellPx; sy += oceanCellPx {
		for sx := 0; sx < int(r.camera.Width)+oceanCellPx; sx += oceanCellPx {
			wx, wz := r.camera.ScreenToWorld(float64(sx), float64(sy))
			h := ctx.Waves.HeightOnly(wx, wz, t, ctx.WindSpeed)
			blend := (h/bound + 1) / 2
			vector.DrawFilledRect(screen, float32(sx), float32(sy), oceanCellPx, oceanCellPx,
				lerpColor(colorOceanDeep, colorOceanCrest, blend), false)
		}
	}
}

// DrawCourse draws the start and finish lines and intermediate kilometer
// marks across the downwind axis.
func (r *Renderer) DrawCourse(screen *ebiten.Image, ctx *sim.SimulationContext) {
	r.drawCrossLine(screen, sim.RaceStartZ, colorCourseLine)
	r.drawCrossLine(screen, ctx.Race.FinishZ(), colorCourseLine)
	for km := 1; km < ctx.Race.CourseLengthKm; km++ {
		r.drawCrossLine(screen, sim.RaceStartZ+float64(km)*1000, colorKmMark)
	}
}

func (r *Renderer) drawCrossLine(screen *ebiten.Image, worldZ float64, clr color.Color) {
	_, sy := r.camera.WorldToScreen(0, worldZ)
	if sy < -2 || sy > r.camera.Height+2 {
		return
	}
	ebitenutil.DrawLine(screen, 0, sy, r.camera.Width, sy, clr)
}

// DrawRider draws the board as a triangle pointing along the heading. Roll
// skews the triangle sideways and the fill shifts color when the board is
// off foil.
func (r *Renderer) DrawRider(screen *ebiten.Image, ctx *sim.SimulationContext) {
	rider := &ctx.Rider
	sx, sy := r.camera.WorldToScreen(rider.Position.X, rider.Position.Z)

	// Heading 0 means +Z, which the camera maps to screen-up.
	angle := rider.Heading
	length := 2.4 * r.camera.Zoom
	width := (1.0 + 0.5*math.Abs(rider.Roll)) * r.camera.Zoom

	noseX := sx + math.Sin(angle)*length/2*1.2
	noseY := sy - math.Cos(angle)*length/2*1.2
	tailCX := sx - math.Sin(angle)*length/2
	tailCY := sy + math.Cos(angle)*length/2
	// Lateral axis on screen.
	latX := math.Cos(angle)
	latY := math.Sin(angle)
	skew := rider.Roll * 0.6 * r.camera.Zoom

	clr := colorBoard
	if !rider.OnFoil {
		clr = colorBoardDown
	}

	nx := float32(noseX + latX*skew)
	ny := float32(noseY + latY*skew)
	lx := float32(tailCX - latX*width/2)
	ly := float32(tailCY - latY*width/2)
	rx := float32(tailCX + latX*width/2)
	ry := float32(tailCY + latY*width/2)
	vector.StrokeLine(screen, nx, ny, lx, ly, 2, clr, true)
	vector.StrokeLine(screen, lx, ly, rx, ry, 2, clr, true)
	vector.StrokeLine(screen, rx, ry, nx, ny, 2, clr, true)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(0.5*r.camera.Zoom), clr, true)

	// Shadow dot on the surface hints at ride height.
	shadowOffset := rider.RideHeight * 3 * r.camera.Zoom / 8
	vector.DrawFilledCircle(screen, float32(sx-shadowOffset), float32(sy+shadowOffset),
		float32(0.4*r.camera.Zoom), color.NRGBA{A: 70}, false)
}

// DrawCrashOverlay dims the scene after a crash.
func (r *Renderer) DrawCrashOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.camera.Width), float32(r.camera.Height),
		colorCrashTint, false)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}
