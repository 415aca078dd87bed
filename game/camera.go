package game

// Camera is the viewport into the world, looking straight down at the XZ
// plane. World X maps to screen X and world Z (downwind) maps up the
// screen, so the rider races toward the top.
type Camera struct {
	X, Z   float64 // camera position in world coordinates
	Zoom   float64 // pixels per meter
	Width  float64 // viewport width
	Height float64 // viewport height
}

// NewCamera creates a camera centered on the origin.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Zoom:   8.0,
		Width:  width,
		Height: height,
	}
}

// Follow eases the camera toward the target with an exponential lag.
func (c *Camera) Follow(targetX, targetZ, dt float64) {
	const followRate = 4.0
	blend := 1 - 1/(1+followRate*dt)
	c.X += (targetX - c.X) * blend
	c.Z += (targetZ - c.Z) * blend
}

// WorldToScreen converts world XZ coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wz float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + c.Width/2
	sy := c.Height/2 - (wz-c.Z)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world XZ coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx-c.Width/2)/c.Zoom + c.X
	wz := (c.Height/2-sy)/c.Zoom + c.Z
	return wx, wz
}
