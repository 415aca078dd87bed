package sim

import "math"

// waveGravity is the gravity constant used by the deep-water dispersion
// relation. It intentionally differs from the 9.81 used for rider weight;
// the wave shape was tuned against 9.8.
const waveGravity = 9.8

// WaveComponent defines a single Gerstner wave term. Direction must be a
// unit vector in the XZ plane.
type WaveComponent struct {
	Direction  Vec2
	Steepness  float64
	Wavelength float64 // meters crest to crest
	Speed      float64 // multiplier on the dispersion phase speed
}

// SurfaceSample is one evaluated point of the animated ocean surface.
type SurfaceSample struct {
	Position Vec3
	Normal   Vec3
}

// WaveField evaluates an animated ocean surface as a sum of Gerstner wave
// terms. It is a pure function of grid position and time; the component
// table is fixed at construction.
type WaveField struct {
	components []WaveComponent
}

// NewWaveField builds a field over the given component table. Directions
// are normalized defensively.
func NewWaveField(components []WaveComponent) *WaveField {
	cs := make([]WaveComponent, len(components))
	copy(cs, components)
	for i := range cs {
		cs[i].Direction = cs[i].Direction.Normalized()
	}
	return &WaveField{components: cs}
}

// DefaultWaves returns the fixed four-component swell table. Steepness sums
// to 0.07 so the fixed-iteration surface inversion stays well inside its
// residual bound up to windSpeed 2.0.
func DefaultWaves() []WaveComponent {
	return []WaveComponent{
		{Direction: Vec2{0, 1}, Steepness: 0.025, Wavelength: 60, Speed: 1.0},
		{Direction: Vec2{0.2, 0.98}, Steepness: 0.02, Wavelength: 31, Speed: 1.1},
		{Direction: Vec2{-0.15, 0.99}, Steepness: 0.015, Wavelength: 18, Speed: 0.9},
		{Direction: Vec2{0.1, 0.995}, Steepness: 0.01, Wavelength: 9, Speed: 1.2},
	}
}

// Components returns the component table (shared slice; callers must not
// mutate it).
func (f *WaveField) Components() []WaveComponent {
	return f.components
}

// Sample evaluates the displaced surface at grid coordinate (x, z) and time
// t. It returns the displaced world position together with the analytic
// tangent (d/dx) and binormal (d/dz) of the surface; the outward normal is
// cross(binormal, tangent).
func (f *WaveField) Sample(x, z, t, windSpeed float64) (pos, tangent, binormal Vec3) {
	pos = Vec3{X: x, Z: z}
	tangent = Vec3{X: 1}
	binormal = Vec3{Z: 1}

	for _, c := range f.components {
		k := 2 * math.Pi / c.Wavelength
		speed := math.Sqrt(waveGravity/k) * c.Speed * windSpeed
		steep := c.Steepness * windSpeed * windSpeed
		amp := steep / k

		phase := k*(c.Direction.X*x+c.Direction.Z*z) - k*speed*t
		sinF := math.Sin(phase)
		cosF := math.Cos(phase)

		pos.X += c.Direction.X * amp * cosF
		pos.Y += amp * sinF
		pos.Z += c.Direction.Z * amp * cosF

		// Partial derivatives of the displacement with respect to the
		// undisplaced x and z coordinates.
		dx := c.Direction.X * k
		dz := c.Direction.Z * k

		tangent.X += -c.Direction.X * amp * sinF * dx
		tangent.Y += amp * cosF * dx
		tangent.Z += -c.Direction.Z * amp * sinF * dx

		binormal.X += -c.Direction.X * amp * sinF * dz
		binormal.Y += amp * cosF * dz
		binormal.Z += -c.Direction.Z * amp * sinF * dz
	}
	return pos, tangent, binormal
}

// Normal evaluates just the surface normal at grid coordinate (x, z).
func (f *WaveField) Normal(x, z, t, windSpeed float64) Vec3 {
	_, tangent, binormal := f.Sample(x, z, t, windSpeed)
	return binormal.Cross(tangent).Normalized()
}

// HeightOnly sums only the vertical displacement terms. It ignores the
// horizontal Gerstner displacement entirely, which makes it wrong as a
// surface query but cheap enough for cosmetic bobbing and ocean shading.
func (f *WaveField) HeightOnly(x, z, t, windSpeed float64) float64 {
	var y float64
	for _, c := range f.components {
		k := 2 * math.Pi / c.Wavelength
		speed := math.Sqrt(waveGravity/k) * c.Speed * windSpeed
		steep := c.Steepness * windSpeed * windSpeed
		amp := steep / k
		phase := k*(c.Direction.X*x+c.Direction.Z*z) - k*speed*t
		y += amp * math.Sin(phase)
	}
	return y
}

// MaxAmplitude returns the sum of per-component amplitude bounds at the
// given wind speed.
func (f *WaveField) MaxAmplitude(windSpeed float64) float64 {
	var sum float64
	for _, c := range f.components {
		k := 2 * math.Pi / c.Wavelength
		sum += c.Steepness * windSpeed * windSpeed / k
	}
	return sum
}
