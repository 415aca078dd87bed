package sim

import "math"

// minNormalY floors the normal's vertical component before deriving the
// slope gradient. Near-vertical normals do not occur at the configured
// steepness but would blow up the division.
const minNormalY = 0.01

// SpanSample holds the surface evaluated across the foil's wingspan.
type SpanSample struct {
	Center   SurfaceSample
	LeftTip  SurfaceSample
	RightTip SurfaceSample
	Gradient Vec2 // uphill surface slope at the center, XZ
}

// SampleSpan evaluates the surface at the rider's position and at both
// wingtip projections, and derives the small-slope surface gradient from
// the center normal.
func SampleSpan(field *WaveField, position Vec3, heading, wingSpan, t, windSpeed float64) SpanSample {
	// Lateral unit vector, perpendicular to the heading direction in XZ.
	lateral := Vec2{X: math.Cos(heading), Z: -math.Sin(heading)}
	half := wingSpan / 2

	center := SolveSurface(field, position.X, position.Z, t, windSpeed)
	left := SolveSurface(field, position.X-lateral.X*half, position.Z-lateral.Z*half, t, windSpeed)
	right := SolveSurface(field, position.X+lateral.X*half, position.Z+lateral.Z*half, t, windSpeed)

	ny := math.Max(center.Normal.Y, minNormalY)
	return SpanSample{
		Center:   center,
		LeftTip:  left,
		RightTip: right,
		Gradient: Vec2{X: -center.Normal.X / ny, Z: -center.Normal.Z / ny},
	}
}
