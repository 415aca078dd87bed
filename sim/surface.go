package sim

// surfaceSolverIterations is the fixed number of corrective evaluations used
// to invert the horizontal Gerstner displacement. The count is deliberately
// fixed rather than convergence-checked so per-frame cost is constant; at
// the configured steepness the residual stays under 0.05 m.
const surfaceSolverIterations = 4

// SolveSurface finds the surface sample whose displaced position sits under
// the requested world column (worldX, worldZ).
//
// The wave field displaces grid coordinates horizontally as well as
// vertically, so "height under a world point" requires inverting that
// displacement. A fixed-point iteration does: evaluate at a test point,
// measure how far the displaced XZ landed from the target, and shift the
// test point by the residual.
func SolveSurface(field *WaveField, worldX, worldZ, t, windSpeed float64) SurfaceSample {
	testX, testZ := worldX, worldZ
	var pos, tangent, binormal Vec3
	for i := 0; i < surfaceSolverIterations; i++ {
		pos, tangent, binormal = field.Sample(testX, testZ, t, windSpeed)
		testX += worldX - pos.X
		testZ += worldZ - pos.Z
	}
	return SurfaceSample{
		Position: pos,
		Normal:   binormal.Cross(tangent).Normalized(),
	}
}
