package sim

import (
	"math"
	"testing"
)

func TestHeightOnlyIsDeterministic(t *testing.T) {
	f := NewWaveField(DefaultWaves())
	a := f.HeightOnly(12.5, -340.0, 7.25, 1.0)
	b := f.HeightOnly(12.5, -340.0, 7.25, 1.0)
	if a != b {
		t.Fatalf("expected identical results for identical inputs, got %v and %v", a, b)
	}
	p1, _, _ := f.Sample(12.5, -340.0, 7.25, 1.0)
	p2, _, _ := f.Sample(12.5, -340.0, 7.25, 1.0)
	if p1 != p2 {
		t.Fatalf("expected identical sample positions, got %+v and %+v", p1, p2)
	}
}

func TestHeightStaysWithinAmplitudeBound(t *testing.T) {
	f := NewWaveField(DefaultWaves())
	for _, wind := range []float64{0.5, 1.0, 2.0} {
		bound := f.MaxAmplitude(wind)
		for i := 0; i < 400; i++ {
			x := float64(i%20) * 7.3
			z := float64(i/20) * 11.9
			tt := float64(i) * 0.17
			h := f.HeightOnly(x, z, tt, wind)
			if math.Abs(h) > bound+1e-9 {
				t.Fatalf("height %v exceeds amplitude bound %v at wind %v", h, bound, wind)
			}
		}
	}
}

func TestSingleWavePeriod(t *testing.T) {
	f := NewWaveField([]WaveComponent{
		{Direction: Vec2{0, 1}, Steepness: 0.1, Wavelength: 40, Speed: 1.0},
	})
	k := 2 * math.Pi / 40.0
	c := math.Sqrt(waveGravity / k)
	period := 40.0 / c
	amp := 0.1 / k

	for i := 0; i < 50; i++ {
		tt := float64(i) * 0.2
		h0 := f.HeightOnly(0, 0, tt, 1.0)
		h1 := f.HeightOnly(0, 0, tt+period, 1.0)
		if math.Abs(h1-h0) > amp*0.01 {
			t.Fatalf("height not periodic with period %v at t=%v: %v vs %v", period, tt, h0, h1)
		}
	}
}

func TestNormalIsUnitAndUpward(t *testing.T) {
	f := NewWaveField(DefaultWaves())
	for i := 0; i < 100; i++ {
		n := f.Normal(float64(i)*3.1, float64(i)*-5.7, float64(i)*0.31, 1.5)
		if math.Abs(n.Length()-1) > 1e-9 {
			t.Fatalf("normal not unit length: %v", n.Length())
		}
		if n.Y <= 0 {
			t.Fatalf("normal points downward at configured steepness: %+v", n)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	if got := smoothstep(2, 4, 1.0); got != 0 {
		t.Fatalf("expected 0 below edge, got %v", got)
	}
	if got := smoothstep(2, 4, 2.0); got != 0 {
		t.Fatalf("expected 0 at lower edge, got %v", got)
	}
	if got := smoothstep(2, 4, 5.0); got != 1 {
		t.Fatalf("expected 1 above edge, got %v", got)
	}
	if got := smoothstep(2, 4, 3.0); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("expected 0.5 at midpoint, got %v", got)
	}
	prev := -1.0
	for x := 1.8; x <= 4.2; x += 0.01 {
		v := smoothstep(2, 4, x)
		if v < prev {
			t.Fatalf("smoothstep not monotonic at x=%v: %v < %v", x, v, prev)
		}
		prev = v
	}
}
