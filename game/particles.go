package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// sprayParticle is a single spray droplet in world XZ coordinates.
type sprayParticle struct {
	x, z     float64
	vx, vz   float64
	age      float64
	lifetime float64
	size     float64
}

func (p *sprayParticle) alive() bool {
	return p.age < p.lifetime
}

// SpraySystem emits wake spray behind the foil while the rider is on foil.
// Emission scales with speed; a pump adds a burst. No emission when crashed.
type SpraySystem struct {
	particles     []sprayParticle
	maxParticles  int
	emissionTimer float64
	rng           *rand.Rand
}

// NewSpraySystem creates an empty spray emitter.
func NewSpraySystem() *SpraySystem {
	return &SpraySystem{
		particles:    make([]sprayParticle, 0, 512),
		maxParticles: 512,
		rng:          rand.New(rand.NewSource(1)),
	}
}

// Burst emits a dense one-off cloud, used as the pump-fired cosmetic.
func (s *SpraySystem) Burst(x, z, heading float64) {
	for i := 0; i < 24; i++ {
		s.emit(x, z, heading, 6.0)
	}
}

// Update ages existing particles and emits new ones behind the emitter.
func (s *SpraySystem) Update(dt, x, z, heading, speed float64, emitting bool) {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.age += dt
		if !p.alive() {
			continue
		}
		p.x += p.vx * dt
		p.z += p.vz * dt
		p.vx *= 1 - 2.0*dt
		p.vz *= 1 - 2.0*dt
		alive = append(alive, p)
	}
	s.particles = alive

	if !emitting || speed < 2.0 {
		return
	}
	rate := speed * 4.0 // particles per second
	s.emissionTimer += dt
	for s.emissionTimer > 1/rate {
		s.emissionTimer -= 1 / rate
		s.emit(x, z, heading, speed*0.3)
	}
}

func (s *SpraySystem) emit(x, z, heading, speed float64) {
	if len(s.particles) >= s.maxParticles {
		return
	}
	// Spray leaves backward from the board with a spread.
	angle := heading + math.Pi + (s.rng.Float64()-0.5)*0.9
	v := speed * (0.5 + s.rng.Float64()*0.8)
	s.particles = append(s.particles, sprayParticle{
		x:        x,
		z:        z,
		vx:       math.Sin(angle) * v,
		vz:       math.Cos(angle) * v,
		lifetime: 0.4 + s.rng.Float64()*0.6,
		size:     1.0 + s.rng.Float64()*1.5,
	})
}

// Draw renders the spray through the camera.
func (s *SpraySystem) Draw(screen *ebiten.Image, cam *Camera) {
	for _, p := range s.particles {
		sx, sy := cam.WorldToScreen(p.x, p.z)
		if sx < -4 || sy < -4 || sx > cam.Width+4 || sy > cam.Height+4 {
			continue
		}
		fade := 1 - p.age/p.lifetime
		a := uint8(200 * fade)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(p.size),
			color.NRGBA{R: 235, G: 245, B: 255, A: a}, false)
	}
}
