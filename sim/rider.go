package sim

// GameState is the top-level simulation state machine.
type GameState int

const (
	// StateStarting is the pre-launch idle: physics is dormant until the
	// launch command.
	StateStarting GameState = iota
	// StateRiding is the active simulation state.
	StateRiding
	// StateCrashed is terminal until an explicit restart.
	StateCrashed
)

func (s GameState) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRiding:
		return "riding"
	case StateCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// RiderState is the full mutable simulation state of the rider-board point
// mass. It is owned exclusively by the simulation step; presentation code
// reads snapshots and must never mutate it.
type RiderState struct {
	Position Vec3
	Velocity Vec3 // world frame; Y is forced to 0 outside transient integration

	Heading  float64 // radians, 0 = +Z (downwind)
	Pitch    float64 // radians nose bias
	Roll     float64 // radians bank
	RollRate float64 // rad/s

	RideHeight    float64 // m above the local surface, in [0, MastLength]
	RideHeightVel float64 // m/s

	OnFoil bool
	Energy float64 // pump stamina, clamped to [0, EnergyMax]
	Speed  float64 // m/s, derived |Velocity|

	LastPumpTime      float64 // sim seconds of the last accepted pump
	DistanceTravelled float64 // m of cumulative path length
}

// NewRiderState returns the spawn-default rider at the course start.
func NewRiderState() RiderState {
	return RiderState{
		Position:     Vec3{Z: RaceStartZ},
		Energy:       EnergyMax,
		LastPumpTime: -PumpCooldown,
	}
}

// SimulationContext owns all mutable simulation state: the rider, the race,
// the game-state machine, and the environment they run in. The frame driver
// holds exactly one and steps it once per frame; there is no ambient global
// state.
type SimulationContext struct {
	Rider RiderState
	Race  RaceTracker
	State GameState

	Waves     *WaveField
	Profile   FoilProfile
	WindSpeed float64

	now float64 // simulated seconds, advanced by Step
}

// NewSimulationContext builds a context over the default wave table.
func NewSimulationContext(profileName string, windSpeed float64, courseLengthKm int) *SimulationContext {
	if courseLengthKm < 1 {
		courseLengthKm = 1
	}
	return &SimulationContext{
		Rider:     NewRiderState(),
		Race:      NewRaceTracker(courseLengthKm),
		State:     StateStarting,
		Waves:     NewWaveField(DefaultWaves()),
		Profile:   GetFoilProfile(profileName),
		WindSpeed: windSpeed,
	}
}

// Now returns the current simulated time in seconds.
func (c *SimulationContext) Now() float64 {
	return c.now
}

// SetProfile swaps the active foil preset. Takes effect on the next step.
func (c *SimulationContext) SetProfile(name string) {
	c.Profile = GetFoilProfile(name)
}

// SetWindSpeed adjusts the external wind tuning parameter.
func (c *SimulationContext) SetWindSpeed(w float64) {
	c.WindSpeed = w
}

// Launch transitions starting -> riding, seeding the rider with a rolling
// start at 1.5x the active profile's stall speed along the current heading.
func (c *SimulationContext) Launch() {
	if c.State != StateStarting {
		return
	}
	speed := c.Profile.StallSpeed * launchSpeedFactor
	c.Rider.Velocity = headingDir(c.Rider.Heading).Scale(speed)
	c.Rider.Speed = speed
	c.Rider.RideHeight = launchRideHeight
	c.Rider.OnFoil = true
	c.State = StateRiding
}

// Restart resets the rider, race, and game state together. Partial resets
// are not permitted; every frame must observe all three consistent.
func (c *SimulationContext) Restart() {
	if c.State != StateCrashed {
		return
	}
	c.Rider = NewRiderState()
	c.Race.Reset()
	c.State = StateStarting
}

// Step advances the simulation by dt seconds under the given control
// intent and returns the discrete events raised during the step. dt is
// clamped to bound integration error on slow frames; the clamp affects only
// simulated time, not wall-clock pacing.
func (c *SimulationContext) Step(dt float64, in Input) []Event {
	if dt > maxStepDt {
		dt = maxStepDt
	}
	c.now += dt

	switch c.State {
	case StateStarting:
		if in.Launch {
			c.Launch()
		}
	case StateCrashed:
		if in.Restart {
			c.Restart()
		}
	}

	var events []Event
	if c.State == StateRiding {
		events = stepRider(c, dt, in)
	}
	events = append(events, c.Race.Update(&c.Rider, c.State, c.now, dt)...)
	return events
}
