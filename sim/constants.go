package sim

import "math"

// Rider and environment constants.
const (
	RiderMass    = 80.0   // kg, rider + board + foil lumped together
	Gravity      = 9.81   // m/s^2 acting on the rider
	WaterDensity = 1025.0 // kg/m^3 seawater
	MastLength   = 0.9    // m, ride height ceiling
)

// Attitude constants.
const (
	MaxRoll        = math.Pi / 6  // target bank at full turn input
	MaxPitch       = math.Pi / 36 // target nose bias at full pitch input
	rollOverswing  = 1.2          // roll may overshoot MaxRoll by this factor
	rollSpring     = 6.0
	rollDamping    = 3.0
	waveTorqueGain = 2.0 // roll torque per unit tip-height difference over span
	pitchApproach  = 5.0 // 1/s exponential rate toward target pitch
)

// Lift and drag constants.
const (
	inducedDragEfficiency = 0.85 // Oswald-style efficiency in the induced drag term
	mastDragCoeff         = 0.8
	mastDragArea          = 0.0015 // m^2
	hullDragCoeff         = 0.3
	hullWettedArea        = 0.05 // m^2 at full wetting
	hullWetThreshold      = 0.1  // m ride height below which the hull drags
	stallFadeLow          = 0.7  // lift fade starts at stallSpeed * this
	stallFadeHigh         = 1.3  // full lift above stallSpeed * this
)

// Propulsion and handling constants.
const (
	waveEnergyMult    = 2.5 // gain on the wave-slope gravity force
	turnRollThreshold = 0.01
	turnMinSpeed      = 1.0 // m/s, no turning force below this
	turnSpeedFloor    = 2.0 // m/s floor in the heading-rate division
	lateralResistance = 1.0 // 1/s sideslip decay rate
)

// Pump and energy constants.
const (
	PumpCost        = 20.0 // energy per pump
	PumpCooldown    = 0.35 // s between accepted pumps
	PumpImpulse     = 2.5  // m/s added along heading
	pumpHeightBoost = 0.05 // m ride height bump per pump
	EnergyMax       = 100.0
	EnergyRegen     = 5.0 // energy per second
)

// Ride height spring constants.
const (
	heightSpring        = 8.0
	heightDamping       = 8.0
	liftRatioLow        = 0.8  // lift/weight ratio where target height leaves zero
	liftRatioSpan       = 1.2  // ratio span mapped onto the mast
	heightTargetScale   = 0.8  // fraction of mast used by the lift mapping
	pitchHeightBias     = 0.3  // m of target height per radian of pitch
	minRideHeightOnFoil = 0.12 // m floor while lift exceeds weight
)

// Crash thresholds. Both branches are checked every step, in this order;
// their interaction with the height spring's minimum floor sets how
// recoverable a near-crash is, so do not fold them together.
const (
	crashHeightEpsilon = 0.001
	crashLowHeight     = 0.05
)

// Race course constants.
const (
	RaceStartZ    = -800.0 // m, spawn position on the downwind axis
	flashDuration = 3.0    // s, split flash message decay
)

// Integration constants.
const (
	maxStepDt         = 1.0 / 30 // s, dt clamp bounding integration error
	launchSpeedFactor = 1.5      // launch speed as a multiple of stall speed
	launchRideHeight  = 0.3      // m, initial pose after launch
)
