package sim

import "math"

// headingDir returns the unit forward vector for a heading angle, with
// heading 0 pointing straight downwind (+Z).
func headingDir(heading float64) Vec3 {
	return Vec3{X: math.Sin(heading), Z: math.Cos(heading)}
}

// liftForce returns the lift coefficient and lift magnitude for a profile
// at the given speed. The stall is a continuous cubic fade between 0.7x and
// 1.3x the stall speed, not a discontinuity.
func liftForce(p FoilProfile, speed float64) (coeff, lift float64) {
	coeff = p.MaxLiftCoeff * smoothstep(p.StallSpeed*stallFadeLow, p.StallSpeed*stallFadeHigh, speed)
	lift = 0.5 * WaterDensity * speed * speed * coeff * p.WingArea
	return coeff, lift
}

// stepRider advances the rider by one timestep. Only called in StateRiding;
// dt is already clamped. Out-of-range inputs (negative dt, non-finite wind)
// are a precondition violation of the frame loop and not guarded here.
func stepRider(c *SimulationContext, dt float64, in Input) []Event {
	r := &c.Rider
	p := c.Profile
	t := c.now
	var events []Event

	speed := r.Velocity.Length()

	// Target attitude from held input.
	var targetRoll float64
	if in.TurnLeft {
		targetRoll = -MaxRoll
	} else if in.TurnRight {
		targetRoll = MaxRoll
	}
	var targetPitch float64
	if in.PitchUp {
		targetPitch = MaxPitch
	} else if in.PitchDown {
		targetPitch = -MaxPitch
	}

	// Sample the surface across the wingspan; the tip height difference
	// feeds a wave-induced roll torque.
	span := SampleSpan(c.Waves, r.Position, r.Heading, p.WingSpan, t, c.WindSpeed)
	waveTorque := (span.RightTip.Position.Y - span.LeftTip.Position.Y) / p.WingSpan * waveTorqueGain

	// Roll: spring-damper toward the target bank plus the wave torque.
	rollAccel := (targetRoll-r.Roll)*rollSpring - r.RollRate*rollDamping + waveTorque
	r.RollRate += rollAccel * dt
	r.Roll += r.RollRate * dt
	r.Roll = clamp(r.Roll, -rollOverswing*MaxRoll, rollOverswing*MaxRoll)

	// Pitch: plain exponential approach, no rate state.
	r.Pitch += (targetPitch - r.Pitch) * pitchApproach * dt

	// Lift with a continuous stall fade around the stall speed.
	liftCoeff, lift := liftForce(p, speed)
	dynPressure := 0.5 * WaterDensity * speed * speed

	// Drag: profile + induced + mast, plus a wetted-hull penalty that ramps
	// in as the board nears the waterline.
	inducedDrag := liftCoeff * liftCoeff / (math.Pi * p.AspectRatio * inducedDragEfficiency)
	drag := dynPressure * (p.BaseDragCoeff + inducedDrag) * p.WingArea
	drag += dynPressure * mastDragCoeff * mastDragArea
	if r.RideHeight < hullWetThreshold {
		wetFactor := 1 - r.RideHeight/hullWetThreshold
		drag += dynPressure * hullDragCoeff * hullWettedArea * wetFactor
	}

	// Horizontal force: wave-slope propulsion (gravity along the downhill
	// gradient, heading-independent) opposed by drag along the velocity.
	force := Vec3{
		X: RiderMass * Gravity * -span.Gradient.X * waveEnergyMult,
		Z: RiderMass * Gravity * -span.Gradient.Z * waveEnergyMult,
	}
	if speed > 1e-9 {
		dragDir := r.Velocity.Scale(-1 / speed)
		force = force.Add(dragDir.Scale(drag))
	}

	// Turning: banked lift supplies a centripetal force.
	if math.Abs(r.Roll) > turnRollThreshold && speed > turnMinSpeed {
		centripetal := lift * math.Sin(r.Roll)
		headingRate := centripetal / (RiderMass * math.Max(speed, turnSpeedFloor))
		headingRate = clamp(headingRate, -p.TurnRateMax, p.TurnRateMax)
		r.Heading += headingRate * dt
	}

	// Pump: single-shot intent, gated by energy and cooldown. The intent is
	// consumed this step whether or not it fires.
	if in.Pump && r.Energy >= PumpCost && t-r.LastPumpTime > PumpCooldown {
		r.Velocity = r.Velocity.Add(headingDir(r.Heading).Scale(PumpImpulse))
		r.Energy -= PumpCost
		r.LastPumpTime = t
		r.RideHeight = math.Min(r.RideHeight+pumpHeightBoost, MastLength)
		events = append(events, Event{Type: EventPumpFired})
	}
	r.Energy = math.Min(EnergyMax, r.Energy+EnergyRegen*dt)

	// Semi-implicit Euler. Vertical motion lives entirely in RideHeight;
	// velocity Y is forced back to zero after integration.
	r.Velocity = r.Velocity.Add(force.Scale(dt / RiderMass))
	r.Velocity.Y = 0

	// Sideslip decay: keep the forward component, bleed the lateral
	// remainder. Approximates the foil's resistance to slip without a full
	// drag tensor.
	fwd := headingDir(r.Heading)
	forward := r.Velocity.Dot(fwd)
	lateral := r.Velocity.Sub(fwd.Scale(forward))
	lateral = lateral.Scale(math.Exp(-lateralResistance * dt))
	r.Velocity = fwd.Scale(forward).Add(lateral)

	speed = r.Velocity.Length()
	r.Position = r.Position.Add(r.Velocity.Scale(dt))
	r.DistanceTravelled += speed * dt

	// Ride height tracks how much excess lift is available, biased by pitch
	// trim, through a spring-damper.
	liftRatio := lift / (RiderMass * Gravity)
	targetHeight := clamp((liftRatio-liftRatioLow)/liftRatioSpan*MastLength*heightTargetScale, 0, MastLength)
	effectiveTarget := clamp(targetHeight+r.Pitch*pitchHeightBias, 0, MastLength)
	heightAccel := (effectiveTarget-r.RideHeight)*heightSpring - r.RideHeightVel*heightDamping
	r.RideHeightVel += heightAccel * dt
	r.RideHeight += r.RideHeightVel * dt
	minHeight := 0.0
	if liftRatio > 1.0 {
		// While lift exceeds weight the board cannot settle onto the water.
		minHeight = minRideHeightOnFoil
	}
	r.RideHeight = clamp(r.RideHeight, minHeight, MastLength)

	r.Speed = r.Velocity.Length()

	// Crash checks, in this order. Terminal until an external restart.
	if r.RideHeight <= crashHeightEpsilon {
		r.RideHeight = 0
		r.OnFoil = false
		c.State = StateCrashed
		events = append(events, Event{Type: EventCrashed})
	} else if r.RideHeight < crashLowHeight && r.Speed < p.StallSpeed {
		r.RideHeight = 0
		r.OnFoil = false
		c.State = StateCrashed
		events = append(events, Event{Type: EventCrashed})
	}

	return events
}
