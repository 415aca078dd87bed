package sim

import (
	"math"
	"reflect"
	"testing"
)

const testDt = 1.0 / 60

func newRidingContext(t *testing.T) *SimulationContext {
	t.Helper()
	ctx := NewSimulationContext("downwind", 1.0, 1)
	ctx.Step(testDt, Input{Launch: true})
	if ctx.State != StateRiding {
		t.Fatalf("expected riding after launch, got %v", ctx.State)
	}
	return ctx
}

func TestLaunchSeedsRollingStart(t *testing.T) {
	ctx := NewSimulationContext("downwind", 1.0, 1)
	if ctx.State != StateStarting {
		t.Fatalf("expected starting state at spawn, got %v", ctx.State)
	}
	ctx.Step(testDt, Input{Launch: true})
	want := ctx.Profile.StallSpeed * 1.5
	if math.Abs(ctx.Rider.Speed-want) > want*0.05 {
		t.Fatalf("expected launch speed near %v, got %v", want, ctx.Rider.Speed)
	}
	if !ctx.Rider.OnFoil {
		t.Fatal("expected rider on foil after launch")
	}
}

func TestLiftCurve(t *testing.T) {
	p := GetFoilProfile("downwind")
	if _, lift := liftForce(p, 0); lift != 0 {
		t.Fatalf("expected zero lift at zero speed, got %v", lift)
	}
	if _, lift := liftForce(p, p.StallSpeed*0.5); lift != 0 {
		t.Fatalf("expected zero lift well below stall, got %v", lift)
	}
	prev := 0.0
	for speed := p.StallSpeed * 1.3; speed < p.StallSpeed*4; speed += 0.5 {
		_, lift := liftForce(p, speed)
		if lift <= prev {
			t.Fatalf("lift not strictly increasing above stall fade: %v <= %v at speed %v", lift, prev, speed)
		}
		prev = lift
	}
}

func TestPumpCostCooldownAndImpulse(t *testing.T) {
	ctx := newRidingContext(t)
	speedBefore := ctx.Rider.Speed
	energyBefore := ctx.Rider.Energy

	events := ctx.Step(testDt, Input{Pump: true})
	if !hasEvent(events, EventPumpFired) {
		t.Fatal("expected first pump to fire")
	}
	if ctx.Rider.Speed <= speedBefore {
		t.Fatalf("expected pump to boost speed, %v -> %v", speedBefore, ctx.Rider.Speed)
	}
	if ctx.Rider.Energy >= energyBefore {
		t.Fatalf("expected pump to cost energy, %v -> %v", energyBefore, ctx.Rider.Energy)
	}

	// Repeated intents inside the cooldown must not fire.
	for i := 0; i < 10; i++ {
		events = ctx.Step(testDt, Input{Pump: true})
		if hasEvent(events, EventPumpFired) {
			t.Fatalf("pump fired inside cooldown on step %d", i)
		}
	}

	// After the cooldown elapses a pump is accepted again.
	for i := 0; i < 15; i++ {
		ctx.Step(testDt, Input{})
	}
	events = ctx.Step(testDt, Input{Pump: true})
	if !hasEvent(events, EventPumpFired) {
		t.Fatal("expected pump to fire after cooldown")
	}
}

func TestEnergyStaysClamped(t *testing.T) {
	ctx := newRidingContext(t)
	for i := 0; i < 600; i++ {
		ctx.Step(testDt, Input{Pump: i%2 == 0})
		if ctx.State != StateRiding {
			break
		}
		e := ctx.Rider.Energy
		if e < 0 || e > EnergyMax {
			t.Fatalf("energy %v out of range on step %d", e, i)
		}
	}
}

func TestRollStaysClamped(t *testing.T) {
	ctx := newRidingContext(t)
	limit := 1.2*MaxRoll + 1e-9
	for i := 0; i < 300; i++ {
		ctx.Step(testDt, Input{TurnRight: true, Pump: i%30 == 0})
		if ctx.State != StateRiding {
			break
		}
		if math.Abs(ctx.Rider.Roll) > limit {
			t.Fatalf("roll %v exceeds clamp on step %d", ctx.Rider.Roll, i)
		}
	}
}

func TestTurningChangesHeading(t *testing.T) {
	ctx := newRidingContext(t)
	for i := 0; i < 120; i++ {
		ctx.Step(testDt, Input{TurnRight: true, Pump: i%25 == 0})
	}
	if ctx.Rider.Heading <= 0 {
		t.Fatalf("expected positive heading change under right bank, got %v", ctx.Rider.Heading)
	}
}

func TestForcedZeroHeightCrashes(t *testing.T) {
	ctx := newRidingContext(t)
	ctx.Rider.Velocity = Vec3{}
	ctx.Rider.RideHeight = 0
	ctx.Rider.RideHeightVel = 0
	events := ctx.Step(testDt, Input{})
	if ctx.State != StateCrashed {
		t.Fatalf("expected crash after forced zero ride height, got %v", ctx.State)
	}
	if !hasEvent(events, EventCrashed) {
		t.Fatal("expected crash event")
	}
	if ctx.Rider.OnFoil {
		t.Fatal("expected rider off foil after crash")
	}
}

func TestCrashedStepIsIdempotent(t *testing.T) {
	ctx := newRidingContext(t)
	ctx.Rider.Velocity = Vec3{}
	ctx.Rider.RideHeight = 0
	ctx.Step(testDt, Input{})
	if ctx.State != StateCrashed {
		t.Fatalf("setup failed, state %v", ctx.State)
	}

	frozen := ctx.Rider
	for i := 0; i < 50; i++ {
		ctx.Step(testDt, Input{TurnLeft: true, Pump: true, Launch: true})
	}
	if !reflect.DeepEqual(frozen, ctx.Rider) {
		t.Fatalf("rider state mutated while crashed:\nbefore %+v\nafter  %+v", frozen, ctx.Rider)
	}
	if ctx.State != StateCrashed {
		t.Fatalf("expected crash to be terminal without restart, got %v", ctx.State)
	}
}

func TestStallWithoutWaveEnergyCrashes(t *testing.T) {
	// With no wind there is no wave propulsion; drag bleeds the launch
	// speed below stall and the ride-height spring collapses.
	ctx := NewSimulationContext("downwind", 0, 1)
	ctx.Step(testDt, Input{Launch: true})
	for i := 0; i < 60*30 && ctx.State == StateRiding; i++ {
		ctx.Step(testDt, Input{})
	}
	if ctx.State != StateCrashed {
		t.Fatalf("expected eventual crash without wave energy, got %v at speed %v height %v",
			ctx.State, ctx.Rider.Speed, ctx.Rider.RideHeight)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	ctx := newRidingContext(t)
	for i := 0; i < 200 && ctx.State == StateRiding; i++ {
		ctx.Step(testDt, Input{Pump: i%20 == 0})
	}
	ctx.Rider.Velocity = Vec3{}
	ctx.Rider.RideHeight = 0
	ctx.Step(testDt, Input{})
	if ctx.State != StateCrashed {
		t.Fatalf("setup failed, state %v", ctx.State)
	}
	if ctx.Rider.DistanceTravelled == 0 {
		t.Fatal("setup failed, expected distance travelled before crash")
	}

	ctx.Step(testDt, Input{Restart: true})
	if ctx.State != StateStarting {
		t.Fatalf("expected starting after restart, got %v", ctx.State)
	}
	if !reflect.DeepEqual(ctx.Rider, NewRiderState()) {
		t.Fatalf("rider not reset to spawn defaults: %+v", ctx.Rider)
	}
	d := ctx.Race.Data
	if d.Active || d.Finished || len(d.KmSplits) != 0 || d.TotalElapsed != 0 {
		t.Fatalf("race not reset: %+v", d)
	}
}

func TestDtClampBoundsIntegration(t *testing.T) {
	a := newRidingContext(t)
	b := newRidingContext(t)
	// A pathological frame gap must integrate exactly like the clamp value.
	a.Step(1.0, Input{})
	b.Step(1.0/30.0, Input{})
	if a.Rider.Position != b.Rider.Position {
		t.Fatalf("expected long frame to clamp to 1/30s: %+v vs %+v", a.Rider.Position, b.Rider.Position)
	}
}

func hasEvent(events []Event, et EventType) bool {
	for _, e := range events {
		if e.Type == et {
			return true
		}
	}
	return false
}
