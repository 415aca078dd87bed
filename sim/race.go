package sim

import (
	"fmt"
	"math"
)

// RaceData is the mutable race bookkeeping owned by the tracker. Snapshots
// of it feed the HUD and the best-times store.
type RaceData struct {
	Active   bool
	Finished bool

	StartTime float64 // sim seconds at race start
	StartZ    float64 // rider Z at race start; downwind distance is measured from here

	KmSplits      []float64 // elapsed seconds at each kilometer mark, in order
	LastKmReached int
	TotalElapsed  float64 // frozen on finish

	FlashMessage string  // transient split/finish message for the HUD
	FlashTimer   float64 // seconds remaining; decays linearly
}

// RaceTracker derives race progress from the rider's position each step. It
// reads rider state and the game state machine but never feeds back into
// physics.
type RaceTracker struct {
	CourseLengthKm int
	Data           RaceData
}

// NewRaceTracker returns an idle tracker for the given course length.
func NewRaceTracker(courseLengthKm int) RaceTracker {
	return RaceTracker{CourseLengthKm: courseLengthKm}
}

// Reset clears all race state back to idle. Called together with the rider
// reset on restart.
func (rt *RaceTracker) Reset() {
	rt.Data = RaceData{}
}

// FinishZ returns the world Z coordinate of the finish line for a race
// started at the spawn position.
func (rt *RaceTracker) FinishZ() float64 {
	return RaceStartZ + float64(rt.CourseLengthKm)*1000
}

// Update advances race bookkeeping for one frame and returns any split or
// finish events raised.
func (rt *RaceTracker) Update(rider *RiderState, state GameState, t, dt float64) []Event {
	d := &rt.Data

	if d.FlashTimer > 0 {
		d.FlashTimer -= dt
		if d.FlashTimer < 0 {
			d.FlashTimer = 0
		}
	}

	if state == StateCrashed && d.Active {
		// Abandon the run. Not a finish; a new race starts only after an
		// explicit restart brings the rider back through starting.
		d.Active = false
		return nil
	}

	if state == StateRiding && !d.Active && !d.Finished {
		d.Active = true
		d.StartTime = t
		d.StartZ = rider.Position.Z
		d.KmSplits = d.KmSplits[:0]
		d.LastKmReached = 0
	}

	if !d.Active {
		return nil
	}

	d.TotalElapsed = t - d.StartTime
	downwind := math.Max(0, rider.Position.Z-d.StartZ)
	kmReached := int(downwind / 1000)

	var events []Event
	limit := kmReached
	if limit > rt.CourseLengthKm {
		limit = rt.CourseLengthKm
	}
	for km := d.LastKmReached + 1; km <= limit; km++ {
		prev := 0.0
		if len(d.KmSplits) > 0 {
			prev = d.KmSplits[len(d.KmSplits)-1]
		}
		d.KmSplits = append(d.KmSplits, d.TotalElapsed)
		segment := d.TotalElapsed - prev
		d.FlashMessage = fmt.Sprintf("KM %d  +%s", km, FormatRaceTime(segment))
		d.FlashTimer = flashDuration
		d.LastKmReached = km
		events = append(events, Event{Type: EventKmSplit, Km: km, Split: segment})
	}

	if downwind >= float64(rt.CourseLengthKm)*1000 {
		d.Finished = true
		d.Active = false
		// Backfill kilometer marks skipped by a single long step so the
		// split list always has one entry per kilometer.
		for len(d.KmSplits) < rt.CourseLengthKm {
			d.KmSplits = append(d.KmSplits, d.TotalElapsed)
		}
		d.LastKmReached = rt.CourseLengthKm
		d.FlashMessage = ""
		d.FlashTimer = 0
		events = append(events, Event{Type: EventRaceFinished, Elapsed: d.TotalElapsed})
	}
	return events
}

// FormatRaceTime renders seconds as m:ss.t for the HUD and score table.
func FormatRaceTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	m := int(seconds) / 60
	s := seconds - float64(m*60)
	return fmt.Sprintf("%d:%04.1f", m, s)
}
