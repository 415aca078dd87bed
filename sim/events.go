package sim

// EventType identifies a discrete simulation event raised during a step.
type EventType int

const (
	// EventPumpFired signals a successful pump so the presentation layer can
	// play its cosmetic burst.
	EventPumpFired EventType = iota
	// EventKmSplit signals that a new kilometer mark was crossed.
	EventKmSplit
	// EventRaceFinished signals course completion; Elapsed carries the final
	// race time for display and persistence.
	EventRaceFinished
	// EventCrashed signals the riding -> crashed transition.
	EventCrashed
)

// Event is one discrete occurrence from a simulation step. The event slice
// returned by Step is rebuilt each call and must be consumed immediately.
type Event struct {
	Type    EventType
	Km      int     // EventKmSplit: kilometer index (1-based)
	Split   float64 // EventKmSplit: this segment's time in seconds
	Elapsed float64 // EventRaceFinished: total race time in seconds
}
