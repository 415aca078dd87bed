package sim

// Input is the control intent for a single physics step. Turn and pitch are
// held booleans sampled each frame; Pump, Launch, and Restart are
// edge-triggered single-shot commands. The struct is passed by value and
// never persisted across steps, so one-shot intents cannot leak into the
// next frame.
type Input struct {
	TurnLeft  bool
	TurnRight bool
	PitchUp   bool
	PitchDown bool
	Pump      bool // single-shot, consumed every step whether or not it fires
	Launch    bool // valid only in StateStarting
	Restart   bool // valid only in StateCrashed
}
