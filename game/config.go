package game

// Config holds the presentation and session configuration.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// WindSpeed is the external wave tuning parameter fed to the simulation
	WindSpeed float64

	// FoilProfile is the name of the initially selected foil preset
	FoilProfile string

	// CourseLengthKm is the downwind course length in kilometers (>= 1)
	CourseLengthKm int

	// ScoresPath is the best-times JSON file location
	ScoresPath string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    1280,
		ScreenHeight:   720,
		WindSpeed:      1.0,
		FoilProfile:    "downwind",
		CourseLengthKm: 2,
		ScoresPath:     "downwindfoil_scores.json",
	}
}

// Wind tuning bounds for the debug keys.
const (
	windSpeedMin  = 0.3
	windSpeedMax  = 2.5
	windSpeedStep = 0.1
)
