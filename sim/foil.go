package sim

// FoilProfile holds the static aero/hydro coefficients of one foil preset.
// Profiles are immutable; swapping the active preset mid-ride is allowed and
// takes effect on the next physics step.
type FoilProfile struct {
	Name          string
	WingSpan      float64 // meters tip to tip
	WingArea      float64 // square meters
	Chord         float64 // meters, = WingArea / WingSpan
	AspectRatio   float64 // ~ WingSpan^2 / WingArea, advisory
	StallSpeed    float64 // m/s below which lift collapses
	MaxLiftCoeff  float64
	BaseDragCoeff float64
	TurnRateMax   float64 // rad/s heading rate cap
}

// DefaultProfileName is the preset used when an unknown name is requested.
const DefaultProfileName = "downwind"

// GetFoilProfile returns the preset for the given name, falling back to the
// default preset for unknown names.
func GetFoilProfile(name string) FoilProfile {
	switch name {
	case "freeride":
		return FoilProfile{
			Name:          "freeride",
			WingSpan:      0.75,
			WingArea:      0.12,
			Chord:         0.16,
			AspectRatio:   4.7,
			StallSpeed:    5.5,
			MaxLiftCoeff:  1.3,
			BaseDragCoeff: 0.025,
			TurnRateMax:   1.8,
		}
	case "downwind":
		return FoilProfile{
			Name:          "downwind",
			WingSpan:      0.9,
			WingArea:      0.09,
			Chord:         0.1,
			AspectRatio:   9.0,
			StallSpeed:    7.0,
			MaxLiftCoeff:  1.1,
			BaseDragCoeff: 0.018,
			TurnRateMax:   1.2,
		}
	case "race":
		return FoilProfile{
			Name:          "race",
			WingSpan:      1.0,
			WingArea:      0.07,
			Chord:         0.07,
			AspectRatio:   14.3,
			StallSpeed:    9.0,
			MaxLiftCoeff:  0.9,
			BaseDragCoeff: 0.012,
			TurnRateMax:   0.9,
		}
	default:
		return GetFoilProfile(DefaultProfileName)
	}
}

// ProfileNames lists the available presets in selection order.
func ProfileNames() []string {
	return []string{"freeride", "downwind", "race"}
}
