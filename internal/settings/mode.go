package settings

// MapMode is the visual mode of the map. The toggle button cycles
// day -> night -> satellite -> day.
type MapMode string

const (
	ModeDay       MapMode = "day"
	ModeNight     MapMode = "night"
	ModeSatellite MapMode = "satellite"
)

// Next returns the mode the toggle button switches to. Unknown modes reset to day.
func (m MapMode) Next() MapMode {
	switch m {
	case ModeDay:
		return ModeNight
	case ModeNight:
		return ModeSatellite
	default:
		return ModeDay
	}
}

// Label returns the toggle button text shown while mode is active.
func (l ToggleModeLabels) Label(mode MapMode) string {
	switch mode {
	case ModeNight:
		return l.Night
	case ModeSatellite:
		return l.Satellite
	default:
		return l.Day
	}
}
