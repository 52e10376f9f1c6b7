package settings

import (
	"maps"
	"slices"
)

// Clone returns a deep copy that shares no maps, slices or pointers with c.
func (c AppConfig) Clone() AppConfig {
	out := c

	out.Icons = make(map[string]Icon, len(c.Icons))
	for k, icon := range c.Icons {
		if icon.ShadowSize != nil {
			size := *icon.ShadowSize
			icon.ShadowSize = &size
		}
		out.Icons[k] = icon
	}

	out.PermanentLocations = make(map[string][]LatLng, len(c.PermanentLocations))
	for k, points := range c.PermanentLocations {
		out.PermanentLocations[k] = slices.Clone(points)
	}

	out.MarkerClassification.Police = slices.Clone(c.MarkerClassification.Police)
	out.MarkerClassification.Fire = slices.Clone(c.MarkerClassification.Fire)
	out.MarkerClassification.AudioPaths = maps.Clone(c.MarkerClassification.AudioPaths)
	for k, patterns := range out.MarkerClassification.AudioPaths {
		out.MarkerClassification.AudioPaths[k] = slices.Clone(patterns)
	}

	if c.Geocoding.GoogleAPIKey != nil {
		out.Geocoding.GoogleAPIKey = stringPtr(*c.Geocoding.GoogleAPIKey)
	}
	if c.Geocoding.LocationIQAPIKey != nil {
		out.Geocoding.LocationIQAPIKey = stringPtr(*c.Geocoding.LocationIQAPIKey)
	}

	return out
}
