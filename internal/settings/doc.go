// Package settings defines the scanner map settings tree served to the browser:
// map viewport, marker icons and classification patterns, heatmap, UI strings,
// tile layers and geocoding tuning. Default builds the tree; the geocoding API
// keys start unset and are assigned at most once by ApplyGeocodingKeys.
package settings
