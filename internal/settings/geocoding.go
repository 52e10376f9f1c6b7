package settings

// Geocoding provider names as used by PreferredProvider.
const (
	ProviderAuto       = "auto"
	ProviderGoogle     = "google"
	ProviderLocationIQ = "locationiq"
)

// KeyUpdate reports which API keys an ApplyGeocodingKeys call assigned.
type KeyUpdate struct {
	Google     bool
	LocationIQ bool
}

// ApplyGeocodingKeys assigns provider keys that are still unset. A key that already
// holds a value is never overwritten, and nil or empty inputs are ignored.
func (c *AppConfig) ApplyGeocodingKeys(google, locationiq *string) KeyUpdate {
	var update KeyUpdate
	if c.Geocoding.GoogleAPIKey == nil && google != nil && *google != "" {
		c.Geocoding.GoogleAPIKey = stringPtr(*google)
		update.Google = true
	}
	if c.Geocoding.LocationIQAPIKey == nil && locationiq != nil && *locationiq != "" {
		c.Geocoding.LocationIQAPIKey = stringPtr(*locationiq)
		update.LocationIQ = true
	}
	return update
}

// AvailableProviders lists providers with a key, in fallback order.
func (g GeocodingSettings) AvailableProviders() []string {
	providers := make([]string, 0, 2)
	if g.GoogleAPIKey != nil {
		providers = append(providers, ProviderGoogle)
	}
	if g.LocationIQAPIKey != nil {
		providers = append(providers, ProviderLocationIQ)
	}
	return providers
}

// ResolveProvider picks the provider the frontend should query. An explicit
// preference is honoured only when its key is present; "auto" falls back to the
// first available provider.
func (g GeocodingSettings) ResolveProvider() (string, bool) {
	available := g.AvailableProviders()
	switch g.PreferredProvider {
	case ProviderGoogle, ProviderLocationIQ:
		for _, p := range available {
			if p == g.PreferredProvider {
				return p, true
			}
		}
		return "", false
	default:
		if len(available) == 0 {
			return "", false
		}
		return available[0], true
	}
}

func stringPtr(s string) *string {
	return &s
}
