package geocoding

import (
	"context"

	"go.uber.org/zap"

	"github.com/eugenenazirov/scanner-map/internal/settings"
)

// Fetcher retrieves provider availability.
type Fetcher interface {
	FetchAvailability(ctx context.Context) (Availability, error)
}

// CredentialSink receives provider keys. Implementations must keep keys that
// are already set.
type CredentialSink interface {
	ApplyGeocodingKeys(google, locationiq *string) settings.KeyUpdate
}

// Loader populates geocoding API keys from the map server.
type Loader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// NewLoader constructs a Loader.
func NewLoader(fetcher Fetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		fetcher: fetcher,
		logger:  logger.Named("geocoding"),
	}
}

// Load performs one fetch and applies the keys of available providers to sink.
// Failures are logged and absorbed: the sink is left untouched and nothing is retried.
// A provider reported as available with an empty or missing apiKey is logged at
// warn level and its key stays nil; keys of unavailable providers are ignored.
func (l *Loader) Load(ctx context.Context, sink CredentialSink) {
	availability, err := l.fetcher.FetchAvailability(ctx)
	if err != nil {
		l.logger.Error("error fetching geocoding configuration", zap.Error(err))
		return
	}

	update := sink.ApplyGeocodingKeys(availability.Google.Key(), availability.LocationIQ.Key())

	providers := make([]string, 0, 2)
	if availability.Google.Available {
		providers = append(providers, "Google")
		l.logProvider("Google Places API available", *availability.Google, update.Google)
	}
	if availability.LocationIQ.Available {
		providers = append(providers, "LocationIQ")
		l.logProvider("LocationIQ API available", *availability.LocationIQ, update.LocationIQ)
	}

	l.logger.Info("available geocoding providers", zap.Strings("providers", providers))
}

func (l *Loader) logProvider(msg string, status ProviderStatus, assigned bool) {
	if status.APIKey == "" {
		l.logger.Warn(msg+" without an API key", zap.Bool("assigned", false))
		return
	}
	l.logger.Info(msg, zap.Bool("assigned", assigned))
}
