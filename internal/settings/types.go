package settings

// LatLng is a single WGS84 coordinate.
type LatLng struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// AppConfig is the full settings tree consumed by the map frontend.
// Every group is always populated; only the two geocoding API keys may be nil.
type AppConfig struct {
	Map                  MapSettings          `json:"map"`
	Time                 TimeSettings         `json:"time"`
	Icons                map[string]Icon      `json:"icons" validate:"required,dive"`
	PermanentLocations   map[string][]LatLng  `json:"permanentLocations" validate:"dive,dive"`
	Audio                AudioSettings        `json:"audio"`
	MarkerClassification MarkerClassification `json:"markerClassification"`
	Heatmap              HeatmapSettings      `json:"heatmap"`
	UI                   UISettings           `json:"ui"`
	MapStyles            MapStyles            `json:"mapStyles"`
	Animation            AnimationSettings    `json:"animation"`
	Geocoding            GeocodingSettings    `json:"geocoding"`
}

// MapSettings holds the initial viewport and zoom bounds. DefaultCenter is [lat, lng].
type MapSettings struct {
	DefaultCenter [2]float64 `json:"defaultCenter"`
	DefaultZoom   int        `json:"defaultZoom" validate:"gte=0"`
	MaxZoom       int        `json:"maxZoom" validate:"gte=0,lte=22"`
	MinZoom       int        `json:"minZoom" validate:"gte=0"`
	Attribution   string     `json:"attribution"`
	TimeZone      string     `json:"timeZone" validate:"required,timezone"`
}

type TimeSettings struct {
	DefaultTimeRangeHours int `json:"defaultTimeRangeHours" validate:"gt=0"`
}

// Icon describes a Leaflet marker icon. Sizes and anchors are [x, y] pixels.
type Icon struct {
	IconURL     string  `json:"iconUrl" validate:"required"`
	ShadowURL   string  `json:"shadowUrl,omitempty"`
	IconSize    [2]int  `json:"iconSize"`
	IconAnchor  [2]int  `json:"iconAnchor"`
	PopupAnchor [2]int  `json:"popupAnchor"`
	ShadowSize  *[2]int `json:"shadowSize,omitempty"`
}

type AudioSettings struct {
	NotificationSound string `json:"notificationSound" validate:"required"`
	// LiveStreamURL is no longer used by the frontend.
	LiveStreamURL string `json:"liveStreamUrl"`
}

type HeatmapSettings struct {
	DefaultIntensity int `json:"defaultIntensity" validate:"gt=0"`
	Radius           int `json:"radius" validate:"gt=0"`
	Blur             int `json:"blur" validate:"gte=0"`
	MaxZoom          int `json:"maxZoom" validate:"gte=0"`
}

type UISettings struct {
	AppTitle             string           `json:"appTitle" validate:"required"`
	ToggleModeLabels     ToggleModeLabels `json:"toggleModeLabels"`
	LiveStreamButtonText string           `json:"liveStreamButtonText"`
}

// ToggleModeLabels holds the mode-switch button text shown while each mode is active.
type ToggleModeLabels struct {
	Day       string `json:"day" validate:"required"`
	Night     string `json:"night" validate:"required"`
	Satellite string `json:"satellite" validate:"required"`
}

// MapStyles holds tile URL templates for each visual mode.
type MapStyles struct {
	DayLayer             string `json:"dayLayer" validate:"required"`
	SatelliteBaseLayer   string `json:"satelliteBaseLayer" validate:"required"`
	SatelliteLabelsLayer string `json:"satelliteLabelsLayer" validate:"required"`
}

// AnimationSettings drives the zoom transition when a new call arrives.
type AnimationSettings struct {
	ZoomOutLevel int     `json:"zoomOutLevel" validate:"gte=0"`
	TargetZoom   int     `json:"targetZoom" validate:"gte=0"`
	Duration     float64 `json:"duration" validate:"gt=0"`
}

// GeocodingSettings carries provider credentials and search tuning.
// The API keys stay nil until credentials are loaded.
type GeocodingSettings struct {
	GoogleAPIKey      *string            `json:"googleApiKey"`
	LocationIQAPIKey  *string            `json:"locationiqApiKey"`
	DefaultArea       LatLng             `json:"defaultArea"`
	MaxResults        int                `json:"maxResults" validate:"gt=0"`
	MinQueryLength    int                `json:"minQueryLength" validate:"gt=0"`
	PreferredProvider string             `json:"preferredProvider" validate:"oneof=auto google locationiq"`
	LocationIQ        LocationIQSettings `json:"locationiq"`
}

type LocationIQSettings struct {
	CountryCodes   string       `json:"countrycodes"`
	Limit          int          `json:"limit" validate:"gt=0"`
	NormalizeCity  int          `json:"normalizecity" validate:"oneof=0 1"`
	Bias           LocationBias `json:"bias"`
	Tag            string       `json:"tag"`
	ImportanceSort int          `json:"importancesort" validate:"oneof=0 1"`
	AcceptLanguage string       `json:"accept_language"`
}

// LocationBias weights or restricts search results around a bias point.
type LocationBias struct {
	Enabled bool    `json:"enabled"`
	Lat     float64 `json:"lat" validate:"latitude"`
	Lon     float64 `json:"lon" validate:"longitude"`
	Bounded int     `json:"bounded" validate:"oneof=0 1"`
	Radius  int     `json:"radius" validate:"gte=0"`
}
