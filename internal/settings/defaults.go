package settings

const (
	defaultLat = 39.078925
	defaultLng = -76.933018
)

// Default returns the built-in settings tree. Each call allocates a fresh tree,
// so callers may mutate the result freely.
func Default() AppConfig {
	return AppConfig{
		Map: MapSettings{
			DefaultCenter: [2]float64{defaultLat, defaultLng},
			DefaultZoom:   13,
			// Raising MaxZoom past the animation target breaks tracking of new calls.
			MaxZoom:     18,
			MinZoom:     6,
			Attribution: "&copy; OpenStreetMap contributors &copy; Scanner Map V2.0",
			TimeZone:    "America/New_York",
		},
		Time: TimeSettings{
			DefaultTimeRangeHours: 12,
		},
		Icons: map[string]Icon{
			IconDefault: {
				IconURL:     "https://raw.githubusercontent.com/pointhi/leaflet-color-markers/master/img/marker-icon-2x-green.png",
				ShadowURL:   "https://cdnjs.cloudflare.com/ajax/libs/leaflet/0.7.7/images/marker-shadow.png",
				IconSize:    [2]int{25, 41},
				IconAnchor:  [2]int{12, 41},
				PopupAnchor: [2]int{1, -34},
				ShadowSize:  &[2]int{41, 41},
			},
			IconPolice: squareIcon("pd.png"),
			IconFire:   squareIcon("fire.png"),
			IconHouse:  squareIcon("house.png"),
		},
		PermanentLocations: map[string][]LatLng{
			"houses": {
				{Lat: defaultLat, Lng: defaultLng},
			},
		},
		Audio: AudioSettings{
			NotificationSound: "/notification-sound.mp3",
			LiveStreamURL:     "n/a",
		},
		MarkerClassification: MarkerClassification{
			Police: []string{
				"TXDPS Tyler 1",
				"MCPD",
				"Police",
				"PGSO 1 Disp",
				"Gregg SO Disp 2",
				"TXDPS",
				"PGPD",
			},
			Fire: []string{
				"MCFR",
				"Fire",
				"RefuseCol",
				"PGFD",
			},
			AudioPaths: map[string][]string{
				CategoryPolice: {"Gladewater_PD"},
				CategoryFire:   {"Gladewater_Fire"},
			},
		},
		Heatmap: HeatmapSettings{
			DefaultIntensity: 5,
			Radius:           25,
			Blur:             19,
			MaxZoom:          17,
		},
		UI: UISettings{
			AppTitle: "Radio Signal Map",
			ToggleModeLabels: ToggleModeLabels{
				Day:       "Switch to Night Mode",
				Night:     "Switch to Satellite Mode",
				Satellite: "Switch to Day Mode",
			},
			LiveStreamButtonText: "View Live Signals",
		},
		MapStyles: MapStyles{
			DayLayer:             "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			SatelliteBaseLayer:   "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
			SatelliteLabelsLayer: "https://{s}.basemaps.cartocdn.com/rastertiles/voyager_only_labels/{z}/{x}/{y}{r}.png",
		},
		Animation: AnimationSettings{
			ZoomOutLevel: 13,
			TargetZoom:   17,
			Duration:     1,
		},
		Geocoding: GeocodingSettings{
			DefaultArea:       LatLng{Lat: defaultLat, Lng: defaultLng},
			MaxResults:        5,
			MinQueryLength:    3,
			PreferredProvider: ProviderAuto,
			LocationIQ: LocationIQSettings{
				CountryCodes:  "us",
				Limit:         5,
				NormalizeCity: 1,
				Bias: LocationBias{
					Enabled: true,
					Lat:     defaultLat,
					Lon:     defaultLng,
					Bounded: 1,
					Radius:  25,
				},
				Tag:            "place:city,place:town,place:village,place:suburb,place:neighbourhood",
				ImportanceSort: 1,
				AcceptLanguage: "en",
			},
		},
	}
}

func squareIcon(url string) Icon {
	return Icon{
		IconURL:     url,
		IconSize:    [2]int{32, 32},
		IconAnchor:  [2]int{16, 32},
		PopupAnchor: [2]int{0, -32},
	}
}
