package settings

import "strings"

// Marker categories produced by classification.
const (
	CategoryPolice = "police"
	CategoryFire   = "fire"
)

// Icon keys in AppConfig.Icons.
const (
	IconDefault = "default"
	IconPolice  = "pd"
	IconFire    = "fire"
	IconHouse   = "house"
)

// categoryOrder fixes the match order between categories.
var categoryOrder = []string{CategoryPolice, CategoryFire}

// MarkerClassification maps categories to case-sensitive substring patterns.
// Talkgroup names are matched first; AudioPaths is the fallback keyed by category
// for feeds whose talkgroup names carry no department hint.
type MarkerClassification struct {
	Police     []string            `json:"police" validate:"dive,required"`
	Fire       []string            `json:"fire" validate:"dive,required"`
	AudioPaths map[string][]string `json:"audioPaths" validate:"dive,keys,oneof=police fire,endkeys,dive,required"`
}

// Categories returns the category names in match order.
func Categories() []string {
	return append([]string(nil), categoryOrder...)
}

// Patterns returns the talkgroup patterns for a category.
func (m MarkerClassification) Patterns(category string) []string {
	switch category {
	case CategoryPolice:
		return m.Police
	case CategoryFire:
		return m.Fire
	default:
		return nil
	}
}

// Classify returns the category for an incoming call, or "" when nothing matches.
// The first matching pattern wins.
func (m MarkerClassification) Classify(talkgroup, audioPath string) string {
	if talkgroup != "" {
		for _, category := range categoryOrder {
			if containsAny(talkgroup, m.Patterns(category)) {
				return category
			}
		}
	}
	if audioPath != "" {
		for _, category := range categoryOrder {
			if containsAny(audioPath, m.AudioPaths[category]) {
				return category
			}
		}
	}
	return ""
}

// IconFor returns the icon key used to render a category.
func IconFor(category string) string {
	switch category {
	case CategoryPolice:
		return IconPolice
	case CategoryFire:
		return IconFire
	default:
		return IconDefault
	}
}

func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(text, p) {
			return true
		}
	}
	return false
}
