package settings

import (
	"errors"
	"fmt"
	_ "time/tzdata" // zone database for the timezone tag

	"github.com/go-playground/validator/v10"
)

// ErrInvalidSettings is wrapped by every error returned from Validate.
var ErrInvalidSettings = errors.New("invalid settings")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the cross-field rules struct tags cannot express.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	lat, lng := c.Map.DefaultCenter[0], c.Map.DefaultCenter[1]
	if err := validate.Var(lat, "latitude"); err != nil {
		return fmt.Errorf("%w: map.defaultCenter latitude %v", ErrInvalidSettings, lat)
	}
	if err := validate.Var(lng, "longitude"); err != nil {
		return fmt.Errorf("%w: map.defaultCenter longitude %v", ErrInvalidSettings, lng)
	}

	m := c.Map
	if m.MinZoom > m.DefaultZoom || m.DefaultZoom > m.MaxZoom {
		return fmt.Errorf("%w: map zoom must satisfy min (%d) <= default (%d) <= max (%d)",
			ErrInvalidSettings, m.MinZoom, m.DefaultZoom, m.MaxZoom)
	}

	a := c.Animation
	if a.ZoomOutLevel < m.MinZoom || a.TargetZoom > m.MaxZoom || a.ZoomOutLevel > a.TargetZoom {
		return fmt.Errorf("%w: animation zooms (%d -> %d) must lie within map zoom bounds [%d, %d]",
			ErrInvalidSettings, a.ZoomOutLevel, a.TargetZoom, m.MinZoom, m.MaxZoom)
	}

	if _, ok := c.Icons[IconDefault]; !ok {
		return fmt.Errorf("%w: icons must define %q", ErrInvalidSettings, IconDefault)
	}

	return nil
}
