package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application settings loaded from file and defaults.
type Config struct {
	Site    SiteConfig    `mapstructure:"site"`
	Display DisplayConfig `mapstructure:"display"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// SiteConfig is the observing site.
type SiteConfig struct {
	Name         string  `mapstructure:"name"`
	LatitudeDeg  float64 `mapstructure:"latitude_deg"`
	LongitudeDeg float64 `mapstructure:"longitude_deg"`
}

// DisplayConfig controls the chart rendering.
type DisplayConfig struct {
	Nside        int     `mapstructure:"nside"`
	BoundStep    int     `mapstructure:"bound_step"`
	AspectRatio  float64 `mapstructure:"aspect_ratio"`
	AltLimitDeg  float64 `mapstructure:"alt_limit_deg"`
	LaeaLimitDeg float64 `mapstructure:"laea_limit_deg"`
}

// CatalogConfig points at optional star catalog input.
type CatalogConfig struct {
	StarShapefile  string  `mapstructure:"star_shapefile"`
	MagnitudeLimit float64 `mapstructure:"magnitude_limit"`
}

func setDefaults(v *viper.Viper) {
	// Default site is the Vera C. Rubin Observatory on Cerro Pachón.
	v.SetDefault("site.name", "LSST")
	v.SetDefault("site.latitude_deg", -30.2444)
	v.SetDefault("site.longitude_deg", -70.7494)

	v.SetDefault("display.nside", 32)
	v.SetDefault("display.bound_step", 1)
	v.SetDefault("display.aspect_ratio", 2.0)
	v.SetDefault("display.alt_limit_deg", 0.0)
	v.SetDefault("display.laea_limit_deg", 88.0)

	v.SetDefault("catalog.star_shapefile", "")
	v.SetDefault("catalog.magnitude_limit", 4.0)
}

// Load reads the config file at path, or returns pure defaults when
// path is empty. A missing file at an explicit path is an error; a
// malformed file is never silently ignored.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the charts cannot work with.
func (c *Config) Validate() error {
	if c.Site.LatitudeDeg < -90 || c.Site.LatitudeDeg > 90 {
		return fmt.Errorf("site latitude %.4f out of range", c.Site.LatitudeDeg)
	}
	if c.Display.Nside < 1 || c.Display.Nside&(c.Display.Nside-1) != 0 {
		return fmt.Errorf("display nside %d is not a power of two", c.Display.Nside)
	}
	if c.Display.BoundStep < 1 {
		return fmt.Errorf("display bound_step %d must be positive", c.Display.BoundStep)
	}
	if c.Display.AspectRatio < 1.0 || c.Display.AspectRatio > 4.0 {
		return fmt.Errorf("display aspect_ratio %.1f out of range [1.0, 4.0]", c.Display.AspectRatio)
	}
	return nil
}
