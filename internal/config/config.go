package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/palette"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	FrameRingSize = 120

	// Field parameters
	ParticleCount = field.DefaultCount
	LinkDistance  = field.DefaultLinkDistance
	LinkAlpha     = field.DefaultLinkAlpha
	AccentColor   = "#6c5ce7"
	Theme         = "dark"

	envPrefix = "FIELD_"
)

// Config is the tunable part of the particle background.
type Config struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Particles    int     `yaml:"particles"`
	LinkDistance float64 `yaml:"link_distance"`
	LinkAlpha    float64 `yaml:"link_alpha"`
	Accent       string  `yaml:"accent"`
	Theme        string  `yaml:"theme"`
	Seed         int64   `yaml:"seed"`
}

func Default() Config {
	return Config{
		Width:        WindowWidth,
		Height:       WindowHeight,
		Particles:    ParticleCount,
		LinkDistance: LinkDistance,
		LinkAlpha:    LinkAlpha,
		Accent:       AccentColor,
		Theme:        Theme,
	}
}

// Load reads path (if non-empty) over the defaults, then applies .env and
// FIELD_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		// Keys missing from the file keep their defaults.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("config: load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"WIDTH":     &c.Width,
		"HEIGHT":    &c.Height,
		"PARTICLES": &c.Particles,
	}
	for key, dst := range ints {
		v, ok := lookup(envPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", envPrefix, key, err)
		}
		*dst = n
	}

	floats := map[string]*float64{
		"LINK_DISTANCE": &c.LinkDistance,
		"LINK_ALPHA":    &c.LinkAlpha,
	}
	for key, dst := range floats {
		v, ok := lookup(envPrefix + key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", envPrefix, key, err)
		}
		*dst = f
	}

	if v, ok := lookup(envPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED: %w", envPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := lookup(envPrefix + "ACCENT"); ok {
		c.Accent = v
	}
	if v, ok := lookup(envPrefix + "THEME"); ok {
		c.Theme = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window %dx%d must be positive", c.Width, c.Height)
	}
	if c.Particles < 0 {
		return fmt.Errorf("config: particles = %d, must be >= 0", c.Particles)
	}
	if c.LinkDistance <= 0 {
		return fmt.Errorf("config: link_distance = %v, must be > 0", c.LinkDistance)
	}
	if c.LinkAlpha < 0 || c.LinkAlpha > 1 {
		return fmt.Errorf("config: link_alpha = %v, must be in [0,1]", c.LinkAlpha)
	}
	if _, err := palette.Parse(c.Accent); err != nil {
		return fmt.Errorf("config: accent: %w", err)
	}
	return nil
}

// AccentColor returns the parsed accent; Validate guarantees it parses.
func (c Config) AccentColor() color.NRGBA {
	col, err := palette.Parse(c.Accent)
	if err != nil {
		col, _ = palette.Parse(AccentColor)
	}
	return col
}
