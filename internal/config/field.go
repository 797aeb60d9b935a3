package config

import (
	"math/rand"

	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/palette"
)

// FieldOptions translates c into animator options. A non-zero Seed gives a
// reproducible field.
func (c Config) FieldOptions() []field.Option {
	opts := []field.Option{
		field.WithColor(c.AccentColor()),
		field.WithLinkDistance(c.LinkDistance),
		field.WithLinkAlpha(c.LinkAlpha),
	}
	if c.Seed != 0 {
		opts = append(opts, field.WithRand(rand.New(rand.NewSource(c.Seed)).Float64))
	}
	return opts
}

func (c Config) ThemeColors() palette.Theme { return palette.ThemeByName(c.Theme) }
