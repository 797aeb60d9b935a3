package config

// Overrides are command-line values that beat every other config source.
// Nil fields leave the loaded value alone.
type Overrides struct {
	Width     *int
	Height    *int
	Particles *int
	Seed      *int64
}

func (o Overrides) Apply(c *Config) {
	if o.Width != nil {
		c.Width = *o.Width
	}
	if o.Height != nil {
		c.Height = *o.Height
	}
	if o.Particles != nil {
		c.Particles = *o.Particles
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
}

// LoadWith is Load followed by the overrides, validated as a whole. Hosts
// call it on every reload so flags keep winning over the file.
func LoadWith(path string, o Overrides) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	o.Apply(&cfg)
	return cfg, cfg.Validate()
}
