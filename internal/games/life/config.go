package life

// Config holds the tuning for Life.
type Config struct {
	GenerationInterval int    `yaml:"generation_interval"` // ticks per generation
	Pattern            string `yaml:"pattern"`             // one of PatternNames
	Density            int    `yaml:"density"`             // random fill: one cell in N is alive
}

// DefaultConfig returns the default Life settings.
func DefaultConfig() Config {
	return Config{
		GenerationInterval: 30,
		Pattern:            "random",
		Density:            4,
	}
}

// Normalize replaces out-of-range values with their defaults.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.GenerationInterval <= 0 {
		c.GenerationInterval = d.GenerationInterval
	}
	if c.Density <= 0 {
		c.Density = d.Density
	}
	if _, ok := PatternIndex(c.Pattern); !ok {
		c.Pattern = d.Pattern
	}
	return c
}
