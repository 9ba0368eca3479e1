package snake

// Config holds the tuning constants for Snake. Intervals are in ticks.
type Config struct {
	MoveInterval  int  `yaml:"move_interval"`  // ticks per step at score 0
	FastInterval  int  `yaml:"fast_interval"`  // ticks per step while holding the current heading
	MinInterval   int  `yaml:"min_interval"`   // fastest step period
	SpeedupScore  int  `yaml:"speedup_score"`  // points per one-tick speed-up
	InitialLength int  `yaml:"initial_length"` // 1..7
	Wrap          bool `yaml:"wrap"`           // walk through walls instead of dying
	BlinkInterval int  `yaml:"blink_interval"`
}

// DefaultConfig returns the default Snake tuning.
func DefaultConfig() Config {
	return Config{
		MoveInterval:  18,
		FastInterval:  6,
		MinInterval:   6,
		SpeedupScore:  5,
		InitialLength: 3,
		Wrap:          false,
		BlinkInterval: 10,
	}
}

// Normalize replaces out-of-range values with their defaults.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.MoveInterval <= 0 {
		c.MoveInterval = d.MoveInterval
	}
	if c.FastInterval <= 0 {
		c.FastInterval = d.FastInterval
	}
	if c.MinInterval <= 0 {
		c.MinInterval = d.MinInterval
	}
	if c.SpeedupScore <= 0 {
		c.SpeedupScore = d.SpeedupScore
	}
	if c.InitialLength <= 0 || c.InitialLength >= 8 {
		c.InitialLength = d.InitialLength
	}
	if c.BlinkInterval <= 0 {
		c.BlinkInterval = d.BlinkInterval
	}
	return c
}
