package races

// Config holds the tuning constants for Races. Intervals are in ticks,
// chances are "one in N" per road step.
type Config struct {
	RoadInterval      int `yaml:"road_interval"`     // ticks per scrolled row at score 0
	MinRoadInterval   int `yaml:"min_road_interval"` // fastest scroll
	SpeedupScore      int `yaml:"speedup_score"`     // points per one-tick speed-up
	SteerInterval     int `yaml:"steer_interval"`    // auto-repeat while steering
	BulletInterval    int `yaml:"bullet_interval"`
	RivalInterval     int `yaml:"rival_interval"`
	RivalHealth       int `yaml:"rival_health"`
	RivalRespawn      int `yaml:"rival_respawn"` // ticks before a new rival appears
	SpawnChance       int `yaml:"spawn_chance"`
	PowerUpChance     int `yaml:"power_up_chance"`
	MaxAmmo           int `yaml:"max_ammo"`
	PowerUpAmmo       int `yaml:"power_up_ammo"`
	Lives             int `yaml:"lives"`
	InvulnerableTicks int `yaml:"invulnerable_ticks"`
	TimeLimit         int `yaml:"time_limit"` // ticks per race, 0 for none
	BlinkInterval     int `yaml:"blink_interval"`
}

// DefaultConfig returns the default Races tuning.
func DefaultConfig() Config {
	return Config{
		RoadInterval:      12,
		MinRoadInterval:   4,
		SpeedupScore:      2,
		SteerInterval:     4,
		BulletInterval:    2,
		RivalInterval:     18,
		RivalHealth:       3,
		RivalRespawn:      60,
		SpawnChance:       5,
		PowerUpChance:     40,
		MaxAmmo:           5,
		PowerUpAmmo:       2,
		Lives:             3,
		InvulnerableTicks: 60,
		TimeLimit:         3 * 60 * 60,
		BlinkInterval:     6,
	}
}

// Normalize replaces out-of-range values with their defaults.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	fix := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	fix(&c.RoadInterval, d.RoadInterval)
	fix(&c.MinRoadInterval, d.MinRoadInterval)
	fix(&c.SpeedupScore, d.SpeedupScore)
	fix(&c.SteerInterval, d.SteerInterval)
	fix(&c.BulletInterval, d.BulletInterval)
	fix(&c.RivalInterval, d.RivalInterval)
	fix(&c.RivalHealth, d.RivalHealth)
	fix(&c.RivalRespawn, d.RivalRespawn)
	fix(&c.SpawnChance, d.SpawnChance)
	fix(&c.PowerUpChance, d.PowerUpChance)
	fix(&c.MaxAmmo, d.MaxAmmo)
	fix(&c.PowerUpAmmo, d.PowerUpAmmo)
	fix(&c.Lives, d.Lives)
	fix(&c.BlinkInterval, d.BlinkInterval)
	if c.InvulnerableTicks < 0 {
		c.InvulnerableTicks = 0
	}
	if c.TimeLimit < 0 {
		c.TimeLimit = 0
	}
	return c
}

// Interval returns the scroll period at the given score.
func (c Config) Interval(score int) int {
	return max(c.MinRoadInterval, c.RoadInterval-score/c.SpeedupScore)
}
