package tanks

// Config holds the tuning constants for Tanks. Intervals are in ticks,
// chances are "one in N" per AI tick.
type Config struct {
	MoveInterval      int  `yaml:"move_interval"`    // player auto-repeat while the stick is held
	MissileInterval   int  `yaml:"missile_interval"` // ticks per missile cell
	AIInterval        int  `yaml:"ai_interval"`      // ticks between enemy decisions
	ActiveEnemies     int  `yaml:"active_enemies"`   // enemies kept on the field, up to MaxEnemies
	FireChance        int  `yaml:"fire_chance"`
	MoveChance        int  `yaml:"move_chance"`
	TurnChance        int  `yaml:"turn_chance"`
	Lives             int  `yaml:"lives"`
	InvulnerableTicks int  `yaml:"invulnerable_ticks"` // grace period after respawn
	TimeLimit         int  `yaml:"time_limit"`         // ticks per round, 0 for none
	Bricks            bool `yaml:"bricks"`             // place destructible walls
	BlinkInterval     int  `yaml:"blink_interval"`
}

// DefaultConfig returns the default Tanks tuning.
func DefaultConfig() Config {
	return Config{
		MoveInterval:      8,
		MissileInterval:   3,
		AIInterval:        10,
		ActiveEnemies:     2,
		FireChance:        10,
		MoveChance:        5,
		TurnChance:        8,
		Lives:             3,
		InvulnerableTicks: 90,
		TimeLimit:         3 * 60 * 60,
		Bricks:            true,
		BlinkInterval:     8,
	}
}

// Normalize replaces out-of-range values with their defaults.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.MoveInterval <= 0 {
		c.MoveInterval = d.MoveInterval
	}
	if c.MissileInterval <= 0 {
		c.MissileInterval = d.MissileInterval
	}
	if c.AIInterval <= 0 {
		c.AIInterval = d.AIInterval
	}
	if c.ActiveEnemies < 0 || c.ActiveEnemies > MaxEnemies {
		c.ActiveEnemies = d.ActiveEnemies
	}
	if c.FireChance <= 0 {
		c.FireChance = d.FireChance
	}
	if c.MoveChance <= 0 {
		c.MoveChance = d.MoveChance
	}
	if c.TurnChance <= 0 {
		c.TurnChance = d.TurnChance
	}
	if c.Lives <= 0 {
		c.Lives = d.Lives
	}
	if c.InvulnerableTicks < 0 {
		c.InvulnerableTicks = 0
	}
	if c.TimeLimit < 0 {
		c.TimeLimit = 0
	}
	if c.BlinkInterval <= 0 {
		c.BlinkInterval = d.BlinkInterval
	}
	return c
}
