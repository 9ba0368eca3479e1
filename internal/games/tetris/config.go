package tetris

// ScoreTable gives the points awarded for clearing k rows at once.
type ScoreTable struct {
	Single int `yaml:"single"`
	Double int `yaml:"double"`
	Triple int `yaml:"triple"`
	Quad   int `yaml:"quad"`
}

// Points returns the score for k simultaneously cleared rows.
func (s ScoreTable) Points(k int) int {
	switch {
	case k <= 0:
		return 0
	case k == 1:
		return s.Single
	case k == 2:
		return s.Double
	case k == 3:
		return s.Triple
	default:
		return s.Quad
	}
}

// Config holds the tuning constants for Tetris. Intervals are in ticks.
type Config struct {
	DropInterval     int        `yaml:"drop_interval"`      // gravity period at level 0
	IntervalStep     int        `yaml:"interval_step"`      // gravity speed-up per level
	MinInterval      int        `yaml:"min_interval"`       // fastest gravity period
	SoftDropInterval int        `yaml:"soft_drop_interval"` // gravity period while holding down
	MoveRepeat       int        `yaml:"move_repeat"`        // auto-repeat period for held sideways input
	LevelScore       int        `yaml:"level_score"`        // points per level
	StartLevel       int        `yaml:"start_level"`
	BlinkInterval    int        `yaml:"blink_interval"` // game-over blink period
	Scoring          ScoreTable `yaml:"scoring"`
}

// DefaultConfig returns the default Tetris tuning.
func DefaultConfig() Config {
	return Config{
		DropInterval:     32,
		IntervalStep:     3,
		MinInterval:      4,
		SoftDropInterval: 2,
		MoveRepeat:       6,
		LevelScore:       10,
		StartLevel:       0,
		BlinkInterval:    15,
		Scoring: ScoreTable{
			Single: 1,
			Double: 3,
			Triple: 5,
			Quad:   8,
		},
	}
}

// Normalize replaces non-positive intervals with their defaults.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.DropInterval <= 0 {
		c.DropInterval = d.DropInterval
	}
	if c.IntervalStep < 0 {
		c.IntervalStep = 0
	}
	if c.MinInterval <= 0 {
		c.MinInterval = d.MinInterval
	}
	if c.SoftDropInterval <= 0 {
		c.SoftDropInterval = d.SoftDropInterval
	}
	if c.MoveRepeat <= 0 {
		c.MoveRepeat = d.MoveRepeat
	}
	if c.LevelScore <= 0 {
		c.LevelScore = d.LevelScore
	}
	if c.StartLevel < 0 {
		c.StartLevel = 0
	}
	if c.BlinkInterval <= 0 {
		c.BlinkInterval = d.BlinkInterval
	}
	if c.Scoring == (ScoreTable{}) {
		c.Scoring = d.Scoring
	}
	return c
}

// Level returns the speed level reached at the given score.
func (c Config) Level(score int) int {
	if c.LevelScore <= 0 {
		return c.StartLevel
	}
	return c.StartLevel + score/c.LevelScore
}

// Interval returns the gravity period at the given score. It never increases
// as the score grows.
func (c Config) Interval(score int) int {
	return max(c.MinInterval, c.DropInterval-c.Level(score)*c.IntervalStep)
}
