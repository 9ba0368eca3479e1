// Package config provides YAML-based arcade configuration loading and
// difficulty presets for the hosts. Game packages own their tuning structs;
// this package only gathers them into one document.
package config

import (
	"fmt"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/dispatch"
	"github.com/vovakirdan/led-arcade/internal/games/life"
	"github.com/vovakirdan/led-arcade/internal/games/races"
	"github.com/vovakirdan/led-arcade/internal/games/snake"
	"github.com/vovakirdan/led-arcade/internal/games/tanks"
	"github.com/vovakirdan/led-arcade/internal/games/tetris"
)

// Config is the complete arcade configuration.
type Config struct {
	TickRate  int       `yaml:"tick_rate"`  // ticks per second
	DeadZone  int       `yaml:"dead_zone"`  // stick dead zone, 0..127
	HoldTicks int       `yaml:"hold_ticks"` // game-over hold before the menu returns
	LED       LEDConfig `yaml:"led"`

	Tetris tetris.Config `yaml:"tetris"`
	Snake  snake.Config  `yaml:"snake"`
	Tanks  tanks.Config  `yaml:"tanks"`
	Races  races.Config  `yaml:"races"`
	Life   life.Config   `yaml:"life"`

	// Source is where the configuration was loaded from.
	Source string `yaml:"-"`
}

// LEDConfig describes an attached LED strip.
type LEDConfig struct {
	Brightness int  `yaml:"brightness"` // 1..255, scales every channel
	Serpentine bool `yaml:"serpentine"` // even rows run backwards
}

// DefaultConfig returns the hard-coded configuration used when no YAML is
// available.
func DefaultConfig() Config {
	d := dispatch.DefaultConfig()
	return Config{
		TickRate:  core.DefaultTickRate,
		DeadZone:  core.DefaultDeadZone,
		HoldTicks: d.HoldTicks,
		LED: LEDConfig{
			Brightness: 64,
			Serpentine: true,
		},
		Tetris: d.Tetris,
		Snake:  d.Snake,
		Tanks:  d.Tanks,
		Races:  d.Races,
		Life:   d.Life,
		Source: "builtin",
	}
}

// Dispatch returns the part of the configuration the dispatcher needs.
func (c Config) Dispatch() dispatch.Config {
	return dispatch.Config{
		HoldTicks: c.HoldTicks,
		Tetris:    c.Tetris,
		Snake:     c.Snake,
		Tanks:     c.Tanks,
		Races:     c.Races,
		Life:      c.Life,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("config: tick_rate must be in 1..1000, got %d", c.TickRate)
	}
	if c.DeadZone < 0 || c.DeadZone > 127 {
		return fmt.Errorf("config: dead_zone must be in 0..127, got %d", c.DeadZone)
	}
	if c.HoldTicks < 0 {
		return fmt.Errorf("config: hold_ticks must not be negative, got %d", c.HoldTicks)
	}
	if c.LED.Brightness < 1 || c.LED.Brightness > 255 {
		return fmt.Errorf("config: led.brightness must be in 1..255, got %d", c.LED.Brightness)
	}

	positive := []struct {
		name  string
		value int
	}{
		{"tetris.drop_interval", c.Tetris.DropInterval},
		{"tetris.min_interval", c.Tetris.MinInterval},
		{"tetris.soft_drop_interval", c.Tetris.SoftDropInterval},
		{"tetris.move_repeat", c.Tetris.MoveRepeat},
		{"tetris.level_score", c.Tetris.LevelScore},
		{"snake.move_interval", c.Snake.MoveInterval},
		{"snake.fast_interval", c.Snake.FastInterval},
		{"snake.min_interval", c.Snake.MinInterval},
		{"snake.speedup_score", c.Snake.SpeedupScore},
		{"tanks.move_interval", c.Tanks.MoveInterval},
		{"tanks.missile_interval", c.Tanks.MissileInterval},
		{"tanks.ai_interval", c.Tanks.AIInterval},
		{"tanks.lives", c.Tanks.Lives},
		{"races.road_interval", c.Races.RoadInterval},
		{"races.min_road_interval", c.Races.MinRoadInterval},
		{"races.steer_interval", c.Races.SteerInterval},
		{"races.bullet_interval", c.Races.BulletInterval},
		{"races.rival_interval", c.Races.RivalInterval},
		{"races.lives", c.Races.Lives},
		{"life.generation_interval", c.Life.GenerationInterval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", p.name, p.value)
		}
	}

	if c.Snake.InitialLength < 1 || c.Snake.InitialLength > core.Width-1 {
		return fmt.Errorf("config: snake.initial_length must be in 1..%d, got %d", core.Width-1, c.Snake.InitialLength)
	}
	if c.Tanks.ActiveEnemies < 0 || c.Tanks.ActiveEnemies > tanks.MaxEnemies {
		return fmt.Errorf("config: tanks.active_enemies must be in 0..%d, got %d", tanks.MaxEnemies, c.Tanks.ActiveEnemies)
	}
	if _, ok := life.PatternIndex(c.Life.Pattern); !ok {
		return fmt.Errorf("config: life.pattern %q is not one of %v", c.Life.Pattern, life.PatternNames())
	}
	return nil
}
