package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// noSpeedup is a score-per-step value no game reaches, which pins speed.
const noSpeedup = 1 << 30

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty converts a flag value to a preset. The empty string means
// normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset adjusts the game tuning for a difficulty preset. Normal leaves
// the configuration as loaded.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Tetris.DropInterval += cfg.Tetris.DropInterval / 4
		cfg.Tetris.StartLevel = 0
		cfg.Snake.MoveInterval += cfg.Snake.MoveInterval / 4
		cfg.Tanks.Lives = 5
		cfg.Tanks.ActiveEnemies = min(cfg.Tanks.ActiveEnemies, 1)
		cfg.Tanks.FireChance *= 2
		cfg.Races.Lives = 5
		cfg.Races.SpawnChance += 2
		cfg.Races.RoadInterval += cfg.Races.RoadInterval / 4

	case DifficultyHard:
		cfg.Tetris.StartLevel = 3
		cfg.Snake.MoveInterval = max(cfg.Snake.MinInterval, cfg.Snake.MoveInterval*2/3)
		cfg.Tanks.Lives = 2
		cfg.Tanks.ActiveEnemies = max(cfg.Tanks.ActiveEnemies, 3)
		cfg.Tanks.FireChance = max(1, cfg.Tanks.FireChance/2)
		cfg.Races.Lives = 2
		cfg.Races.SpawnChance = max(1, cfg.Races.SpawnChance-2)
		cfg.Races.RoadInterval = max(cfg.Races.MinRoadInterval, cfg.Races.RoadInterval*3/4)

	case DifficultyFixed:
		cfg.Tetris.IntervalStep = 0
		cfg.Snake.SpeedupScore = noSpeedup
		cfg.Races.SpeedupScore = noSpeedup
	}
}
