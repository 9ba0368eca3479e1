package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// isolate points the user and local config directories at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	got := EmbeddedConfig()
	want := DefaultConfig()

	assert.Equal(t, "embedded", got.Source)
	got.Source, want.Source = "", ""
	assert.Equal(t, want, got)
	assert.NoError(t, got.Validate())
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", cfg.Source)
}

func TestLoadCustomPathMergesDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "tick_rate: 30\nsnake:\n  wrap: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, 30, cfg.TickRate)
	assert.True(t, cfg.Snake.Wrap)
	assert.Equal(t, DefaultConfig().Snake.MoveInterval, cfg.Snake.MoveInterval)
	assert.Equal(t, DefaultConfig().Tetris, cfg.Tetris)
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", FileName), "tick_rate: 50\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.TickRate, "local configs directory is used when there is no user file")

	userPath := filepath.Join(home, ".arcade", "configs", FileName)
	writeFile(t, userPath, "tick_rate: 40\n")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.TickRate, "user file wins over the local one")
	assert.Equal(t, userPath, cfg.Source)
}

func TestLoadSkipsBrokenOptionalFile(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", FileName), "tick_rate: [\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", cfg.Source)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "tetris: [\n")
	_, err = Load(broken)
	assert.ErrorContains(t, err, "failed to parse")

	zero := filepath.Join(dir, "zero.yaml")
	writeFile(t, zero, "tetris:\n  drop_interval: 0\n")
	_, err = Load(zero)
	assert.ErrorContains(t, err, "tetris.drop_interval")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tick rate", func(c *Config) { c.TickRate = 0 }, "tick_rate"},
		{"dead zone", func(c *Config) { c.DeadZone = 200 }, "dead_zone"},
		{"hold", func(c *Config) { c.HoldTicks = -1 }, "hold_ticks"},
		{"brightness", func(c *Config) { c.LED.Brightness = 0 }, "led.brightness"},
		{"snake length", func(c *Config) { c.Snake.InitialLength = 8 }, "snake.initial_length"},
		{"enemies", func(c *Config) { c.Tanks.ActiveEnemies = 9 }, "tanks.active_enemies"},
		{"races interval", func(c *Config) { c.Races.RoadInterval = -3 }, "races.road_interval"},
		{"life pattern", func(c *Config) { c.Life.Pattern = "spaceship" }, "life.pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPresetsStayValid(t *testing.T) {
	for _, p := range Presets {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, p)
		assert.NoError(t, cfg.Validate(), "preset %s", p)
	}
}

func TestPresetDirection(t *testing.T) {
	def := DefaultConfig()
	easy, hard := DefaultConfig(), DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	ApplyPreset(&hard, DifficultyHard)

	assert.Greater(t, easy.Tetris.Interval(0), def.Tetris.Interval(0))
	assert.Less(t, hard.Tetris.Interval(0), def.Tetris.Interval(0))
	assert.Greater(t, easy.Snake.MoveInterval, hard.Snake.MoveInterval)
	assert.Greater(t, easy.Tanks.Lives, hard.Tanks.Lives)
	assert.Greater(t, easy.Races.Lives, hard.Races.Lives)

	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, def, normal)
}

func TestFixedPresetPinsSpeed(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	assert.True(t, IsFixedPreset(DifficultyFixed))

	for _, score := range []int{0, 10, 50, 99} {
		assert.Equal(t, cfg.Tetris.Interval(0), cfg.Tetris.Interval(score))
		assert.Equal(t, cfg.Races.Interval(0), cfg.Races.Interval(score))
	}
}

func TestDispatchConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HoldTicks = 7
	cfg.Life.Pattern = "glider"

	d := cfg.Dispatch()
	assert.Equal(t, 7, d.HoldTicks)
	assert.Equal(t, "glider", d.Life.Pattern)
	assert.Equal(t, cfg.Races, d.Races)
}

func TestMarshalRestoresPresetConfig(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	require.NoError(t, err)

	got, err := Parse(data, "replay")
	require.NoError(t, err)
	assert.Equal(t, "replay", got.Source)

	got.Source = cfg.Source
	assert.Equal(t, cfg, got)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("tick_rate: 0\n"), "inline")
	assert.ErrorContains(t, err, "tick_rate")

	_, err = Parse([]byte("tick_rate: [\n"), "inline")
	assert.ErrorContains(t, err, "inline")
}
