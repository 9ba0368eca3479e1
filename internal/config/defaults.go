package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// EmbeddedConfig returns the configuration shipped inside the binary, or the
// hard-coded defaults if it cannot be parsed.
func EmbeddedConfig() Config {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		return DefaultConfig()
	}
	cfg.Source = "embedded"
	return cfg
}

// DefaultYAML returns the embedded default configuration document, for
// `arcade config` style dumps and as a starting point for user files.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultArcadeYAML))
	copy(out, defaultArcadeYAML)
	return out
}
