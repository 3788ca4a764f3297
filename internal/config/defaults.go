package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/pong.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickRate: 60,
			Theme:    "classic",
		},
		Window: WindowConfig{
			Scale: 1.5,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Storage: StorageConfig{
			DBPath: "~/.pong/matches.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
