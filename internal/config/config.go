// Package config provides YAML-based configuration loading for pong.
// Physics constants are fixed by the game and are deliberately not part of it.
package config

import (
	"fmt"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Window  WindowConfig  `yaml:"window"`
	Sound   SoundConfig   `yaml:"sound"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// DisplayConfig controls how frames are produced.
type DisplayConfig struct {
	TickRate int    `yaml:"tick_rate"` // Terminal frames per second
	Theme    string `yaml:"theme"`     // Palette ID from the registry
}

// WindowConfig controls the graphical frontend.
type WindowConfig struct {
	Scale float64 `yaml:"scale"`
}

// SoundConfig controls sound cues.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// StorageConfig locates the match history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if c.Display.TickRate < 1 || c.Display.TickRate > 240 {
		return fmt.Errorf("config: display.tick_rate must be between 1 and 240, got %d", c.Display.TickRate)
	}
	if c.Display.Theme == "" {
		return fmt.Errorf("config: display.theme must not be empty")
	}
	if c.Window.Scale <= 0 || c.Window.Scale > 8 {
		return fmt.Errorf("config: window.scale must be in (0, 8], got %v", c.Window.Scale)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("config: sound.volume must be between 0 and 1, got %v", c.Sound.Volume)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path must not be empty")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("config: server.address must not be empty")
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes)
	}
	return nil
}
