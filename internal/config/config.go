package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Defaults follow the original 3D Movie Maker demo: a four second
	// dissolve stepped at 12.5 frames per second.
	DefaultDuration = 4.0
	DefaultFPS      = 12.5
	DefaultOutput   = "dissolve.gif"
)

type Config struct {
	Duration float64 `yaml:"duration"` // seconds
	FPS      float64 `yaml:"fps"`
	Seed     int64   `yaml:"seed"` // 0 picks a time-based seed
	Output   string  `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Duration: DefaultDuration,
		FPS:      DefaultFPS,
		Output:   DefaultOutput,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %f", c.FPS)
	}
	return nil
}

// TransitionDuration converts the configured seconds to the duration
// the transition is constructed with.
func (c *Config) TransitionDuration() time.Duration {
	return time.Duration(c.Duration * float64(time.Second))
}

// FrameDelta is the fixed time step between frames at the configured
// frame rate.
func (c *Config) FrameDelta() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}
