package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

type Config struct {
	Universe UniverseConfig `toml:"universe"`
	Field    FieldConfig    `toml:"field"`
	Physics  PhysicsConfig  `toml:"physics"`
	Content  ContentConfig  `toml:"content"`
	Render   RenderConfig   `toml:"render"`
	Logging  LoggingConfig  `toml:"logging"`
}

type UniverseConfig struct {
	TimeScale     float64       `toml:"time_scale"`
	MaxStep       time.Duration `toml:"max_step"`       // integration cap after a stall
	FrameInterval time.Duration `toml:"frame_interval"` // ticker period
	Seed          int64         `toml:"seed"`           // 0 = time based
}

type FieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PhysicsConfig struct {
	Restitution float64 `toml:"restitution"` // bounce default when an archetype leaves it 0
	Separation  float64 `toml:"separation"`  // share of the overlap resolved by a ramming bounce
}

type ContentConfig struct {
	Archetypes string `toml:"archetypes"`
	Scripts    string `toml:"scripts"`
	Player     string `toml:"player"` // archetype spawned at the field centre
}

type RenderConfig struct {
	Mode     string        `toml:"mode"`     // "headless" or "terminal"
	Duration time.Duration `toml:"duration"` // headless run length, 0 = until signalled
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr; terminal mode falls back to orbitfall.log
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return defaults()
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("field: size %vx%v must be positive", c.Field.Width, c.Field.Height))
	}
	if c.Universe.TimeScale <= 0 {
		err = multierr.Append(err, fmt.Errorf("universe: time_scale %v must be positive", c.Universe.TimeScale))
	}
	if c.Universe.MaxStep <= 0 {
		err = multierr.Append(err, errors.New("universe: max_step must be positive"))
	}
	if c.Universe.FrameInterval <= 0 {
		err = multierr.Append(err, errors.New("universe: frame_interval must be positive"))
	}
	if c.Physics.Separation <= 0 || c.Physics.Separation > 1 {
		err = multierr.Append(err, fmt.Errorf("physics: separation %v must be in (0,1]", c.Physics.Separation))
	}
	if c.Physics.Restitution < 0 || c.Physics.Restitution > 1 {
		err = multierr.Append(err, fmt.Errorf("physics: restitution %v must be in [0,1]", c.Physics.Restitution))
	}
	switch c.Render.Mode {
	case "headless", "terminal":
	default:
		err = multierr.Append(err, fmt.Errorf("render: unknown mode %q", c.Render.Mode))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("logging: unknown format %q", c.Logging.Format))
	}
	return err
}

func defaults() *Config {
	return &Config{
		Universe: UniverseConfig{
			TimeScale:     1,
			MaxStep:       10 * time.Second,
			FrameInterval: 16 * time.Millisecond,
		},
		Field: FieldConfig{
			Width:  160,
			Height: 48,
		},
		Physics: PhysicsConfig{
			Restitution: 0.5,
			Separation:  1,
		},
		Content: ContentConfig{
			Archetypes: "data/yaml/archetypes.yaml",
			Scripts:    "scripts",
			Player:     "fighter",
		},
		Render: RenderConfig{
			Mode:     "headless",
			Duration: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
