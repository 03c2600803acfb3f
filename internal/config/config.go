// Package config loads the explorer settings from a TOML file layered over
// built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is looked up next to the executable when -config is not given.
const DefaultFile = "labescape.toml"

type Config struct {
	Window Window `toml:"window"`
	Player Player `toml:"player"`
	Paths  Paths  `toml:"paths"`
	Log    Log    `toml:"log"`
}

type Window struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
}

type Player struct {
	Radius    float32 `toml:"radius"`
	EyeHeight float32 `toml:"eye_height"`
	MoveSpeed float32 `toml:"move_speed"`
	FlySpeed  float32 `toml:"fly_speed"`
	LookSpeed float32 `toml:"look_speed"`
}

type Paths struct {
	Assets  string `toml:"assets"`
	Shaders string `toml:"shaders"`
	Sounds  string `toml:"sounds"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Lab Escape",
			TargetFPS: 60,
		},
		Player: Player{
			Radius:    0.35,
			EyeHeight: 1.7,
			MoveSpeed: 3.0,
			FlySpeed:  5.0,
			LookSpeed: 0.1,
		},
		Paths: Paths{
			Assets:  "assets/models",
			Shaders: "assets/shaders",
			Sounds:  "assets/sounds",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return cfg, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target_fps %d must not be negative", c.Window.TargetFPS))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player radius %g must be positive", c.Player.Radius))
	}
	if c.Player.EyeHeight <= 0 {
		errs = append(errs, fmt.Errorf("eye_height %g must be positive", c.Player.EyeHeight))
	}
	if c.Player.MoveSpeed <= 0 || c.Player.FlySpeed <= 0 || c.Player.LookSpeed <= 0 {
		errs = append(errs, errors.New("player speeds must be positive"))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps the config level name onto slog.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return l, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
