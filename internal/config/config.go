package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 480
	WindowHeight = 800

	Margin = 20

	// Text input
	InputX      = Margin
	InputY      = 64
	InputWidth  = WindowWidth - 2*Margin
	InputHeight = 36
	InputMaxLen = 64

	// Add / Import buttons share one row
	ButtonY      = 108
	ButtonHeight = 36
	ButtonGap    = 12

	// Name list
	ListY         = 176
	ListHeight    = 180
	ListRowHeight = 30

	// Spin button
	SpinY      = 372
	SpinHeight = 48

	// Wheel
	WheelCenterX = WindowWidth / 2
	WheelCenterY = 580
	WheelRadius  = 125
	PointerSize  = 30

	ResultY = 724

	SampleRate      = 44100
	SmoothingFactor = 0.6
)

const defaultConfigPath = "config.yaml"

// Config is the runtime configuration of the app.
type Config struct {
	Wheel   WheelConfig   `yaml:"wheel"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
	Window  WindowConfig  `yaml:"window"`
}

// WheelConfig tunes the spin.
type WheelConfig struct {
	FullTurns    int           `yaml:"full_turns" env:"WHEEL_FULL_TURNS"`
	SpinDuration time.Duration `yaml:"spin_duration" env:"WHEEL_SPIN_DURATION"`
	LabelRadius  float64       `yaml:"label_radius" env:"WHEEL_LABEL_RADIUS"`
	LabelWidth   int           `yaml:"label_width" env:"WHEEL_LABEL_WIDTH"`
}

// AudioConfig controls the tick and chime sounds. Empty sound paths select
// the built-in synthesized sounds.
type AudioConfig struct {
	Muted bool `yaml:"muted" env:"AUDIO_MUTED"`
	// Volume is the linear gain in [0, 1]; 0 is silent. Unset means 0.5.
	Volume     float64 `yaml:"volume" env:"AUDIO_VOLUME"`
	TickSound  string  `yaml:"tick_sound" env:"AUDIO_TICK_SOUND"`
	ChimeSound string  `yaml:"chime_sound" env:"AUDIO_CHIME_SOUND"`
}

// LoggingConfig describes log level and destination.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Output string `yaml:"output" env:"LOG_OUTPUT"`
}

type WindowConfig struct {
	Title string `yaml:"title" env:"WINDOW_TITLE"`
}

// MustLoad loads the configuration and panics on error.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the YAML file named by CONFIG_PATH, or config.yaml in the working
// directory, then applies environment overrides. A missing config.yaml is not
// an error; a missing CONFIG_PATH file is.
func Load() (Config, error) {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || path == "" {
		path = defaultConfigPath
		explicit = false
	}

	cfg := Config{Audio: AudioConfig{Volume: defaultVolume}}
	if err := readYAML(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env vars: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found: %w", path, err)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config yaml: %w", err)
	}
	return nil
}

const defaultVolume = 0.5

func (c *Config) normalize() {
	if c.Wheel.FullTurns <= 0 {
		c.Wheel.FullTurns = 5
	}
	if c.Wheel.SpinDuration <= 0 {
		c.Wheel.SpinDuration = 3 * time.Second
	}
	if c.Wheel.LabelRadius <= 0 || c.Wheel.LabelRadius > 1 {
		c.Wheel.LabelRadius = 0.5
	}
	if c.Wheel.LabelWidth <= 0 {
		c.Wheel.LabelWidth = 14
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = defaultVolume
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}

	if c.Window.Title == "" {
		c.Window.Title = "Name Wheel"
	}
}

// SlogLevel parses Level, falling back to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
