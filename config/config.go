package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/robmorgan/cutscene/logger"
	"github.com/sirupsen/logrus"
)

// Settings are the knobs that can be overridden from the environment.
type Settings struct {
	// FPS is the frame rate of the player loop.
	FPS int `env:"CUTSCENE_FPS" envDefault:"60"`

	// ScriptPath points at a YAML show script that replaces the built-in show.
	ScriptPath string `env:"CUTSCENE_SCRIPT"`

	LogLevel string `env:"CUTSCENE_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"CUTSCENE_LOG_FILE"`

	// StartDelay is the pause between leaving the start screen and the first scene.
	StartDelay time.Duration `env:"CUTSCENE_START_DELAY" envDefault:"800ms"`

	// ClickFlash is how long a scripted cursor click stays visible.
	ClickFlash time.Duration `env:"CUTSCENE_CLICK_FLASH" envDefault:"150ms"`

	// Seed drives the placement of combat effects. Zero picks a seed from the clock.
	Seed int64 `env:"CUTSCENE_SEED"`
}

// CinematicConfig represents options that configure the global behavior of the program
type CinematicConfig struct {
	// Project logger
	Logger *logrus.Logger

	Settings Settings

	// Show is the presentation to play
	Show Show
}

// Create a new CinematicConfig object with reasonable defaults for real usage, overridden by the environment.
func NewCinematicConfig() (CinematicConfig, error) {
	settings, err := LoadSettings()
	if err != nil {
		return CinematicConfig{}, err
	}

	return Build(settings)
}

// LoadSettings returns the default settings overridden by the environment.
func LoadSettings() (Settings, error) {
	settings := DefaultSettings()
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return settings, nil
}

// Build creates a config from explicit settings, loading the show script when one is set.
func Build(settings Settings) (CinematicConfig, error) {
	show := DefaultShow()
	if settings.ScriptPath != "" {
		loaded, err := LoadShow(settings.ScriptPath)
		if err != nil {
			return CinematicConfig{}, err
		}
		show = *loaded
	}

	if err := settings.Validate(); err != nil {
		return CinematicConfig{}, err
	}
	if err := show.Validate(); err != nil {
		return CinematicConfig{}, err
	}

	return CinematicConfig{
		Logger:   logger.GetProjectLogger(),
		Settings: settings,
		Show:     show,
	}, nil
}

// DefaultSettings returns the settings used when nothing is overridden.
func DefaultSettings() Settings {
	return Settings{
		FPS:        60,
		LogLevel:   "info",
		StartDelay: 800 * time.Millisecond,
		ClickFlash: 150 * time.Millisecond,
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.FPS <= 0 || s.FPS > 240 {
		return fmt.Errorf("fps must be between 1 and 240, got %d", s.FPS)
	}
	if s.StartDelay < 0 {
		return fmt.Errorf("start delay must not be negative, got %v", s.StartDelay)
	}
	if s.ClickFlash <= 0 {
		return fmt.Errorf("click flash must be positive, got %v", s.ClickFlash)
	}
	return nil
}
