package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/dshills/keytap/internal/drag"
	"github.com/dshills/keytap/internal/feedback"
	"github.com/dshills/keytap/internal/keyboard"
)

// Config is the engine configuration, mapped from a TOML file.
type Config struct {
	Keyboard  KeyboardConfig  `toml:"keyboard"`
	SpaceDrag SpaceDragConfig `toml:"space_drag"`
	Feedback  FeedbackConfig  `toml:"feedback"`
	Behavior  BehaviorConfig  `toml:"behavior"`
	Logging   LoggingConfig   `toml:"logging"`
}

// KeyboardConfig seeds the keyboard context.
type KeyboardConfig struct {
	// Locale is the primary locale as a BCP 47 tag.
	Locale string `toml:"locale"`

	// ExtraLocales are additional enabled locales, cycled by the
	// nextLocale action.
	ExtraLocales []string `toml:"extra_locales"`

	// SpaceLongPress selects what a long press on the space key does:
	// "none", "localeMenu" or "moveCursor".
	SpaceLongPress string `toml:"space_long_press"`
}

// SpaceDragConfig tunes the space-key cursor drag.
type SpaceDragConfig struct {
	// Sensitivity is the horizontal distance in points per cursor step.
	Sensitivity float64 `toml:"sensitivity"`
}

// FeedbackConfig selects the feedback settings.
type FeedbackConfig struct {
	// File is an optional JSON file with cue overrides, layered over
	// the built-in defaults.
	File string `toml:"file"`

	AudioEnabled  bool `toml:"audio_enabled"`
	HapticEnabled bool `toml:"haptic_enabled"`
}

// BehaviorConfig selects the behavior policy.
type BehaviorConfig struct {
	// Script is an optional Lua policy file. Empty selects the standard
	// policy.
	Script string `toml:"script"`
}

// LoggingConfig controls the engine log output.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Keyboard: KeyboardConfig{
			Locale:         "en",
			SpaceLongPress: keyboard.SpaceMovesInputCursor.String(),
		},
		SpaceDrag: SpaceDragConfig{
			Sensitivity: drag.DefaultSensitivity,
		},
		Feedback: FeedbackConfig{
			AudioEnabled:  true,
			HapticEnabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path, layered over Default. A missing
// file is not an error; it yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Debug("config: file absent, using defaults")
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	if c.SpaceDrag.Sensitivity <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSensitivity, c.SpaceDrag.Sensitivity)
	}
	if _, err := keyboard.ParseSpaceLongPressBehavior(c.Keyboard.SpaceLongPress); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLongPress, c.Keyboard.SpaceLongPress)
	}
	if _, err := language.Parse(c.Keyboard.Locale); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, c.Keyboard.Locale)
	}
	for _, tag := range c.Keyboard.ExtraLocales {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLocale, tag)
		}
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return nil
}

// Context builds a keyboard context seeded from the keyboard section.
// The configuration must have passed Validate.
func (c *Config) Context() (*keyboard.Context, error) {
	primary, err := language.Parse(c.Keyboard.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, c.Keyboard.Locale)
	}

	locales := []language.Tag{primary}
	for _, name := range c.Keyboard.ExtraLocales {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, name)
		}
		locales = append(locales, tag)
	}

	pref, err := keyboard.ParseSpaceLongPressBehavior(c.Keyboard.SpaceLongPress)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLongPress, c.Keyboard.SpaceLongPress)
	}

	ctx := keyboard.NewContext()
	ctx.Locale = primary
	ctx.Locales = locales
	ctx.SpaceLongPress = pref
	return ctx, nil
}

// FeedbackConfiguration builds the feedback settings from the feedback
// section, loading the override file when one is named.
func (c *Config) FeedbackConfiguration() (feedback.Configuration, error) {
	cfg := feedback.DefaultConfiguration()
	if c.Feedback.File != "" {
		loaded, err := feedback.LoadConfiguration(c.Feedback.File)
		if err != nil {
			return cfg, fmt.Errorf("config: feedback file: %w", err)
		}
		cfg = loaded
	}
	cfg.Audio.Enabled = c.Feedback.AudioEnabled
	cfg.Haptic.Enabled = c.Feedback.HapticEnabled
	return cfg, nil
}

// LogLevel returns the parsed logging level. The configuration must
// have passed Validate.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
