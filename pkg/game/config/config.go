// Package config loads the game settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"lightbot/pkg/engine/input"
	"lightbot/pkg/game/gameplay"
	"lightbot/pkg/game/messages"
)

// Config holds the game settings. Keys missing from the file keep their defaults.
type Config struct {
	// ExecutionSpeedMs is the pause after every executed block
	ExecutionSpeedMs int `yaml:"execution_speed_ms"`

	Locale string `yaml:"locale"`

	// MaxLoopIterations caps a single LOOP block; 0 disables the cap
	MaxLoopIterations int `yaml:"max_loop_iterations"`

	// LevelsFile replaces the built-in levels when set
	LevelsFile string `yaml:"levels_file"`

	// Listen is the address of the WebSocket server; empty runs the CLI once
	Listen string `yaml:"listen"`

	// KeyBindings rebinds console actions, action name to code
	KeyBindings map[string]string `yaml:"key_bindings"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		ExecutionSpeedMs:  500,
		Locale:            messages.DefaultLocale,
		MaxLoopIterations: gameplay.DefaultMaxLoopIterations,
	}
}

// Load reads settings from path on top of the defaults
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	var errs []error
	if c.ExecutionSpeedMs < 0 {
		errs = append(errs, fmt.Errorf("execution_speed_ms %d must not be negative", c.ExecutionSpeedMs))
	}
	if c.MaxLoopIterations < 0 {
		errs = append(errs, fmt.Errorf("max_loop_iterations %d must not be negative", c.MaxLoopIterations))
	}
	if _, err := messages.Load(c.Locale); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ExecutionSpeed returns the pause after every executed command
func (c Config) ExecutionSpeed() time.Duration {
	return time.Duration(c.ExecutionSpeedMs) * time.Millisecond
}

// ExecutorOptions builds executor options from the settings. The executor
// traces its runs to logger.
func (c Config) ExecutorOptions(logger *log.Logger) (gameplay.Options, error) {
	msgs, err := messages.Load(c.Locale)
	if err != nil {
		return gameplay.Options{}, err
	}
	opts := gameplay.DefaultOptions()
	opts.Pacer = gameplay.DelayPacer(c.ExecutionSpeed())
	opts.Messages = msgs
	opts.MaxLoopIterations = c.MaxLoopIterations
	opts.Logger = logger
	return opts, nil
}

// Bindings returns the console key map with the configured overrides applied
func (c Config) Bindings() (input.Bindings, error) {
	b := input.DefaultBindings()
	if err := b.Apply(c.KeyBindings); err != nil {
		return nil, fmt.Errorf("key_bindings: %w", err)
	}
	return b, nil
}
