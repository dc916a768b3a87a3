package domain

import (
	"errors"
	"fmt"
	"math"
)

// Config represents the promptloop configuration loaded from promptloop.yaml.
type Config struct {
	Below BelowConfig
	Guess GuessConfig
}

type BelowConfig struct {
	Threshold int
}

type GuessConfig struct {
	Min int
	Max int

	// Seed fixes the random target when non-nil.
	Seed *uint64
}

// DefaultConfig provides sane defaults if promptloop.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Below: BelowConfig{Threshold: 10},
		Guess: GuessConfig{Min: 1, Max: 100},
	}
}

// Validate reports the first invalid value, wrapped with ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Below.Threshold < 1 {
		return fmt.Errorf("%w: below.threshold must be >= 1, got %d", ErrInvalidConfig, c.Below.Threshold)
	}
	if c.Guess.Min < 0 {
		return fmt.Errorf("%w: guess.min must be >= 0, got %d", ErrInvalidConfig, c.Guess.Min)
	}
	// Guesses are read as uint32, so a larger target could never be entered.
	if int64(c.Guess.Max) > math.MaxUint32 {
		return fmt.Errorf("%w: guess.max must be <= %d, got %d", ErrInvalidConfig, uint32(math.MaxUint32), c.Guess.Max)
	}
	if c.Guess.Min > c.Guess.Max {
		return fmt.Errorf("%w: guess.min (%d) > guess.max (%d)", ErrInvalidConfig, c.Guess.Min, c.Guess.Max)
	}
	return nil
}

// IsInvalidConfig reports whether err came from Validate or a config loader.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig) || IsKind(err, KindInvalidConfig)
}
