// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinScale      = 0.0
	MaxScale      = 2.0
	MinFilterSize = 1
	MaxFilterSize = 100
)

var ErrInvalidConfig = errors.New("invalid effect configuration")

// ConfigError names the field of a Config that failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Config selects the stages Transform applies. It is read-only during a run.
type Config struct {
	Pitch      Pitch   `json:"pitch" yaml:"pitch"`
	Scale      float64 `json:"scale" yaml:"scale"`
	Reflect    bool    `json:"reflect" yaml:"reflect"`
	Reverse    bool    `json:"reverse" yaml:"reverse"`
	FilterSize int     `json:"filter_size" yaml:"filter_size"`
}

// DefaultConfig returns the identity configuration.
func DefaultConfig() Config {
	return Config{
		Pitch:      PitchNone,
		Scale:      1.0,
		FilterSize: 1,
	}
}

// Gain is the factor every sample is multiplied by.
func (c Config) Gain() float64 {
	if c.Reflect {
		return -c.Scale
	}
	return c.Scale
}

// Validate checks every field against its documented range.
func (c Config) Validate() error {
	if !c.Pitch.Valid() {
		return &ConfigError{Field: "pitch", Value: int(c.Pitch), Reason: "unknown pitch effect"}
	}

	if math.IsNaN(c.Scale) || c.Scale < MinScale || c.Scale > MaxScale {
		return &ConfigError{
			Field:  "scale",
			Value:  c.Scale,
			Reason: fmt.Sprintf("must be within [%.1f, %.1f]", MinScale, MaxScale),
		}
	}

	if c.FilterSize < MinFilterSize || c.FilterSize > MaxFilterSize {
		return &ConfigError{
			Field:  "filter_size",
			Value:  c.FilterSize,
			Reason: fmt.Sprintf("must be within [%d, %d]", MinFilterSize, MaxFilterSize),
		}
	}

	return nil
}
