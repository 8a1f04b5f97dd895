// SPDX-License-Identifier: EPL-2.0

// Package config loads the audxform settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ik5/audxform/effects"
	"github.com/ik5/audxform/internal/log"
)

const (
	DefaultFile           = "audxform.yaml"
	DefaultAddress        = ":8080"
	DefaultMaxUploadBytes = 50 << 20
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 2 * time.Minute
	DefaultBitDepth       = 16

	envPrefix = "AUDXFORM_"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	LogLevel  string         `yaml:"log_level"`
	LogFormat string         `yaml:"log_format"`
	Server    ServerConfig   `yaml:"server"`
	Output    OutputConfig   `yaml:"output"`
	Effects   effects.Config `yaml:"effects"` // CLI defaults
}

type ServerConfig struct {
	Address        string        `yaml:"address"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
}

type OutputConfig struct {
	BitDepth int `yaml:"bit_depth"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: log.FormatText,
		Server: ServerConfig{
			Address:        DefaultAddress,
			MaxUploadBytes: DefaultMaxUploadBytes,
			ReadTimeout:    DefaultReadTimeout,
			WriteTimeout:   DefaultWriteTimeout,
		},
		Output:  OutputConfig{BitDepth: DefaultBitDepth},
		Effects: effects.DefaultConfig(),
	}
}

// Load reads path over the defaults. An empty path uses DefaultFile when it
// exists and the defaults otherwise. AUDXFORM_* variables are applied last,
// then the result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from AUDXFORM_<KEY> variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok {
			*dst = v
		}
	}

	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("SERVER_ADDRESS", &c.Server.Address)

	if v, ok := lookup(envPrefix + "MAX_UPLOAD_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sMAX_UPLOAD_BYTES: %w", ErrInvalid, envPrefix, err)
		}
		c.Server.MaxUploadBytes = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"READ_TIMEOUT", &c.Server.ReadTimeout},
		{"WRITE_TIMEOUT", &c.Server.WriteTimeout},
	}
	for _, d := range durations {
		v, ok := lookup(envPrefix + d.key)
		if !ok {
			continue
		}
		dur, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s: %w", ErrInvalid, envPrefix, d.key, err)
		}
		*d.dst = dur
	}

	if v, ok := lookup(envPrefix + "BIT_DEPTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sBIT_DEPTH: %w", ErrInvalid, envPrefix, err)
		}
		c.Output.BitDepth = n
	}

	if v, ok := lookup(envPrefix + "PITCH"); ok {
		if err := c.Effects.Pitch.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sPITCH: %w", envPrefix, err)
		}
	}

	return nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	if _, err := log.Formatter(c.LogFormat); err != nil {
		return fmt.Errorf("%w: log_format: %w", ErrInvalid, err)
	}

	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address is empty", ErrInvalid)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: server.max_upload_bytes must be positive, got %d", ErrInvalid, c.Server.MaxUploadBytes)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("%w: server timeouts must not be negative", ErrInvalid)
	}

	switch c.Output.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: output.bit_depth must be 16, 24 or 32, got %d", ErrInvalid, c.Output.BitDepth)
	}

	if err := c.Effects.Validate(); err != nil {
		return fmt.Errorf("effects: %w", err)
	}

	return nil
}
