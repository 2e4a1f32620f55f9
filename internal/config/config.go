// Package config loads simulation settings from embedded YAML defaults,
// an optional user file, and flag-style key/value overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"chunklife/pkg/life"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid reports a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid")

// Config holds every tunable of the engine and its front ends.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Rule   RuleConfig   `yaml:"rule"`
	Engine EngineConfig `yaml:"engine"`
	Seed   SeedConfig   `yaml:"seed"`
	View   ViewConfig   `yaml:"view"`
}

// WorldConfig sizes the chunk store. Width and height round up to whole
// chunks.
type WorldConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	ChunkSize int `yaml:"chunk_size"`
}

// RuleConfig selects the automaton rule in B/S notation.
type RuleConfig struct {
	Notation string `yaml:"notation"`
	WrapX    bool   `yaml:"wrap_x"`
	WrapY    bool   `yaml:"wrap_y"`
}

// EngineConfig toggles engine optimizations.
type EngineConfig struct {
	Sleep bool `yaml:"sleep"`
}

// SeedConfig controls the random soup placed on Reset.
type SeedConfig struct {
	Value   int64   `yaml:"value"`
	Density float64 `yaml:"density"` // fraction of live cells inside the soup square
	Region  int     `yaml:"region"`  // side of the soup square, centered in the world
}

// ViewConfig holds viewer settings.
type ViewConfig struct {
	Width                int `yaml:"width"`
	Height               int `yaml:"height"`
	Scale                int `yaml:"scale"`
	TPS                  int `yaml:"tps"`
	GenerationsPerSecond int `yaml:"generations_per_second"`
	StepsPerTick         int `yaml:"steps_per_tick"`
	HUDWidth             int `yaml:"hud_width"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return c
}

// Load reads a YAML file over the embedded defaults. Fields missing from the
// file keep their default values. An empty path yields the defaults.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WriteYAML writes the configuration to path.
func (c Config) WriteYAML(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// YAML renders the configuration as a YAML document.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// Validate checks ranges and that the rule parses.
func (c Config) Validate() error {
	if c.World.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size %d", ErrInvalid, c.World.ChunkSize)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world %dx%d", ErrInvalid, c.World.Width, c.World.Height)
	}
	if c.Seed.Density < 0 || c.Seed.Density > 1 {
		return fmt.Errorf("%w: density %v", ErrInvalid, c.Seed.Density)
	}
	if c.Seed.Region < 0 {
		return fmt.Errorf("%w: region %d", ErrInvalid, c.Seed.Region)
	}
	if _, err := life.ParseRule(c.Rule.Notation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// EngineConfig converts the settings into a life.Config.
func (c Config) EngineConfig() (life.Config, error) {
	rule, err := life.ParseRule(c.Rule.Notation)
	if err != nil {
		return life.Config{}, err
	}
	rule.WrapX = c.Rule.WrapX
	rule.WrapY = c.Rule.WrapY
	return life.Config{
		ChunkSize: c.World.ChunkSize,
		Width:     c.World.Width,
		Height:    c.World.Height,
		Rule:      rule,
		Sleep:     c.Engine.Sleep,
	}, nil
}

// FromMap applies flag-style overrides on top of c. Unparseable or
// out-of-range values are ignored.
func FromMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.World.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.World.Height = parsed
		}
	}
	if v, ok := cfg["chunk"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.World.ChunkSize = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := life.ParseRule(v); err == nil {
			c.Rule.Notation = v
		}
	}
	if v, ok := cfg["wrap_x"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rule.WrapX = parsed
		}
	}
	if v, ok := cfg["wrap_y"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rule.WrapY = parsed
		}
	}
	if v, ok := cfg["sleep"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Engine.Sleep = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed.Value = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Seed.Density = parsed
		}
	}
	if v, ok := cfg["region"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Seed.Region = parsed
		}
	}
	return c
}
