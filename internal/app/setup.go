package app

import (
	"fmt"

	"chunklife/internal/core"
	"chunklife/pkg/life"
	"chunklife/pkg/pattern"
)

type engineProvider interface {
	Engine() *life.Engine
}

// Start builds the sim named by c and seeds it, either with a random soup
// or with the snapshot named by c.Pattern.
func Start(c *Config) (core.Sim, error) {
	sim, err := core.Build(c.Sim, c.FactoryArgs())
	if err != nil {
		return nil, err
	}
	sim.Reset(c.Seed)
	if c.Pattern == "" {
		return sim, nil
	}
	provider, ok := sim.(engineProvider)
	if !ok {
		return nil, fmt.Errorf("sim %q cannot load patterns", c.Sim)
	}
	snap, err := pattern.Load(c.Pattern)
	if err != nil {
		return nil, err
	}
	if err := snap.Restore(provider.Engine()); err != nil {
		return nil, fmt.Errorf("restoring %s: %w", c.Pattern, err)
	}
	return sim, nil
}
