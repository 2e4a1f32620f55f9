package app

import (
	"flag"
	"strconv"

	"chunklife/internal/config"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Config  string
	Pattern string
	Rule    string
	Scale   int
	TPS     int
	GPS     int
	HUD     int
	Seed    int64
}

// NewConfig returns a Config populated from the embedded defaults.
func NewConfig() *Config {
	d := config.DefaultConfig()
	return &Config{
		Sim:   "life",
		Scale: d.View.Scale,
		TPS:   d.View.TPS,
		GPS:   d.View.GenerationsPerSecond,
		HUD:   d.View.HUDWidth,
		Seed:  d.Seed.Value,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, highlife, daynight)")
	fs.StringVar(&c.Config, "config", c.Config, "YAML settings file layered over the defaults")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "snapshot file (.clp, .csv, .yaml) to load instead of a random soup")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation, overriding the sim's own")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second while running")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels, 0 to hide")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// FactoryArgs converts the flags into the key/value map sim factories take.
func (c *Config) FactoryArgs() map[string]string {
	args := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Config != "" {
		args["config"] = c.Config
	}
	if c.Rule != "" {
		args["rule"] = c.Rule
	}
	return args
}
