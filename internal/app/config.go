package app

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string `env:"RANDVIZ_SIM"`
	Scale int    `env:"RANDVIZ_SCALE"`
	TPS   int    `env:"RANDVIZ_TPS"`
	Seed  int64  `env:"RANDVIZ_SEED"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "montecarlo", Scale: 1, TPS: 30, Seed: 42}
}

// LoadEnv overlays RANDVIZ_* environment variables onto the defaults.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Flags take
// precedence over environment values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset; 0 derives one from the clock")
}

// ResolveSeed replaces the 0 sentinel with a clock-derived seed and reports
// whether it did so.
func (c *Config) ResolveSeed() bool {
	if c.Seed != 0 {
		return false
	}
	c.Seed = time.Now().UnixNano()
	return true
}
