package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

// Config represents the runtime parameters for the application.
type Config struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   int     `json:"scale"`
	TPS     int     `json:"tps"`
	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`
}

// NewConfig returns a Config populated with sensible defaults: a 256x192
// board stepped ten times per second (a 100ms tick) seeded half alive.
func NewConfig() *Config {
	return &Config{Width: 256, Height: 192, Scale: 3, TPS: 10, Seed: 42, Density: 0.5}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial randomization")
	fs.Float64Var(&c.Density, "density", c.Density, "initial alive probability")
}

// Load merges values from a JSON config file over the current configuration.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Validate surfaces unusable values before any grid is constructed.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(core.ErrInvalidDimension, "%dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be in [0,1], got %g", c.Density)
	}
	return nil
}
