package session

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/layout"
	"github.com/katalvlaran/gridnav/planner"
)

// CellConfig names one cell in a scenario file.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Config is a YAML scenario: grid dimensions, the agent's start cell, and
// the optional tunables of a Session.
//
//	width: 20
//	height: 15
//	start: {x: 0, y: 0}
//	speed: 0.05        # optional, cell units per tick
//	algorithm: astar   # optional, "bfs" (default) or "astar"
//	layout: floor.txt  # optional, wire-format occupancy to preload
type Config struct {
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	Start     CellConfig `yaml:"start"`
	Speed     float64    `yaml:"speed,omitempty"`
	Algorithm string     `yaml:"algorithm,omitempty"`
	Layout    string     `yaml:"layout,omitempty"`
}

// LoadConfig reads and validates a scenario file.
// Parse and validation failures wrap ErrBadConfig.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("session: read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrBadConfig, path, err)
	}
	if err = cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validate checks the scenario invariants that do not need a built grid.
func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrBadConfig, c.Width, c.Height)
	}
	if c.Start.X < 0 || c.Start.X >= c.Width || c.Start.Y < 0 || c.Start.Y >= c.Height {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d", ErrBadConfig, c.Start.X, c.Start.Y, c.Width, c.Height)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: negative speed %v", ErrBadConfig, c.Speed)
	}
	if c.Algorithm != "" {
		if _, err := planner.ParseStrategy(c.Algorithm); err != nil {
			return fmt.Errorf("%w: %v", ErrBadConfig, err)
		}
	}

	return nil
}

// NewFromConfig builds a grid and Session from a validated scenario,
// preloading the layout file when one is named. Layout cells may block
// the configured start, which then surfaces as ErrBadStart.
func NewFromConfig(cfg Config) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	// Preload occupancy before placing the agent so a layout that blocks
	// the configured start is caught as ErrBadStart.
	if cfg.Layout != "" {
		if err = layout.Load(cfg.Layout, g); err != nil {
			return nil, err
		}
	}

	opts := make([]Option, 0, 2)
	if cfg.Speed > 0 {
		opts = append(opts, WithSpeed(cfg.Speed))
	}
	if cfg.Algorithm != "" {
		strat, _ := planner.ParseStrategy(cfg.Algorithm) // validated above
		opts = append(opts, WithStrategy(strat))
	}

	return New(g, grid.Cell{X: cfg.Start.X, Y: cfg.Start.Y}, opts...)
}
