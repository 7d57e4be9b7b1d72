package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/baconshor/internal/code"
)

const (
	DefaultRows  = 2
	DefaultCols  = 2
	DefaultTheme = "dark"
)

// Config describes a lattice plus an optional pre-scripted measurement
// schedule. Each schedule step is a list of "q1-q2" edge strings.
type Config struct {
	Rows     int        `yaml:"rows"`
	Cols     int        `yaml:"cols"`
	Theme    string     `yaml:"theme"`
	Schedule [][]string `yaml:"schedule"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:  DefaultRows,
		Cols:  DefaultCols,
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the lattice dimensions and that every scheduled edge
// parses and is measurable on that lattice.
func (c *Config) Validate() error {
	l, err := code.NewLattice(c.Rows, c.Cols)
	if err != nil {
		return err
	}
	for i, step := range c.Schedule {
		for _, spec := range step {
			e, err := code.ParseEdge(spec)
			if err != nil {
				return fmt.Errorf("schedule step %d: %w", i+1, err)
			}
			if err := l.ValidateEdge(e); err != nil {
				return fmt.Errorf("schedule step %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// Lattice builds the configured lattice.
func (c *Config) Lattice() (*code.Lattice, error) {
	return code.NewLattice(c.Rows, c.Cols)
}

// ScheduleEdges converts the textual schedule into per-step edge lists.
func (c *Config) ScheduleEdges() ([][]code.Edge, error) {
	steps := make([][]code.Edge, 0, len(c.Schedule))
	for i, step := range c.Schedule {
		parsed := make([]code.Edge, 0, len(step))
		for _, spec := range step {
			e, err := code.ParseEdge(spec)
			if err != nil {
				return nil, fmt.Errorf("schedule step %d: %w", i+1, err)
			}
			parsed = append(parsed, e)
		}
		steps = append(steps, parsed)
	}
	return steps, nil
}
