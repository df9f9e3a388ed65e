package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/cenkalti/planar/geom"
	"github.com/cenkalti/planar/internal/logger"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

// Config for the planar command.
type Config struct {
	// File to load points from. One point per line.
	PointsFile string `yaml:"points_file"`
	// One of debug, info, notice, warning, error, critical.
	LogLevel string `yaml:"log_level"`
	// Region owned by the root of the tree. Points outside of it are still accepted.
	Universe Universe `yaml:"universe"`
	// Number of random queries run by the verify command.
	VerifyQueries int `yaml:"verify_queries"`
	// Number of points written by the gen command.
	GenCount int `yaml:"gen_count"`
	// Seed for random generators.
	Seed int64 `yaml:"seed"`
}

// Universe is the initial extent of the tree.
type Universe struct {
	XMin float64 `yaml:"xmin"`
	YMin float64 `yaml:"ymin"`
	XMax float64 `yaml:"xmax"`
	YMax float64 `yaml:"ymax"`
	// Ignore the bounds above and cover the whole plane.
	Unbounded bool `yaml:"unbounded"`
}

// Rect returns the universe as a rectangle.
func (u Universe) Rect() (geom.Rect, error) {
	if u.Unbounded {
		return geom.Plane, nil
	}
	return geom.NewRect(u.XMin, u.YMin, u.XMax, u.YMax)
}

var DefaultConfig = Config{
	PointsFile:    "points.txt",
	LogLevel:      "info",
	Universe:      Universe{XMin: 0, YMin: 0, XMax: 1, YMax: 1},
	VerifyQueries: 1000,
	GenCount:      1000,
	Seed:          1,
}

// LoadConfig reads the YAML file at filename over DefaultConfig.
// A missing file is not an error; the defaults are returned.
func LoadConfig(filename string) (*Config, error) {
	c := DefaultConfig
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", filename, err)
	}
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &c, nil
}

// Validate checks values that cannot be used as they are.
func (c *Config) Validate() error {
	if _, err := c.Universe.Rect(); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.VerifyQueries < 0 {
		return errors.New("verify_queries must not be negative")
	}
	if c.GenCount < 0 {
		return errors.New("gen_count must not be negative")
	}
	return nil
}

// Save writes the config to filename in YAML format.
func (c *Config) Save(filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0640)
}
