// Package config provides configuration loading and access for hexfov.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arnodb/rhombus-sub000/survey"
	"github.com/arnodb/rhombus-sub000/terrain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all run parameters.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Survey  SurveyConfig  `yaml:"survey"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// TerrainConfig holds map generation parameters.
type TerrainConfig struct {
	Radius      int     `yaml:"radius"`      // Map disk radius
	Seed        int64   `yaml:"seed"`        // Noise seed
	Frequency   float64 `yaml:"frequency"`   // Base noise frequency
	Octaves     int     `yaml:"octaves"`     // Noise layers
	Persistence float64 `yaml:"persistence"` // Amplitude ratio between layers
	Threshold   float64 `yaml:"threshold"`   // Elevation from which a cell is a wall
	Clearing    int     `yaml:"clearing"`    // Clear disk kept around the map center
}

// SurveyConfig holds survey parameters.
type SurveyConfig struct {
	Viewpoints int `yaml:"viewpoints"` // Number of viewpoints to pick
	MaxRadius  int `yaml:"max_radius"` // Sight and walking radius
	Workers    int `yaml:"workers"`    // Concurrent viewpoints, 0 = one per CPU
}

// OutputConfig selects what gets written.
type OutputConfig struct {
	CSV    string `yaml:"csv"`    // CSV path, empty to skip
	Render bool   `yaml:"render"` // Print an ASCII map of the best viewpoint
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is
// validated.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and reports the first one out of range.
func (c *Config) Validate() error {
	switch {
	case c.Terrain.Radius < 0:
		return fmt.Errorf("%w: terrain.radius %d", ErrInvalid, c.Terrain.Radius)
	case c.Terrain.Frequency <= 0:
		return fmt.Errorf("%w: terrain.frequency %g", ErrInvalid, c.Terrain.Frequency)
	case c.Terrain.Octaves < 1:
		return fmt.Errorf("%w: terrain.octaves %d", ErrInvalid, c.Terrain.Octaves)
	case c.Terrain.Persistence <= 0 || c.Terrain.Persistence > 1:
		return fmt.Errorf("%w: terrain.persistence %g", ErrInvalid, c.Terrain.Persistence)
	case c.Terrain.Clearing < 0:
		return fmt.Errorf("%w: terrain.clearing %d", ErrInvalid, c.Terrain.Clearing)
	case c.Survey.Viewpoints < 1:
		return fmt.Errorf("%w: survey.viewpoints %d", ErrInvalid, c.Survey.Viewpoints)
	case c.Survey.MaxRadius < 0:
		return fmt.Errorf("%w: survey.max_radius %d", ErrInvalid, c.Survey.MaxRadius)
	case c.Survey.Workers < 0:
		return fmt.Errorf("%w: survey.workers %d", ErrInvalid, c.Survey.Workers)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

// TerrainOptions converts the terrain section.
func (c *Config) TerrainOptions() []terrain.Option {
	t := c.Terrain
	return []terrain.Option{
		terrain.WithSeed(t.Seed),
		terrain.WithFrequency(t.Frequency),
		terrain.WithOctaves(t.Octaves),
		terrain.WithPersistence(t.Persistence),
		terrain.WithThreshold(t.Threshold),
		terrain.WithClearing(t.Clearing),
	}
}

// SurveyOptions converts the survey section. A zero worker count keeps
// the survey default.
func (c *Config) SurveyOptions() []survey.Option {
	opts := []survey.Option{survey.WithMaxRadius(c.Survey.MaxRadius)}
	if c.Survey.Workers > 0 {
		opts = append(opts, survey.WithWorkers(c.Survey.Workers))
	}
	return opts
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
