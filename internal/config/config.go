// Package config holds the run configuration of the command line tool.
package config

import (
	"os"
	"strings"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Sites closer than this are merged
	Tolerance float64 `yaml:"tolerance"`
	// Split point strategy: nonencroaching or midpoint
	Split         string `yaml:"split"`
	MaxIterations int    `yaml:"maxIterations"`
	// Keep partial results when constraint enforcement gives up
	Debug bool `yaml:"debug"`
	// Output format: geojson, svg or png
	Format string `yaml:"format"`
	// Voronoi cells are clipped to the site envelope grown by this fraction of
	// its larger side
	ClipExpand float64 `yaml:"clipExpand"`
	// Pixel size of the larger side of rendered output
	ImageSize float64 `yaml:"imageSize"`
	Labels    bool    `yaml:"labels"`
}

func Default() Config {
	return Config{
		Split:         "nonencroaching",
		MaxIterations: advanced.DefaultMaxSplitIterations,
		Format:        "geojson",
		ClipExpand:    1,
		ImageSize:     800,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing config YAML")
	}
	return cfg, cfg.Validate()
}

var formats = []string{"geojson", "svg", "png"}

func (c Config) Validate() error {
	if c.Tolerance < 0 {
		return errors.Errorf("tolerance must not be negative, got %v", c.Tolerance)
	}
	if c.MaxIterations < 1 {
		return errors.Errorf("maxIterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.ClipExpand < 0 {
		return errors.Errorf("clipExpand must not be negative, got %v", c.ClipExpand)
	}
	if _, err := c.SplitPointFinder(); err != nil {
		return err
	}
	for _, f := range formats {
		if c.Format == f {
			return nil
		}
	}
	return errors.Errorf("format must be one of %s, got %q", strings.Join(formats, ", "), c.Format)
}

func (c Config) SplitPointFinder() (advanced.SplitPointFinder, error) {
	return advanced.SplitPointFinderByName(c.Split)
}
