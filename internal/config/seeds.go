package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/terrain/drainage"
)

// seedFile is the YAML layout of a seeds file:
//
//	seeds:
//	  - {x: 12, y: 40}
//	  - {x: 13.5, y: 41}
type seedFile struct {
	Seeds []struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"seeds"`
}

// ParseSeed parses "x,y" into a point.
func ParseSeed(s string) (drainage.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return drainage.Point{}, fmt.Errorf("%w: %q", ErrBadSeed, s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil || math.IsNaN(x) || math.IsNaN(y) {
		return drainage.Point{}, fmt.Errorf("%w: %q", ErrBadSeed, s)
	}
	return drainage.Point{X: x, Y: y}, nil
}

// ReadSeeds loads seeds from a YAML file.
func ReadSeeds(path string) ([]drainage.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: seeds file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadSeed, path, err)
	}
	out := make([]drainage.Point, 0, len(f.Seeds))
	for _, s := range f.Seeds {
		out = append(out, drainage.Point{X: s.X, Y: s.Y})
	}
	return out, nil
}

// SeedPoints returns the inline seeds followed by those of SeedsFile.
func (c *Config) SeedPoints() ([]drainage.Point, error) {
	var out []drainage.Point
	for _, s := range c.Seeds {
		p, err := ParseSeed(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if c.SeedsFile != "" {
		more, err := ReadSeeds(c.SeedsFile)
		if err != nil {
			return nil, err
		}
		out = append(out, more...)
	}
	return out, nil
}
