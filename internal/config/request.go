package config

import (
	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/derive"
	"github.com/katalvlaran/terrain/drainage"
	"github.com/katalvlaran/terrain/raster"
)

// Request turns the configuration into a validated terrain.Request.
func (c *Config) Request() (terrain.Request, error) {
	m, err := terrain.ParseMethod(c.Method)
	if err != nil {
		return terrain.Request{}, err
	}
	r := terrain.NewRequest(m)
	r.Altitude, r.Azimuth = c.Altitude, c.Azimuth
	r.Derive = []derive.Option{derive.WithClamp(c.Clamp), derive.WithWorkers(c.Workers)}
	r.Drainage = []drainage.Option{drainage.WithMaxSteps(c.MaxSteps), drainage.WithWorkers(c.Workers)}
	if m == terrain.MethodDrainage {
		if r.Seeds, err = c.SeedPoints(); err != nil {
			return terrain.Request{}, err
		}
	}
	return r, r.Validate()
}

// SourceOptions returns the raster options for loading Input.
func (c *Config) SourceOptions() []raster.Option {
	if !c.Window.Enabled() {
		return nil
	}
	w := c.Window
	return []raster.Option{raster.WithWindow(w.OffsetX, w.OffsetY, w.Width, w.Height)}
}
