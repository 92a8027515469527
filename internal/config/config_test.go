package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/drainage"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	v := New()
	v.Set("input", "dem.asc")
	v.Set("output", "out.asc")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 45.0, cfg.Altitude)
	assert.Equal(t, 315.0, cfg.Azimuth)
	assert.True(t, cfg.Clamp)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.False(t, cfg.Window.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Nil(t, cfg.SourceOptions())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, "terrain.yaml", `
input: dem.asc
output: shade.tif
method: shaded_relief
altitude: 30
azimuth: 90
window:
  offset_x: 2
  offset_y: 3
  width: 10
  height: 20
log:
  format: json
`)
	t.Setenv("TERRAIN_AZIMUTH", "180")
	t.Setenv("TERRAIN_LOG_LEVEL", "debug")

	v := New()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Altitude)
	assert.Equal(t, 180.0, cfg.Azimuth)
	assert.Equal(t, WindowConfig{OffsetX: 2, OffsetY: 3, Width: 10, Height: 20}, cfg.Window)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Len(t, cfg.SourceOptions(), 1)

	r, err := cfg.Request()
	require.NoError(t, err)
	assert.Equal(t, terrain.MethodHillshade, r.Method)
	assert.Equal(t, 180.0, r.Azimuth)
}

func TestReadFile_ConfigFileEnv(t *testing.T) {
	path := writeFile(t, "custom.yaml", "method: slope\n")
	t.Setenv(ConfigFileEnv, path)

	v := New()
	require.NoError(t, ReadFile(v, ""))
	assert.Equal(t, "slope", v.GetString("method"))
}

func TestReadFile_Errors(t *testing.T) {
	v := New()
	assert.Error(t, ReadFile(v, filepath.Join(t.TempDir(), "missing.yaml")))

	bad := writeFile(t, "bad.yaml", "altitude: [1, 2\n")
	assert.Error(t, ReadFile(New(), bad))
}

func TestReadFile_DefaultIsOptional(t *testing.T) {
	chdir(t, t.TempDir())
	assert.NoError(t, ReadFile(New(), ""))
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Input: "a", Output: "b", Workers: 1}
	}
	cases := map[string]struct {
		mutate func(*Config)
		want   error
	}{
		"NoInput":      {func(c *Config) { c.Input = " " }, ErrNoInput},
		"NoOutput":     {func(c *Config) { c.Output = "" }, ErrNoOutput},
		"Workers":      {func(c *Config) { c.Workers = 0 }, ErrBadWorkers},
		"MaxSteps":     {func(c *Config) { c.MaxSteps = -1 }, ErrBadSteps},
		"WindowSize":   {func(c *Config) { c.Window = WindowConfig{OffsetX: 1} }, ErrBadWindow},
		"WindowOffset": {func(c *Config) { c.Window = WindowConfig{OffsetX: -1, Width: 1, Height: 1} }, ErrBadWindow},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
	assert.NoError(t, base().Validate())
}

func TestRequest_Errors(t *testing.T) {
	c := &Config{Input: "a", Output: "b", Workers: 1}
	_, err := c.Request()
	assert.ErrorIs(t, err, terrain.ErrNoMethod)

	c.Method = "aspect"
	_, err = c.Request()
	assert.ErrorIs(t, err, terrain.ErrUnknownMethod)

	c.Method = "drainage"
	_, err = c.Request()
	assert.ErrorIs(t, err, terrain.ErrNoSeeds)

	c.Seeds = []string{"1;2"}
	_, err = c.Request()
	assert.ErrorIs(t, err, ErrBadSeed)
}

func TestSeeds(t *testing.T) {
	p, err := ParseSeed(" 1.5 , 2 ")
	require.NoError(t, err)
	assert.Equal(t, drainage.Point{X: 1.5, Y: 2}, p)

	for _, bad := range []string{"", "1", "1,2,3", "a,2", "NaN,1"} {
		_, err := ParseSeed(bad)
		assert.ErrorIs(t, err, ErrBadSeed, bad)
	}

	path := writeFile(t, "seeds.yaml", "seeds:\n  - {x: 3, y: 4}\n  - x: 5.5\n    y: 6\n")
	c := &Config{Method: "drainage", Workers: 2, Seeds: []string{"1,2"}, SeedsFile: path}
	r, err := c.Request()
	require.NoError(t, err)
	assert.Equal(t, []drainage.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5.5, Y: 6}}, r.Seeds)

	_, err = ReadSeeds(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
	_, err = ReadSeeds(writeFile(t, "bad.yaml", "seeds: {x: [\n"))
	assert.ErrorIs(t, err, ErrBadSeed)
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
