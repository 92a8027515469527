package main

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/terrain/internal/config"
	"github.com/katalvlaran/terrain/internal/logging"
)

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"window-x":      "window.offset_x",
	"window-y":      "window.offset_y",
	"window-width":  "window.width",
	"window-height": "window.height",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"seeds-file":    "seeds_file",
	"max-steps":     "max_steps",
}

// unbound flags are read directly rather than through viper.
var unbound = map[string]bool{"config": true, "seed": true}

type app struct {
	v       *viper.Viper
	cfgFile string
	seeds   []string
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "terrain",
		Short: "Derive slope, hillshade and drainage rasters from a DEM",
		Long: `terrain reads a single-band elevation raster (Esri ASCII grid, optionally
gzipped, or greyscale TIFF) and writes one derived raster of the same size.

Configuration sources, highest priority first:
  1. command-line flags
  2. TERRAIN_* environment variables (TERRAIN_ALTITUDE, TERRAIN_LOG_LEVEL, ...)
  3. the file named by --config or TERRAIN_CONFIG_FILE, else ./.terrain.yaml
  4. built-in defaults`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.ReadFile(a.v, a.cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is .terrain.yaml, can also use TERRAIN_CONFIG_FILE env var)")
	pf.StringP("input", "i", "", "input DEM (.asc, .asc.gz, .tif, .tiff)")
	pf.StringP("output", "o", "", "output raster (.asc or .tif)")
	pf.Int("workers", runtime.NumCPU(), "number of concurrent workers")
	pf.Int("window-x", 0, "window column offset")
	pf.Int("window-y", 0, "window row offset")
	pf.Int("window-width", 0, "window width (0 reads the full raster)")
	pf.Int("window-height", 0, "window height (0 reads the full raster)")
	pf.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")

	root.AddCommand(
		a.slopeCommand(),
		a.hillshadeCommand(),
		a.drainageCommand(),
		a.runCommand(),
		a.sinksCommand(),
	)
	return root
}

// bind attaches the flags of the running command to viper keys.
func (a *app) bind(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || unbound[f.Name] {
			return
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			key = f.Name
		}
		err = a.v.BindPFlag(key, f)
	})
	return err
}

func newLogger(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    format,
		Output:    out,
		Component: "terrain",
	}), nil
}
