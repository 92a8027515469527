package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/derive"
	"github.com/katalvlaran/terrain/drainage"
	"github.com/katalvlaran/terrain/internal/config"
	"github.com/katalvlaran/terrain/raster"
)

func addLightFlags(fs *pflag.FlagSet) {
	fs.Float64("altitude", derive.DefaultAltitude, "light source altitude in degrees")
	fs.Float64("azimuth", derive.DefaultAzimuth, "light source azimuth in degrees, clockwise from north")
	fs.Bool("clamp", true, "clamp negative illumination to 0")
}

func (a *app) addDrainageFlags(fs *pflag.FlagSet) {
	fs.StringArrayVar(&a.seeds, "seed", nil, "seed cell as x,y (repeatable)")
	fs.String("seeds-file", "", "YAML file with a seeds list of {x, y}")
	fs.Int("max-steps", 0, "step limit per path (0 means width*height)")
}

func (a *app) slopeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slope",
		Short: "Write the slope magnitude scaled by 255",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, terrain.MethodSlope)
		},
	}
}

func (a *app) hillshadeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hillshade",
		Aliases: []string{"shaded_relief"},
		Short:   "Write the hillshade for a light source scaled by 255",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, terrain.MethodHillshade)
		},
	}
	addLightFlags(cmd.Flags())
	return cmd
}

func (a *app) drainageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drainage",
		Short: "Mark steepest-descent paths from seed cells with 255",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, terrain.MethodDrainage)
		},
	}
	a.addDrainageFlags(cmd.Flags())
	return cmd
}

func (a *app) runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the method named by --method or the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, "")
		},
	}
	cmd.Flags().StringP("method", "m", "", "slope, hillshade (shaded_relief) or drainage")
	addLightFlags(cmd.Flags())
	a.addDrainageFlags(cmd.Flags())
	return cmd
}

func (a *app) sinksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sinks",
		Short: "List closed depressions of the input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd); err != nil {
				return err
			}
			cfg, err := config.Decode(a.v)
			if err != nil {
				return err
			}
			if cfg.Input == "" {
				return config.ErrNoInput
			}
			g, _, err := raster.Open(cfg.Input, cfg.SourceOptions()...)
			if err != nil {
				return err
			}
			groups, err := drainage.Sinks(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d depression(s)\n", len(groups))
			for _, cells := range groups {
				x, y := g.Coordinate(cells[0])
				z, _ := g.At(x, y)
				fmt.Fprintf(out, "(%d,%d) z=%g cells=%d\n", x, y, z, len(cells))
			}
			return nil
		},
	}
}

// execute loads the input, runs one method and writes the output. A failed
// run removes the output file.
func (a *app) execute(cmd *cobra.Command, method terrain.Method) error {
	if err := a.bind(cmd); err != nil {
		return err
	}
	if method != "" {
		a.v.Set("method", string(method))
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seeds = a.seeds
	}
	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	req, err := cfg.Request()
	if err != nil {
		return err
	}
	log = log.With("method", string(req.Method))

	start := time.Now()
	var src raster.Source = raster.FileSource{Path: cfg.Input, Options: cfg.SourceOptions()}
	g, info, err := src.Load()
	if err != nil {
		return err
	}
	log.Info("loaded input", "path", cfg.Input, "width", g.Width, "height", g.Height,
		"cell_ew", info.CellSizeEW, "cell_ns", info.CellSizeNS)

	sink, err := raster.Create(cfg.Output, g.Width, g.Height, raster.WithGeoref(info))
	if err != nil {
		return err
	}
	if err := terrain.Run(g, sink, req); err != nil {
		err = errors.Join(err, sink.Close(), os.Remove(cfg.Output))
		log.Error("run failed", "err", err)
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}
	log.Info("wrote output", "path", cfg.Output, "elapsed", time.Since(start))

	if req.Method == terrain.MethodDrainage && log.Enabled(cmd.Context(), slog.LevelDebug) {
		if groups, err := drainage.Sinks(g); err == nil {
			log.Debug("depressions", "count", len(groups))
		}
	}
	return nil
}
