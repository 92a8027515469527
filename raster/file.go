package raster

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/terrain/grid"
)

type format int

const (
	formatUnknown format = iota
	formatEsri
	formatEsriGzip
	formatTIFF
)

func formatOf(path string) format {
	p := strings.ToLower(path)
	switch {
	case strings.HasSuffix(p, ".asc.gz"):
		return formatEsriGzip
	case strings.HasSuffix(p, ".asc"):
		return formatEsri
	case strings.HasSuffix(p, ".tif"), strings.HasSuffix(p, ".tiff"):
		return formatTIFF
	default:
		return formatUnknown
	}
}

// Open loads the elevation grid at path, choosing the reader by extension.
func Open(path string, opts ...Option) (*grid.Grid, Info, error) {
	f := formatOf(path)
	if f == formatUnknown {
		return nil, Info{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, Info{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer file.Close()

	var r io.Reader = file
	switch f {
	case formatEsriGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, Info{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		defer gz.Close()
		r = gz
		fallthrough
	case formatEsri:
		return ReadEsriASCII(r, opts...)
	default:
		return ReadTIFF(r, opts...)
	}
}

// FileSource is a Source reading one file through Open.
type FileSource struct {
	Path    string
	Options []Option
}

// Load implements Source.
func (s FileSource) Load() (*grid.Grid, Info, error) {
	return Open(s.Path, s.Options...)
}

// fileSink writes its buffer to a file on Close.
type fileSink struct {
	*buffer
	file  *os.File
	info  Info
	flush func(io.Writer, Info, func(int) []float64) error
	world string
}

// Create opens a width×height sink at path, choosing the writer by
// extension. The file is created immediately and filled on Close.
func Create(path string, width, height int, opts ...Option) (Sink, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var flush func(io.Writer, Info, func(int) []float64) error
	world := ""
	switch formatOf(path) {
	case formatEsri:
		flush = writeEsriASCII
	case formatTIFF:
		flush = func(w io.Writer, info Info, rows func(int) []float64) error {
			return writeTIFF(w, grayImage(info.Width, info.Height, rows))
		}
		if cfg.Georef != nil {
			world = worldPath(path)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	b, err := newBuffer(width, height)
	if err != nil {
		return nil, err
	}
	info := Info{CellSizeEW: cfg.CellSizeEW, CellSizeNS: cfg.CellSizeNS}
	if cfg.Georef != nil {
		info = *cfg.Georef
	}
	info.Width, info.Height, info.NoData = width, height, OutputNoData

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return &fileSink{buffer: b, file: file, info: info, flush: flush, world: world}, nil
}

// Close writes the buffered surface and closes the file.
func (s *fileSink) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	err := s.flush(s.file, s.info, s.surface.Row)
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	if err == nil && s.world != "" {
		err = writeWorldFile(s.world, s.info)
	}
	return err
}

// worldPath returns the .tfw sidecar path for a TIFF path.
func worldPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".tfw"
}

// writeWorldFile writes an ESRI world file: pixel sizes, rotation terms and
// the centre of the upper-left pixel.
func writeWorldFile(path string, info Info) error {
	body := fmt.Sprintf("%s\n0\n0\n%s\n%s\n%s\n",
		ftoa(info.CellSizeEW), ftoa(info.CellSizeNS),
		ftoa(info.OriginX+info.CellSizeEW/2), ftoa(info.OriginY+info.CellSizeNS/2))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return nil
}
