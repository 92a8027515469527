// Package raster moves elevation grids and derived surfaces between files
// and memory. It is the RasterSource / RasterSink side of the terrain
// engine: the numerical packages never see a file format.
//
// Sources:
//
//   - Esri ASCII grids (.asc), optionally gzip-compressed (.asc.gz).
//   - Single-band grey TIFF images (.tif, .tiff), 8 or 16 bit, decoded with
//     golang.org/x/image/tiff. TIFF carries no cell size here, so it is
//     taken from WithCellSize (default 1, -1).
//
// Sinks:
//
//   - Esri ASCII grid with float values (.asc).
//   - 8-bit grey TIFF (.tif, .tiff); values are rounded and saturated to
//     [0, 255].
//   - MemorySink, backed by a grid.Surface.
//
// File sinks buffer the whole surface and write it on Close, so cells may
// be written in any order. Zero is the output nodata value.
//
// Errors (sentinel):
//
//   - ErrOpen:              file cannot be opened or created.
//   - ErrMalformed:         content does not decode.
//   - ErrUnsupportedFormat: unknown extension or pixel layout.
//   - ErrBandCount:         more than one band.
//   - ErrGeometry:          window or size outside the source / sink.
//   - ErrClosed:            write after Close.
package raster
