package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/terrain/grid"
)

// ReadEsriASCII parses an Esri ASCII grid:
//
//	ncols        4
//	nrows        3
//	xllcorner    500000
//	yllcorner    4100000
//	cellsize     30
//	NODATA_value -9999
//	<nrows lines of ncols values, north to south>
//
// xllcenter/yllcenter and dx/dy header variants are accepted; NODATA_value
// is optional. The returned grid carries CellSizeNS = -cellsize (north-up).
func ReadEsriASCII(r io.Reader, opts ...Option) (*grid.Grid, Info, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	header := make(map[string]string)
	first := ""
	for sc.Scan() {
		tok := sc.Text()
		if _, err := strconv.ParseFloat(tok, 64); err == nil {
			first = tok
			break
		}
		key := strings.ToLower(tok)
		if !sc.Scan() {
			return nil, Info{}, fmt.Errorf("%w: header %q has no value", ErrMalformed, tok)
		}
		header[key] = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return nil, Info{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	info, err := parseEsriHeader(header)
	if err != nil {
		return nil, Info{}, err
	}
	if first == "" {
		return nil, Info{}, fmt.Errorf("%w: no samples", ErrMalformed)
	}

	n := info.Width * info.Height
	var samples []float64
	tok := first
	for {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, Info{}, fmt.Errorf("%w: sample %d: %v", ErrMalformed, len(samples), err)
		}
		samples = append(samples, v)
		if len(samples) == n || !sc.Scan() {
			break
		}
		tok = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return nil, Info{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(samples) < n {
		return nil, Info{}, fmt.Errorf("%w: got %d samples, want %d", ErrMalformed, len(samples), n)
	}
	if sc.Scan() {
		return nil, Info{}, fmt.Errorf("%w: more than %d samples", ErrMalformed, n)
	}

	samples, info, err = crop(samples, info, cfg.Window)
	if err != nil {
		return nil, Info{}, err
	}
	g, err := toGrid(samples, info)
	return g, info, err
}

// maxDim bounds ncols and nrows read from a header.
const maxDim = math.MaxInt32

func parseEsriHeader(h map[string]string) (Info, error) {
	var errs []string
	num := func(key string) (float64, bool) {
		s, ok := h[key]
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s=%q", key, s))
			return 0, false
		}
		return v, true
	}
	count := func(key string) int {
		v, ok := num(key)
		if !ok || v < 1 || v > maxDim || v != math.Trunc(v) {
			errs = append(errs, key)
			return 0
		}
		return int(v)
	}

	info := Info{NoData: -9999}
	info.Width = count("ncols")
	info.Height = count("nrows")
	if info.Width > 0 && info.Height > 0 && info.Width > math.MaxInt/info.Height {
		errs = append(errs, "ncols*nrows")
	}

	dx, okx := num("dx")
	dy, oky := num("dy")
	if cs, ok := num("cellsize"); ok {
		dx, dy, okx, oky = cs, cs, true, true
	}
	if !okx || !oky || dx <= 0 || dy <= 0 {
		errs = append(errs, "cellsize")
	}
	info.CellSizeEW, info.CellSizeNS = dx, -dy

	if v, ok := num("xllcorner"); ok {
		info.OriginX = v
	} else if v, ok := num("xllcenter"); ok {
		info.OriginX = v - dx/2
	}
	lly := 0.0
	if v, ok := num("yllcorner"); ok {
		lly = v
	} else if v, ok := num("yllcenter"); ok {
		lly = v - dy/2
	}
	info.OriginY = lly + float64(info.Height)*dy

	if v, ok := num("nodata_value"); ok {
		info.NoData = v
	}

	if len(errs) > 0 {
		return Info{}, fmt.Errorf("%w: bad header fields: %s", ErrMalformed, strings.Join(errs, ", "))
	}
	return info, nil
}

// writeEsriASCII writes the rows under the header described by info.
func writeEsriASCII(w io.Writer, info Info, rows func(y int) []float64) error {
	bw := bufio.NewWriter(w)
	ew, ns := math.Abs(info.CellSizeEW), math.Abs(info.CellSizeNS)
	lly := info.OriginY - float64(info.Height)*ns

	fmt.Fprintf(bw, "ncols %d\nnrows %d\n", info.Width, info.Height)
	fmt.Fprintf(bw, "xllcorner %s\nyllcorner %s\n", ftoa(info.OriginX), ftoa(lly))
	if ew == ns {
		fmt.Fprintf(bw, "cellsize %s\n", ftoa(ew))
	} else {
		fmt.Fprintf(bw, "dx %s\ndy %s\n", ftoa(ew), ftoa(ns))
	}
	fmt.Fprintf(bw, "NODATA_value %s\n", ftoa(info.NoData))

	for y := 0; y < info.Height; y++ {
		for x, v := range rows(y) {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(ftoa(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
