package raster

import (
	"fmt"

	"github.com/katalvlaran/terrain/grid"
)

// buffer is the shared in-memory backing of every sink.
type buffer struct {
	surface *grid.Surface
	closed  bool
}

func newBuffer(width, height int) (*buffer, error) {
	s, err := grid.NewSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: sink %dx%d", ErrGeometry, width, height)
	}
	return &buffer{surface: s}, nil
}

// Bounds returns the sink dimensions.
func (b *buffer) Bounds() (int, int) {
	return b.surface.Width, b.surface.Height
}

// WriteRow copies samples into row y.
func (b *buffer) WriteRow(y int, samples []float64) error {
	if b.closed {
		return ErrClosed
	}
	row := b.surface.Row(y)
	if row == nil || len(samples) != len(row) {
		return fmt.Errorf("%w: row %d with %d samples on %dx%d",
			ErrGeometry, y, len(samples), b.surface.Width, b.surface.Height)
	}
	copy(row, samples)
	return nil
}

// WriteCell stores v at (x, y).
func (b *buffer) WriteCell(x, y int, v float64) error {
	if b.closed {
		return ErrClosed
	}
	if err := b.surface.Set(x, y, v); err != nil {
		return fmt.Errorf("%w: %w", ErrGeometry, err)
	}
	return nil
}

// MemorySink keeps the written surface in memory.
type MemorySink struct {
	*buffer
}

// NewMemorySink returns a zeroed width×height in-memory sink.
func NewMemorySink(width, height int) (*MemorySink, error) {
	b, err := newBuffer(width, height)
	if err != nil {
		return nil, err
	}
	return &MemorySink{buffer: b}, nil
}

// Surface exposes the written values.
func (m *MemorySink) Surface() *grid.Surface {
	return m.surface
}

// Close marks the sink closed; further writes fail with ErrClosed.
func (m *MemorySink) Close() error {
	m.closed = true
	return nil
}
