// Package font converts between the OSD chip's packed glyph cell format and
// an addressable pixel grid.
//
// A glyph cell is 12x18 pixels at two bits per pixel, packed MSB-first, 54
// bytes on the wire. Font files store cells padded to 64-byte blocks; the
// caller iterating a file strips the storage padding before handing a cell
// here.
package font

import (
	"errors"
	"fmt"
)

// Cell geometry, fixed protocol-wide.
const (
	CellWidth     = 12
	CellHeight    = 18
	BitsPerPixel  = 2
	pixelsPerByte = 8 / BitsPerPixel

	// CellBytes is the packed size of one glyph cell.
	CellBytes = CellWidth * CellHeight * BitsPerPixel / 8

	// BlockBytes is the storage granularity of font files, which pad each
	// cell with unused bytes.
	BlockBytes = 64
)

// Two-bit pixel levels as the OSD chip renders them.
const (
	PixelBlack       uint8 = 0b00
	PixelTransparent uint8 = 0b01
	PixelWhite       uint8 = 0b10

	maxPixel uint8 = 1<<BitsPerPixel - 1
)

var (
	ErrCellSize    = errors.New("font: wrong cell byte length")
	ErrPixelRange  = errors.New("font: pixel value outside bit width")
	ErrOutOfBounds = errors.New("font: pixel coordinates outside the cell")
)

// Cell is the decoded pixel grid of one glyph, row-major from the top-left
// corner. Codec operations never mutate a Cell; re-encoding produces fresh
// bytes and decoding produces a fresh Cell.
type Cell struct {
	pixels [CellWidth * CellHeight]uint8
}

// At returns the pixel at (x, y).
func (c *Cell) At(x, y int) (uint8, error) {
	if x < 0 || x >= CellWidth || y < 0 || y >= CellHeight {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return c.pixels[y*CellWidth+x], nil
}

// Set writes the pixel at (x, y).
func (c *Cell) Set(x, y int, v uint8) error {
	if x < 0 || x >= CellWidth || y < 0 || y >= CellHeight {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if v > maxPixel {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrPixelRange, v, x, y)
	}
	c.pixels[y*CellWidth+x] = v
	return nil
}

// Pixels returns a copy of the grid, row-major.
func (c *Cell) Pixels() []uint8 {
	out := make([]uint8, len(c.pixels))
	copy(out, c.pixels[:])
	return out
}

// DecodeCell unpacks one CellBytes-sized buffer into a pixel grid. Pixels
// are packed four per byte, most significant bits first.
func DecodeCell(b []byte) (*Cell, error) {
	if len(b) != CellBytes {
		return nil, fmt.Errorf("%w: got %d want %d", ErrCellSize, len(b), CellBytes)
	}
	cell := &Cell{}
	for i := range cell.pixels {
		shift := uint((pixelsPerByte - 1 - i%pixelsPerByte) * BitsPerPixel)
		cell.pixels[i] = (b[i/pixelsPerByte] >> shift) & maxPixel
	}
	return cell, nil
}

// EncodeCell packs a pixel grid back into its CellBytes wire form. Every
// pixel must fit the two-bit encoding; grids built through Set always do,
// and the range is re-checked here so hand-built grids fail before any
// packing occurs.
func EncodeCell(cell *Cell) ([]byte, error) {
	for i, v := range cell.pixels {
		if v > maxPixel {
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrPixelRange, v, i%CellWidth, i/CellWidth)
		}
	}
	out := make([]byte, CellBytes)
	for i, v := range cell.pixels {
		shift := uint((pixelsPerByte - 1 - i%pixelsPerByte) * BitsPerPixel)
		out[i/pixelsPerByte] |= v << shift
	}
	return out, nil
}

// FromPixels builds a Cell from a row-major grid of CellWidth*CellHeight
// pixel values, validating the range up front.
func FromPixels(pixels []uint8) (*Cell, error) {
	if len(pixels) != CellWidth*CellHeight {
		return nil, fmt.Errorf("%w: got %d pixels want %d", ErrCellSize, len(pixels), CellWidth*CellHeight)
	}
	cell := &Cell{}
	for i, v := range pixels {
		if v > maxPixel {
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrPixelRange, v, i%CellWidth, i/CellWidth)
		}
		cell.pixels[i] = v
	}
	return cell, nil
}
