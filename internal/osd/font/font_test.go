package font

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTripsBytes(t *testing.T) {
	// Arbitrary but deterministic cell contents.
	in := make([]byte, CellBytes)
	for i := range in {
		in[i] = byte(i*37 + 11)
	}
	cell, err := DecodeCell(in)
	require.NoError(t, err)

	out, err := EncodeCell(cell)
	require.NoError(t, err)
	require.True(t, bytes.Equal(in, out), "encode(decode(b)) must reproduce b")
}

func TestEncodeDecodeRoundTripsPixels(t *testing.T) {
	pixels := make([]uint8, CellWidth*CellHeight)
	for i := range pixels {
		pixels[i] = uint8(i % 4)
	}
	cell, err := FromPixels(pixels)
	require.NoError(t, err)

	wire, err := EncodeCell(cell)
	require.NoError(t, err)
	require.Len(t, wire, CellBytes)

	back, err := DecodeCell(wire)
	require.NoError(t, err)
	require.Equal(t, pixels, back.Pixels())
}

func TestDecodeCellPacksMSBFirst(t *testing.T) {
	in := make([]byte, CellBytes)
	in[0] = 0b10_01_00_11
	cell, err := DecodeCell(in)
	require.NoError(t, err)

	wantFirstFour := []uint8{0b10, 0b01, 0b00, 0b11}
	for x, want := range wantFirstFour {
		got, err := cell.At(x, 0)
		require.NoError(t, err)
		require.Equal(t, want, got, "pixel %d", x)
	}
}

func TestDecodeCellWrongLength(t *testing.T) {
	_, err := DecodeCell(make([]byte, BlockBytes))
	require.ErrorIs(t, err, ErrCellSize)

	_, err = DecodeCell(nil)
	require.ErrorIs(t, err, ErrCellSize)
}

func TestFromPixelsValidatesRange(t *testing.T) {
	pixels := make([]uint8, CellWidth*CellHeight)
	pixels[17] = 4 // one past the two-bit maximum
	_, err := FromPixels(pixels)
	require.ErrorIs(t, err, ErrPixelRange)
}

func TestFromPixelsValidatesLength(t *testing.T) {
	_, err := FromPixels(make([]uint8, 10))
	require.ErrorIs(t, err, ErrCellSize)
}

func TestSetAndAtBounds(t *testing.T) {
	cell := &Cell{}
	require.NoError(t, cell.Set(0, 0, PixelWhite))
	require.NoError(t, cell.Set(CellWidth-1, CellHeight-1, PixelTransparent))

	v, err := cell.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, PixelWhite, v)

	require.ErrorIs(t, cell.Set(CellWidth, 0, PixelBlack), ErrOutOfBounds)
	require.ErrorIs(t, cell.Set(0, CellHeight, PixelBlack), ErrOutOfBounds)
	require.ErrorIs(t, cell.Set(0, 0, 7), ErrPixelRange)

	_, err = cell.At(-1, 0)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestEncodeIsPureAndRepeatable(t *testing.T) {
	pixels := make([]uint8, CellWidth*CellHeight)
	pixels[0] = PixelWhite
	cell, err := FromPixels(pixels)
	require.NoError(t, err)

	a, err := EncodeCell(cell)
	require.NoError(t, err)
	b, err := EncodeCell(cell)
	require.NoError(t, err)
	require.Equal(t, a, b)

	// Mutating the encoded buffer must not reach back into the cell.
	a[0] = 0xFF
	require.Equal(t, uint8(PixelWhite), cell.Pixels()[0])
}
