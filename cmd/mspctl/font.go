package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rubenCodeforges/ardudeck-sub012/internal/osd/font"
)

func newFontCmd() *cobra.Command {
	var preview int

	cmd := &cobra.Command{
		Use:   "font <font-file>",
		Short: "Verify an OSD font file cell by cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			stride := font.CellBytes
			if cfg.FontBlockPadded {
				stride = font.BlockBytes
			}
			if len(data)%stride != 0 {
				return fmt.Errorf("font file is %d bytes, not a multiple of the %d-byte cell stride", len(data), stride)
			}
			return checkFont(data, stride, preview)
		},
	}

	cmd.Flags().IntVar(&preview, "preview", -1, "render the glyph at this index as ASCII")
	return cmd
}

func checkFont(data []byte, stride, preview int) error {
	cells := len(data) / stride
	for i := 0; i < cells; i++ {
		raw := data[i*stride : i*stride+font.CellBytes]
		cell, err := font.DecodeCell(raw)
		if err != nil {
			return fmt.Errorf("glyph %d: %w", i, err)
		}
		re, err := font.EncodeCell(cell)
		if err != nil {
			return fmt.Errorf("glyph %d: %w", i, err)
		}
		if !bytes.Equal(re, raw) {
			return fmt.Errorf("glyph %d: re-encoded bytes differ", i)
		}
		if i == preview {
			fmt.Print(renderCell(cell))
		}
	}
	log.Info().Int("glyphs", cells).Int("stride", stride).Msg("font verified")
	return nil
}

func renderCell(cell *font.Cell) string {
	glyphRunes := map[uint8]rune{
		font.PixelBlack:       '#',
		font.PixelWhite:       'O',
		font.PixelTransparent: ' ',
	}
	var out []rune
	for y := 0; y < font.CellHeight; y++ {
		for x := 0; x < font.CellWidth; x++ {
			v, _ := cell.At(x, y)
			r, ok := glyphRunes[v]
			if !ok {
				r = '?'
			}
			out = append(out, r)
		}
		out = append(out, '\n')
	}
	return string(out)
}
