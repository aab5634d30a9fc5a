package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rubenCodeforges/ardudeck-sub012/internal/msp"
	"github.com/rubenCodeforges/ardudeck-sub012/internal/osd/font"
	"github.com/rubenCodeforges/ardudeck-sub012/internal/testutil/testlog"
)

func TestDecodeStreamSurvivesNoiseAndBadFrames(t *testing.T) {
	testlog.Start(t)

	good, err := msp.BuildV1(msp.DirectionResponse, 108, []byte{0x10, 0x00, 0x20, 0x00, 0x30, 0x00})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	bad := append([]byte{}, good...)
	bad[len(bad)-1]++
	v2, err := msp.BuildV2(msp.DirectionResponse, 0x1F01, 0, []byte{200, 0x26, 0x07, 0x00, 0x00})
	if err != nil {
		t.Fatalf("build v2: %v", err)
	}

	var stream []byte
	stream = append(stream, 0xDE, 0xAD) // line noise
	stream = append(stream, good...)
	stream = append(stream, bad...)
	stream = append(stream, v2...)

	// Tiny chunk size exercises frames split across reads.
	if err := decodeStream(bytes.NewReader(stream), 3); err != nil {
		t.Fatalf("decode stream: %v", err)
	}
}

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"request", "<"} {
		d, err := parseDirection(in)
		if err != nil || d != msp.DirectionRequest {
			t.Fatalf("parse %q: got %v err %v", in, d, err)
		}
	}
	if _, err := parseDirection("sideways"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}

func TestRenderCellShape(t *testing.T) {
	cell, err := font.DecodeCell(make([]byte, font.CellBytes))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	lines := strings.Split(strings.TrimRight(renderCell(cell), "\n"), "\n")
	if len(lines) != font.CellHeight {
		t.Fatalf("rendered %d rows, want %d", len(lines), font.CellHeight)
	}
	for _, line := range lines {
		if len(line) != font.CellWidth {
			t.Fatalf("rendered row %q is %d cols, want %d", line, len(line), font.CellWidth)
		}
	}
}
