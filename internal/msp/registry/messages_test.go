package registry

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/rubenCodeforges/ardudeck-sub012/internal/msp/payload"
)

func TestDecodeAttitudeFromWireBytes(t *testing.T) {
	// roll=-45 (0.1deg), pitch=102, yaw=359
	b := []byte{0xD3, 0xFF, 0x66, 0x00, 0x67, 0x01}
	r := Builtin()
	got, err := r.Decode(CmdAttitude, b)
	if err != nil {
		t.Fatalf("decode attitude: %v", err)
	}
	want := &Attitude{Roll: -45, Pitch: 102, Yaw: 359}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("attitude: got %+v want %+v", got, want)
	}
}

func TestDecodeShortPayloadFails(t *testing.T) {
	r := Builtin()
	if _, err := r.Decode(CmdAttitude, []byte{0x01}); !errors.Is(err, payload.ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestBuiltinRoundTrips(t *testing.T) {
	records := map[uint16]any{
		CmdAPIVersion: &APIVersion{Protocol: 0, Major: 2, Minor: 4},
		CmdFCVariant:  &FCVariant{Identifier: "INAV"},
		CmdFCVersion:  &FCVersion{Major: 7, Minor: 1, Patch: 2},
		CmdBoardInfo:  &BoardInfo{Identifier: "SPKE", HardwareRevision: 3},
		CmdBuildInfo:  &BuildInfo{Date: "Mar 14 2026", Time: "12:30:45", GitRevision: "abc1234"},
		CmdStatus:     &Status{CycleTime: 312, I2CErrors: 0, Sensors: 0x23, Modes: 0x5, Profile: 1},
		CmdRawIMU:     &RawIMU{Acc: [3]int16{12, -408, 1024}, Gyro: [3]int16{-1, 0, 1}, Mag: [3]int16{100, 200, -300}},
		CmdRC:         &RCChannels{Channels: []uint16{1500, 1500, 885, 2115}},
		CmdAttitude:   &Attitude{Roll: -450, Pitch: 12, Yaw: 180},
		CmdAltitude:   &Altitude{EstimatedAlt: -150, Vario: 25},
		CmdAnalog:     &Analog{VBat: 168, MAhDrawn: 420, RSSI: 1023, Amperage: -12},
		CmdOSDCharWrite: &OSDCharWrite{
			Address: 0x41,
			Data:    bytes.Repeat([]byte{0x55}, 54),
		},
		CmdRangefinder: &Rangefinder{Quality: 255, Distance: 1830},
	}

	r := Builtin()
	for cmd, rec := range records {
		wire, err := r.EncodeFor(cmd, rec)
		if err != nil {
			t.Fatalf("%s encode: %v", r.Name(cmd), err)
		}
		back, err := r.Decode(cmd, wire)
		if err != nil {
			t.Fatalf("%s decode: %v", r.Name(cmd), err)
		}
		if !reflect.DeepEqual(back, rec) {
			t.Fatalf("%s round trip: got %+v want %+v", r.Name(cmd), back, rec)
		}
	}
}

func TestDecodeRCRejectsOddLength(t *testing.T) {
	r := Builtin()
	if _, err := r.Decode(CmdRC, []byte{0xDC, 0x05, 0xAA}); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestVariantIdentifierWidth(t *testing.T) {
	r := Builtin()
	wire, err := r.EncodeFor(CmdFCVariant, &FCVariant{Identifier: "BTFL"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(wire) != variantIdentLen {
		t.Fatalf("variant payload: got %d bytes want %d", len(wire), variantIdentLen)
	}
}
