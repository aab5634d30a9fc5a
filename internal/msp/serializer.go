package msp

import (
	"fmt"

	"github.com/rubenCodeforges/ardudeck-sub012/internal/msp/checksum"
)

// BuildV1 constructs a generation-1 frame ready for transmission.
// The command and payload length must fit the one-byte v1 fields.
func BuildV1(dir Direction, command uint16, payload []byte) ([]byte, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %#x", ErrInvalidDirection, byte(dir))
	}
	if command > MaxCommandV1 {
		return nil, fmt.Errorf("%w: %d", ErrCommandRange, command)
	}
	if len(payload) > MaxPayloadV1 {
		return nil, fmt.Errorf("%w: v1 payload %d bytes", ErrPayloadTooLarge, len(payload))
	}

	size := byte(len(payload))
	cmd := byte(command)
	out := make([]byte, 0, 6+len(payload))
	out = append(out, Preamble, MarkerV1, byte(dir), size, cmd)
	out = append(out, payload...)
	out = append(out, checksum.XOR(size, cmd, payload))
	return out, nil
}

// BuildV2 constructs a generation-2 frame ready for transmission.
func BuildV2(dir Direction, command uint16, flags byte, payload []byte) ([]byte, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %#x", ErrInvalidDirection, byte(dir))
	}
	if len(payload) > MaxPayloadV2 {
		return nil, fmt.Errorf("%w: v2 payload %d bytes", ErrPayloadTooLarge, len(payload))
	}

	size := len(payload)
	out := make([]byte, 0, 9+size)
	out = append(out, Preamble, MarkerV2, byte(dir),
		flags,
		byte(command), byte(command>>8),
		byte(size), byte(size>>8))
	out = append(out, payload...)
	// CRC covers everything after the direction byte.
	out = append(out, checksum.Crc8DvbS2(0, out[3:]))
	return out, nil
}

// Build picks the generation automatically: v1 while the command id and
// payload fit its one-byte fields, v2 otherwise.
func Build(dir Direction, command uint16, payload []byte) ([]byte, error) {
	if command <= MaxCommandV1 && len(payload) <= MaxPayloadV1 {
		return BuildV1(dir, command, payload)
	}
	return BuildV2(dir, command, 0, payload)
}

// Encode serializes a parsed frame back to its wire form. For any frame the
// parser emitted, Encode reproduces the original bytes.
func Encode(f Frame) ([]byte, error) {
	switch f.Generation {
	case V1:
		return BuildV1(f.Direction, f.Command, f.Payload)
	case V2:
		return BuildV2(f.Direction, f.Command, f.Flags, f.Payload)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownGeneration, uint8(f.Generation))
	}
}
