package msp

import "fmt"

// Wire markers shared by both generations.
const (
	Preamble byte = '$'
	MarkerV1 byte = 'M'
	MarkerV2 byte = 'X'
)

// Payload and command limits per generation.
const (
	MaxPayloadV1 = 255
	MaxPayloadV2 = 65535
	MaxCommandV1 = 255
)

// Generation selects one of the two incompatible wire formats.
type Generation uint8

const (
	V1 Generation = 1
	V2 Generation = 2
)

func (g Generation) String() string {
	switch g {
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return fmt.Sprintf("generation(%d)", uint8(g))
	}
}

// Direction is the third wire byte and distinguishes requests from
// responses and error replies.
type Direction byte

const (
	DirectionRequest  Direction = '<'
	DirectionResponse Direction = '>'
	DirectionError    Direction = '!'
)

// Valid reports whether d is one of the three wire direction bytes.
func (d Direction) Valid() bool {
	return d == DirectionRequest || d == DirectionResponse || d == DirectionError
}

func (d Direction) String() string {
	switch d {
	case DirectionRequest:
		return "request"
	case DirectionResponse:
		return "response"
	case DirectionError:
		return "error"
	default:
		return fmt.Sprintf("direction(%#x)", byte(d))
	}
}

// Frame is one complete, checksum-validated protocol message. The parser
// only ever emits frames whose checksum verified; a Frame value is safe to
// hand to the registry as-is.
type Frame struct {
	Generation Generation
	Direction  Direction
	Command    uint16
	Flags      byte // v2 only, zero on v1 frames
	Payload    []byte
}
