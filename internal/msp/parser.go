package msp

import (
	"fmt"

	"github.com/rubenCodeforges/ardudeck-sub012/internal/msp/checksum"
)

type parseState int

const (
	stateSeekPreamble parseState = iota
	stateMarker
	stateDirection
	stateV1Size
	stateV1Command
	stateV2Flags
	stateV2CommandLow
	stateV2CommandHigh
	stateV2SizeLow
	stateV2SizeHigh
	statePayload
	stateChecksum
)

// Event is the outcome of one completed frame attempt. Exactly one of
// Frame and Err is set: Frame for a validated frame, Err for a structurally
// complete frame whose checksum did not verify.
type Event struct {
	Frame *Frame
	Err   error
}

// Parser reassembles frames from an unbounded byte stream. One Parser
// instance serves one stream; it is not safe for concurrent feeders. The
// zero value is ready to use and starts out scanning for a preamble, so a
// parser attached mid-stream discards noise until the next frame start.
type Parser struct {
	state   parseState
	gen     Generation
	dir     Direction
	flags   byte
	command uint16
	size    int
	payload []byte
	ck      byte
}

// NewParser returns a parser in its initial scanning state.
func NewParser() *Parser {
	return &Parser{}
}

// Reset returns the parser to the initial scanning state, dropping any
// partially accumulated frame.
func (p *Parser) Reset() {
	p.state = stateSeekPreamble
	p.payload = nil
	p.size = 0
	p.ck = 0
}

// Feed consumes a chunk of any size, from a single byte to many frames, and
// returns the events it produced in stream order. Field boundaries may fall
// anywhere relative to chunk boundaries.
func (p *Parser) Feed(data []byte) []Event {
	var events []Event
	for _, b := range data {
		if ev := p.consume(b); ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

func (p *Parser) consume(b byte) *Event {
	switch p.state {
	case stateSeekPreamble:
		if b == Preamble {
			p.state = stateMarker
		}
		// Anything else is line noise; drop it and keep scanning.
	case stateMarker:
		switch b {
		case MarkerV1:
			p.gen = V1
			p.state = stateDirection
		case MarkerV2:
			p.gen = V2
			p.state = stateDirection
		default:
			p.restart(b)
		}
	case stateDirection:
		if d := Direction(b); d.Valid() {
			p.dir = d
			p.ck = 0
			if p.gen == V1 {
				p.state = stateV1Size
			} else {
				p.state = stateV2Flags
			}
		} else {
			p.restart(b)
		}
	case stateV1Size:
		p.size = int(b)
		p.ck = b
		p.state = stateV1Command
	case stateV1Command:
		p.command = uint16(b)
		p.ck ^= b
		p.beginPayload()
	case stateV2Flags:
		p.flags = b
		p.crc(b)
		p.state = stateV2CommandLow
	case stateV2CommandLow:
		p.command = uint16(b)
		p.crc(b)
		p.state = stateV2CommandHigh
	case stateV2CommandHigh:
		p.command |= uint16(b) << 8
		p.crc(b)
		p.state = stateV2SizeLow
	case stateV2SizeLow:
		p.size = int(b)
		p.crc(b)
		p.state = stateV2SizeHigh
	case stateV2SizeHigh:
		p.size |= int(b) << 8
		p.crc(b)
		p.beginPayload()
	case statePayload:
		p.payload = append(p.payload, b)
		if p.gen == V1 {
			p.ck ^= b
		} else {
			p.crc(b)
		}
		if len(p.payload) == p.size {
			p.state = stateChecksum
		}
	case stateChecksum:
		return p.finish(b)
	}
	return nil
}

func (p *Parser) crc(b byte) {
	p.ck = checksum.Crc8DvbS2(p.ck, []byte{b})
}

func (p *Parser) beginPayload() {
	if p.size == 0 {
		p.state = stateChecksum
		return
	}
	p.payload = make([]byte, 0, p.size)
	p.state = statePayload
}

// restart handles a byte that broke the expected header sequence. The byte
// itself may open the next frame, so it is re-examined as a preamble
// candidate rather than dropped.
func (p *Parser) restart(b byte) {
	p.Reset()
	if b == Preamble {
		p.state = stateMarker
	}
}

func (p *Parser) finish(received byte) *Event {
	ev := &Event{}
	if received == p.ck {
		frame := &Frame{
			Generation: p.gen,
			Direction:  p.dir,
			Command:    p.command,
			Payload:    p.payload,
		}
		if p.gen == V2 {
			frame.Flags = p.flags
		}
		if frame.Payload == nil {
			frame.Payload = []byte{}
		}
		ev.Frame = frame
	} else {
		ev.Err = fmt.Errorf("%w: %s cmd=%d want=%#02x got=%#02x",
			ErrChecksumMismatch, p.gen, p.command, p.ck, received)
	}
	p.Reset()
	return ev
}
