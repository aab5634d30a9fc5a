// Package registry maps MSP command ids to typed payload codecs.
//
// A registry is built once at startup and treated as read-only afterwards;
// concurrent lookups need no locking as long as nothing registers after
// startup. Commands without a registered descriptor still decode, to a Raw
// payload, so callers always get the bytes even for messages this build has
// no schema for.
package registry

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownCommand = errors.New("registry: no encoder for command")
	ErrRecordType     = errors.New("registry: record type mismatch")
	ErrInvalidLength  = errors.New("registry: invalid payload length")
)

// Raw is the payload of a message with no registered decoder.
type Raw []byte

// DecodeFunc turns payload bytes into a typed record.
type DecodeFunc func(payload []byte) (any, error)

// EncodeFunc turns a typed record back into payload bytes.
type EncodeFunc func(record any) ([]byte, error)

// Descriptor binds one command id to its name and codec pair. Either
// function may be nil for one-directional messages.
type Descriptor struct {
	Command uint16
	Name    string
	Decode  DecodeFunc
	Encode  EncodeFunc
}

// Registry stores descriptors by command id.
type Registry struct {
	items map[uint16]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{items: make(map[uint16]Descriptor)}
}

// Builtin creates a registry pre-loaded with the well-known message catalog.
func Builtin() *Registry {
	r := New()
	RegisterBuiltin(r)
	return r
}

// Register adds descriptors to the registry. Registering a command id twice
// overwrites the earlier descriptor (last write wins); the overwrite is
// logged so accidental collisions stay visible.
func (r *Registry) Register(descs ...Descriptor) {
	for _, d := range descs {
		if prev, ok := r.items[d.Command]; ok {
			log.Warn().
				Uint16("command", d.Command).
				Str("previous", prev.Name).
				Str("replacement", d.Name).
				Msg("duplicate message registration, keeping last")
		}
		r.items[d.Command] = d
	}
}

// Lookup returns the descriptor for a command id.
func (r *Registry) Lookup(command uint16) (Descriptor, bool) {
	d, ok := r.items[command]
	return d, ok
}

// Name returns the registered message name, or a placeholder for commands
// this registry does not know.
func (r *Registry) Name(command uint16) string {
	if d, ok := r.items[command]; ok {
		return d.Name
	}
	return fmt.Sprintf("UNKNOWN(%d)", command)
}

// Decode turns a validated frame payload into its typed record. Unknown
// commands, and commands registered without a decoder, yield the payload as
// Raw rather than an error.
func (r *Registry) Decode(command uint16, payload []byte) (any, error) {
	d, ok := r.items[command]
	if !ok || d.Decode == nil {
		raw := make(Raw, len(payload))
		copy(raw, payload)
		return raw, nil
	}
	return d.Decode(payload)
}

// EncodeFor produces the payload bytes for a typed record.
func (r *Registry) EncodeFor(command uint16, record any) ([]byte, error) {
	d, ok := r.items[command]
	if !ok || d.Encode == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCommand, command)
	}
	return d.Encode(record)
}
