// Package payload provides forward-only cursors over MSP payload buffers.
//
// MSP payloads are flat little-endian field layouts with no self-description;
// every message codec walks its buffer front to back with one of these
// cursors. A Reader carries a sticky error so a decoder can chain reads and
// check once at the end; reading past the end of the buffer is an error,
// never a panic.
package payload

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
)

var ErrShortBuffer = errors.New("payload: read past end of buffer")

// Reader is a sequential decoding cursor over one payload buffer. The zero
// value is not usable; construct with NewReader. Once any read overruns the
// buffer the reader is poisoned: all further reads return zero values and
// Err reports ErrShortBuffer.
type Reader struct {
	buf []byte
	off int
	err error
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Err reports the first out-of-bounds read, if any.
func (r *Reader) Err() error { return r.err }

// Remaining reports the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.buf) {
		r.err = ErrShortBuffer
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) I8() int8 { return int8(r.U8()) }

func (r *Reader) U16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) I16() int16 { return int16(r.U16()) }

func (r *Reader) U32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) I32() int32 { return int32(r.U32()) }

func (r *Reader) U64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *Reader) I64() int64 { return int64(r.U64()) }

func (r *Reader) Float32() float32 {
	return math.Float32frombits(r.U32())
}

// ReadBytes returns a copy of the next n bytes.
func (r *Reader) ReadBytes(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Rest returns a copy of all unread bytes, leaving the cursor at the end.
func (r *Reader) Rest() []byte {
	return r.ReadBytes(r.Remaining())
}

// ReadText reads a fixed-width text field, trimming trailing zero padding.
func (r *Reader) ReadText(width int) string {
	b := r.take(width)
	if b == nil {
		return ""
	}
	return strings.TrimRight(string(b), "\x00")
}

// Writer is a sequential encoding cursor. The zero value is an empty buffer
// ready for use.
type Writer struct {
	buf []byte
}

// Bytes returns the accumulated payload.
func (w *Writer) Bytes() []byte { return w.buf }

// Len reports the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) WriteU8(v uint8) { w.buf = append(w.buf, v) }

func (w *Writer) WriteI8(v int8) { w.WriteU8(uint8(v)) }

func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) WriteI16(v int16) { w.WriteU16(uint16(v)) }

func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteI32(v int32) { w.WriteU32(uint32(v)) }

func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) WriteI64(v int64) { w.WriteU64(uint64(v)) }

func (w *Writer) WriteFloat32(v float32) {
	w.WriteU32(math.Float32bits(v))
}

func (w *Writer) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// WriteText writes a fixed-width text field, zero-padded up to width.
// Content longer than the field is truncated, never overflowed.
func (w *Writer) WriteText(s string, width int) {
	if len(s) > width {
		s = s[:width]
	}
	w.buf = append(w.buf, s...)
	for i := len(s); i < width; i++ {
		w.buf = append(w.buf, 0)
	}
}
