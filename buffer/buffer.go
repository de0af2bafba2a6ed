// Package buffer implements the growable, cursor-based byte buffer that the
// bot manager uses both to accumulate partially-read socket data and to
// stage outgoing packet bytes before a write.
//
// It is grounded on the teacher's java_protocol/net_structures.PacketBuffer,
// generalized from an io.Reader/io.Writer pair to an owned, growable []byte
// with independent read and write cursors: a non-blocking socket read can
// hand back any number of bytes at any time, including a fragment of a
// VarInt length header, so there is no io.Reader to block against — the
// caller must be able to say "not enough yet" and retry once more bytes
// have arrived.
package buffer

import "github.com/go-mclib/loadbot/wire"

// Buffer is a contiguous byte store with independent read (r) and write (w)
// cursors into data[0:cap(data)]. Bytes in data[r:w] are unread; data[w:] is
// free capacity. It is not safe for concurrent use — each bot owns one.
type Buffer struct {
	data []byte
	r, w int
}

// New returns an empty Buffer with the given initial capacity.
func New(initialCap int) *Buffer {
	return &Buffer{data: make([]byte, initialCap)}
}

// FromBytes wraps data as a fully-written, read-only view: Len() equals
// len(data) and nothing needs to be written before reading it back. Used to
// decode an already-extracted packet payload with the same Read* API the
// streaming per-bot buffer uses.
func FromBytes(data []byte) *Buffer {
	return &Buffer{data: data, w: len(data)}
}

// Reset zeroes both cursors without releasing the underlying storage.
func (b *Buffer) Reset() {
	b.r = 0
	b.w = 0
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int { return b.w - b.r }

// Cap returns the buffer's current storage capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// Unread returns the unread portion of the buffer. The slice aliases the
// buffer's storage and is invalidated by the next write.
func (b *Buffer) Unread() []byte { return b.data[b.r:b.w] }

// grow ensures n more bytes can be written without reallocating on every
// call; capacity grows geometrically like append would.
func (b *Buffer) grow(n int) {
	if b.w+n <= len(b.data) {
		return
	}
	need := b.w + n
	newCap := len(b.data) * 2
	if newCap < need {
		newCap = need
	}
	grown := make([]byte, newCap)
	copy(grown, b.data[:b.w])
	b.data = grown
}

// Write appends raw bytes, growing the buffer as needed.
func (b *Buffer) Write(p []byte) {
	b.grow(len(p))
	b.w += copy(b.data[b.w:], p)
}

// WriteVarInt appends a VarInt.
func (b *Buffer) WriteVarInt(v int32) {
	enc, _ := wire.VarInt(v).ToBytes() //nolint:errcheck // VarInt.ToBytes never fails
	b.Write(enc)
}

// WriteUint16 appends a big-endian 16-bit unsigned integer.
func (b *Buffer) WriteUint16(v uint16) {
	enc, _ := wire.UnsignedShort(v).ToBytes() //nolint:errcheck
	b.Write(enc)
}

// WriteString appends a VarInt-length-prefixed UTF-8 string.
func (b *Buffer) WriteString(s string) {
	enc, _ := wire.String(s).ToBytes() //nolint:errcheck
	b.Write(enc)
}

// WriteBool appends a single boolean byte.
func (b *Buffer) WriteBool(v bool) {
	enc, _ := wire.Boolean(v).ToBytes() //nolint:errcheck
	b.Write(enc)
}

// WriteInt32 appends a big-endian signed 32-bit integer.
func (b *Buffer) WriteInt32(v int32) {
	enc, _ := wire.Int(v).ToBytes() //nolint:errcheck
	b.Write(enc)
}

// WriteInt64 appends a big-endian signed 64-bit integer.
func (b *Buffer) WriteInt64(v int64) {
	enc, _ := wire.Long(v).ToBytes() //nolint:errcheck
	b.Write(enc)
}

// WriteFloat32 appends a big-endian IEEE 754 float.
func (b *Buffer) WriteFloat32(v float32) {
	enc, _ := wire.Float(v).ToBytes() //nolint:errcheck
	b.Write(enc)
}

// WriteFloat64 appends a big-endian IEEE 754 double.
func (b *Buffer) WriteFloat64(v float64) {
	enc, _ := wire.Double(v).ToBytes() //nolint:errcheck
	b.Write(enc)
}

// WriteUint8 appends a single unsigned byte.
func (b *Buffer) WriteUint8(v uint8) {
	b.Write([]byte{v})
}

// ReadVarInt reads a VarInt from the unread region, advancing the read
// cursor only on success.
func (b *Buffer) ReadVarInt() (int32, error) {
	var v wire.VarInt
	n, err := v.FromBytes(b.Unread())
	if err != nil {
		return 0, err
	}
	b.r += n
	return int32(v), nil
}

// ReadString reads a VarInt-length-prefixed string, maxLen bounding the
// declared length (0 means unbounded).
func (b *Buffer) ReadString(maxLen int) (string, error) {
	var s wire.String
	n, err := s.FromBytes(b.Unread(), maxLen)
	if err != nil {
		return "", err
	}
	b.r += n
	return string(s), nil
}

// ReadUint8 reads a single unsigned byte.
func (b *Buffer) ReadUint8() (uint8, error) {
	if b.Len() < 1 {
		return 0, wire.ErrIncomplete
	}
	v := b.data[b.r]
	b.r++
	return v, nil
}

// ReadBool reads a single boolean byte.
func (b *Buffer) ReadBool() (bool, error) {
	v, err := b.ReadUint8()
	return v != 0, err
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func (b *Buffer) ReadInt32() (int32, error) {
	var v wire.Int
	n, err := v.FromBytes(b.Unread())
	if err != nil {
		return 0, err
	}
	b.r += n
	return int32(v), nil
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func (b *Buffer) ReadInt64() (int64, error) {
	var v wire.Long
	n, err := v.FromBytes(b.Unread())
	if err != nil {
		return 0, err
	}
	b.r += n
	return int64(v), nil
}

// ReadFloat32 reads a big-endian IEEE 754 float.
func (b *Buffer) ReadFloat32() (float32, error) {
	var v wire.Float
	n, err := v.FromBytes(b.Unread())
	if err != nil {
		return 0, err
	}
	b.r += n
	return float32(v), nil
}

// ReadFloat64 reads a big-endian IEEE 754 double.
func (b *Buffer) ReadFloat64() (float64, error) {
	var v wire.Double
	n, err := v.FromBytes(b.Unread())
	if err != nil {
		return 0, err
	}
	b.r += n
	return float64(v), nil
}

// ReadFixed reads exactly n bytes, returning a copy so the result survives a
// Compact or further writes.
func (b *Buffer) ReadFixed(n int) ([]byte, error) {
	if b.Len() < n {
		return nil, wire.ErrIncomplete
	}
	out := make([]byte, n)
	copy(out, b.data[b.r:b.r+n])
	b.r += n
	return out, nil
}

// Skip advances the read cursor by n bytes without copying.
func (b *Buffer) Skip(n int) error {
	if b.Len() < n {
		return wire.ErrIncomplete
	}
	b.r += n
	return nil
}

// Compact moves any unread tail to the front of the storage and resets the
// cursors accordingly. Call this after draining all complete frames from a
// socket read so a trailing partial frame survives to the next readable
// event instead of being pushed out by Write's geometric growth forever.
func (b *Buffer) Compact() {
	if b.r == 0 {
		return
	}
	n := copy(b.data, b.data[b.r:b.w])
	b.r = 0
	b.w = n
}
