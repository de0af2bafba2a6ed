package wire

import (
	"encoding/binary"
	"math"
)

// Boolean is encoded as a single byte: 0x01 for true, 0x00 for false.
type Boolean bool

func (b Boolean) ToBytes() ([]byte, error) {
	if b {
		return []byte{0x01}, nil
	}
	return []byte{0x00}, nil
}

func (b *Boolean) FromBytes(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, ErrIncomplete
	}
	*b = data[0] != 0
	return 1, nil
}

// UnsignedByte is an 8-bit unsigned integer.
type UnsignedByte uint8

func (u UnsignedByte) ToBytes() ([]byte, error) {
	return []byte{byte(u)}, nil
}

func (u *UnsignedByte) FromBytes(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, ErrIncomplete
	}
	*u = UnsignedByte(data[0])
	return 1, nil
}

// Short is a big-endian signed 16-bit integer.
type Short int16

func (s Short) ToBytes() ([]byte, error) {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(s))
	return buf, nil
}

func (s *Short) FromBytes(data []byte) (int, error) {
	if len(data) < 2 {
		return 0, ErrIncomplete
	}
	*s = Short(int16(binary.BigEndian.Uint16(data)))
	return 2, nil
}

// UnsignedShort is a big-endian unsigned 16-bit integer.
type UnsignedShort uint16

func (u UnsignedShort) ToBytes() ([]byte, error) {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(u))
	return buf, nil
}

func (u *UnsignedShort) FromBytes(data []byte) (int, error) {
	if len(data) < 2 {
		return 0, ErrIncomplete
	}
	*u = UnsignedShort(binary.BigEndian.Uint16(data))
	return 2, nil
}

// Int is a big-endian signed 32-bit integer.
type Int int32

func (i Int) ToBytes() ([]byte, error) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(i))
	return buf, nil
}

func (i *Int) FromBytes(data []byte) (int, error) {
	if len(data) < 4 {
		return 0, ErrIncomplete
	}
	*i = Int(int32(binary.BigEndian.Uint32(data)))
	return 4, nil
}

// Long is a big-endian signed 64-bit integer.
type Long int64

func (l Long) ToBytes() ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(l))
	return buf, nil
}

func (l *Long) FromBytes(data []byte) (int, error) {
	if len(data) < 8 {
		return 0, ErrIncomplete
	}
	*l = Long(int64(binary.BigEndian.Uint64(data)))
	return 8, nil
}

// Float is a big-endian IEEE 754 single-precision float.
type Float float32

func (f Float) ToBytes() ([]byte, error) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, math.Float32bits(float32(f)))
	return buf, nil
}

func (f *Float) FromBytes(data []byte) (int, error) {
	if len(data) < 4 {
		return 0, ErrIncomplete
	}
	*f = Float(math.Float32frombits(binary.BigEndian.Uint32(data)))
	return 4, nil
}

// Double is a big-endian IEEE 754 double-precision float.
type Double float64

func (d Double) ToBytes() ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(float64(d)))
	return buf, nil
}

func (d *Double) FromBytes(data []byte) (int, error) {
	if len(data) < 8 {
		return 0, ErrIncomplete
	}
	*d = Double(math.Float64frombits(binary.BigEndian.Uint64(data)))
	return 8, nil
}
