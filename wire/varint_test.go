package wire_test

import (
	"bytes"
	"testing"

	"github.com/go-mclib/loadbot/wire"
)

func TestVarIntRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		val  wire.VarInt
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"127", 127, []byte{0x7f}},
		{"128", 128, []byte{0x80, 0x01}},
		{"255", 255, []byte{0xff, 0x01}},
		{"25565", 25565, []byte{0xdd, 0xc7, 0x01}},
		{"max", 2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{"min", -2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
		{"minus one", -1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.val.ToBytes()
			if err != nil {
				t.Fatalf("ToBytes: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ToBytes() = %x, want %x", got, tt.want)
			}
			if n := tt.val.Len(); n != len(tt.want) {
				t.Errorf("Len() = %d, want %d", n, len(tt.want))
			}

			var decoded wire.VarInt
			n, err := decoded.FromBytes(got)
			if err != nil {
				t.Fatalf("FromBytes: %v", err)
			}
			if n != len(got) {
				t.Errorf("FromBytes consumed %d bytes, want %d", n, len(got))
			}
			if decoded != tt.val {
				t.Errorf("FromBytes() = %v, want %v", decoded, tt.val)
			}
		})
	}
}

func TestVarIntIncomplete(t *testing.T) {
	full, _ := wire.VarInt(300).ToBytes()
	for i := range full {
		var v wire.VarInt
		_, err := v.FromBytes(full[:i])
		if err != wire.ErrIncomplete {
			t.Fatalf("prefix %d: FromBytes() err = %v, want ErrIncomplete", i, err)
		}
	}
}

func TestVarIntLeadingZeroContinuationRejected(t *testing.T) {
	// Zero encoded with a redundant continuation group (0x80 0x00).
	var z wire.VarInt
	if _, err := z.FromBytes([]byte{0x80, 0x00}); err != wire.ErrMalformed {
		t.Fatalf("FromBytes(80 00) err = %v, want ErrMalformed", err)
	}

	// Eight bytes, all with the continuation bit set: never terminates
	// within the 5-byte limit.
	bad := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	var v wire.VarInt
	_, err := v.FromBytes(bad)
	if err != wire.ErrMalformed {
		t.Fatalf("FromBytes() err = %v, want ErrMalformed", err)
	}
}

func TestVarLongRoundTrip(t *testing.T) {
	for _, val := range []wire.VarLong{0, 1, 127, 128, 1 << 40, -1, -(1 << 40)} {
		b, err := val.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes: %v", err)
		}
		var decoded wire.VarLong
		n, err := decoded.FromBytes(b)
		if err != nil {
			t.Fatalf("FromBytes: %v", err)
		}
		if n != len(b) || decoded != val {
			t.Errorf("round trip of %d: got %d (consumed %d of %d)", val, decoded, n, len(b))
		}
	}
}
