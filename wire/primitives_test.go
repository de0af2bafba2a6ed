package wire_test

import (
	"bytes"
	"testing"

	"github.com/go-mclib/loadbot/wire"
)

func TestPrimitiveRoundTrips(t *testing.T) {
	t.Run("Boolean", func(t *testing.T) {
		for _, v := range []wire.Boolean{true, false} {
			b, _ := v.ToBytes()
			var got wire.Boolean
			if _, err := got.FromBytes(b); err != nil || got != v {
				t.Errorf("Boolean round trip of %v failed: got=%v err=%v", v, got, err)
			}
		}
	})

	t.Run("Short", func(t *testing.T) {
		v := wire.Short(-1234)
		b, _ := v.ToBytes()
		if !bytes.Equal(b, []byte{0xfb, 0x2e}) {
			t.Fatalf("unexpected encoding: %x", b)
		}
		var got wire.Short
		if _, err := got.FromBytes(b); err != nil || got != v {
			t.Errorf("round trip failed: got=%v err=%v", got, err)
		}
	})

	t.Run("Int", func(t *testing.T) {
		v := wire.Int(-42)
		b, _ := v.ToBytes()
		var got wire.Int
		if _, err := got.FromBytes(b); err != nil || got != v {
			t.Errorf("round trip failed: got=%v err=%v", got, err)
		}
	})

	t.Run("Long", func(t *testing.T) {
		v := wire.Long(-9223372036854775808)
		b, _ := v.ToBytes()
		var got wire.Long
		if _, err := got.FromBytes(b); err != nil || got != v {
			t.Errorf("round trip failed: got=%v err=%v", got, err)
		}
	})

	t.Run("Float", func(t *testing.T) {
		v := wire.Float(64.0)
		b, _ := v.ToBytes()
		var got wire.Float
		if _, err := got.FromBytes(b); err != nil || got != v {
			t.Errorf("round trip failed: got=%v err=%v", got, err)
		}
	})

	t.Run("Double", func(t *testing.T) {
		v := wire.Double(-2.5)
		b, _ := v.ToBytes()
		var got wire.Double
		if _, err := got.FromBytes(b); err != nil || got != v {
			t.Errorf("round trip failed: got=%v err=%v", got, err)
		}
	})
}

func TestPrimitiveInsufficientData(t *testing.T) {
	var i wire.Int
	if _, err := i.FromBytes([]byte{0x01, 0x02}); err != wire.ErrIncomplete {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
}
