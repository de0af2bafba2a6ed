package wire_test

import (
	"testing"

	"github.com/go-mclib/loadbot/wire"
)

func TestFixedBitSetEmptyRoundTrip(t *testing.T) {
	v := wire.NewFixedBitSet(20)
	b, err := v.ToBytes()
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if len(b) != 8 { // ceil(20/64) longs * 8 bytes
		t.Fatalf("encoded length = %d, want 8", len(b))
	}

	got := wire.NewFixedBitSet(20)
	n, err := got.FromBytes(b)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if n != 8 {
		t.Errorf("consumed %d bytes, want 8", n)
	}
	for _, word := range got.Values {
		if word != 0 {
			t.Errorf("expected all-zero bit set, got %x", got.Values)
		}
	}
}
