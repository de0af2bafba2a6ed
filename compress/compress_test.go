package compress_test

import (
	"bytes"
	"testing"

	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/compress"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	codec := compress.New()
	payload := bytes.Repeat([]byte("the server accepts connections"), 50)

	compressed := buffer.New(64)
	n, err := codec.Compress(payload, compressed)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if n != compressed.Len() {
		t.Fatalf("Compress returned %d, buffer holds %d", n, compressed.Len())
	}

	decompressed := buffer.New(64)
	dn, err := codec.Decompress(compressed.Unread(), decompressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if dn != len(payload) {
		t.Fatalf("Decompress returned %d, want %d", dn, len(payload))
	}
	if !bytes.Equal(decompressed.Unread(), payload) {
		t.Fatalf("decompressed payload mismatch")
	}
}

func TestCodecReusedAcrossCalls(t *testing.T) {
	codec := compress.New()

	for i, payload := range [][]byte{
		bytes.Repeat([]byte("a"), 300),
		bytes.Repeat([]byte("b"), 10),
		bytes.Repeat([]byte("c"), 5000),
	} {
		compressed := buffer.New(64)
		if _, err := codec.Compress(payload, compressed); err != nil {
			t.Fatalf("iteration %d: Compress: %v", i, err)
		}

		decompressed := buffer.New(64)
		n, err := codec.Decompress(compressed.Unread(), decompressed)
		if err != nil {
			t.Fatalf("iteration %d: Decompress: %v", i, err)
		}
		if n != len(payload) || !bytes.Equal(decompressed.Unread(), payload) {
			t.Fatalf("iteration %d: round trip mismatch", i)
		}
	}
}

func TestDecompressCorruptStreamFails(t *testing.T) {
	codec := compress.New()
	dst := buffer.New(16)
	if _, err := codec.Decompress([]byte{0x00, 0x01, 0x02, 0x03}, dst); err == nil {
		t.Fatal("expected error decompressing garbage, got nil")
	}
}
