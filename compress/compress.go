// Package compress implements the zlib compression used for Minecraft
// packet payloads above the server-chosen compression threshold.
//
// Grounded on the teacher's java_protocol/packet.go compressZlib /
// decompressZlib helpers, generalized into a struct that reuses its
// compress/zlib reader and writer across calls instead of allocating one
// per packet — spec.md's per-worker resource model treats compression
// scratch state as reused, not allocated per frame.
package compress

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/go-mclib/loadbot/buffer"
)

// Codec holds a reusable zlib writer and reader at the default compression
// level. It is not safe for concurrent use; each worker owns one.
type Codec struct {
	writer   *zlib.Writer
	writeBuf bytes.Buffer

	reader     io.ReadCloser
	readerInit bool
}

// New returns a Codec ready to compress and decompress.
func New() *Codec {
	c := &Codec{}
	c.writer = zlib.NewWriter(&c.writeBuf)
	return c
}

// Compress zlib-compresses payload and appends the result to dst, returning
// the number of compressed bytes written.
func (c *Codec) Compress(payload []byte, dst *buffer.Buffer) (int, error) {
	c.writeBuf.Reset()
	c.writer.Reset(&c.writeBuf)

	if _, err := c.writer.Write(payload); err != nil {
		return 0, fmt.Errorf("compress: %w", err)
	}
	if err := c.writer.Close(); err != nil {
		return 0, fmt.Errorf("compress: %w", err)
	}

	dst.Write(c.writeBuf.Bytes())
	return c.writeBuf.Len(), nil
}

// Decompress inflates payload and appends the result to dst, returning the
// number of decompressed bytes written. A corrupt stream is a fatal,
// kick-the-bot error per spec.md §4.2.
func (c *Codec) Decompress(payload []byte, dst *buffer.Buffer) (int, error) {
	src := bytes.NewReader(payload)

	if !c.readerInit {
		r, err := zlib.NewReader(src)
		if err != nil {
			return 0, fmt.Errorf("decompress: %w", err)
		}
		c.reader = r
		c.readerInit = true
	} else if resetter, ok := c.reader.(zlib.Resetter); ok {
		if err := resetter.Reset(src, nil); err != nil {
			return 0, fmt.Errorf("decompress: %w", err)
		}
	} else {
		r, err := zlib.NewReader(src)
		if err != nil {
			return 0, fmt.Errorf("decompress: %w", err)
		}
		c.reader = r
	}

	n, err := copyInto(dst, c.reader)
	if err != nil {
		return 0, fmt.Errorf("decompress: %w", err)
	}
	return n, nil
}

// copyInto reads r to completion, appending every chunk to dst.
func copyInto(dst *buffer.Buffer, r io.Reader) (int, error) {
	var buf [4096]byte
	total := 0
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			dst.Write(buf[:n])
			total += n
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
