// Package framing implements the Minecraft Java Edition packet framing:
// a VarInt length prefix, an optional zlib compression layer, and the
// packet ID VarInt that leads every decompressed payload.
//
// Grounded on the teacher's java_protocol/packet.go WirePacket encode/decode
// logic, restructured from a pull model over io.Reader (which always has a
// fully buffered frame to read from) into a push model over buffer.Buffer:
// TryDecodeFrame must be safe to call against a buffer that does not yet
// hold a complete frame, leaving it untouched until one arrives, since the
// bot manager feeds it raw, short, non-blocking socket reads.
package framing

import (
	"fmt"

	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/compress"
	"github.com/go-mclib/loadbot/wire"
)

// EncodeFrame appends the wire representation of payload (packet ID VarInt
// + body, already concatenated by the caller) to out, per spec.md §4.3:
//
//   - threshold < 0: length-prefixed, uncompressed.
//   - len(payload) >= threshold: length-prefixed, with a compressed body and
//     a leading uncompressed-length VarInt.
//   - len(payload) < threshold: length-prefixed, uncompressed, but still
//     carries the leading uncompressed-length VarInt set to zero — vanilla
//     servers require this marker whenever compression is enabled at all.
//
// scratch is reset and reused to stage the compressed bytes; it must not be
// aliased by a previous, still-in-use EncodeFrame or TryDecodeFrame call.
func EncodeFrame(out *buffer.Buffer, payload []byte, threshold int, comp *compress.Codec, scratch *buffer.Buffer) error {
	if threshold < 0 {
		out.WriteVarInt(int32(len(payload)))
		out.Write(payload)
		return nil
	}

	if len(payload) >= threshold {
		scratch.Reset()
		if _, err := comp.Compress(payload, scratch); err != nil {
			return fmt.Errorf("framing: encode: %w", err)
		}
		compressed := scratch.Unread()

		dataLenBytes, _ := wire.VarInt(len(payload)).ToBytes() //nolint:errcheck
		out.WriteVarInt(int32(len(dataLenBytes) + len(compressed)))
		out.Write(dataLenBytes)
		out.Write(compressed)
		return nil
	}

	out.WriteVarInt(int32(len(payload) + 1))
	out.WriteVarInt(0)
	out.Write(payload)
	return nil
}

// TryDecodeFrame attempts to extract one complete frame from the front of
// in. If in does not yet hold a full frame it returns ok=false, err=nil and
// leaves in untouched — the caller should stop draining and wait for more
// bytes. A non-nil error means the bytes that are present can never form a
// valid frame (bad VarInt, length overflow, decompression failure, or an
// uncompressed-length mismatch) and the connection must be kicked.
//
// On success the returned packetID and payload describe one dispatchable
// packet; payload aliases in's storage (uncompressed frames) or scratch
// (compressed frames), and must be consumed before decoding another frame
// or writing to or compacting in.
func TryDecodeFrame(in *buffer.Buffer, threshold int, comp *compress.Codec, scratch *buffer.Buffer) (packetID int32, payload []byte, ok bool, err error) {
	data := in.Unread()

	var frameLen wire.VarInt
	headerLen, err := frameLen.FromBytes(data)
	if err == wire.ErrIncomplete {
		return 0, nil, false, nil
	}
	if err != nil {
		return 0, nil, false, fmt.Errorf("framing: decode length: %w", err)
	}
	if frameLen < 0 {
		return 0, nil, false, fmt.Errorf("framing: decode length: %w", wire.ErrMalformed)
	}

	if len(data) < headerLen+int(frameLen) {
		return 0, nil, false, nil
	}
	frame := data[headerLen : headerLen+int(frameLen)]

	// Commit: the full frame is present, consume it from the socket buffer
	// regardless of what happens decoding its contents below.
	if err := in.Skip(headerLen + int(frameLen)); err != nil {
		return 0, nil, false, fmt.Errorf("framing: internal: %w", err)
	}

	body, err := decompressBody(frame, threshold, comp, scratch)
	if err != nil {
		return 0, nil, false, err
	}

	var pid wire.VarInt
	idLen, err := pid.FromBytes(body)
	if err != nil {
		return 0, nil, false, fmt.Errorf("framing: decode packet id: %w", err)
	}

	return int32(pid), body[idLen:], true, nil
}

func decompressBody(frame []byte, threshold int, comp *compress.Codec, scratch *buffer.Buffer) ([]byte, error) {
	if threshold < 0 {
		return frame, nil
	}

	var uncompressedLen wire.VarInt
	n, err := uncompressedLen.FromBytes(frame)
	if err != nil {
		return nil, fmt.Errorf("framing: decode uncompressed length: %w", err)
	}

	if uncompressedLen == 0 {
		return frame[n:], nil
	}
	if uncompressedLen < 0 {
		return nil, fmt.Errorf("framing: decode uncompressed length: %w", wire.ErrMalformed)
	}

	scratch.Reset()
	got, err := comp.Decompress(frame[n:], scratch)
	if err != nil {
		return nil, fmt.Errorf("framing: decompress: %w", err)
	}
	if got != int(uncompressedLen) {
		return nil, fmt.Errorf("framing: decompress: declared length %d, got %d", uncompressedLen, got)
	}
	return scratch.Unread(), nil
}
