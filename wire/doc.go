// Package wire implements the primitive data types of the Minecraft Java
// Edition protocol (version 763 / 1.20.1): VarInt, VarLong, strings, fixed
// width integers and floats, UUIDs and bit sets.
//
// Every type follows the same shape: ToBytes encodes the value, FromBytes
// decodes it from the front of a byte slice and reports how many bytes were
// consumed. Unlike a conventional decoder built on io.Reader, FromBytes must
// be usable against a slice that does not yet hold a full value — the bot
// manager feeds partially-read socket data through these types before a
// complete frame has arrived — so decoders report ErrIncomplete rather than
// blocking or returning io.EOF.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets
package wire

import "errors"

// ErrIncomplete is returned by FromBytes when data holds a valid prefix of
// an encoded value but not enough bytes to finish decoding it. Callers
// buffering a socket stream should leave the input untouched and retry once
// more bytes have arrived.
var ErrIncomplete = errors.New("wire: incomplete data")

// ErrMalformed is returned when data can never be completed into a valid
// value, e.g. a VarInt whose continuation bit never clears within five
// bytes. Unlike ErrIncomplete this is a protocol violation.
var ErrMalformed = errors.New("wire: malformed data")
