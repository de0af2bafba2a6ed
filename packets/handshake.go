package packets

import "github.com/go-mclib/loadbot/buffer"

// HandshakeID is the single packet ID in the Handshaking state.
const HandshakeID = 0x00

// NextStateLogin requests a transition into the Login state.
const NextStateLogin = 2

// Handshake is the first packet any connection sends. It never receives a
// reply; the server simply switches to the requested next state.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       int32
}

// Encode appends the packet ID and body to b.
func (h Handshake) Encode(b *buffer.Buffer) {
	b.WriteVarInt(HandshakeID)
	b.WriteVarInt(h.ProtocolVersion)
	b.WriteString(h.ServerAddress)
	b.WriteUint16(h.ServerPort)
	b.WriteVarInt(h.NextState)
}
