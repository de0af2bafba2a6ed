package packets

import "github.com/go-mclib/loadbot/buffer"

// Packet IDs in the Login state.
const (
	LoginStartID = 0x00 // C2S

	LoginDisconnectID   = 0x00 // S2C
	EncryptionRequestID = 0x01 // S2C — unsupported, see bot/login_handlers.go
	LoginSuccessID      = 0x02 // S2C
	SetCompressionID    = 0x03 // S2C
)

// LoginStart is the client's reply to the server switching into Login
// state. v763 servers expect a trailing "has UUID" boolean even though this
// load generator never supplies one (online-mode servers are unsupported,
// per spec.md §1 Non-goals).
type LoginStart struct {
	Name string
}

// Encode appends the packet ID and body to b.
func (l LoginStart) Encode(b *buffer.Buffer) {
	b.WriteVarInt(LoginStartID)
	b.WriteString(l.Name)
	b.WriteBool(false) // has player UUID
}

// LoginDisconnect carries the JSON reason the server sent before closing
// the connection during login.
type LoginDisconnect struct {
	Reason string
}

// Decode reads the JSON reason string from a payload positioned just past
// the packet ID.
func (d *LoginDisconnect) Decode(b *buffer.Buffer) error {
	reason, err := b.ReadString(0)
	if err != nil {
		return err
	}
	d.Reason = reason
	return nil
}

// SetCompression announces the compression threshold all subsequent frames
// in both directions must use.
type SetCompression struct {
	Threshold int32
}

// Decode reads the threshold VarInt.
func (s *SetCompression) Decode(b *buffer.Buffer) error {
	v, err := b.ReadVarInt()
	if err != nil {
		return err
	}
	s.Threshold = v
	return nil
}
