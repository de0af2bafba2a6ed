package bot

import (
	"fmt"

	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/packets"
)

// HandleLogin dispatches one decoded Login-state frame to the bot,
// mutating its state and possibly marking it kicked. Grounded on the
// teacher's java_protocol/packets dispatch-by-id convention, restructured
// into a plain switch since this module's handler set is fixed and small
// (spec.md §4.4's two-table design does not need a registry).
func (b *Bot) HandleLogin(packetID int32, payload []byte) {
	p := buffer.FromBytes(payload)

	switch packetID {
	case packets.LoginDisconnectID:
		var d packets.LoginDisconnect
		if err := d.Decode(p); err != nil {
			b.Kick(fmt.Sprintf("malformed login disconnect: %v", err))
			return
		}
		b.Kick("disconnected during login: " + d.Reason)

	case packets.EncryptionRequestID:
		b.Kick("encryption requested, online-mode servers unsupported")

	case packets.LoginSuccessID:
		b.Phase = PhasePlay
		b.Log.Info("login succeeded, entering play", "id", b.ID)

	case packets.SetCompressionID:
		var s packets.SetCompression
		if err := s.Decode(p); err != nil {
			b.Kick(fmt.Sprintf("malformed set compression: %v", err))
			return
		}
		b.CompressionThreshold = s.Threshold

	default:
		// ignore
	}
}
