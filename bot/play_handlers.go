package bot

import (
	"fmt"

	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/compress"
	"github.com/go-mclib/loadbot/framing"
	"github.com/go-mclib/loadbot/packets"
)

// HandlePlay dispatches one decoded Play-state frame, per spec.md §4.4's
// Play handler table. comp and scratch are the worker's shared compression
// codec and scratch buffer, needed here because two of these handlers
// reply immediately (Keep Alive, Teleport Confirm) rather than waiting for
// the action phase.
func (b *Bot) HandlePlay(packetID int32, payload []byte, comp *compress.Codec, scratch *buffer.Buffer) {
	p := buffer.FromBytes(payload)

	switch packetID {
	case packets.JoinGameID:
		var j packets.JoinGame
		if err := j.Decode(p); err != nil {
			b.Kick(fmt.Sprintf("malformed join game: %v", err))
			return
		}
		b.EntityID = j.EntityID
		if details, err := j.DecodeDetails(payload); err == nil {
			b.Log.Debug("join game", "entity_id", j.EntityID, "gamemode", details.Gamemode, "max_players", details.MaxPlayers)
		} else {
			b.Log.Debug("join game", "entity_id", j.EntityID)
		}

	case packets.KeepAliveClientboundID:
		var ka packets.KeepAliveClientbound
		if err := ka.Decode(p); err != nil {
			b.Kick(fmt.Sprintf("malformed keep alive: %v", err))
			return
		}
		b.LastKeepAlive = ka.ID
		b.sendPlay(packets.KeepAliveServerbound{ID: ka.ID}, comp, scratch)

	case packets.SynchronizePlayerPositionID:
		var s packets.SynchronizePlayerPosition
		if err := s.Decode(p); err != nil {
			b.Kick(fmt.Sprintf("malformed synchronize player position: %v", err))
			return
		}
		b.X, b.Y, b.Z = s.Apply(b.X, b.Y, b.Z)
		b.Teleported = true
		b.sendPlay(packets.TeleportConfirm{TeleportID: s.TeleportID}, comp, scratch)

	case packets.PlayDisconnectID:
		var d packets.PlayDisconnect
		if err := d.Decode(p); err != nil {
			b.Kick(fmt.Sprintf("malformed play disconnect: %v", err))
			return
		}
		b.Kick("disconnected: " + d.Reason)

	default:
		// ignore
	}
}

// playEncoder is satisfied by every outgoing Play packet type: the packet
// ID plus body, ready to be framed.
type playEncoder interface {
	Encode(b *buffer.Buffer)
}

// sendPlay frames pkt through the worker's compression codec and appends
// the result to the bot's outbound queue.
func (b *Bot) sendPlay(pkt playEncoder, comp *compress.Codec, scratch *buffer.Buffer) {
	payload := buffer.New(32)
	pkt.Encode(payload)

	framed := buffer.New(payload.Len() + 8)
	if err := framing.EncodeFrame(framed, payload.Unread(), int(b.CompressionThreshold), comp, scratch); err != nil {
		b.Kick(fmt.Sprintf("encode failed: %v", err))
		return
	}
	b.Enqueue(framed.Unread())
	b.Stats.PacketsSent.Add(1)
}
