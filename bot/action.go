package bot

import (
	"math/rand"

	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/compress"
	"github.com/go-mclib/loadbot/framing"
	"github.com/go-mclib/loadbot/packets"
)

// chatMessages is the fixed pool spec.md §4.4 names for randomized chat
// action packets.
var chatMessages = []string{
	"This is a chat message!",
	"Wow",
	"Server = on?",
}

// actionKind enumerates the 5 gameplay packet kinds the action phase picks
// uniformly at random from, per spec.md §4.5.
type actionKind int

const (
	actionChat actionKind = iota
	actionSwingArm
	actionSneakToggle
	actionSprintToggle
	actionHeldSlot
	numActionKinds
)

// SendHandshakeAndLogin transmits the Handshake and Login Start frames and
// marks the bot joined. Called once, on the bot's first writable event,
// per spec.md §4.5 step 4.
func (b *Bot) SendHandshakeAndLogin(serverAddress string, serverPort uint16, comp *compress.Codec, scratch *buffer.Buffer) {
	hs := buffer.New(32)
	packets.Handshake{
		ProtocolVersion: 763,
		ServerAddress:   serverAddress,
		ServerPort:      serverPort,
		NextState:       packets.NextStateLogin,
	}.Encode(hs)
	b.frameAndEnqueue(hs.Unread(), comp, scratch)

	ls := buffer.New(32)
	packets.LoginStart{Name: b.Identity.Name}.Encode(ls)
	b.frameAndEnqueue(ls.Unread(), comp, scratch)

	b.Joined = true
}

// SendMovement perturbs x/z by an independent uniform random in
// [-0.5, +0.5] and emits a Player Position packet, per spec.md §4.5 step 5.
func (b *Bot) SendMovement(rng *rand.Rand, comp *compress.Codec, scratch *buffer.Buffer) {
	b.X += rng.Float64() - 0.5
	b.Z += rng.Float64() - 0.5
	b.sendPlay(packets.SetPlayerPosition{X: b.X, Y: b.Y, Z: b.Z, OnGround: true}, comp, scratch)
}

// MaybeSendAction emits one randomly-selected gameplay packet when called
// on an action tick (tickCounter+b.ID mod actionTick == 0), per spec.md
// §4.5 step 5 and §8 testable property 8.
func (b *Bot) MaybeSendAction(rng *rand.Rand, comp *compress.Codec, scratch *buffer.Buffer) {
	switch actionKind(rng.Intn(int(numActionKinds))) {
	case actionChat:
		msg := chatMessages[rng.Intn(len(chatMessages))]
		b.sendPlay(packets.ChatMessage{Message: msg, Timestamp: 0, Salt: 0}, comp, scratch)

	case actionSwingArm:
		hand := packets.HandMain
		if rng.Intn(2) == 1 {
			hand = packets.HandOff
		}
		b.sendPlay(packets.SwingArm{Hand: hand}, comp, scratch)

	case actionSneakToggle:
		action := packets.ActionStopSneak
		if rng.Intn(2) == 1 {
			action = packets.ActionStartSneak
		}
		b.sendPlay(packets.EntityAction{EntityID: b.EntityID, Action: action}, comp, scratch)

	case actionSprintToggle:
		action := packets.ActionStopSprint
		if rng.Intn(2) == 1 {
			action = packets.ActionStartSprint
		}
		b.sendPlay(packets.EntityAction{EntityID: b.EntityID, Action: action}, comp, scratch)

	case actionHeldSlot:
		slot := int16(rng.Intn(9))
		b.sendPlay(packets.SetHeldItem{Slot: slot}, comp, scratch)
	}
}

// frameAndEnqueue is the Login-state counterpart to sendPlay: Login frames
// always use no compression (the threshold arrives via Set Compression,
// itself a Login-state packet received only after this call).
func (b *Bot) frameAndEnqueue(payload []byte, comp *compress.Codec, scratch *buffer.Buffer) {
	framed := buffer.New(len(payload) + 8)
	threshold := -1
	if b.Phase == PhasePlay {
		threshold = int(b.CompressionThreshold)
	}
	if err := framing.EncodeFrame(framed, payload, threshold, comp, scratch); err != nil {
		b.Kick("encode failed")
		return
	}
	b.Enqueue(framed.Unread())
	b.Stats.PacketsSent.Add(1)
}
