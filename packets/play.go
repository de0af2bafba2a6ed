package packets

import (
	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/wire"
)

// Packet IDs in the Play state.
const (
	JoinGameID                  = 0x28 // S2C, per spec.md §4.4
	KeepAliveClientboundID      = 0x23 // S2C
	SynchronizePlayerPositionID = 0x3C // S2C
	PlayDisconnectID            = 0x1A // S2C

	TeleportConfirmID      = 0x00 // C2S
	ChatMessageID          = 0x05 // C2S
	KeepAliveServerboundID = 0x14 // C2S
	SetPlayerPositionID    = 0x17 // C2S
	SwingArmID             = 0x2F // C2S
	EntityActionID         = 0x20 // C2S
	SetHeldItemID          = 0x28 // C2S — distinct namespace from clientbound IDs
)

// acknowledgedBits is the fixed length, in bits, of Chat Message's
// "Acknowledged" bit set (20 message history slots, packed into 1 long).
const acknowledgedBits = 20

// JoinGame is read on entering Play. Only the entity ID matters to this
// load generator; everything else in the payload (dimension codec,
// per-dimension NBT, spawn data) is parsed best-effort for diagnostics and
// never blocks progress if it fails to parse.
type JoinGame struct {
	EntityID int32

	// Details is filled in on a best-effort basis by DecodeDetails and is
	// nil if that parse did not run or failed partway through.
	Details *JoinGameDetails
}

// JoinGameDetails is the subset of the Join Game body past the entity ID
// that's useful for logging (see bot manager verbose mode).
type JoinGameDetails struct {
	Hardcore         bool
	Gamemode         uint8
	DimensionCount   int32
	ViewDistance     int32
	MaxPlayers       int32
	ReducedDebugInfo bool
}

// Decode reads only the entity ID, the one field spec.md's Play handler
// table requires. Use DecodeDetails separately for the rest.
func (j *JoinGame) Decode(b *buffer.Buffer) error {
	eid, err := b.ReadInt32()
	if err != nil {
		return err
	}
	j.EntityID = eid
	return nil
}

// DecodeDetails attempts a fuller parse of the Join Game body for
// diagnostics, skipping the registry codec NBT compound via
// wire.SkipCompoundTag (the dimension type that follows it is read as an
// identifier string). On success it also stores the result in j.Details.
// It never returns an error that
// should kick the bot — entity ID extraction already happened in Decode —
// so callers should log and discard a non-nil error rather than treat it as
// fatal.
func (j *JoinGame) DecodeDetails(payload []byte) (*JoinGameDetails, error) {
	b := buffer.FromBytes(payload)

	if _, err := b.ReadInt32(); err != nil { // Entity ID (already known)
		return nil, err
	}
	hardcore, err := b.ReadBool()
	if err != nil {
		return nil, err
	}
	gamemode, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	if _, err := b.ReadUint8(); err != nil { // Previous Gamemode
		return nil, err
	}

	dimCount, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	for i := int32(0); i < dimCount; i++ {
		if _, err := b.ReadString(0); err != nil { // Dimension Name
			return nil, err
		}
	}

	if n, err := wire.SkipCompoundTag(b.Unread()); err != nil { // Registry Codec
		return nil, err
	} else if err := b.Skip(n); err != nil {
		return nil, err
	}
	if _, err := b.ReadString(0); err != nil { // Dimension Type
		return nil, err
	}
	if _, err := b.ReadString(0); err != nil { // Dimension Name
		return nil, err
	}
	if _, err := b.ReadInt64(); err != nil { // Hashed Seed
		return nil, err
	}
	maxPlayers, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	viewDistance, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if _, err := b.ReadVarInt(); err != nil { // Simulation Distance
		return nil, err
	}
	reducedDebugInfo, err := b.ReadBool()
	if err != nil {
		return nil, err
	}

	details := &JoinGameDetails{
		Hardcore:         hardcore,
		Gamemode:         gamemode,
		DimensionCount:   dimCount,
		ViewDistance:     viewDistance,
		MaxPlayers:       maxPlayers,
		ReducedDebugInfo: reducedDebugInfo,
	}
	j.Details = details
	return details, nil
}

// KeepAliveClientbound carries an opaque 8-byte id the client must echo
// back within the server's timeout.
type KeepAliveClientbound struct {
	ID int64
}

func (k *KeepAliveClientbound) Decode(b *buffer.Buffer) error {
	v, err := b.ReadInt64()
	if err != nil {
		return err
	}
	k.ID = v
	return nil
}

// KeepAliveServerbound echoes the id back to the server.
type KeepAliveServerbound struct {
	ID int64
}

func (k KeepAliveServerbound) Encode(b *buffer.Buffer) {
	b.WriteVarInt(KeepAliveServerboundID)
	b.WriteInt64(k.ID)
}

// SynchronizePlayerPosition flags, per spec.md §4.4: bit i set means the
// corresponding field is relative to the bot's current position rather
// than absolute.
const (
	PosFlagX     = 0x01
	PosFlagY     = 0x02
	PosFlagZ     = 0x04
	PosFlagYaw   = 0x08
	PosFlagPitch = 0x10
)

// SynchronizePlayerPosition is the server's authoritative repositioning of
// the player; it must be acknowledged with a TeleportConfirm carrying the
// same teleport ID.
type SynchronizePlayerPosition struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      uint8
	TeleportID int32
}

func (s *SynchronizePlayerPosition) Decode(b *buffer.Buffer) error {
	var err error
	if s.X, err = b.ReadFloat64(); err != nil {
		return err
	}
	if s.Y, err = b.ReadFloat64(); err != nil {
		return err
	}
	if s.Z, err = b.ReadFloat64(); err != nil {
		return err
	}
	yaw, err := b.ReadFloat32()
	if err != nil {
		return err
	}
	s.Yaw = yaw
	pitch, err := b.ReadFloat32()
	if err != nil {
		return err
	}
	s.Pitch = pitch
	flags, err := b.ReadUint8()
	if err != nil {
		return err
	}
	s.Flags = flags
	teleportID, err := b.ReadVarInt()
	if err != nil {
		return err
	}
	s.TeleportID = teleportID
	return nil
}

// Apply resolves the (possibly relative) new position against the bot's
// current x, y, z, per the flag bits in s.Flags.
func (s *SynchronizePlayerPosition) Apply(x, y, z float64) (nx, ny, nz float64) {
	nx, ny, nz = s.X, s.Y, s.Z
	if s.Flags&PosFlagX != 0 {
		nx = x + s.X
	}
	if s.Flags&PosFlagY != 0 {
		ny = y + s.Y
	}
	if s.Flags&PosFlagZ != 0 {
		nz = z + s.Z
	}
	return nx, ny, nz
}

// TeleportConfirm is the required reply to SynchronizePlayerPosition.
type TeleportConfirm struct {
	TeleportID int32
}

func (t TeleportConfirm) Encode(b *buffer.Buffer) {
	b.WriteVarInt(TeleportConfirmID)
	b.WriteVarInt(t.TeleportID)
}

// PlayDisconnect carries the JSON reason the server sent before closing a
// Play-state connection.
type PlayDisconnect struct {
	Reason string
}

func (d *PlayDisconnect) Decode(b *buffer.Buffer) error {
	reason, err := b.ReadString(0)
	if err != nil {
		return err
	}
	d.Reason = reason
	return nil
}

// SetPlayerPosition is the serverbound movement update this load generator
// sends every tick once teleported.
type SetPlayerPosition struct {
	X, Y, Z  float64
	OnGround bool
}

func (p SetPlayerPosition) Encode(b *buffer.Buffer) {
	b.WriteVarInt(SetPlayerPositionID)
	b.WriteFloat64(p.X)
	b.WriteFloat64(p.Y)
	b.WriteFloat64(p.Z)
	b.WriteBool(p.OnGround)
}

// ChatMessage is a player chat message, bounded to 256 bytes per spec.md
// §4.4. The v763 wire format additionally carries a timestamp, salt, an
// absent signature, a zero message count and a fixed, always-empty
// acknowledged bit set — this load generator never tracks real chat
// session state, so those fields are always sent as their "nothing to
// report" values.
type ChatMessage struct {
	Message   string
	Timestamp int64
	Salt      int64
}

func (c ChatMessage) Encode(b *buffer.Buffer) {
	b.WriteVarInt(ChatMessageID)
	b.WriteString(c.Message)
	b.WriteInt64(c.Timestamp)
	b.WriteInt64(c.Salt)
	b.WriteBool(false) // has signature
	b.WriteVarInt(0)   // message count
	ack := wire.NewFixedBitSet(acknowledgedBits)
	enc, _ := ack.ToBytes() //nolint:errcheck // FixedBitSet.ToBytes never fails
	b.Write(enc)
}

// Hand selects which hand an Animation (swing) or item-use action applies
// to.
type Hand int32

const (
	HandMain Hand = 0
	HandOff  Hand = 1
)

// SwingArm is the serverbound "Animation" packet.
type SwingArm struct {
	Hand Hand
}

func (s SwingArm) Encode(b *buffer.Buffer) {
	b.WriteVarInt(SwingArmID)
	b.WriteVarInt(int32(s.Hand))
}

// EntityActionType enumerates the sneak/sprint toggles this load generator
// exercises.
type EntityActionType int32

const (
	ActionStartSneak  EntityActionType = 1
	ActionStopSneak   EntityActionType = 0
	ActionStartSprint EntityActionType = 3
	ActionStopSprint  EntityActionType = 4
)

// EntityAction reports a sneak or sprint state change for the bot's own
// entity.
type EntityAction struct {
	EntityID int32
	Action   EntityActionType
}

func (e EntityAction) Encode(b *buffer.Buffer) {
	b.WriteVarInt(EntityActionID)
	b.WriteVarInt(e.EntityID)
	b.WriteVarInt(int32(e.Action))
	b.WriteVarInt(0) // jump boost, unused outside horse-jump actions
}

// SetHeldItem changes which hotbar slot (0..=8) the bot holds.
type SetHeldItem struct {
	Slot int16
}

func (s SetHeldItem) Encode(b *buffer.Buffer) {
	b.WriteVarInt(SetHeldItemID)
	enc, _ := wire.Short(s.Slot).ToBytes() //nolint:errcheck
	b.Write(enc)
}
