package wire

import "github.com/google/uuid"

// UUID is a 128-bit universally unique identifier, sent as two big-endian
// 64-bit halves.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Type:UUID
type UUID [16]byte

func (u UUID) ToBytes() ([]byte, error) {
	out := make([]byte, 16)
	copy(out, u[:])
	return out, nil
}

func (u *UUID) FromBytes(data []byte) (int, error) {
	if len(data) < 16 {
		return 0, ErrIncomplete
	}
	copy(u[:], data[:16])
	return 16, nil
}

// OfflineUUID derives the UUID a vanilla server assigns to a player in
// offline mode: a version-3 (name-based, MD5) UUID over "OfflinePlayer:<name>"
// in the zero namespace. This load generator never completes online-mode
// authentication (see identity.Generate), but still wants a stable UUID per
// bot for logging and for any packet field that expects one.
func OfflineUUID(name string) UUID {
	u := uuid.NewMD5(uuid.Nil, []byte("OfflinePlayer:"+name))
	var out UUID
	copy(out[:], u[:])
	return out
}
