package wire

import (
	"bytes"
	"fmt"

	"github.com/Tnze/go-mc/nbt"
)

// SkipCompoundTag decodes one network-format NBT compound from the front of
// data and reports how many bytes it occupied, without keeping the decoded
// value. Join Game (0x28) carries a full registry codec NBT blob ahead of
// fields this load generator does care about (max
// players, view distance); rather than hand-roll an NBT walker the way a
// length-prefixed type would, this borrows go-mc's NBT decoder purely to
// find the end of the blob.
func SkipCompoundTag(data []byte) (int, error) {
	reader := bytes.NewReader(data)
	decoder := nbt.NewDecoder(reader)
	decoder.NetworkFormat(true)

	var discard any
	if _, err := decoder.Decode(&discard); err != nil {
		return 0, fmt.Errorf("wire: skip NBT compound: %w", err)
	}

	return len(data) - reader.Len(), nil
}
