// Package identity assigns each simulated player a display name and a
// UUID. It is adapted from the teacher's auth package: the Microsoft/Xbox
// OAuth flow and Mojang session-server handshake that package drives have
// no home here, since online-mode (encrypted) servers are unsupported, but
// the idea of a single place that turns a bot's numeric id into the
// identity it presents to a server survives, simplified to the deterministic
// offline-mode rule vanilla servers apply when no session ticket is
// presented.
package identity

import (
	"strconv"

	"github.com/go-mclib/loadbot/wire"
)

// Identity is the name and UUID a bot presents during login.
type Identity struct {
	Name string
	UUID wire.UUID
}

// Generate derives the stable, deterministic identity for bot id within a
// worker, matching the naming scheme a captured session against this load
// generator would show ("Bot_0", "Bot_1", ...). The UUID is computed the
// same way a vanilla server assigns one to an unauthenticated offline-mode
// connection, so log lines and any packet field expecting a UUID see a
// value consistent with what the server itself would derive.
func Generate(id int) Identity {
	name := botName(id)
	return Identity{
		Name: name,
		UUID: wire.OfflineUUID(name),
	}
}

func botName(id int) string {
	return "Bot_" + strconv.Itoa(id)
}
