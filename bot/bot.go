// Package bot defines the Bot record and the Login/Play dispatch tables
// that drive a single simulated connection from handshake through
// sustained Play-state gameplay traffic.
//
// Grounded on the teacher's java_protocol/tcp_client.go TCPClient, which
// pairs a connection with protocol state; this module's Bot additionally
// owns the buffering and outbound-queue state a non-blocking, event-driven
// connection needs, since the teacher's client always blocks on a read or
// write and never has to resume a partial frame.
package bot

import (
	"log/slog"

	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/identity"
	"github.com/go-mclib/loadbot/stats"
)

// Phase is the two-state protocol phase a Bot progresses through.
type Phase int

const (
	PhaseLogin Phase = iota
	PhasePlay
)

func (p Phase) String() string {
	if p == PhasePlay {
		return "play"
	}
	return "login"
}

// Conn is the read/write/close surface a Bot needs from its connection.
// *Socket satisfies it against a real non-blocking fd; tests substitute an
// in-memory fake so the manager's tick logic can be exercised without a
// real socket or epoll instance.
type Conn interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// Bot is one simulated player connection.
type Bot struct {
	ID       int
	Identity identity.Identity
	Conn     Conn
	FD       int // the registered file descriptor; meaningful only to a real Poller

	EntityID             int32
	CompressionThreshold int32 // negative means disabled

	Phase      Phase
	Joined     bool
	Teleported bool
	Kicked     bool
	KickReason string

	X, Y, Z float64

	// In is the per-bot read-buffering buffer: bytes land here as they
	// arrive off the socket and TryDecodeFrame drains complete frames from
	// it, leaving any trailing partial frame in place.
	In *buffer.Buffer

	// Outbound holds fully-framed bytes not yet written to the socket.
	// Drained on writable events; see spec.md §9's short-write note — this
	// is the per-bot queue recommended there rather than assuming every
	// write completes.
	Outbound [][]byte

	LastKeepAlive int64

	Log   *slog.Logger
	Stats *stats.Stats
}

// New constructs a Bot with an empty read buffer, ready to be registered
// with a poller once its connection is established.
func New(id int, fd int, conn Conn, log *slog.Logger, st *stats.Stats) *Bot {
	ident := identity.Generate(id)
	return &Bot{
		ID:                   id,
		Identity:             ident,
		Conn:                 conn,
		FD:                   fd,
		CompressionThreshold: -1,
		Phase:                PhaseLogin,
		In:                   buffer.New(2000),
		Log:                  log.With("bot", ident.Name),
		Stats:                st,
	}
}

// Kick marks the bot for removal with reason, logging once at the point of
// kicking per spec.md §7 ("no error is propagated across bots").
func (b *Bot) Kick(reason string) {
	if b.Kicked {
		return
	}
	b.Kicked = true
	b.KickReason = reason
	b.Log.Debug("kicking bot", "reason", reason)
	b.Stats.BotsKicked.Add(1)
}

// Enqueue appends framed bytes to the outbound queue for the next writable
// event to drain.
func (b *Bot) Enqueue(framed []byte) {
	b.Outbound = append(b.Outbound, framed)
}
