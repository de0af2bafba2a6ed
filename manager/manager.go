package manager

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/go-mclib/loadbot/bot"
	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/compress"
	"github.com/go-mclib/loadbot/framing"
	"github.com/go-mclib/loadbot/stats"
)

// Dialer opens a new connection for bot id, returning its file descriptor
// (for poller registration) and a bot.Conn. Production code uses
// NewDialer (dial.go); tests inject a fake that never touches a real
// socket.
type Dialer func(id int) (fd int, conn bot.Conn, err error)

// Config configures a BotManager. BotsStarted is the process-wide shared
// admission counter per spec.md §3 — all workers racing for the same
// target must share one instance.
type Config struct {
	WorkerID     int
	Target       int
	BotsStarted  *atomic.Int64
	BotsPerTick  int
	ActionTick   int
	TickDuration time.Duration
	Dial         Dialer
	Log          *slog.Logger
	Stats        *stats.Stats
	Rand         *rand.Rand
}

// BotManager runs one worker's independent event loop, per spec.md §4.5.
type BotManager struct {
	cfg Config

	poller Poller
	bots   map[int]*bot.Bot

	tickCounter int

	comp              *compress.Codec
	frameScratch      *buffer.Buffer
	decompressScratch *buffer.Buffer
}

// New constructs a BotManager bound to poller. The caller owns poller's
// lifecycle (Close it when the worker exits).
func New(cfg Config, poller Poller) *BotManager {
	if cfg.BotsPerTick == 0 {
		cfg.BotsPerTick = 1
	}
	if cfg.ActionTick == 0 {
		cfg.ActionTick = 4
	}
	if cfg.TickDuration == 0 {
		cfg.TickDuration = 50 * time.Millisecond
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	return &BotManager{
		cfg:               cfg,
		poller:            poller,
		bots:              make(map[int]*bot.Bot),
		comp:              compress.New(),
		frameScratch:      buffer.New(2000),
		decompressScratch: buffer.New(2000),
	}
}

// Run drives the event loop to completion: the worker exits once its local
// bot map is empty and the global admission counter offers no more slots.
func (m *BotManager) Run() {
	for {
		alive := m.Tick()
		if !alive {
			return
		}
	}
}

// Tick runs one iteration of the event loop (admission, poll, dispatch,
// action phase, pacing) and reports whether the worker should keep
// running.
func (m *BotManager) Tick() bool {
	start := time.Now()

	m.admit()

	events, err := m.poller.Wait(int(m.cfg.TickDuration.Milliseconds()))
	if err != nil {
		m.cfg.Log.Error("poll failed", "error", err)
	}
	m.dispatch(events)
	m.actionPhase()
	m.removeKicked()

	m.tickCounter++

	elapsed := time.Since(start)
	if elapsed < m.cfg.TickDuration {
		time.Sleep(m.cfg.TickDuration - elapsed)
	}

	return len(m.bots) > 0 || !m.exhausted()
}

// exhausted reports whether the shared admission counter has already
// reached the target, meaning this worker will never receive more bots.
func (m *BotManager) exhausted() bool {
	return m.cfg.BotsStarted.Load() >= int64(m.cfg.Target)
}

// admit implements spec.md §4.5 step 1's reserve-then-undo pattern: a
// fetch_add whose prior value is already at or past target is undone with
// a fetch_sub rather than retried, and a reservation that only partly fits
// opens ids up to target, so the global live count never exceeds
// Config.Target even with workers racing on the same counter.
func (m *BotManager) admit() {
	k := int64(m.cfg.BotsPerTick)
	prior := m.cfg.BotsStarted.Add(k) - k
	if prior >= int64(m.cfg.Target) {
		m.cfg.BotsStarted.Add(-k)
		return
	}

	end := prior + k
	if end > int64(m.cfg.Target) {
		end = int64(m.cfg.Target)
	}
	for id := int(prior); id < int(end); id++ {
		m.openBot(id)
	}
}

func (m *BotManager) openBot(id int) {
	fd, conn, err := m.cfg.Dial(id)
	if err != nil {
		m.cfg.Log.Warn("dial failed", "id", id, "error", err)
		return
	}

	b := bot.New(id, fd, conn, m.cfg.Log, m.cfg.Stats)
	if err := m.poller.Register(fd, id); err != nil {
		m.cfg.Log.Warn("register failed", "id", id, "error", err)
		conn.Close()
		return
	}
	m.bots[id] = b
	m.cfg.Stats.BotsConnected.Add(1)
}

// dispatch handles readable and writable events per spec.md §4.5 step 4.
func (m *BotManager) dispatch(events []Event) {
	for _, ev := range events {
		b, ok := m.bots[ev.Token]
		if !ok {
			continue
		}

		if ev.HangupErr {
			b.Kick("socket hangup or error")
			continue
		}

		if ev.Writable {
			if !b.Joined {
				b.SendHandshakeAndLogin("", 0, m.comp, m.frameScratch)
			}
			m.drainOutbound(b)
		}

		if ev.Readable && b.Joined {
			m.drainReadable(b)
		}
	}
}

// drainOutbound writes as much of the bot's pending outbound queue as the
// socket currently accepts. A short write's unsent remainder is pushed
// back to the front of the queue for the next writable event.
func (m *BotManager) drainOutbound(b *bot.Bot) {
	for len(b.Outbound) > 0 {
		frame := b.Outbound[0]
		n, err := b.Conn.Write(frame)
		if err == bot.ErrWouldBlock {
			return
		}
		if err != nil {
			b.Kick(fmt.Sprintf("write failed: %v", err))
			return
		}
		if n < len(frame) {
			b.Outbound[0] = frame[n:]
			return
		}
		b.Outbound = b.Outbound[1:]
	}
}

// drainReadable pumps the socket into the bot's buffering buffer and
// decodes every complete frame present, per spec.md §4.3's incoming
// framing algorithm.
func (m *BotManager) drainReadable(b *bot.Bot) {
	var scratch [4096]byte
	for {
		n, err := b.Conn.Read(scratch[:])
		if err == bot.ErrWouldBlock {
			break
		}
		if err != nil {
			b.Kick(fmt.Sprintf("read failed: %v", err))
			return
		}
		b.In.Write(scratch[:n])
		if n < len(scratch) {
			break
		}
	}

	for {
		packetID, payload, ok, err := framing.TryDecodeFrame(b.In, int(b.CompressionThreshold), m.comp, m.decompressScratch)
		if err != nil {
			b.Kick(fmt.Sprintf("decode failed: %v", err))
			return
		}
		if !ok {
			break
		}
		m.cfg.Stats.PacketsRecv.Add(1)

		switch b.Phase {
		case bot.PhaseLogin:
			b.HandleLogin(packetID, payload)
		case bot.PhasePlay:
			b.HandlePlay(packetID, payload, m.comp, m.frameScratch)
		}
		if b.Kicked {
			return
		}
	}
	b.In.Compact()
}

// actionPhase implements spec.md §4.5 step 5: movement for every
// teleported bot, plus a randomized gameplay packet on action ticks.
func (m *BotManager) actionPhase() {
	for _, b := range m.bots {
		if b.Kicked || !b.Teleported {
			continue
		}
		b.SendMovement(m.cfg.Rand, m.comp, m.frameScratch)
		if (m.tickCounter+b.ID)%m.cfg.ActionTick == 0 {
			b.MaybeSendAction(m.cfg.Rand, m.comp, m.frameScratch)
		}
		m.drainOutbound(b)
	}
}

// removeKicked deregisters and drops every bot marked kicked this tick,
// per spec.md §3's invariant that deregistration coincides with removal.
func (m *BotManager) removeKicked() {
	for id, b := range m.bots {
		if !b.Kicked {
			continue
		}
		_ = m.poller.Deregister(b.FD)
		_ = b.Conn.Close()
		m.cfg.Log.Info(b.Identity.Name + " disconnected")
		delete(m.bots, id)
	}
}

// Bots exposes the current live bot set for tests and diagnostics.
func (m *BotManager) Bots() map[int]*bot.Bot {
	return m.bots
}
