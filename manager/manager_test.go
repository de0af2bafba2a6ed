package manager_test

import (
	"bytes"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-mclib/loadbot/bot"
	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/compress"
	"github.com/go-mclib/loadbot/framing"
	"github.com/go-mclib/loadbot/manager"
	"github.com/go-mclib/loadbot/packets"
	"github.com/go-mclib/loadbot/stats"
)

// fakeConn is an in-memory bot.Conn: toServer captures every byte the bot
// writes, and fromServer is read back by the bot as if it were socket
// data. Emptying fromServer reports ErrWouldBlock rather than io.EOF,
// matching a real non-blocking socket with nothing currently pending.
type fakeConn struct {
	toServer   *bytes.Buffer
	fromServer *bytes.Buffer
}

func (c *fakeConn) Read(p []byte) (int, error) {
	if c.fromServer.Len() == 0 {
		return 0, bot.ErrWouldBlock
	}
	return c.fromServer.Read(p)
}

func (c *fakeConn) Write(p []byte) (int, error) {
	return c.toServer.Write(p)
}

func (c *fakeConn) Close() error { return nil }

// scriptedPoller replays a fixed sequence of event batches, one per Wait
// call, then reports no further events.
type scriptedPoller struct {
	batches [][]manager.Event
	i       int
}

func (p *scriptedPoller) Register(fd, token int) error { return nil }
func (p *scriptedPoller) Deregister(fd int) error       { return nil }
func (p *scriptedPoller) Close() error                  { return nil }

func (p *scriptedPoller) Wait(timeoutMillis int) ([]manager.Event, error) {
	if p.i >= len(p.batches) {
		return nil, nil
	}
	b := p.batches[p.i]
	p.i++
	return b, nil
}

// frame encodes a packet's payload (id already written by the caller) into
// a complete wire frame using the given compression threshold (negative
// means uncompressed framing).
func frame(t *testing.T, payload []byte, threshold int) []byte {
	t.Helper()
	out := buffer.New(len(payload) + 8)
	comp := compress.New()
	scratch := buffer.New(64)
	if err := framing.EncodeFrame(out, payload, threshold, comp, scratch); err != nil {
		t.Fatal(err)
	}
	return out.Unread()
}

func TestLoginToPlayTransitionViaSetCompressionAndLoginSuccess(t *testing.T) {
	// Server script: SetCompression(256) then Login Success(0x02, empty body).
	sc := buffer.New(8)
	sc.WriteVarInt(packets.SetCompressionID)
	sc.WriteVarInt(256)

	ls := buffer.New(8)
	ls.WriteVarInt(0x02)

	fromServer := bytes.NewBuffer(nil)
	fromServer.Write(frame(t, sc.Unread(), -1))
	// Once Set Compression has been sent, the server frames everything
	// after it with the new threshold.
	fromServer.Write(frame(t, ls.Unread(), 256))

	conn := &fakeConn{toServer: bytes.NewBuffer(nil), fromServer: fromServer}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	shared := &atomic.Int64{}
	poller := &scriptedPoller{batches: [][]manager.Event{
		{{Token: 0, Writable: true}},
		{{Token: 0, Readable: true}},
	}}

	m := manager.New(manager.Config{
		Target:       1,
		BotsStarted:  shared,
		BotsPerTick:  1,
		TickDuration: time.Millisecond,
		Log:          log,
		Stats:        stats.New(),
		Dial: func(id int) (int, bot.Conn, error) {
			return id, conn, nil
		},
	}, poller)

	m.Tick() // admits bot 0, sends handshake+login-start on its writable event
	m.Tick() // delivers SetCompression + LoginSuccess

	b, ok := m.Bots()[0]
	if !ok {
		t.Fatal("bot 0 not found after two ticks")
	}
	if b.Phase != bot.PhasePlay {
		t.Fatalf("phase = %v, want play", b.Phase)
	}
	if b.CompressionThreshold != 256 {
		t.Fatalf("compression threshold = %d, want 256", b.CompressionThreshold)
	}
	if b.Identity.Name != "Bot_0" {
		t.Fatalf("name = %q, want Bot_0", b.Identity.Name)
	}

	// The first thing written should be the handshake frame.
	written := conn.toServer.Bytes()
	in := buffer.New(len(written))
	in.Write(written)
	comp := compress.New()
	scratch := buffer.New(64)
	pid, _, ok2, err := framing.TryDecodeFrame(in, -1, comp, scratch)
	if err != nil || !ok2 {
		t.Fatalf("decode handshake: ok=%v err=%v", ok2, err)
	}
	if pid != packets.HandshakeID {
		t.Fatalf("first outgoing packet id = %d, want handshake", pid)
	}
}

func TestActionCadenceOverManyTicks(t *testing.T) {
	conn := &fakeConn{toServer: bytes.NewBuffer(nil), fromServer: bytes.NewBuffer(nil)}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	shared := &atomic.Int64{}

	batches := make([][]manager.Event, 0, 101)
	batches = append(batches, []manager.Event{{Token: 0, Writable: true}})
	for i := 0; i < 100; i++ {
		batches = append(batches, nil)
	}
	poller := &scriptedPoller{batches: batches}

	m := manager.New(manager.Config{
		Target:       1,
		BotsStarted:  shared,
		BotsPerTick:  1,
		ActionTick:   4,
		TickDuration: time.Millisecond,
		Log:          log,
		Stats:        stats.New(),
		Dial: func(id int) (int, bot.Conn, error) {
			return id, conn, nil
		},
	}, poller)

	m.Tick() // admits and joins bot 0

	b := m.Bots()[0]
	b.Teleported = true // simulate a prior Synchronize Player Position round trip

	for i := 0; i < 100; i++ {
		m.Tick()
	}

	// 100 ticks of movement plus floor(100/4) action packets (tick counter
	// starts at 1 for the first post-join tick in this harness), all
	// written to the same connection after the two handshake frames.
	in := buffer.New(conn.toServer.Len())
	in.Write(conn.toServer.Bytes())
	comp := compress.New()
	scratch := buffer.New(64)

	frames := 0
	for {
		_, _, ok, err := framing.TryDecodeFrame(in, -1, comp, scratch)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		frames++
	}

	// handshake + login-start + 100 movement packets + 25 action packets
	// (tick_counter runs 1..100 across the loop; action_tick=4 fires on
	// multiples of 4), matching spec.md §8 scenario S4 exactly.
	want := 2 + 100 + 25
	if frames != want {
		t.Fatalf("frames = %d, want %d", frames, want)
	}
}
