package bot_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-mclib/loadbot/bot"
	"github.com/go-mclib/loadbot/buffer"
	"github.com/go-mclib/loadbot/packets"
	"github.com/go-mclib/loadbot/stats"
)

func newTestBot(id int) *bot.Bot {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return bot.New(id, -1, nil, log, stats.New())
}

func TestHandleLoginDisconnectKicks(t *testing.T) {
	b := newTestBot(0)
	p := buffer.New(32)
	p.WriteString(`{"text":"no"}`)

	b.HandleLogin(packets.LoginDisconnectID, p.Unread())

	if !b.Kicked {
		t.Fatal("expected bot to be kicked")
	}
}

func TestHandleLoginEncryptionRequestKicks(t *testing.T) {
	b := newTestBot(0)
	b.HandleLogin(packets.EncryptionRequestID, nil)

	if !b.Kicked {
		t.Fatal("expected bot to be kicked on encryption request")
	}
}

func TestHandleLoginSuccessTransitionsToPlay(t *testing.T) {
	b := newTestBot(0)
	b.HandleLogin(0x02, nil)

	if b.Phase != bot.PhasePlay {
		t.Fatalf("phase = %v, want play", b.Phase)
	}
}

func TestHandleLoginSetCompressionStoresThreshold(t *testing.T) {
	b := newTestBot(0)
	p := buffer.New(8)
	p.WriteVarInt(256)

	b.HandleLogin(packets.SetCompressionID, p.Unread())

	if b.CompressionThreshold != 256 {
		t.Fatalf("threshold = %d", b.CompressionThreshold)
	}
}

func TestHandleLoginUnknownIDIgnored(t *testing.T) {
	b := newTestBot(0)
	b.HandleLogin(0x7F, nil)

	if b.Kicked {
		t.Fatal("unknown login packet should be ignored, not kick")
	}
}
