// Command mc-loadbot opens many simulated Minecraft Java Edition player
// connections against a server and drives them through login into Play
// state, emitting randomized gameplay traffic to load-test the server.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-mclib/loadbot/manager"
	"github.com/go-mclib/loadbot/stats"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "mc-loadbot:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("mc-loadbot", flag.ContinueOnError)
	actionTick := fs.Int("action-tick", 4, "ticks between randomized gameplay packets per bot")
	verbose := fs.Bool("v", false, "enable debug logging")
	auth := fs.Bool("auth", false, "authenticate against an online-mode server (unsupported)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *auth {
		return fmt.Errorf("-auth: online-mode authentication is not implemented; this module only drives offline-mode servers (see identity package, DESIGN.md)")
	}

	rest := fs.Args()
	if len(rest) < 2 || len(rest) > 3 {
		return fmt.Errorf("usage: mc-loadbot [-action-tick N] [-v] <target> <count> [threads]")
	}

	targetAddr := rest[0]
	count, err := parseInt(rest[1], "count")
	if err != nil {
		return err
	}

	threads := runtime.NumCPU()
	if len(rest) == 3 {
		threads, err = parseInt(rest[2], "threads")
		if err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	target, err := manager.ParseTarget(targetAddr)
	if err != nil {
		return fmt.Errorf("resolving target: %w", err)
	}

	fmt.Printf("effective threads: %d\n", threads)

	st := stats.New()
	botsStarted := &atomic.Int64{}

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		poller, err := manager.NewPoller()
		if err != nil {
			return fmt.Errorf("worker %d: creating poller: %w", w, err)
		}

		wg.Add(1)
		go func(workerID int, poller manager.Poller) {
			defer wg.Done()
			defer poller.Close()

			m := manager.New(manager.Config{
				WorkerID:     workerID,
				Target:       count,
				BotsStarted:  botsStarted,
				BotsPerTick:  1,
				ActionTick:   *actionTick,
				TickDuration: 50 * time.Millisecond,
				Log:          log.With("worker", workerID),
				Stats:        st,
				Dial:         manager.NewDialer(target),
			}, poller)
			m.Run()
		}(w, poller)
	}
	wg.Wait()

	snap := st.Snapshot()
	fmt.Printf("bots connected: %d, bots kicked: %d, packets sent: %d, packets received: %d\n",
		snap.BotsConnected, snap.BotsKicked, snap.PacketsSent, snap.PacketsRecv)

	return nil
}

func parseInt(s, field string) (int, error) {
	var v int
	_, err := fmt.Sscanf(s, "%d", &v)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", field, s)
	}
	return v, nil
}
