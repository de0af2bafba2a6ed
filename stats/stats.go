// Package stats holds the process-wide, in-process atomic counters the
// bot manager updates as it runs. There is no external exporter: a
// snapshot is only ever read back in-process (by the CLI at shutdown, or
// by a test), honoring the Non-goal on persistence and telemetry
// infrastructure while still giving an operator visibility the way the
// teacher exposes a debug *log.Logger rather than a metrics endpoint.
package stats

import "sync/atomic"

// Stats is safe for concurrent use; every worker shares one instance, the
// same way they share the "bots started" admission counter.
type Stats struct {
	BotsConnected atomic.Int64
	BotsKicked    atomic.Int64
	PacketsSent   atomic.Int64
	PacketsRecv   atomic.Int64
}

// New returns a zeroed Stats.
func New() *Stats {
	return &Stats{}
}

// Snapshot is a point-in-time, non-atomic-together copy of Stats' counters
// for logging or a final report.
type Snapshot struct {
	BotsConnected int64
	BotsKicked    int64
	PacketsSent   int64
	PacketsRecv   int64
}

// Snapshot reads the current counter values. Individual fields are read
// atomically but not as a single consistent transaction, which is
// acceptable for an operator-facing summary.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		BotsConnected: s.BotsConnected.Load(),
		BotsKicked:    s.BotsKicked.Load(),
		PacketsSent:   s.PacketsSent.Load(),
		PacketsRecv:   s.PacketsRecv.Load(),
	}
}
