// Package manager implements the per-worker bot manager event loop:
// admission, connection registration, readiness polling, frame dispatch,
// the action phase, and tick pacing, per spec.md §4.5.
package manager

// Event reports which interests fired for a registered file descriptor.
type Event struct {
	Token     int
	Readable  bool
	Writable  bool
	HangupErr bool
}

// Poller is the readiness-based multiplexer a worker polls once per tick.
// The live implementation (poller_linux.go) wraps golang.org/x/sys/unix
// epoll, the idiomatic Go analogue of the original's mio::Poll — see
// SPEC_FULL.md §4.5 for why epoll was chosen over any pack example's
// approach (none perform raw readiness polling). poller_other.go supplies
// a build-tag-gated stub for non-Linux platforms so the rest of the module
// still compiles and unit-tests there.
type Poller interface {
	// Register adds fd to the poller with both read and write interest,
	// identified by token for event dispatch.
	Register(fd int, token int) error

	// Deregister removes fd from the poller. Called once per bot, on
	// removal, per spec.md §3's invariant that registration and
	// deregistration coincide with map membership.
	Deregister(fd int) error

	// Wait blocks up to timeoutMillis for at least one ready descriptor,
	// appending events to the poller's internal event buffer and
	// returning a slice of the events observed this call.
	Wait(timeoutMillis int) ([]Event, error)

	// Close releases the poller's underlying resources.
	Close() error
}
