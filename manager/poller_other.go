//go:build !linux

package manager

import "errors"

// ErrUnsupportedPlatform is returned by NewPoller on platforms without an
// epoll-backed implementation. The live event loop targets Linux, matching
// the load-test CI/infrastructure this module is meant to run against; see
// SPEC_FULL.md §4.5.
var ErrUnsupportedPlatform = errors.New("manager: live poller requires linux")

// NewPoller always fails on non-Linux platforms.
func NewPoller() (Poller, error) {
	return nil, ErrUnsupportedPlatform
}
