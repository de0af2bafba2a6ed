//go:build linux

package manager

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// epollPoller is a thin wrapper around a Linux epoll instance. Not safe
// for concurrent use; each worker owns one.
type epollPoller struct {
	fd     int
	events []unix.EpollEvent
}

// NewPoller returns an epoll-backed Poller.
func NewPoller() (Poller, error) {
	fd, err := unix.EpollCreate1(0)
	if err != nil {
		return nil, fmt.Errorf("manager: epoll_create1: %w", err)
	}
	return &epollPoller{
		fd:     fd,
		events: make([]unix.EpollEvent, 1024),
	}, nil
}

func (p *epollPoller) Register(fd int, token int) error {
	ev := unix.EpollEvent{
		Events: unix.EPOLLIN | unix.EPOLLOUT,
		Fd:     int32(token),
	}
	if err := unix.EpollCtl(p.fd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return fmt.Errorf("manager: epoll_ctl add: %w", err)
	}
	return nil
}

func (p *epollPoller) Deregister(fd int) error {
	if err := unix.EpollCtl(p.fd, unix.EPOLL_CTL_DEL, fd, nil); err != nil {
		return fmt.Errorf("manager: epoll_ctl del: %w", err)
	}
	return nil
}

func (p *epollPoller) Wait(timeoutMillis int) ([]Event, error) {
	n, err := unix.EpollWait(p.fd, p.events, timeoutMillis)
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, fmt.Errorf("manager: epoll_wait: %w", err)
	}

	out := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		raw := p.events[i]
		out = append(out, Event{
			Token:     int(raw.Fd),
			Readable:  raw.Events&unix.EPOLLIN != 0,
			Writable:  raw.Events&unix.EPOLLOUT != 0,
			HangupErr: raw.Events&(unix.EPOLLHUP|unix.EPOLLERR) != 0,
		})
	}
	return out, nil
}

func (p *epollPoller) Close() error {
	return unix.Close(p.fd)
}
