package bot

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrWouldBlock reports that a non-blocking read or write had no data
// ready; the caller should stop draining for this bot and wait for the
// next readiness event rather than retry in a loop.
var ErrWouldBlock = errors.New("bot: operation would block")

// Socket is a non-blocking TCP or Unix domain socket, owned directly via
// its file descriptor rather than through net.Conn. The Go runtime's own
// netpoller already multiplexes net.Conn internally, which would fight
// with this module's own epoll instance (see manager.Poller) for
// ownership of the same descriptor; dialing and reading the socket
// through golang.org/x/sys/unix instead — the same package mio itself
// wraps on Linux — gives this module sole control of the fd's readiness,
// matching the single readiness-based event loop per worker spec.md §1
// requires.
type Socket struct {
	FD int
}

// DialTCPNonblocking opens a non-blocking IPv4 TCP socket and begins an
// asynchronous connect; completion is observed as the socket's first
// writable event once registered with a Poller.
func DialTCPNonblocking(ip [4]byte, port int) (*Socket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, fmt.Errorf("bot: socket: %w", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("bot: set nonblock: %w", err)
	}

	sa := &unix.SockaddrInet4{Addr: ip, Port: port}
	if err := unix.Connect(fd, sa); err != nil && err != unix.EINPROGRESS {
		unix.Close(fd)
		return nil, fmt.Errorf("bot: connect: %w", err)
	}
	return &Socket{FD: fd}, nil
}

// DialUnixNonblocking opens a non-blocking Unix domain stream socket and
// begins an asynchronous connect to path.
func DialUnixNonblocking(path string) (*Socket, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, fmt.Errorf("bot: socket: %w", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("bot: set nonblock: %w", err)
	}

	sa := &unix.SockaddrUnix{Name: path}
	if err := unix.Connect(fd, sa); err != nil && err != unix.EINPROGRESS {
		unix.Close(fd)
		return nil, fmt.Errorf("bot: connect: %w", err)
	}
	return &Socket{FD: fd}, nil
}

// Read fills p from the socket, returning ErrWouldBlock instead of 0, nil
// when no data is currently available.
func (s *Socket) Read(p []byte) (int, error) {
	n, err := unix.Read(s.FD, p)
	if err != nil {
		if err == unix.EAGAIN {
			return 0, ErrWouldBlock
		}
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("bot: read: %w", errClosed)
	}
	return n, nil
}

// Write sends p over the socket, returning ErrWouldBlock if the kernel
// send buffer is currently full. Per spec.md §9's short-write note, a
// partial write's unsent remainder is the caller's responsibility to
// requeue; see Bot.Outbound.
func (s *Socket) Write(p []byte) (int, error) {
	n, err := unix.Write(s.FD, p)
	if err != nil {
		if err == unix.EAGAIN {
			return 0, ErrWouldBlock
		}
		return 0, err
	}
	return n, nil
}

// Close releases the socket's file descriptor.
func (s *Socket) Close() error {
	return unix.Close(s.FD)
}

var errClosed = errors.New("connection closed by peer")
