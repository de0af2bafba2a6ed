package manager

import "github.com/go-mclib/loadbot/bot"

// NewDialer returns a Dialer that opens a fresh non-blocking connection to
// t for each new bot id, the production counterpart to the fakes tests
// inject in place of a real socket.
func NewDialer(t Target) Dialer {
	return func(id int) (int, bot.Conn, error) {
		var sock *bot.Socket
		var err error
		if t.Unix {
			sock, err = bot.DialUnixNonblocking(t.Path)
		} else {
			sock, err = bot.DialTCPNonblocking(t.IP, t.Port)
		}
		if err != nil {
			return 0, nil, err
		}
		return sock.FD, sock, nil
	}
}
