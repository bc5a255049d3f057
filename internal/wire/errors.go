package wire

import (
	"errors"
	"net"
)

// ErrNotConnected is returned by operations attempted on a closed Conn.
var ErrNotConnected = errors.New("not connected")

// classifyReadError turns a raw net/bufio read error into ErrTimeout when it
// was caused by a deadline, leaving other errors (EOF, connection reset)
// untouched so callers can distinguish timeouts from hard disconnects.
func classifyReadError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return err
}

// ErrTimeout is returned when a read exceeds its configured deadline.
var ErrTimeout = errors.New("read timeout")
