// Package wire provides the shared TCP+TLS connection used by both the
// Config and Command protocol clients: dialing, the controller's relaxed
// TLS policy, and deadline-aware buffered reads.
package wire

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"net"
	"time"
)

// DefaultBufferLimit is the minimum read buffer size required to accommodate
// large Configuration XML payloads (spec: buffer limit >= 1 MiB).
const DefaultBufferLimit = 1 << 20

// Options configures a Conn.
type Options struct {
	// UseTLS wraps the connection in TLS when true.
	UseTLS bool
	// Port overrides the default port for the given UseTLS setting; 0 means
	// "use the caller's default".
	Port int
	// ConnTimeout bounds the dial. Zero means no timeout.
	ConnTimeout time.Duration
	// ReadTimeout bounds each read. Zero means no timeout.
	ReadTimeout time.Duration
	// BufferLimit sizes the read buffer. Zero means DefaultBufferLimit.
	BufferLimit int
}

// Conn wraps a single TCP (optionally TLS) stream with buffered, deadline
// aware line and delimiter reads. It does not retry or reconnect; callers
// (configclient, commandclient) own reconnection policy.
type Conn struct {
	host        string
	port        int
	readTimeout time.Duration
	netConn     net.Conn
	reader      *bufio.Reader
}

// Dial opens a TCP connection to host:port, optionally TLS-wrapped with the
// relaxed policy Vantage controllers require: hostname and certificate
// verification are disabled, since controllers present self-signed
// certificates and are usually addressed by IP.
func Dial(host string, opts Options) (*Conn, error) {
	port := opts.Port
	if port == 0 {
		return nil, fmt.Errorf("wire: dial %s: no port configured", host)
	}

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	dialer := net.Dialer{Timeout: opts.ConnTimeout}

	var netConn net.Conn
	var err error
	if opts.UseTLS {
		netConn, err = tls.DialWithDialer(&dialer, "tcp", addr, &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // controllers present self-signed certs on IP endpoints
		})
	} else {
		netConn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("wire: dial %s: %w", addr, err)
	}

	bufLimit := opts.BufferLimit
	if bufLimit == 0 {
		bufLimit = DefaultBufferLimit
	}

	return &Conn{
		host:        host,
		port:        port,
		readTimeout: opts.ReadTimeout,
		netConn:     netConn,
		reader:      bufio.NewReaderSize(netConn, bufLimit),
	}, nil
}

// Close closes the underlying socket. Safe to call multiple times.
func (c *Conn) Close() error {
	if c.netConn == nil {
		return nil
	}
	err := c.netConn.Close()
	c.netConn = nil
	return err
}

// Closed reports whether the connection has been closed.
func (c *Conn) Closed() bool {
	return c.netConn == nil
}

// Host returns the connection's target host.
func (c *Conn) Host() string { return c.host }

// Port returns the connection's target port.
func (c *Conn) Port() int { return c.port }

// Write sends a raw string, applying no framing.
func (c *Conn) Write(message string) error {
	if c.Closed() {
		return fmt.Errorf("wire: write to %s: %w", c.host, ErrNotConnected)
	}

	if _, err := c.netConn.Write([]byte(message)); err != nil {
		return fmt.Errorf("wire: write to %s: %w", c.host, err)
	}
	return nil
}

// ReadUntil reads bytes until the given delimiter byte sequence has been
// seen, applying the connection's read timeout. Used by the Config client to
// read up to the closing "</Interface>\n" terminator.
func (c *Conn) ReadUntil(delim []byte) (string, error) {
	if c.Closed() {
		return "", fmt.Errorf("wire: read from %s: %w", c.host, ErrNotConnected)
	}

	c.applyReadDeadline()

	var buf []byte
	for {
		chunk, err := c.reader.ReadBytes(delim[len(delim)-1])
		if err != nil {
			return "", fmt.Errorf("wire: read from %s: %w", c.host, classifyReadError(err))
		}
		buf = append(buf, chunk...)
		if len(buf) >= len(delim) && string(buf[len(buf)-len(delim):]) == string(delim) {
			return string(buf), nil
		}
	}
}

// ReadLine reads a single line terminated by "\r\n", with the terminator
// stripped, applying the connection's read timeout. Used by the Command
// client's line protocol.
func (c *Conn) ReadLine() (string, error) {
	if c.Closed() {
		return "", fmt.Errorf("wire: read from %s: %w", c.host, ErrNotConnected)
	}

	c.applyReadDeadline()

	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("wire: read from %s: %w", c.host, classifyReadError(err))
	}

	line = trimCRLF(line)
	return line, nil
}

func (c *Conn) applyReadDeadline() {
	if c.readTimeout > 0 {
		_ = c.netConn.SetReadDeadline(time.Now().Add(c.readTimeout))
	} else {
		_ = c.netConn.SetReadDeadline(time.Time{})
	}
}

func trimCRLF(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
