// Package commandclient implements the Host Command line-protocol client:
// short-lived per-call command connections, a long-lived event connection
// carrying S:/EL: events and subscription management, and reconnect with
// subscription replay.
package commandclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/loopj/aiovantage-sub001/converter"
	"github.com/loopj/aiovantage-sub001/internal/vlog"
	"github.com/loopj/aiovantage-sub001/internal/wire"
	"github.com/loopj/aiovantage-sub001/vantageerr"
)

var log = vlog.Get("commandclient")

// conn is a single Host Command socket: a read loop classifies each line as
// a reply-block line (accumulated until an "R:" terminator) or an event
// line ("S:"/"EL:", routed to a separate channel so a command() call
// in flight doesn't block event delivery and vice versa).
type conn struct {
	wc *wire.Conn

	responseCh chan []string
	eventCh    chan string
	closed     chan struct{}
	closeErr   error
}

func dialConn(host string, port int, useTLS bool, connTimeout, readTimeout time.Duration) (*conn, error) {
	wc, err := wire.Dial(host, wire.Options{
		UseTLS:      useTLS,
		Port:        port,
		ConnTimeout: connTimeout,
		ReadTimeout: readTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("commandclient: %w", err)
	}

	c := &conn{
		wc:         wc,
		responseCh: make(chan []string),
		eventCh:    make(chan string, 64),
		closed:     make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

func (c *conn) readLoop() {
	var pending []string
	for {
		line, err := c.wc.ReadLine()
		if err != nil {
			c.closeErr = err
			close(c.closed)
			close(c.eventCh)
			return
		}

		switch {
		case strings.HasPrefix(line, "R:"):
			pending = append(pending, line)
			resp := pending
			pending = nil
			select {
			case c.responseCh <- resp:
			case <-c.closed:
				return
			}
		case strings.HasPrefix(line, "S:"), strings.HasPrefix(line, "EL:"):
			select {
			case c.eventCh <- line:
			case <-c.closed:
				return
			}
		default:
			pending = append(pending, line)
		}
	}
}

// Close closes the underlying socket, ending the read loop.
func (c *conn) Close() error {
	return c.wc.Close()
}

// rawRequest writes a single CRLF-terminated line and waits for the next
// reply block (the lines up to and including the next "R:" line).
func (c *conn) rawRequest(ctx context.Context, request string) ([]string, error) {
	if err := c.wc.Write(request + "\r\n"); err != nil {
		return nil, fmt.Errorf("commandclient: %w: %w", vantageerr.ErrConnection, err)
	}

	select {
	case resp := <-c.responseCh:
		return resp, nil
	case <-c.closed:
		return nil, fmt.Errorf("commandclient: %w: %w", vantageerr.ErrConnection, c.closeErr)
	case <-ctx.Done():
		// Per spec, a canceled wait does not resynchronize the stream: the
		// connection must be closed rather than reused.
		_ = c.Close()
		return nil, ctx.Err()
	}
}

// command sends a command with its already-encoded parameters and returns
// the tokenized arguments of the "R:" line, after checking it for an error
// reply and for out-of-order replies.
func (c *conn) command(ctx context.Context, command string, params ...string) ([]string, error) {
	request := command
	if len(params) > 0 {
		request = command + " " + strings.Join(params, " ")
	}

	lines, err := c.rawRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	reply := lines[len(lines)-1]
	tokens := converter.Tokenize(reply)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("commandclient: %w: empty reply to %q", vantageerr.ErrResponse, command)
	}

	head, args := tokens[0], tokens[1:]
	if strings.HasPrefix(head, "R:ERROR:") {
		code, codeErr := parseErrorCode(head)
		message := ""
		if len(args) > 0 {
			message = args[0]
		}
		if codeErr != nil {
			return nil, fmt.Errorf("commandclient: %w: %s", vantageerr.ErrResponse, head)
		}
		return nil, vantageerr.NewCommandError(code, message)
	}

	if want := "R:" + strings.ToUpper(command); head != want {
		return nil, fmt.Errorf("commandclient: %w: expected %q, got %q", vantageerr.ErrResponse, want, head)
	}

	return args, nil
}

func parseErrorCode(head string) (int, error) {
	parts := strings.SplitN(head, ":", 3)
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed error reply %q", head)
	}
	var code int
	if _, err := fmt.Sscanf(parts[2], "%d", &code); err != nil {
		return 0, err
	}
	return code, nil
}
