package commandclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/loopj/aiovantage-sub001/converter"
	"github.com/loopj/aiovantage-sub001/vantageerr"
)

const (
	defaultTLSPort = 3010
	defaultPort    = 3001
	defaultConnTO  = 5 * time.Second
	defaultReadTO  = 10 * time.Second
	reconnectDelay = 5 * time.Second
)

// Client talks to a controller's Host Command service: ad-hoc commands over
// short-lived per-call connections, plus a long-lived event connection that
// owns the S:/EL: stream and all subscription management.
type Client struct {
	host     string
	username string
	password string
	useTLS   bool
	port     int

	connTimeout time.Duration
	readTimeout time.Duration

	mu           sync.Mutex
	subs         []subscription
	nextSubID    uint64
	statusCounts map[string]int
	objectCounts map[int]int
	logCounts    map[string]int

	eventConn     *conn
	handlerDone   chan struct{}
	connectSignal chan struct{}
	stopped       bool
	stopCh        chan struct{}
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials sets the login username/password, sent via LOGIN on every
// new connection (command or event) when both are non-empty.
func WithCredentials(username, password string) Option {
	return func(c *Client) { c.username, c.password = username, password }
}

// WithTLS overrides the default (TLS enabled, port 3010).
func WithTLS(useTLS bool) Option {
	return func(c *Client) { c.useTLS = useTLS }
}

// WithPort overrides the default port (3010 with TLS, 3001 without).
func WithPort(port int) Option {
	return func(c *Client) { c.port = port }
}

// WithConnTimeout overrides the 5s default dial timeout.
func WithConnTimeout(d time.Duration) Option {
	return func(c *Client) { c.connTimeout = d }
}

// WithReadTimeout overrides the 10s default per-command read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Client) { c.readTimeout = d }
}

// New constructs a Client targeting host. The event connection is not
// opened until the first Subscribe* call.
func New(host string, opts ...Option) *Client {
	c := &Client{
		host:          host,
		useTLS:        true,
		connTimeout:   defaultConnTO,
		readTimeout:   defaultReadTO,
		statusCounts:  make(map[string]int),
		objectCounts:  make(map[int]int),
		logCounts:     make(map[string]int),
		connectSignal: make(chan struct{}),
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) resolvePort() int {
	if c.port != 0 {
		return c.port
	}
	if c.useTLS {
		return defaultTLSPort
	}
	return defaultPort
}

// Close stops the event handler and closes any open connections. Safe to
// call even if no Subscribe* call was ever made.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return nil
	}
	c.stopped = true
	close(c.stopCh)
	eventConn := c.eventConn
	handlerDone := c.handlerDone
	c.mu.Unlock()

	if eventConn != nil {
		_ = eventConn.Close()
	}
	if handlerDone != nil {
		<-handlerDone
	}
	return nil
}

// createConnection opens a fresh connection and logs in if credentials are
// configured, mirroring the original's per-connection LOGIN.
func (c *Client) createConnection(ctx context.Context) (*conn, error) {
	cn, err := dialConn(c.host, c.resolvePort(), c.useTLS, c.connTimeout, c.readTimeout)
	if err != nil {
		return nil, err
	}

	if c.username != "" && c.password != "" {
		if _, err := cn.command(ctx, "LOGIN", converter.EncodeString(c.username), converter.EncodeString(c.password)); err != nil {
			_ = cn.Close()
			return nil, fmt.Errorf("commandclient: login: %w", err)
		}
	}

	return cn, nil
}

// Command sends command with its pre-encoded parameters over a fresh
// per-call connection, closing it afterward, and returns the tokenized
// arguments of the "R:" reply line.
func (c *Client) Command(ctx context.Context, command string, params ...string) ([]string, error) {
	cn, err := c.createConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer cn.Close()

	return cn.command(ctx, command, params...)
}

// Invoke calls INVOKE <vid> <interfaceMethod> [args...], the generic RPC
// used by the capability interfaces to call an object method, and returns
// the full reply arguments with the echoed vid still at index 0. A
// returned value, when the method has one, always sits at index 1
// regardless of where the interface/method name itself echoes back
// (immediately after it for "get"-style calls, later for "set"-style calls
// that echo their parameters) -- callers that want it index into [1]
// themselves, matching the original client's CommandResponse.args.
func (c *Client) Invoke(ctx context.Context, vid int, interfaceMethod string, args ...string) ([]string, error) {
	params := append([]string{converter.EncodeInt(vid), interfaceMethod}, args...)
	result, err := c.Command(ctx, "INVOKE", params...)
	if err != nil {
		return nil, fmt.Errorf("commandclient: invoke %s on %d: %w", interfaceMethod, vid, err)
	}
	if len(result) < 2 {
		return nil, fmt.Errorf("commandclient: invoke %s on %d: %w: short reply", interfaceMethod, vid, vantageerr.ErrResponse)
	}
	return result, nil
}
