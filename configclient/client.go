package configclient

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/loopj/aiovantage-sub001/internal/vlog"
	"github.com/loopj/aiovantage-sub001/internal/wire"
	"github.com/loopj/aiovantage-sub001/vantageerr"
)

var log = vlog.Get("configclient")

const (
	defaultTLSPort = 2010
	defaultPort    = 2001
	defaultConnTO  = 5 * time.Second
	defaultReadTO  = 60 * time.Second
)

// RawObject is a single <Object>...</Object> wrapper from GetFilterResults/
// GetObject, with its one "choice" child element (e.g. <Load VID="118">...)
// left undecoded. Kind is that child's tag name, used by the objects package
// to pick which concrete type to unmarshal Inner into.
type RawObject struct {
	Kind  string
	Inner []byte
}

// UnmarshalXML implements xml.Unmarshaler, extracting the single choice
// child element's tag name and raw XML from an <Object> wrapper.
func (o *RawObject) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var wrapper struct {
		Inner []byte `xml:",innerxml"`
	}
	if err := d.DecodeElement(&wrapper, &start); err != nil {
		return fmt.Errorf("configclient: decode Object wrapper: %w", err)
	}

	sub := xml.NewDecoder(bytes.NewReader(wrapper.Inner))
	for {
		tok, err := sub.Token()
		if err != nil {
			return fmt.Errorf("configclient: Object wrapper had no choice element: %w", err)
		}
		if child, ok := tok.(xml.StartElement); ok {
			o.Kind = child.Name.Local
			o.Inner = wrapper.Inner
			return nil
		}
	}
}

// Version is the firmware triplet returned by GetVersion.
type Version struct {
	Kernel string `xml:"kernel"`
	Rootfs string `xml:"rootfs"`
	App    string `xml:"app"`
}

// Client talks to a controller's Configuration (ACI) service: a single
// persistent TCP+TLS stream carrying XML-RPC-shaped requests, one at a time.
type Client struct {
	host     string
	username string
	password string
	useTLS   bool
	port     int

	connTimeout time.Duration
	readTimeout time.Duration

	mu       sync.Mutex
	conn     *wire.Conn
	loggedIn bool
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials sets the login username/password, used implicitly on
// first connect when both are non-empty.
func WithCredentials(username, password string) Option {
	return func(c *Client) { c.username, c.password = username, password }
}

// WithTLS overrides the default (TLS enabled, port 2010).
func WithTLS(useTLS bool) Option {
	return func(c *Client) { c.useTLS = useTLS }
}

// WithPort overrides the default port (2010 with TLS, 2001 without).
func WithPort(port int) Option {
	return func(c *Client) { c.port = port }
}

// WithConnTimeout overrides the 5s default dial timeout.
func WithConnTimeout(d time.Duration) Option {
	return func(c *Client) { c.connTimeout = d }
}

// WithReadTimeout overrides the 60s default per-request read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Client) { c.readTimeout = d }
}

// New constructs a Client targeting host. No connection is opened until the
// first request.
func New(host string, opts ...Option) *Client {
	c := &Client{
		host:        host,
		useTLS:      true,
		connTimeout: defaultConnTO,
		readTimeout: defaultReadTO,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close closes the underlying connection, if one is open.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Client) closeLocked() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.loggedIn = false
	return err
}

// getConn returns the current connection, opening (and logging in on) a new
// one if necessary. Must be called with c.mu held.
func (c *Client) getConn(ctx context.Context) (*wire.Conn, error) {
	if c.conn != nil && !c.conn.Closed() {
		return c.conn, nil
	}

	port := c.port
	if port == 0 {
		port = defaultPort
		if c.useTLS {
			port = defaultTLSPort
		}
	}

	conn, err := wire.Dial(c.host, wire.Options{
		UseTLS:      c.useTLS,
		Port:        port,
		ConnTimeout: c.connTimeout,
		ReadTimeout: c.readTimeout,
		BufferLimit: wire.DefaultBufferLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("configclient: %w", err)
	}
	c.conn = conn
	log.Infof("connected to %s", c.host)

	if c.username != "" && c.password != "" {
		if err := c.loginLocked(ctx); err != nil {
			_ = c.closeLocked()
			return nil, err
		}
	}

	return c.conn, nil
}

// rawRequest sends <iface><method>call</method></iface> and returns the raw
// bytes up to and including the closing "</iface>\n" terminator. Callers
// must hold c.mu.
func (c *Client) rawRequest(ctx context.Context, iface, method string, call any) ([]byte, error) {
	conn, err := c.getConn(ctx)
	if err != nil {
		return nil, err
	}

	request, err := buildRequest(iface, method, call)
	if err != nil {
		return nil, err
	}
	log.Debugf("-> %s", request)

	if err := conn.Write(request); err != nil {
		return nil, fmt.Errorf("configclient: %w: %w", vantageerr.ErrConnection, err)
	}

	response, err := conn.ReadUntil([]byte("</" + iface + ">\n"))
	if err != nil {
		if errors.Is(err, wire.ErrTimeout) {
			return nil, fmt.Errorf("configclient: %w", vantageerr.ErrTimeout)
		}
		return nil, fmt.Errorf("configclient: %w: %w", vantageerr.ErrConnection, err)
	}
	log.Debugf("<- %s", response)

	return []byte(response), nil
}

// request sends a method call and unmarshals its <method> response element
// into dst. iface must be the Configuration interface name, e.g.
// "IConfiguration" or "IIntrospection".
func (c *Client) request(ctx context.Context, iface, method string, call, dst any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	response, err := c.rawRequest(ctx, iface, method, call)
	if err != nil {
		return err
	}
	return extractMethod(response, iface, method, dst)
}

func (c *Client) loginLocked(ctx context.Context) error {
	type loginCall struct {
		User     string `xml:"call>User"`
		Password string `xml:"call>Password"`
	}
	type loginReturn struct {
		Return bool `xml:"return"`
	}

	var result loginReturn
	response, err := c.rawRequest(ctx, "ILogin", "Login", loginCall{User: c.username, Password: c.password})
	if err != nil {
		return err
	}
	if err := extractMethod(response, "ILogin", "Login", &result); err != nil {
		return err
	}
	if !result.Return {
		return fmt.Errorf("configclient: login: %w", vantageerr.ErrLoginFailed)
	}

	c.loggedIn = true
	log.Info("login successful")
	return nil
}
