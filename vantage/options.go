package vantage

import "time"

// Option configures a Client, mirroring configclient/commandclient's own
// functional-option pattern so both underlying connections share a single
// configuration surface.
type Option func(*config)

type config struct {
	username    string
	password    string
	useTLS      bool
	configPort  int
	commandPort int
	connTimeout time.Duration
	readTimeout time.Duration
}

// WithCredentials sets the login username/password used for both the
// config and command client connections.
func WithCredentials(username, password string) Option {
	return func(c *config) { c.username, c.password = username, password }
}

// WithTLS overrides the default (TLS enabled, the 2010/3010 port pair).
func WithTLS(useTLS bool) Option {
	return func(c *config) { c.useTLS = useTLS }
}

// WithConfigPort overrides the config client's port.
func WithConfigPort(port int) Option {
	return func(c *config) { c.configPort = port }
}

// WithCommandPort overrides the command client's port.
func WithCommandPort(port int) Option {
	return func(c *config) { c.commandPort = port }
}

// WithConnTimeout overrides the default dial timeout for both connections.
func WithConnTimeout(d time.Duration) Option {
	return func(c *config) { c.connTimeout = d }
}

// WithReadTimeout overrides the default per-request read timeout for both
// connections.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) { c.readTimeout = d }
}
