package vantage

import (
	"testing"
	"time"
)

func TestOptionsApplyToConfig(t *testing.T) {
	c := &config{useTLS: true}
	opts := []Option{
		WithCredentials("admin", "hunter2"),
		WithTLS(false),
		WithConfigPort(2001),
		WithCommandPort(3001),
		WithConnTimeout(2 * time.Second),
		WithReadTimeout(30 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.username != "admin" || c.password != "hunter2" {
		t.Errorf("credentials = %q/%q, want admin/hunter2", c.username, c.password)
	}
	if c.useTLS {
		t.Errorf("useTLS = true, want false after WithTLS(false)")
	}
	if c.configPort != 2001 {
		t.Errorf("configPort = %d, want 2001", c.configPort)
	}
	if c.commandPort != 3001 {
		t.Errorf("commandPort = %d, want 3001", c.commandPort)
	}
	if c.connTimeout != 2*time.Second {
		t.Errorf("connTimeout = %v, want 2s", c.connTimeout)
	}
	if c.readTimeout != 30*time.Second {
		t.Errorf("readTimeout = %v, want 30s", c.readTimeout)
	}
}

func TestOptionsDefaultToZeroValue(t *testing.T) {
	c := &config{}
	if c.username != "" || c.password != "" || c.useTLS || c.configPort != 0 || c.commandPort != 0 {
		t.Errorf("unconfigured config is not zero-valued: %+v", c)
	}
}
