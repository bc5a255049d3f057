package objects

import "github.com/loopj/aiovantage-sub001/commandclient"

// client is embedded (not promoted) by Base so every concrete object can
// call its capability methods without the controller package having to
// pass a command client into every accessor call by hand. The controller
// sets it once via BindClient when an object is added to its set.
type client struct {
	cc *commandclient.Client
}

// BindClient attaches the command client an object's capability accessors
// use. Called by controller.Base when populating its set; not meant to be
// called from user code.
func (b *Base) BindClient(cc *commandclient.Client) { b.client.cc = cc }

// Client returns the bound command client, or nil if the object hasn't
// been attached to a controller yet.
func (b *Base) Client() *commandclient.Client { return b.client.cc }
