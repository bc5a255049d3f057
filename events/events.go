// Package events defines the application-level events a vantage.Client
// emits: connection lifecycle, raw status/log traffic, and object
// lifecycle/change notifications, grounded on command_client/events.py's
// EventType catalog plus the object add/update/delete callbacks
// _controllers/base.py emits during Initialize/FetchState.
package events

import "github.com/loopj/aiovantage-sub001/objects"

// Connected fires once the config and command client connections are both
// established for the first time.
type Connected struct{}

// Reconnected fires after the command client's event connection drops and
// comes back up.
type Reconnected struct{}

// Disconnected fires whenever the command client's event connection goes
// down. The vantage facade always emits it with a nil Err: the command
// client's Disconnected event carries no error.
type Disconnected struct {
	Err error
}

// StatusReceived carries a raw "S:<category>" status line, before it has
// been parsed against any particular object.
type StatusReceived struct {
	Category string
	VID      objects.VID
	Args     []string
}

// EnhancedLogReceived carries a raw "EL:" event-log line.
type EnhancedLogReceived struct {
	Log string
}

// ObjectAdded fires when a controller's Initialize discovers a new object.
type ObjectAdded struct {
	Object objects.Object
}

// ObjectUpdated fires when FetchState or a status event changes one or
// more of an object's fields. ChangedFields names them.
type ObjectUpdated struct {
	Object        objects.Object
	ChangedFields []string
}

// ObjectDeleted fires when a controller's Initialize no longer sees a
// previously known VID in the config client's object stream.
type ObjectDeleted struct {
	Object objects.Object
}
