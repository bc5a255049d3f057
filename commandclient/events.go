package commandclient

// EventType classifies events delivered to application subscribers.
type EventType int

const (
	// Connected fires once, the first time the event connection comes up.
	Connected EventType = iota
	// Reconnected fires after the event connection drops and comes back.
	Reconnected
	// Disconnected fires whenever the event connection goes down, whether
	// or not a reconnect follows.
	Disconnected
	// StatusEvent carries a parsed "S:" status line.
	StatusEvent
	// EnhancedLogEvent carries a parsed "EL:" event-log line.
	EnhancedLogEvent
)

// Event is the payload delivered to subscribers. Only the fields relevant
// to Tag are populated.
type Event struct {
	Tag EventType

	// StatusType, ID, Args are populated for StatusEvent.
	StatusType string
	ID         int
	Args       []string

	// Log is populated for EnhancedLogEvent.
	Log string
}

// EventCallback receives events matching a subscription's filter.
type EventCallback func(Event)

// Unsubscribe removes a subscription. Safe to call more than once.
type Unsubscribe func()
