package events

import "sync"

// Callback receives any event emitted by a Dispatcher. It must type-switch
// on the event to decide what it cares about.
type Callback func(event any)

// Unsubscribe removes a Dispatcher registration. Safe to call more than
// once.
type Unsubscribe func()

// Dispatcher is a small callback registry: every event type here is a
// fixed, closed set rather than a hierarchical topic space, so dispatch is
// a flat slice scan rather than a topic trie like the one the jangala bus
// package uses for its MQTT-style wildcarded topics.
type Dispatcher struct {
	mu        sync.Mutex
	nextID    uint64
	callbacks []dispatcherEntry
}

type dispatcherEntry struct {
	id       uint64
	callback Callback
}

// Subscribe registers callback for every event Emit is called with. The
// returned Unsubscribe removes the registration.
func (d *Dispatcher) Subscribe(callback Callback) Unsubscribe {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.callbacks = append(d.callbacks, dispatcherEntry{id: id, callback: callback})
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		for i, e := range d.callbacks {
			if e.id == id {
				d.callbacks = append(d.callbacks[:i], d.callbacks[i+1:]...)
				break
			}
		}
	}
}

// Emit delivers event to every current subscriber, in registration order.
func (d *Dispatcher) Emit(event any) {
	d.mu.Lock()
	entries := make([]dispatcherEntry, len(d.callbacks))
	copy(entries, d.callbacks)
	d.mu.Unlock()

	for _, e := range entries {
		e.callback(event)
	}
}
