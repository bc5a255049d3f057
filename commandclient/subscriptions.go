package commandclient

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/loopj/aiovantage-sub001/converter"
)

// maxAddStatusBatch is the largest number of VIDs sent in a single ADDSTATUS
// command.
const maxAddStatusBatch = 16

type subscription struct {
	id       uint64
	callback EventCallback
	types    map[EventType]bool // nil means "all types"
}

func (s subscription) matches(e Event) bool {
	return s.types == nil || s.types[e.Tag]
}

// Subscribe registers callback for events, optionally restricted to the
// given types (no types means every event). The returned Unsubscribe
// removes the registration; it does not touch any STATUS/ADDSTATUS/ELLOG
// reference counts, since those are tracked independently by
// SubscribeStatus/SubscribeObjects/SubscribeEnhancedLog.
func (c *Client) Subscribe(callback EventCallback, types ...EventType) Unsubscribe {
	var filter map[EventType]bool
	if len(types) > 0 {
		filter = make(map[EventType]bool, len(types))
		for _, t := range types {
			filter[t] = true
		}
	}

	c.mu.Lock()
	c.nextSubID++
	sub := subscription{id: c.nextSubID, callback: callback, types: filter}
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == sub.id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				break
			}
		}
	}
}

func (c *Client) emit(e Event) {
	c.mu.Lock()
	subs := make([]subscription, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, sub := range subs {
		if sub.matches(e) {
			sub.callback(e)
		}
	}
}

// handleEventLine parses a raw S:/EL: line and emits the corresponding
// Event to subscribers.
func (c *Client) handleEventLine(line string) {
	switch {
	case strings.HasPrefix(line, "S:"):
		tokens := converter.Tokenize(line)
		if len(tokens) < 2 {
			log.Warningf("malformed status event: %q", line)
			return
		}
		statusType := strings.TrimPrefix(tokens[0], "S:")
		id, err := strconv.Atoi(tokens[1])
		if err != nil {
			log.Warningf("malformed status event id: %q", line)
			return
		}
		c.emit(Event{
			Tag:        StatusEvent,
			StatusType: statusType,
			ID:         id,
			Args:       tokens[2:],
		})
	case strings.HasPrefix(line, "EL:"):
		c.emit(Event{
			Tag: EnhancedLogEvent,
			Log: strings.TrimSpace(strings.TrimPrefix(line, "EL:")),
		})
	}
}

// SubscribeStatus subscribes to "S:" status events for the given status
// categories (e.g. "LOAD", "BLIND", "TASK"), sending "STATUS <category>" on
// the event connection for any category transitioning from unsubscribed.
func (c *Client) SubscribeStatus(ctx context.Context, callback EventCallback, statusTypes ...string) (Unsubscribe, error) {
	cn, err := c.ensureEventHandler(ctx)
	if err != nil {
		return nil, err
	}

	unsub := c.Subscribe(func(e Event) {
		if e.Tag != StatusEvent {
			return
		}
		for _, t := range statusTypes {
			if t == e.StatusType {
				callback(e)
				return
			}
		}
	}, StatusEvent)

	c.mu.Lock()
	var toSend []string
	for _, t := range statusTypes {
		c.statusCounts[t]++
		if c.statusCounts[t] == 1 {
			toSend = append(toSend, t)
		}
	}
	c.mu.Unlock()

	for _, t := range toSend {
		if _, err := cn.command(ctx, "STATUS", t); err != nil {
			return nil, fmt.Errorf("commandclient: subscribe status %s: %w", t, err)
		}
	}

	return func() {
		c.mu.Lock()
		for _, t := range statusTypes {
			c.statusCounts[t]--
			if c.statusCounts[t] <= 0 {
				delete(c.statusCounts, t)
			}
		}
		c.mu.Unlock()
		unsub()
	}, nil
}

// SubscribeObjects subscribes to "S:" status events for the given object
// VIDs, sending "ADDSTATUS <vid>..." (batched to maxAddStatusBatch VIDs per
// command) for any VID transitioning from unsubscribed, and "DELSTATUS"
// when a VID's count returns to zero.
func (c *Client) SubscribeObjects(ctx context.Context, callback EventCallback, vids ...int) (Unsubscribe, error) {
	cn, err := c.ensureEventHandler(ctx)
	if err != nil {
		return nil, err
	}

	vidSet := make(map[int]bool, len(vids))
	for _, v := range vids {
		vidSet[v] = true
	}

	unsub := c.Subscribe(func(e Event) {
		if e.Tag != StatusEvent || !vidSet[e.ID] {
			return
		}
		callback(e)
	}, StatusEvent)

	c.mu.Lock()
	var toAdd []int
	for _, v := range vids {
		c.objectCounts[v]++
		if c.objectCounts[v] == 1 {
			toAdd = append(toAdd, v)
		}
	}
	c.mu.Unlock()

	for _, batch := range batchInts(toAdd, maxAddStatusBatch) {
		if _, err := cn.command(ctx, "ADDSTATUS", encodeInts(batch)...); err != nil {
			return nil, fmt.Errorf("commandclient: subscribe objects %v: %w", batch, err)
		}
	}

	return func() {
		c.mu.Lock()
		var toRemove []int
		for _, v := range vids {
			c.objectCounts[v]--
			if c.objectCounts[v] <= 0 {
				delete(c.objectCounts, v)
				toRemove = append(toRemove, v)
			}
		}
		c.mu.Unlock()

		for _, v := range toRemove {
			if _, err := cn.command(context.Background(), "DELSTATUS", converter.EncodeInt(v)); err != nil {
				log.Warningf("unsubscribe object %d: %v", v, err)
			}
		}
		unsub()
	}, nil
}

// SubscribeEnhancedLog subscribes to "EL:" events for the given log types,
// sending "ELENABLE <type> ON" then "ELLOG <type> ON" for any type
// transitioning from unsubscribed, and "ELLOG <type> OFF" when its count
// returns to zero.
func (c *Client) SubscribeEnhancedLog(ctx context.Context, callback EventCallback, logTypes ...string) (Unsubscribe, error) {
	cn, err := c.ensureEventHandler(ctx)
	if err != nil {
		return nil, err
	}

	unsub := c.Subscribe(func(e Event) {
		if e.Tag == EnhancedLogEvent {
			callback(e)
		}
	}, EnhancedLogEvent)

	c.mu.Lock()
	var toEnable []string
	for _, t := range logTypes {
		c.logCounts[t]++
		if c.logCounts[t] == 1 {
			toEnable = append(toEnable, t)
		}
	}
	c.mu.Unlock()

	for _, t := range toEnable {
		if _, err := cn.command(ctx, "ELENABLE", t, "ON"); err != nil {
			return nil, fmt.Errorf("commandclient: subscribe enhanced log %s: %w", t, err)
		}
		if _, err := cn.command(ctx, "ELLOG", t, "ON"); err != nil {
			return nil, fmt.Errorf("commandclient: subscribe enhanced log %s: %w", t, err)
		}
	}

	return func() {
		c.mu.Lock()
		var toDisable []string
		for _, t := range logTypes {
			c.logCounts[t]--
			if c.logCounts[t] <= 0 {
				delete(c.logCounts, t)
				toDisable = append(toDisable, t)
			}
		}
		c.mu.Unlock()

		for _, t := range toDisable {
			if _, err := cn.command(context.Background(), "ELLOG", t, "OFF"); err != nil {
				log.Warningf("unsubscribe enhanced log %s: %v", t, err)
			}
		}
		unsub()
	}, nil
}

// ensureEventHandler starts the event handler goroutine (if not already
// running) and blocks until the first connection succeeds, returning the
// current event connection.
func (c *Client) ensureEventHandler(ctx context.Context) (*conn, error) {
	c.mu.Lock()
	if c.handlerDone == nil {
		c.handlerDone = make(chan struct{})
		go c.eventHandlerLoop()
	}
	c.mu.Unlock()

	select {
	case <-c.connectSignal:
	case <-c.stopCh:
		return nil, fmt.Errorf("commandclient: client closed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	c.mu.Lock()
	cn := c.eventConn
	c.mu.Unlock()
	if cn == nil {
		return nil, fmt.Errorf("commandclient: event connection unavailable, retry after reconnect")
	}
	return cn, nil
}

func activeKeys(counts map[string]int) []string {
	var keys []string
	for k, v := range counts {
		if v > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func activeIntKeys(counts map[int]int) []int {
	var keys []int
	for k, v := range counts {
		if v > 0 {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)
	return keys
}

func batchInts(vals []int, size int) [][]int {
	if len(vals) == 0 {
		return nil
	}
	var batches [][]int
	for len(vals) > 0 {
		n := size
		if n > len(vals) {
			n = len(vals)
		}
		batches = append(batches, vals[:n])
		vals = vals[n:]
	}
	return batches
}

func encodeInts(vals []int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = converter.EncodeInt(v)
	}
	return out
}
