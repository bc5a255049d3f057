package commandclient

import (
	"context"
	"time"
)

// eventHandlerLoop owns the persistent event connection for the lifetime of
// the Client: connect, signal readiness, replay subscriptions on
// reconnect, and drain the S:/EL: event stream until the connection drops,
// then retry after reconnectDelay.
func (c *Client) eventHandlerLoop() {
	defer close(c.handlerDone)

	firstConnect := true
	for {
		select {
		case <-c.stopCh:
			return
		default:
		}

		cn, err := c.createConnection(context.Background())
		if err != nil {
			log.Warningf("event connection failed: %v", err)
			c.emit(Event{Tag: Disconnected})
			if !c.sleepOrStop(reconnectDelay) {
				return
			}
			continue
		}

		c.mu.Lock()
		c.eventConn = cn
		c.mu.Unlock()

		if firstConnect {
			firstConnect = false
			log.Info("connected and listening for events")
			close(c.connectSignal)
			c.emit(Event{Tag: Connected})
		} else {
			log.Info("reconnected, replaying subscriptions")
			c.resubscribe(cn)
			c.emit(Event{Tag: Reconnected})
		}

		c.drainEvents(cn)

		c.mu.Lock()
		c.eventConn = nil
		c.mu.Unlock()
		c.emit(Event{Tag: Disconnected})

		select {
		case <-c.stopCh:
			return
		default:
		}

		log.Info("retrying event connection in 5s")
		if !c.sleepOrStop(reconnectDelay) {
			return
		}
	}
}

// drainEvents reads S:/EL: lines from cn's event channel until it closes
// (the connection dropped) or the client is stopping.
func (c *Client) drainEvents(cn *conn) {
	for {
		select {
		case line, ok := <-cn.eventCh:
			if !ok {
				return
			}
			c.handleEventLine(line)
		case <-c.stopCh:
			return
		}
	}
}

func (c *Client) sleepOrStop(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-c.stopCh:
		return false
	}
}

// resubscribe replays every subscription whose reference count is positive,
// in the fixed order: category statuses, object statuses (rebatched),
// event-log enables.
func (c *Client) resubscribe(cn *conn) {
	ctx := context.Background()

	c.mu.Lock()
	statusTypes := activeKeys(c.statusCounts)
	objectIDs := activeIntKeys(c.objectCounts)
	logTypes := activeKeys(c.logCounts)
	c.mu.Unlock()

	for _, statusType := range statusTypes {
		if _, err := cn.command(ctx, "STATUS", statusType); err != nil {
			log.Warningf("resubscribe STATUS %s: %v", statusType, err)
		}
	}

	for _, batch := range batchInts(objectIDs, maxAddStatusBatch) {
		if _, err := cn.command(ctx, "ADDSTATUS", encodeInts(batch)...); err != nil {
			log.Warningf("resubscribe ADDSTATUS %v: %v", batch, err)
		}
	}

	for _, logType := range logTypes {
		if _, err := cn.command(ctx, "ELENABLE", logType, "ON"); err != nil {
			log.Warningf("resubscribe ELENABLE %s: %v", logType, err)
			continue
		}
		if _, err := cn.command(ctx, "ELLOG", logType, "ON"); err != nil {
			log.Warningf("resubscribe ELLOG %s: %v", logType, err)
		}
	}
}
