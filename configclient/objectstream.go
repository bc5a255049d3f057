package configclient

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// pageSize is the number of objects requested per GetFilterResults call.
const pageSize = 50

// ObjectCursor pages through an open filter, fetching pageSize objects at a
// time. It is not safe for concurrent use.
type ObjectCursor struct {
	client *Client
	handle int
	buf    []RawObject
	done   bool
	closed bool
}

// Objects opens a filter over objectTypes (empty means all types) and
// returns a cursor over the matching objects. The cursor must be closed by
// draining it to completion, calling Close explicitly, or letting ctx be
// canceled while Next is in flight — all three paths close the underlying
// filter handle.
func (c *Client) Objects(ctx context.Context, objectTypes ...string) (*ObjectCursor, error) {
	var types []string
	if len(objectTypes) > 0 {
		types = objectTypes
	}

	handle, err := c.OpenFilter(ctx, types, "")
	if err != nil {
		return nil, err
	}

	return &ObjectCursor{client: c, handle: handle}, nil
}

// Next returns the next raw object, fetching a fresh page from the
// controller when the buffered page is exhausted. It returns io.EOF once the
// filter is exhausted, closing the cursor automatically.
func (oc *ObjectCursor) Next(ctx context.Context) (RawObject, error) {
	if oc.closed {
		return RawObject{}, io.EOF
	}

	if len(oc.buf) == 0 && !oc.done {
		if err := ctx.Err(); err != nil {
			_ = oc.Close(context.Background())
			return RawObject{}, err
		}

		page, err := oc.client.GetFilterResults(ctx, oc.handle, pageSize, true)
		if err != nil {
			_ = oc.Close(context.Background())
			return RawObject{}, err
		}
		oc.buf = page
		if len(page) < pageSize {
			oc.done = true
		}
	}

	if len(oc.buf) == 0 {
		_ = oc.Close(context.Background())
		return RawObject{}, io.EOF
	}

	obj := oc.buf[0]
	oc.buf = oc.buf[1:]
	return obj, nil
}

// Close releases the cursor's filter handle. Safe to call multiple times;
// a failed close is logged and also returned. Next's own cleanup calls
// discard that error, matching the original client's best-effort
// close-on-cleanup behavior.
func (oc *ObjectCursor) Close(ctx context.Context) error {
	if oc.closed {
		return nil
	}
	oc.closed = true

	if err := oc.client.CloseFilter(ctx, oc.handle); err != nil && !errors.Is(err, context.Canceled) {
		log.Warningf("close filter %d: %v", oc.handle, err)
		return fmt.Errorf("configclient: %w", err)
	}
	return nil
}
