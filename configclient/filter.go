package configclient

import (
	"context"
	"fmt"
)

// OpenFilter opens a filter handle over the controller's object tree,
// restricted to objectTypes (nil means all types) and further narrowed by
// xpath (empty means unfiltered), e.g. "/Load" or "/*[@VID='118']".
func (c *Client) OpenFilter(ctx context.Context, objectTypes []string, xpath string) (int, error) {
	type call struct {
		ObjectTypes []string `xml:"call>Objects>ObjectType,omitempty"`
		XPath       string   `xml:"call>XPath,omitempty"`
	}
	type ret struct {
		Handle int `xml:"return"`
	}

	var result ret
	err := c.request(ctx, "IConfiguration", "OpenFilter", call{ObjectTypes: objectTypes, XPath: xpath}, &result)
	if err != nil {
		return 0, fmt.Errorf("configclient: OpenFilter: %w", err)
	}
	return result.Handle, nil
}

// GetFilterResults fetches up to count objects from an open filter, starting
// from wherever the previous call left the cursor. wholeObject requests the
// full object element rather than just its identity; An empty result marks
// the end of the filter.
func (c *Client) GetFilterResults(ctx context.Context, handle, count int, wholeObject bool) ([]RawObject, error) {
	type call struct {
		Handle      int  `xml:"call>hFilter"`
		Count       int  `xml:"call>Count"`
		WholeObject bool `xml:"call>WholeObject"`
	}
	type ret struct {
		Objects []RawObject `xml:"return>Object"`
	}

	var result ret
	err := c.request(ctx, "IConfiguration", "GetFilterResults", call{Handle: handle, Count: count, WholeObject: wholeObject}, &result)
	if err != nil {
		return nil, fmt.Errorf("configclient: GetFilterResults: %w", err)
	}
	return result.Objects, nil
}

// CloseFilter releases a filter handle. Errors are returned rather than
// logged so callers can decide whether a failed best-effort close in a defer
// path is worth surfacing.
func (c *Client) CloseFilter(ctx context.Context, handle int) error {
	type call struct {
		Handle int `xml:"call"`
	}
	type ret struct {
		Success bool `xml:"return"`
	}

	var result ret
	if err := c.request(ctx, "IConfiguration", "CloseFilter", call{Handle: handle}, &result); err != nil {
		return fmt.Errorf("configclient: CloseFilter: %w", err)
	}
	return nil
}

// GetObject fetches system objects directly by Vantage ID, bypassing the
// filter mechanism entirely. Ids with no matching object are silently
// omitted from the result.
func (c *Client) GetObject(ctx context.Context, vids []int) ([]RawObject, error) {
	type call struct {
		VIDs []int `xml:"call>VID"`
	}
	type ret struct {
		Objects []RawObject `xml:"return>Object"`
	}

	var result ret
	err := c.request(ctx, "IConfiguration", "GetObject", call{VIDs: vids}, &result)
	if err != nil {
		return nil, fmt.Errorf("configclient: GetObject: %w", err)
	}
	return result.Objects, nil
}

// GetVersion returns the controller's firmware version triplet.
func (c *Client) GetVersion(ctx context.Context) (Version, error) {
	var result struct {
		Version Version `xml:"return"`
	}
	if err := c.request(ctx, "IIntrospection", "GetVersion", nil, &result); err != nil {
		return Version{}, fmt.Errorf("configclient: GetVersion: %w", err)
	}
	return result.Version, nil
}
