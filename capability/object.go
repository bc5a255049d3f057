package capability

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/loopj/aiovantage-sub001/commandclient"
)

// Object implements the Object.GetMTime interface every object supports
// regardless of its other capabilities, grounded on
// command_client/interfaces/object.py.
type Object struct {
	Client *commandclient.Client
}

// GetMTime returns the object's last-modified time.
func (o Object) GetMTime(ctx context.Context, vid int) (time.Time, error) {
	result, err := o.Client.Invoke(ctx, vid, "Object.GetMTime")
	if err != nil {
		return time.Time{}, err
	}
	return ParseGetMTimeStatus(result[1:])
}

// ParseGetMTimeStatus parses an "Object.GetMTime" EL:/S:STATUS result.
func ParseGetMTimeStatus(args []string) (time.Time, error) {
	if len(args) < 1 {
		return time.Time{}, fmt.Errorf("capability: Object.GetMTime: missing argument")
	}
	secs, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("capability: Object.GetMTime: %w", err)
	}
	return time.Unix(secs, 0).UTC(), nil
}
