package capability

import (
	"context"
	"fmt"
	"strconv"

	"github.com/loopj/aiovantage-sub001/commandclient"
)

// ColorTemperature implements the ColorTemperature.* INVOKE interface,
// grounded on command_client/interfaces/color_temperature.py.
type ColorTemperature struct {
	Client *commandclient.Client
}

// GetColorTemp returns the light's color temperature, in Kelvin.
func (c ColorTemperature) GetColorTemp(ctx context.Context, vid int) (int, error) {
	result, err := c.Client.Invoke(ctx, vid, "ColorTemperature.Get")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(result[1])
}

// SetColorTemp sets the light's color temperature, optionally transitioning
// over the given number of seconds.
func (c ColorTemperature) SetColorTemp(ctx context.Context, vid, temp, transitionSeconds int) error {
	_, err := c.Client.Invoke(ctx, vid, "ColorTemperature.Set", strconv.Itoa(temp), strconv.Itoa(transitionSeconds))
	return err
}

// ParseObjectStatus handles ColorTemperature.Get.
func (c ColorTemperature) ParseObjectStatus(method string, args []string) (field string, value any, err error) {
	if method != "ColorTemperature.Get" {
		return "", nil, fmt.Errorf("capability: ColorTemperature: unhandled method %q", method)
	}
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: %s: missing argument", method)
	}
	temp, err := strconv.Atoi(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("capability: %s: %w", method, err)
	}
	return "ColorTemp", temp, nil
}
