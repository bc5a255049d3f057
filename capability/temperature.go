package capability

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/shopspring/decimal"
)

// Temperature implements the Temperature.* INVOKE interface, grounded on
// command_client/interfaces/temperature.py.
type Temperature struct {
	Client *commandclient.Client
}

// GetValue returns the temperature sensor's current reading, in degrees C.
func (t Temperature) GetValue(ctx context.Context, vid int) (decimal.Decimal, error) {
	result, err := t.Client.Invoke(ctx, vid, "Temperature.GetValue")
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(result[1])
}

// ParseObjectStatus handles Temperature.GetValue.
func (t Temperature) ParseObjectStatus(method string, args []string) (field string, value any, err error) {
	if method != "Temperature.GetValue" {
		return "", nil, fmt.Errorf("capability: Temperature: unhandled method %q", method)
	}
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: %s: missing argument", method)
	}
	raw, err := decimal.NewFromString(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("capability: %s: %w", method, err)
	}
	return "Value", raw.Div(decimal.NewFromInt(1000)), nil
}
