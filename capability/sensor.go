package capability

import (
	"context"
	"fmt"
	"strconv"

	"github.com/loopj/aiovantage-sub001/commandclient"
)

// Sensor implements the Sensor.* INVOKE interface used by OmniSensor
// objects, grounded on command_client/interfaces/sensor.py.
type Sensor struct {
	Client *commandclient.Client
}

// GetLevel returns the sensor's raw level.
func (s Sensor) GetLevel(ctx context.Context, vid int) (int, error) {
	result, err := s.Client.Invoke(ctx, vid, "Sensor.GetLevel")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(result[1])
}

// GetLightLevel returns a light sensor's level, in foot-candles, grounded
// on command_client/interfaces/light_sensor.py (folded into this capability
// since spec.md's catalog names only a generic "Sensor" capability, not a
// distinct one per sensor variant).
func (s Sensor) GetLightLevel(ctx context.Context, vid int) (int, error) {
	result, err := s.Client.Invoke(ctx, vid, "LightSensor.GetLevel")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(result[1])
}

// GetAnemoSpeed returns an anemo (wind) sensor's speed in raw wire units,
// grounded on command_client/interfaces/anemo_sensor.py.
func (s Sensor) GetAnemoSpeed(ctx context.Context, vid int) (int, error) {
	result, err := s.Client.Invoke(ctx, vid, "AnemoSensor.GetSpeed")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(result[1])
}

// ParseObjectStatus handles Sensor.GetLevel, LightSensor.GetLevel, and
// AnemoSensor.GetSpeed.
func (s Sensor) ParseObjectStatus(method string, args []string) (field string, value any, err error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: %s: missing argument", method)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("capability: %s: %w", method, err)
	}
	switch method {
	case "Sensor.GetLevel":
		return "Level", n, nil
	case "LightSensor.GetLevel":
		return "Level", n / 1000, nil
	case "AnemoSensor.GetSpeed":
		return "Speed", n / 1000, nil
	default:
		return "", nil, fmt.Errorf("capability: Sensor: unhandled method %q", method)
	}
}
