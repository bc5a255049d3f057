package objects

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/capability"
)

// sensorBase holds the fields every sensor family shares, grounded on
// config_client/objects/sensor.py.
type sensorBase struct {
	LocationBase
}

func (s *sensorBase) sensorCapability() capability.Sensor {
	return capability.Sensor{Client: s.Client()}
}

// OmniSensor is a generic analog/formula-driven sensor (current, power,
// temperature, etc.), grounded on _objects/omni_sensor.py.
type OmniSensor struct {
	sensorBase
	Parent ParentRef `xml:"Parent"`

	Level int `xml:"-"`
}

func (o *OmniSensor) Kind() string { return KindOmniSensor }

func (o *OmniSensor) Capabilities() []Capability {
	return []Capability{capability.KindSensor, capability.KindObject}
}

// IsCurrentSensor reports whether the sensor reads current.
func (o *OmniSensor) IsCurrentSensor() bool { return o.Model == "Current" }

// IsPowerSensor reports whether the sensor reads power.
func (o *OmniSensor) IsPowerSensor() bool { return o.Model == "Power" }

// IsTemperatureSensor reports whether the sensor reads temperature.
func (o *OmniSensor) IsTemperatureSensor() bool { return o.Model == "Temperature" }

// FetchState refreshes Level from the controller and returns the field
// names that changed. The original drives this through a per-object
// formula/method pair configured by the controller firmware (Get.Method);
// this flattened client reads the generic Sensor.GetLevel instead.
func (o *OmniSensor) FetchState(ctx context.Context) ([]string, error) {
	level, err := o.sensorCapability().GetLevel(ctx, int(o.VID))
	if err != nil {
		return nil, fmt.Errorf("objects: OmniSensor %d: %w", o.VID, err)
	}
	if level == o.Level {
		return nil, nil
	}
	o.Level = level
	return []string{"Level"}, nil
}
