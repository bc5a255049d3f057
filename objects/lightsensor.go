package objects

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/capability"
	"github.com/shopspring/decimal"
)

// LightSensor measures ambient light level, grounded on
// config_client/objects/light_sensor.py.
type LightSensor struct {
	sensorBase
	ParentID int `xml:"Parent"`

	Level decimal.Decimal `xml:"-"`
}

func (l *LightSensor) Kind() string { return KindLightSensor }

func (l *LightSensor) Capabilities() []Capability {
	return []Capability{capability.KindSensor, capability.KindObject}
}

// FetchState refreshes Level from the controller and returns the field
// names that changed.
func (l *LightSensor) FetchState(ctx context.Context) ([]string, error) {
	level, err := l.sensorCapability().GetLightLevel(ctx, int(l.VID))
	if err != nil {
		return nil, fmt.Errorf("objects: LightSensor %d: %w", l.VID, err)
	}
	value := decimal.New(int64(level), 0)
	if value.Equal(l.Level) {
		return nil, nil
	}
	l.Level = value
	return []string{"Level"}, nil
}
