package objects

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/capability"
	"github.com/shopspring/decimal"
)

// AnemoSensor measures wind speed, grounded on
// config_client/objects/anemo_sensor.py.
type AnemoSensor struct {
	sensorBase
	Parent ParentRef `xml:"Parent"`

	Speed decimal.Decimal `xml:"-"`
}

func (a *AnemoSensor) Kind() string { return KindAnemoSensor }

func (a *AnemoSensor) Capabilities() []Capability {
	return []Capability{capability.KindSensor, capability.KindObject}
}

// FetchState refreshes Speed from the controller and returns the field
// names that changed.
func (a *AnemoSensor) FetchState(ctx context.Context) ([]string, error) {
	speed, err := a.sensorCapability().GetAnemoSpeed(ctx, int(a.VID))
	if err != nil {
		return nil, fmt.Errorf("objects: AnemoSensor %d: %w", a.VID, err)
	}
	value := decimal.New(int64(speed), 0)
	if value.Equal(a.Speed) {
		return nil, nil
	}
	a.Speed = value
	return []string{"Speed"}, nil
}
