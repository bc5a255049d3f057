package objects

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/capability"
	"github.com/shopspring/decimal"
)

// Temperature is a temperature probe, grounded on _objects/temperature.py.
type Temperature struct {
	sensorBase
	Parent     ParentRef `xml:"Parent"`
	OutOfRange int       `xml:"OutOfRange"`
	InRange    int        `xml:"InRange"`
	RangeHigh  float64   `xml:"RangeHigh"`
	RangeLow   float64   `xml:"RangeLow"`
	HoldOnTime float64   `xml:"HoldOnTime"`

	Value decimal.Decimal `xml:"-"`
}

func (t *Temperature) Kind() string { return KindTemperature }

func (t *Temperature) Capabilities() []Capability {
	return []Capability{capability.KindTemperature, capability.KindObject}
}

func (t *Temperature) temperatureCapability() capability.Temperature {
	return capability.Temperature{Client: t.Client()}
}

// FetchState refreshes Value from the controller and returns the field
// names that changed.
func (t *Temperature) FetchState(ctx context.Context) ([]string, error) {
	value, err := t.temperatureCapability().GetValue(ctx, int(t.VID))
	if err != nil {
		return nil, fmt.Errorf("objects: Temperature %d: %w", t.VID, err)
	}
	if value.Equal(t.Value) {
		return nil, nil
	}
	t.Value = value
	return []string{"Value"}, nil
}
