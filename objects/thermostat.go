package objects

import (
	"context"

	"github.com/loopj/aiovantage-sub001/capability"
	"github.com/shopspring/decimal"
)

// Thermostat is a climate-control station, grounded on
// _objects/thermostat.py.
type Thermostat struct {
	StationBase
	ExternalTemperature int  `xml:"ExternalTemperature"`
	DisplayClock        bool `xml:"DisplayClock"`
	PseudoMode          bool `xml:"PseudoMode"`
	Humidistat          bool `xml:"Humidistat"`

	OperationMode capability.OperationMode `xml:"-"`
	FanMode       capability.FanMode       `xml:"-"`
	HoldMode      capability.HoldMode      `xml:"-"`
	Status        capability.Status        `xml:"-"`
	IndoorTemp    decimal.Decimal          `xml:"-"`
	HeatSetPoint  decimal.Decimal          `xml:"-"`
	CoolSetPoint  decimal.Decimal          `xml:"-"`
}

func (t *Thermostat) Kind() string { return KindThermostat }

func (t *Thermostat) Capabilities() []Capability {
	return []Capability{capability.KindThermostat, capability.KindObject}
}

func (t *Thermostat) thermostatCapability() capability.Thermostat {
	return capability.Thermostat{Client: t.Client()}
}

// SetHeatSetPoint sets the heating set point, in degrees C.
func (t *Thermostat) SetHeatSetPoint(ctx context.Context, value decimal.Decimal) error {
	return t.thermostatCapability().SetHeatSetPoint(ctx, int(t.VID), value)
}

// SetCoolSetPoint sets the cooling set point, in degrees C.
func (t *Thermostat) SetCoolSetPoint(ctx context.Context, value decimal.Decimal) error {
	return t.thermostatCapability().SetCoolSetPoint(ctx, int(t.VID), value)
}

// SetOperationMode changes the heat/cool/auto/off mode.
func (t *Thermostat) SetOperationMode(ctx context.Context, mode capability.OperationMode) error {
	return t.thermostatCapability().SetOperationMode(ctx, int(t.VID), mode)
}

// SetFanMode changes the fan on/auto mode.
func (t *Thermostat) SetFanMode(ctx context.Context, mode capability.FanMode) error {
	return t.thermostatCapability().SetFanMode(ctx, int(t.VID), mode)
}

// SetHoldMode changes the hold mode.
func (t *Thermostat) SetHoldMode(ctx context.Context, mode capability.HoldMode) error {
	return t.thermostatCapability().SetHoldMode(ctx, int(t.VID), mode)
}

// FetchState refreshes the thermostat's runtime fields from the controller
// and returns the field names that changed.
func (t *Thermostat) FetchState(ctx context.Context) ([]string, error) {
	var changed []string
	tc := t.thermostatCapability()
	vid := int(t.VID)

	if indoor, err := tc.GetIndoorTemperature(ctx, vid); err != nil {
		return nil, err
	} else if !indoor.Equal(t.IndoorTemp) {
		t.IndoorTemp = indoor
		changed = append(changed, "IndoorTemp")
	}

	if heat, err := tc.GetHeatSetPoint(ctx, vid); err != nil {
		return nil, err
	} else if !heat.Equal(t.HeatSetPoint) {
		t.HeatSetPoint = heat
		changed = append(changed, "HeatSetPoint")
	}

	if cool, err := tc.GetCoolSetPoint(ctx, vid); err != nil {
		return nil, err
	} else if !cool.Equal(t.CoolSetPoint) {
		t.CoolSetPoint = cool
		changed = append(changed, "CoolSetPoint")
	}

	if mode, err := tc.GetOperationMode(ctx, vid); err != nil {
		return nil, err
	} else if mode != t.OperationMode {
		t.OperationMode = mode
		changed = append(changed, "OperationMode")
	}

	if mode, err := tc.GetFanMode(ctx, vid); err != nil {
		return nil, err
	} else if mode != t.FanMode {
		t.FanMode = mode
		changed = append(changed, "FanMode")
	}

	if mode, err := tc.GetHoldMode(ctx, vid); err != nil {
		return nil, err
	} else if mode != t.HoldMode {
		t.HoldMode = mode
		changed = append(changed, "HoldMode")
	}

	if status, err := tc.GetStatus(ctx, vid); err != nil {
		return nil, err
	} else if status != t.Status {
		t.Status = status
		changed = append(changed, "Status")
	}

	return changed, nil
}
