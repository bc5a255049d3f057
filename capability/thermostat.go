package capability

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/converter"
	"github.com/shopspring/decimal"
)

// Thermostat implements the Thermostat.* INVOKE interface, grounded on
// command_client/interfaces/thermostat.py.
type Thermostat struct {
	Client *commandclient.Client
}

// OperationMode mirrors ThermostatInterface.OperationMode.
type OperationMode int

const (
	OperationOff OperationMode = iota
	OperationCool
	OperationHeat
	OperationAuto
	OperationUnknown
)

// FanMode mirrors ThermostatInterface.FanMode.
type FanMode int

const (
	FanOff FanMode = iota
	FanOn
	FanUnknown
)

// HoldMode mirrors ThermostatInterface.HoldMode.
type HoldMode int

const (
	HoldNormal HoldMode = iota
	HoldOn
	HoldUnknown
)

// Status mirrors ThermostatInterface.Status.
type Status int

const (
	StatusOff Status = iota
	StatusCooling
	StatusHeating
	StatusOffline
)

func (t Thermostat) getTemp(ctx context.Context, vid int, method string) (decimal.Decimal, error) {
	result, err := t.Client.Invoke(ctx, vid, method)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(result[1])
}

func (t Thermostat) setTemp(ctx context.Context, vid int, method string, temp decimal.Decimal) error {
	_, err := t.Client.Invoke(ctx, vid, method, converter.EncodeFixed(temp))
	return err
}

func (t Thermostat) GetIndoorTemperature(ctx context.Context, vid int) (decimal.Decimal, error) {
	return t.getTemp(ctx, vid, "Thermostat.GetIndoorTemperature")
}

func (t Thermostat) GetOutdoorTemperature(ctx context.Context, vid int) (decimal.Decimal, error) {
	return t.getTemp(ctx, vid, "Thermostat.GetOutdoorTemperature")
}

func (t Thermostat) GetHeatSetPoint(ctx context.Context, vid int) (decimal.Decimal, error) {
	return t.getTemp(ctx, vid, "Thermostat.GetHeatSetPoint")
}

func (t Thermostat) SetHeatSetPoint(ctx context.Context, vid int, temp decimal.Decimal) error {
	return t.setTemp(ctx, vid, "Thermostat.SetHeatSetPoint", temp)
}

func (t Thermostat) GetCoolSetPoint(ctx context.Context, vid int) (decimal.Decimal, error) {
	return t.getTemp(ctx, vid, "Thermostat.GetCoolSetPoint")
}

func (t Thermostat) SetCoolSetPoint(ctx context.Context, vid int, temp decimal.Decimal) error {
	return t.setTemp(ctx, vid, "Thermostat.SetCoolSetPoint", temp)
}

func (t Thermostat) GetAutoSetPoint(ctx context.Context, vid int) (decimal.Decimal, error) {
	return t.getTemp(ctx, vid, "Thermostat.GetAutoSetPoint")
}

func (t Thermostat) SetAutoSetPoint(ctx context.Context, vid int, temp decimal.Decimal) error {
	return t.setTemp(ctx, vid, "Thermostat.SetAutoSetPoint", temp)
}

func (t Thermostat) GetOperationMode(ctx context.Context, vid int) (OperationMode, error) {
	result, err := t.Client.Invoke(ctx, vid, "Thermostat.GetOperationMode")
	if err != nil {
		return 0, err
	}
	return parseOperationMode(result[1])
}

func (t Thermostat) SetOperationMode(ctx context.Context, vid int, mode OperationMode) error {
	_, err := t.Client.Invoke(ctx, vid, "Thermostat.SetOperationMode", converter.EncodeInt(int(mode)))
	return err
}

func (t Thermostat) GetFanMode(ctx context.Context, vid int) (FanMode, error) {
	result, err := t.Client.Invoke(ctx, vid, "Thermostat.GetFanMode")
	if err != nil {
		return 0, err
	}
	return parseFanMode(result[1])
}

func (t Thermostat) SetFanMode(ctx context.Context, vid int, mode FanMode) error {
	_, err := t.Client.Invoke(ctx, vid, "Thermostat.SetFanMode", converter.EncodeInt(int(mode)))
	return err
}

func (t Thermostat) GetHoldMode(ctx context.Context, vid int) (HoldMode, error) {
	result, err := t.Client.Invoke(ctx, vid, "Thermostat.GetHoldMode")
	if err != nil {
		return 0, err
	}
	return parseHoldMode(result[1])
}

func (t Thermostat) SetHoldMode(ctx context.Context, vid int, mode HoldMode) error {
	_, err := t.Client.Invoke(ctx, vid, "Thermostat.SetHoldMode", converter.EncodeInt(int(mode)))
	return err
}

func (t Thermostat) GetStatus(ctx context.Context, vid int) (Status, error) {
	result, err := t.Client.Invoke(ctx, vid, "Thermostat.GetStatus")
	if err != nil {
		return 0, err
	}
	return parseStatus(result[1])
}

func parseOperationMode(s string) (OperationMode, error) {
	switch s {
	case "0", "Off":
		return OperationOff, nil
	case "1", "Cool":
		return OperationCool, nil
	case "2", "Heat":
		return OperationHeat, nil
	case "3", "Auto":
		return OperationAuto, nil
	case "4", "Unknown":
		return OperationUnknown, nil
	default:
		return 0, fmt.Errorf("capability: Thermostat: invalid operation mode %q", s)
	}
}

func parseFanMode(s string) (FanMode, error) {
	switch s {
	case "0", "Off":
		return FanOff, nil
	case "1", "On":
		return FanOn, nil
	case "2", "Unknown":
		return FanUnknown, nil
	default:
		return 0, fmt.Errorf("capability: Thermostat: invalid fan mode %q", s)
	}
}

func parseHoldMode(s string) (HoldMode, error) {
	switch s {
	case "0", "Normal":
		return HoldNormal, nil
	case "1", "Hold":
		return HoldOn, nil
	case "2", "Unknown":
		return HoldUnknown, nil
	default:
		return 0, fmt.Errorf("capability: Thermostat: invalid hold mode %q", s)
	}
}

func parseStatus(s string) (Status, error) {
	switch s {
	case "0", "Off":
		return StatusOff, nil
	case "1", "Cooling":
		return StatusCooling, nil
	case "2", "Heating":
		return StatusHeating, nil
	case "3", "Offline":
		return StatusOffline, nil
	default:
		return 0, fmt.Errorf("capability: Thermostat: invalid status %q", s)
	}
}

// ParseObjectStatus handles the Thermostat.Get* status methods.
func (t Thermostat) ParseObjectStatus(method string, args []string) (field string, value any, err error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: %s: missing argument", method)
	}
	switch method {
	case "Thermostat.GetIndoorTemperature":
		temp, err := decimal.NewFromString(args[0])
		return "IndoorTemperature", temp, err
	case "Thermostat.GetOutdoorTemperature":
		temp, err := decimal.NewFromString(args[0])
		return "OutdoorTemperature", temp, err
	case "Thermostat.GetHeatSetPoint":
		temp, err := decimal.NewFromString(args[0])
		return "HeatSetPoint", temp, err
	case "Thermostat.GetCoolSetPoint":
		temp, err := decimal.NewFromString(args[0])
		return "CoolSetPoint", temp, err
	case "Thermostat.GetAutoSetPoint":
		temp, err := decimal.NewFromString(args[0])
		return "AutoSetPoint", temp, err
	case "Thermostat.GetOperationMode":
		mode, err := parseOperationMode(args[0])
		return "OperationMode", mode, err
	case "Thermostat.GetFanMode":
		mode, err := parseFanMode(args[0])
		return "FanMode", mode, err
	case "Thermostat.GetHoldMode":
		mode, err := parseHoldMode(args[0])
		return "HoldMode", mode, err
	case "Thermostat.GetStatus":
		status, err := parseStatus(args[0])
		return "Status", status, err
	default:
		return "", nil, fmt.Errorf("capability: Thermostat: unhandled method %q", method)
	}
}
