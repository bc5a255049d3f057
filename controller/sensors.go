package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// OmniSensorsController tracks every OmniSensor (analog/formula-driven
// sensors: current, power, temperature, etc.), grounded on
// _controllers/omni_sensors.py's OmniSensorsController.
type OmniSensorsController struct {
	*Base[*objects.OmniSensor]
}

// NewOmniSensorsController builds an OmniSensorsController bound to
// cfg/cmd/dispatcher.
func NewOmniSensorsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *OmniSensorsController {
	base := NewBase[*objects.OmniSensor](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindOmniSensor}
	base.StatusCategories = []string{"TEMP"}
	return &OmniSensorsController{Base: base}
}

// LightSensorsController tracks every LightSensor, grounded on
// _controllers/light_sensors.py's LightSensorsController.
type LightSensorsController struct {
	*Base[*objects.LightSensor]
}

// NewLightSensorsController builds a LightSensorsController bound to
// cfg/cmd/dispatcher.
func NewLightSensorsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *LightSensorsController {
	base := NewBase[*objects.LightSensor](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindLightSensor}
	base.StatusCategories = []string{"LIGHT"}
	return &LightSensorsController{Base: base}
}

// AnemoSensorsController tracks every AnemoSensor (wind speed), grounded
// on _controllers/anemo_sensors.py's AnemoSensorsController.
type AnemoSensorsController struct {
	*Base[*objects.AnemoSensor]
}

// NewAnemoSensorsController builds an AnemoSensorsController bound to
// cfg/cmd/dispatcher.
func NewAnemoSensorsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *AnemoSensorsController {
	base := NewBase[*objects.AnemoSensor](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindAnemoSensor}
	base.StatusCategories = []string{"WIND"}
	return &AnemoSensorsController{Base: base}
}
