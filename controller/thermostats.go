package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// ThermostatsController tracks every Thermostat, grounded on
// _controllers/thermostats.py's ThermostatsController.
type ThermostatsController struct {
	*Base[*objects.Thermostat]
}

// NewThermostatsController builds a ThermostatsController bound to
// cfg/cmd/dispatcher.
func NewThermostatsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *ThermostatsController {
	base := NewBase[*objects.Thermostat](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindThermostat}
	base.StatusCategories = []string{"THERMFAN", "THERMOP", "THERMDAY", "THERMTEMP"}
	return &ThermostatsController{Base: base}
}
