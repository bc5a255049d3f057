package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// TemperaturesController tracks every Temperature probe, grounded on
// _controllers/temperatures.py's TemperaturesController.
type TemperaturesController struct {
	*Base[*objects.Temperature]
}

// NewTemperaturesController builds a TemperaturesController bound to
// cfg/cmd/dispatcher.
func NewTemperaturesController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *TemperaturesController {
	base := NewBase[*objects.Temperature](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindTemperature}
	base.StatusCategories = []string{"TEMP"}
	return &TemperaturesController{Base: base}
}
