package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// ModulesController tracks every Module and ModuleGen2 relay/dimming
// enclosure module, grounded on _controllers/modules.py's
// ModulesController.
type ModulesController struct {
	*Base[objects.Object]
}

// NewModulesController builds a ModulesController bound to
// cfg/cmd/dispatcher.
func NewModulesController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *ModulesController {
	base := NewBase[objects.Object](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindModule, objects.KindModuleGen2}
	return &ModulesController{Base: base}
}
