package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// AreasController tracks every Area, grounded on _controllers/areas.py's
// AreasController.
type AreasController struct {
	*Base[*objects.Area]
}

// NewAreasController builds an AreasController bound to cfg/cmd/dispatcher.
func NewAreasController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *AreasController {
	base := NewBase[*objects.Area](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindArea}
	return &AreasController{Base: base}
}
