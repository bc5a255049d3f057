package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// MastersController tracks every Master (InFusion controller), grounded on
// _controllers/masters.py's MastersController.
type MastersController struct {
	*Base[*objects.Master]
}

// NewMastersController builds a MastersController bound to
// cfg/cmd/dispatcher.
func NewMastersController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *MastersController {
	base := NewBase[*objects.Master](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindMaster}
	return &MastersController{Base: base}
}
