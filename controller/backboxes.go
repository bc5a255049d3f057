package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// BackBoxesController tracks every BackBox, grounded on
// _controllers/back_boxes.py's BackBoxesController. Back boxes carry no
// runtime state; this controller exists purely for device-hierarchy
// reconstruction.
type BackBoxesController struct {
	*Base[*objects.BackBox]
}

// NewBackBoxesController builds a BackBoxesController bound to
// cfg/cmd/dispatcher.
func NewBackBoxesController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *BackBoxesController {
	base := NewBase[*objects.BackBox](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindBackBox}
	return &BackBoxesController{Base: base}
}
