package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// ButtonsController tracks every Button, grounded on
// _controllers/buttons.py's ButtonsController.
type ButtonsController struct {
	*Base[*objects.Button]
}

// NewButtonsController builds a ButtonsController bound to
// cfg/cmd/dispatcher.
func NewButtonsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *ButtonsController {
	base := NewBase[*objects.Button](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindButton}
	base.StatusCategories = []string{"BTN"}
	return &ButtonsController{Base: base}
}
