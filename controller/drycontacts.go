package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// DryContactsController tracks every DryContact, grounded on
// _controllers/dry_contacts.py's DryContactsController.
type DryContactsController struct {
	*Base[*objects.DryContact]
}

// NewDryContactsController builds a DryContactsController bound to
// cfg/cmd/dispatcher.
func NewDryContactsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *DryContactsController {
	base := NewBase[*objects.DryContact](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindDryContact}
	base.StatusCategories = []string{"BTN"}
	return &DryContactsController{Base: base}
}
