package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// BlindsController tracks every Blind (and its QIS/Qube/relay variants) and
// BlindGroup, grounded on _controllers/blinds.py's BlindsController.
type BlindsController struct {
	*Base[objects.Object]
}

// NewBlindsController builds a BlindsController bound to cfg/cmd/dispatcher.
func NewBlindsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *BlindsController {
	base := NewBase[objects.Object](cfg, cmd, dispatcher)
	base.WireTags = []string{
		objects.KindBlind, objects.KindQISBlind, objects.KindQubeBlind, objects.KindRelayBlind,
		objects.KindBlindGroup,
		objects.KindURTSI2Shade, objects.KindRS485ShadeChild,
		objects.KindURTSI2GroupChild, objects.KindRS485GroupChild,
	}
	base.StatusCategories = []string{"BLIND"}
	return &BlindsController{Base: base}
}

// InBlindGroup returns a QuerySet over every Blind belonging to the given
// BlindGroup. Unlike LoadsController.InLoadGroup, BlindGroup itself never
// satisfies a blind capability (only its members do), per blind_group.py.
func (c *BlindsController) InBlindGroup(g *objects.BlindGroup) QuerySet[*objects.Blind] {
	members := make(map[objects.VID]bool, len(g.BlindIDs))
	for _, vid := range g.BlindIDs {
		members[vid] = true
	}

	data := make(map[objects.VID]*objects.Blind)
	for _, obj := range c.All() {
		if b, ok := obj.(*objects.Blind); ok && members[b.ObjectVID()] {
			data[b.ObjectVID()] = b
		}
	}
	return NewQuerySet(&data, c.lazyInitialize)
}
