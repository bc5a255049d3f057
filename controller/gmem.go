package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// GMemController tracks every GMem variable, grounded on
// _controllers/gmem.py's GMemController. GMem values are reported only via
// "S:VARIABLE", never Enhanced Log, so this is the one controller forcing
// category-status monitoring.
type GMemController struct {
	*Base[*objects.GMem]
}

// NewGMemController builds a GMemController bound to cfg/cmd/dispatcher.
func NewGMemController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *GMemController {
	base := NewBase[*objects.GMem](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindGMem}
	base.ForceCategoryStatus = true
	base.StatusCategories = []string{"VARIABLE"}
	return &GMemController{Base: base}
}
