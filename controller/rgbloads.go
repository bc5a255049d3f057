package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// RGBLoadsController tracks every RGBLoad and its Vantage DMX/DALI gateway
// variants (DGColorLoad/DDGColorLoad embed RGBLoad but are distinct wire
// tags with their own Go type), grounded on _controllers/rgb_loads.py's
// RGBLoadsController.
type RGBLoadsController struct {
	*Base[objects.Object]
}

// NewRGBLoadsController builds an RGBLoadsController bound to
// cfg/cmd/dispatcher.
func NewRGBLoadsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *RGBLoadsController {
	base := NewBase[objects.Object](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindRGBLoad, objects.KindDGColorLoad, objects.KindDDGColorLoad}
	base.StatusCategories = []string{"LOAD"}
	return &RGBLoadsController{Base: base}
}

// rgbLoadLevel extracts the Level field shared by RGBLoad and its gateway variants
// without needing a reflection-based accessor.
func rgbLoadLevel(obj objects.Object) (float64, bool) {
	switch l := obj.(type) {
	case *objects.RGBLoad:
		return l.Level, true
	case *objects.DGColorLoad:
		return l.Level, true
	case *objects.DDGColorLoad:
		return l.Level, true
	}
	return 0, false
}

// On returns every color load currently reporting a nonzero level.
func (c *RGBLoadsController) On() []objects.Object {
	return c.Filter(func(obj objects.Object) bool {
		level, ok := rgbLoadLevel(obj)
		return ok && level > 0
	}).All()
}

// Off returns every color load currently reporting a zero level.
func (c *RGBLoadsController) Off() []objects.Object {
	return c.Filter(func(obj objects.Object) bool {
		level, ok := rgbLoadLevel(obj)
		return ok && level == 0
	}).All()
}
