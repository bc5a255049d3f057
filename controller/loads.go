package controller

import (
	"strings"

	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// LoadsController tracks every Load and LoadGroup, grounded on
// _controllers/loads.py's LoadsController.
type LoadsController struct {
	*Base[objects.Object]
}

// NewLoadsController builds a LoadsController bound to cfg/cmd/dispatcher.
func NewLoadsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *LoadsController {
	base := NewBase[objects.Object](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindLoad, objects.KindLoadGroup}
	base.StatusCategories = []string{"LOAD"}
	return &LoadsController{Base: base}
}

// On returns every load currently reporting a nonzero level.
func (c *LoadsController) On() []objects.Object {
	return c.Filter(func(obj objects.Object) bool {
		switch l := obj.(type) {
		case *objects.Load:
			return l.Level > 0
		case *objects.LoadGroup:
			return l.Level > 0
		}
		return false
	}).All()
}

// Off returns every load currently reporting a zero level.
func (c *LoadsController) Off() []objects.Object {
	return c.Filter(func(obj objects.Object) bool {
		switch l := obj.(type) {
		case *objects.Load:
			return l.Level == 0
		case *objects.LoadGroup:
			return l.Level == 0
		}
		return false
	}).All()
}

// Relays returns every Load whose LoadType marks it as a relay (switched,
// non-dimmable).
func (c *LoadsController) Relays() []objects.Object {
	return c.Filter(func(obj objects.Object) bool {
		l, ok := obj.(*objects.Load)
		return ok && !l.IsDimmable()
	}).All()
}

// Motors returns every Load whose LoadType names it a motor load.
func (c *LoadsController) Motors() []objects.Object {
	return c.Filter(func(obj objects.Object) bool {
		l, ok := obj.(*objects.Load)
		return ok && strings.Contains(strings.ToLower(l.LoadType), "motor")
	}).All()
}

// Lights returns every dimmable Load, i.e. every Load that is not a relay
// or motor load.
func (c *LoadsController) Lights() []objects.Object {
	return c.Filter(func(obj objects.Object) bool {
		l, ok := obj.(*objects.Load)
		return ok && l.IsDimmable() && !strings.Contains(strings.ToLower(l.LoadType), "motor")
	}).All()
}

// InLoadGroup returns a QuerySet over every Load belonging to the given
// LoadGroup.
func (c *LoadsController) InLoadGroup(g *objects.LoadGroup) QuerySet[*objects.Load] {
	members := make(map[objects.VID]bool, len(g.LoadIDs))
	for _, vid := range g.LoadIDs {
		members[vid] = true
	}

	data := make(map[objects.VID]*objects.Load)
	for _, obj := range c.All() {
		if l, ok := obj.(*objects.Load); ok && members[l.ObjectVID()] {
			data[l.ObjectVID()] = l
		}
	}
	return NewQuerySet(&data, c.lazyInitialize)
}
