package objects

import (
	"context"

	"github.com/loopj/aiovantage-sub001/capability"
)

// GMem is a controller-defined variable, grounded on
// config_client/objects/gmem.py.
type GMem struct {
	Base
	Tag        string `xml:"Tag"`
	Persistent bool   `xml:"Persistent"`

	Value string `xml:"-"`
}

func (g *GMem) Kind() string { return KindGMem }

func (g *GMem) Capabilities() []Capability {
	return []Capability{capability.KindGMem, capability.KindObject}
}

// IsBool reports whether the variable holds a boolean.
func (g *GMem) IsBool() bool { return g.Tag == "bool" }

// IsStr reports whether the variable holds a string.
func (g *GMem) IsStr() bool { return g.Tag == "Text" }

// IsInt reports whether the variable holds an integer-typed value.
func (g *GMem) IsInt() bool {
	switch g.Tag {
	case "Delay", "DeviceUnits", "Level", "Load", "Number", "Seconds", "Task", "DegC":
		return true
	}
	return false
}

// IsObjectID reports whether the variable's integer value is itself a VID.
func (g *GMem) IsObjectID() bool {
	return g.Tag == "Load" || g.Tag == "Task"
}

func (g *GMem) gmemCapability() capability.GMem { return capability.GMem{Client: g.Client()} }

// SetValue sets the variable's value.
func (g *GMem) SetValue(ctx context.Context, value string) error {
	return g.gmemCapability().SetValue(ctx, int(g.VID), value)
}

// FetchState refreshes Value from the controller and returns the field
// names that changed.
func (g *GMem) FetchState(ctx context.Context) ([]string, error) {
	value, err := g.gmemCapability().GetValue(ctx, int(g.VID))
	if err != nil {
		return nil, err
	}
	if value == g.Value {
		return nil, nil
	}
	g.Value = value
	return []string{"Value"}, nil
}
