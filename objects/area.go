package objects

import "github.com/loopj/aiovantage-sub001/capability"

// Area is a room or zone grouping other objects, grounded on
// config_client/objects/area.py + _objects/area.py.
type Area struct {
	LocationBase
	AreaType      string `xml:"AreaType"`
	EnclosureArea int    `xml:"EnclosureArea"`
}

func (a *Area) Kind() string { return KindArea }

func (a *Area) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}
