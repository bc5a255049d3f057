package objects

import "github.com/loopj/aiovantage-sub001/capability"

// EqUX is an Equinox 41 or 73 touchscreen station, grounded on
// config_client/objects/eq_ux.py + _objects/eq_ux.py.
type EqUX struct {
	StationBase
	Style       int   `xml:"Style"`
	Activate    int   `xml:"Activate"`
	ProfileTable []int `xml:"ProfileTable>Profile"`
}

func (e *EqUX) Kind() string { return KindEqUX }

func (e *EqUX) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}
