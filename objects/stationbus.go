package objects

import "github.com/loopj/aiovantage-sub001/capability"

// StationBus is an RS-485 bus segment a station is attached to, grounded
// on config_client/system_objects/station_bus.py.
type StationBus struct {
	Base
	ParentID int `xml:"Parent"`
}

func (s *StationBus) Kind() string { return KindStationBus }

func (s *StationBus) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}
