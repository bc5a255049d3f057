package objects

import "github.com/loopj/aiovantage-sub001/capability"

// PortDevice is a gateway/hub reached through a bus rather than an area
// (DMX gateways, Somfy RS-485/URTSI 2 ports, HVAC RS-485 ports); useful
// only for reconstructing device hierarchy, grounded on
// config_client/models/port_device.py + _controllers/port_devices.py.
type PortDevice struct {
	Base
	kind string
}

// Kind returns the device's actual wire tag (DmxGateway, RS-485 port,
// etc.), set by the registry constructor that created it.
func (p *PortDevice) Kind() string { return p.kind }

func (p *PortDevice) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}
