package objects

import "github.com/loopj/aiovantage-sub001/capability"

// Master is a Vantage InFusion controller itself, grounded on
// config_client/objects/master.py.
type Master struct {
	Base
	Number       int     `xml:"Number"`
	Volts        float64 `xml:"Volts"`
	Amps         float64 `xml:"Amps"`
	ModuleCount  int     `xml:"ModuleCount"`
	SerialNumber int     `xml:"SerialNumber"`
}

func (m *Master) Kind() string { return KindMaster }

func (m *Master) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}

// LineFeed describes a single power feed on a Module/ModuleGen2 backplane,
// grounded on _objects/module.py's Module.LineFeed.
type LineFeed struct {
	Name     string `xml:",chardata"`
	Amperage int    `xml:"amperage,attr"`
	Voltage  int    `xml:"voltage,attr"`
	Position int    `xml:"position,attr"`
}

// Module is a Vantage enclosure module, grounded on _objects/module.py.
type Module struct {
	Base
	Parent        ParentRef  `xml:"Parent"`
	LineFeedTable []LineFeed `xml:"LineFeedTable>LineFeed"`
	Join1         bool       `xml:"Join1"`
	Join2         bool       `xml:"Join2"`
	Join3         bool       `xml:"Join3"`
	Join4         bool       `xml:"Join4"`
	QuietMode     bool       `xml:"QuietMode"`
}

func (m *Module) Kind() string { return KindModule }

func (m *Module) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}

// ModuleGen2 is a second-generation enclosure module (e.g. SDM12-EM,
// UDM08-EM), grounded on _objects/module_gen2.py.
type ModuleGen2 struct {
	Base
	Parent        ParentRef  `xml:"Parent"`
	LineFeedTable []LineFeed `xml:"LineFeedTable>LineFeed"`
	QuietMode     bool       `xml:"QuietMode"`
	LegacyMode    bool       `xml:"LegacyMode"`
	Alert         int        `xml:"Alert"`
}

func (m *ModuleGen2) Kind() string { return KindModuleGen2 }

func (m *ModuleGen2) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}
