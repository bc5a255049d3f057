package objects

import "github.com/loopj/aiovantage-sub001/capability"

// PowerProfile describes the electrical characteristics of a load's dimmer
// curve, grounded on aci_client/system_objects/power_profile.py.
type PowerProfile struct {
	Base
	Min       float64 `xml:"Min"`
	Max       float64 `xml:"Max"`
	Adjust    int     `xml:"Adjust"`
	Freq      int     `xml:"Freq"`
	Inductive bool    `xml:"Inductive"`
}

func (p *PowerProfile) Kind() string { return KindPowerProfile }

func (p *PowerProfile) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}

// DCPowerProfile is a PowerProfile variant for DC-driven loads, grounded on
// aci_client/system_objects/power_profile.py's DCPowerProfile.
type DCPowerProfile struct{ PowerProfile }

func (p *DCPowerProfile) Kind() string { return KindDCPowerProfile }

// PWMPowerProfile is a PowerProfile variant for PWM-driven loads, grounded
// on aci_client/system_objects/power_profile.py's PWMPowerProfile.
type PWMPowerProfile struct{ PowerProfile }

func (p *PWMPowerProfile) Kind() string { return KindPWMPowerProfile }
