package objects

import (
	"context"

	"github.com/loopj/aiovantage-sub001/capability"
)

// Keypad is a ScenePoint keypad station, grounded on
// config_client/objects/keypad.py.
type Keypad struct {
	StationBase
	Parent ParentRef `xml:"Parent"`
}

func (k *Keypad) Kind() string { return KindKeypad }

func (k *Keypad) Capabilities() []Capability {
	return []Capability{capability.KindSounder, capability.KindObject}
}

func (k *Keypad) sounderCapability() capability.Sounder {
	return capability.Sounder{Client: k.Client()}
}

// SetVolume sets the keypad's beeper volume, 0-100.
func (k *Keypad) SetVolume(ctx context.Context, volume int) error {
	return k.sounderCapability().SetVolume(ctx, int(k.VID), volume)
}

// Dimmer is a ScenePoint Dimmer station, grounded on
// config_client/models/dimmer.py + _objects/dimmer.py.
type Dimmer struct {
	Keypad
	Gang        int    `xml:"Gang"`
	Distributed bool   `xml:"Distributed"`
	NoNeutral   bool   `xml:"NoNeutral"`
	Voltage     int    `xml:"Voltage"`
	Alert       string `xml:"Alert"`
}

func (d *Dimmer) Kind() string { return KindDimmer }

// DualRelayStation is a ScenePoint Dual Relay station, grounded on
// config_client/models/dual_relay_station.py + _objects/dual_relay_station.py.
type DualRelayStation struct {
	Keypad
	ShadeController bool `xml:"ShadeController"`
	ReverseShade    bool `xml:"ReverseShade"`
}

func (d *DualRelayStation) Kind() string { return KindDualRelayStation }

// ScenePointRelay is a ScenePoint Relay station, grounded on the sibling
// keypad-family stations (dimmer.py, dual_relay_station.py): a plain
// sounder-capable keypad with no additional fields.
type ScenePointRelay struct {
	Keypad
}

func (s *ScenePointRelay) Kind() string { return KindScenePointRelay }
