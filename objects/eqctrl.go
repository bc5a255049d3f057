package objects

import (
	"context"

	"github.com/loopj/aiovantage-sub001/capability"
)

// EqCtrlHeader identifies the touchscreen page layout a controller is
// running, grounded on _objects/eq_ctrl.py's EqCtrl.Header.
type EqCtrlHeader struct {
	Object int    `xml:",chardata"`
	Type   string `xml:"type,attr"`
}

// EqCtrl is an Equinox 40 touchscreen station, grounded on
// config_client/objects/eq_ctrl.py + _objects/eq_ctrl.py.
type EqCtrl struct {
	StationBase
	Pages       int          `xml:"Pages"`
	Activate    int          `xml:"Activate"`
	Style       int          `xml:"Style"`
	Header      EqCtrlHeader `xml:"Header"`
	Zone        int          `xml:"Zone"`
	PresetTable []int        `xml:"PresetTable>Preset"`
}

func (e *EqCtrl) Kind() string { return KindEqCtrl }

func (e *EqCtrl) Capabilities() []Capability {
	return []Capability{capability.KindSounder, capability.KindObject}
}

// SetVolume sets the touchscreen's beeper volume, 0-100.
func (e *EqCtrl) SetVolume(ctx context.Context, volume int) error {
	return capability.Sounder{Client: e.Client()}.SetVolume(ctx, int(e.VID), volume)
}
