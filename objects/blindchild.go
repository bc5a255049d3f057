package objects

import (
	"context"

	"github.com/loopj/aiovantage-sub001/capability"
	"github.com/shopspring/decimal"
)

// blindChildBase holds the fields shared by every gateway-attached blind
// child (Somfy RS-485/URTSI 2 shades), grounded on
// config_client/objects/blind_base.py + child_object.py: these are plain
// SystemObjects (not LocationObjects) reached only through a parent
// gateway device, so they carry a ParentRef instead of an AreaID.
type blindChildBase struct {
	Base
	Parent      ParentRef `xml:"Parent"`
	Orientation string    `xml:"ShadeOrientation,attr"`
	Type        string    `xml:"ShadeType,attr"`

	Position decimal.Decimal `xml:"-"`
}

func (b *blindChildBase) blindCapability() capability.Blind {
	return capability.Blind{Client: b.Client()}
}

func (b *blindChildBase) Open(ctx context.Context) error {
	return b.blindCapability().Open(ctx, int(b.VID))
}

func (b *blindChildBase) Close(ctx context.Context) error {
	return b.blindCapability().Close(ctx, int(b.VID))
}

func (b *blindChildBase) Stop(ctx context.Context) error {
	return b.blindCapability().Stop(ctx, int(b.VID))
}

func (b *blindChildBase) SetPosition(ctx context.Context, position float64) error {
	return b.blindCapability().SetPosition(ctx, int(b.VID), position)
}

func (b *blindChildBase) Capabilities() []Capability {
	return []Capability{capability.KindBlind, capability.KindObject}
}

// URTSI2Shade is a Somfy URTSI 2 blind reached through a URTSI 2 gateway,
// grounded on config_client/objects/urtsi_2_shade.py.
type URTSI2Shade struct{ blindChildBase }

func (s *URTSI2Shade) Kind() string { return KindURTSI2Shade }

// SomfyRS485ShadeChild is a Somfy RS-485 SDN 2.0 blind, grounded on
// config_client/objects/somfy/rs485_shade.py.
type SomfyRS485ShadeChild struct{ blindChildBase }

func (s *SomfyRS485ShadeChild) Kind() string { return KindRS485ShadeChild }

// blindGroupChildBase is the group-bookkeeping counterpart of
// blindChildBase: a collection of child blinds with no directly invokable
// capability of its own, grounded on
// config_client/models/blind_group_base.py + child_device.py.
type blindGroupChildBase struct {
	Base
	Parent ParentRef `xml:"Parent"`
}

func (g *blindGroupChildBase) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}

// SomfyURTSI2GroupChild is a Somfy URTSI 2 blind group, grounded on
// config_client/objects/somfy/urtsi_2_group.py.
type SomfyURTSI2GroupChild struct{ blindGroupChildBase }

func (g *SomfyURTSI2GroupChild) Kind() string { return KindURTSI2GroupChild }

// SomfyRS485GroupChild is a Somfy RS-485 SDN 2.0 blind group, grounded on
// config_client/objects/somfy/rs485_group.py.
type SomfyRS485GroupChild struct{ blindGroupChildBase }

func (g *SomfyRS485GroupChild) Kind() string { return KindRS485GroupChild }
