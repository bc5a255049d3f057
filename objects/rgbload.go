package objects

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/capability"
)

// ColorType enumerates the wire-level color model a color load uses,
// grounded on config_client/objects/rgb_load.py's RGBLoad.ColorType.
type ColorType string

const (
	ColorTypeRGB          ColorType = "RGB"
	ColorTypeRGBW         ColorType = "RGBW"
	ColorTypeHSL          ColorType = "HSL"
	ColorTypeHSIC         ColorType = "HSIC"
	ColorTypeCCT          ColorType = "CCT"
	ColorTypeColorChannel ColorType = "Color Channel"
)

// RGBLoad is a color-capable load, grounded on
// config_client/objects/rgb_load.py + rgb_load_base.py.
type RGBLoad struct {
	LocationBase
	Parent    *ParentRef `xml:"Parent"`
	ColorType ColorType  `xml:"ColorType"`
	MinTemp   int        `xml:"MinTemp"`
	MaxTemp   int        `xml:"MaxTemp"`

	Level     float64 `xml:"-"`
	RGB       [3]int  `xml:"-"`
	ColorTemp int     `xml:"-"`
}

func (r *RGBLoad) Kind() string { return KindRGBLoad }

func (r *RGBLoad) Capabilities() []Capability {
	caps := []Capability{capability.KindLoad, capability.KindRGBLoad, capability.KindObject}
	if r.ColorType == ColorTypeCCT {
		caps = append(caps, capability.KindColorTemperature)
	}
	return caps
}

func (r *RGBLoad) loadCapability() capability.Load       { return capability.Load{Client: r.Client()} }
func (r *RGBLoad) rgbCapability() capability.RGBLoad      { return capability.RGBLoad{Client: r.Client()} }
func (r *RGBLoad) ctCapability() capability.ColorTemperature {
	return capability.ColorTemperature{Client: r.Client()}
}

// IsRGB reports whether the load's color model is byte-channel based
// (RGB/RGBW/HSL) rather than CCT/color-channel.
func (r *RGBLoad) IsRGB() bool {
	switch r.ColorType {
	case ColorTypeRGB, ColorTypeRGBW, ColorTypeHSL:
		return true
	}
	return false
}

// TurnOn turns the load on at full level, ramping over transition seconds
// if nonzero.
func (r *RGBLoad) TurnOn(ctx context.Context, transition float64) error {
	return r.loadCapability().TurnOn(ctx, int(r.VID), transition, 100)
}

// TurnOff turns the load off, ramping over transition seconds if nonzero.
func (r *RGBLoad) TurnOff(ctx context.Context, transition float64) error {
	return r.loadCapability().TurnOff(ctx, int(r.VID), transition)
}

// SetLevel sets brightness, 0-100.
func (r *RGBLoad) SetLevel(ctx context.Context, level float64) error {
	return r.loadCapability().SetLevel(ctx, int(r.VID), level)
}

// SetRGB sets the red/green/blue channels, 0-255 each.
func (r *RGBLoad) SetRGB(ctx context.Context, red, green, blue int) error {
	return r.rgbCapability().SetRGB(ctx, int(r.VID), red, green, blue)
}

// SetRGBW sets the red/green/blue/white channels, 0-255 each.
func (r *RGBLoad) SetRGBW(ctx context.Context, red, green, blue, white int) error {
	return r.rgbCapability().SetRGBW(ctx, int(r.VID), red, green, blue, white)
}

// SetColorTemp sets the color temperature in Kelvin, transitioning over
// transitionSeconds. Only meaningful when ColorType is CCT.
func (r *RGBLoad) SetColorTemp(ctx context.Context, temp, transitionSeconds int) error {
	return r.ctCapability().SetColorTemp(ctx, int(r.VID), temp, transitionSeconds)
}

// FetchState refreshes Level/RGB/ColorTemp from the controller and returns
// the field names that changed.
func (r *RGBLoad) FetchState(ctx context.Context) ([]string, error) {
	var changed []string

	level, err := r.loadCapability().GetLevel(ctx, int(r.VID))
	if err != nil {
		return nil, fmt.Errorf("objects: RGBLoad %d: %w", r.VID, err)
	}
	if level != r.Level {
		r.Level = level
		changed = append(changed, "Level")
	}

	if r.ColorType == ColorTypeCCT {
		temp, err := r.ctCapability().GetColorTemp(ctx, int(r.VID))
		if err != nil {
			return nil, fmt.Errorf("objects: RGBLoad %d: %w", r.VID, err)
		}
		if temp != r.ColorTemp {
			r.ColorTemp = temp
			changed = append(changed, "ColorTemp")
		}
		return changed, nil
	}

	rgb, err := r.rgbCapability().GetRGB(ctx, int(r.VID))
	if err != nil {
		return nil, fmt.Errorf("objects: RGBLoad %d: %w", r.VID, err)
	}
	if rgb != r.RGB {
		r.RGB = rgb
		changed = append(changed, "RGB")
	}

	return changed, nil
}

// DGColorLoad is a Vantage DMX Gateway color load, grounded on
// config_client/objects/dg_color_load.py.
type DGColorLoad struct{ RGBLoad }

func (r *DGColorLoad) Kind() string { return KindDGColorLoad }

// DDGColorLoad is a Vantage DMX/DALI Gateway color load, grounded on
// config_client/objects/ddg_color_load.py.
type DDGColorLoad struct{ RGBLoad }

func (r *DDGColorLoad) Kind() string { return KindDDGColorLoad }
