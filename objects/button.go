package objects

import (
	"context"

	"github.com/loopj/aiovantage-sub001/capability"
)

// ButtonState is a Button's pressed/released state, grounded on
// config_client/objects/button.py's Button.State.
type ButtonState int

const (
	ButtonUp   ButtonState = 0
	ButtonDown ButtonState = 1
)

// Button is a keypad or station button, grounded on
// config_client/objects/button.py.
type Button struct {
	Base
	ParentID   int    `xml:"Parent"`
	Text1      string `xml:"Text1"`
	Text2      string `xml:"Text2"`
	UpTaskID   int    `xml:"Up"`
	DownTaskID int    `xml:"Down"`
	HoldTaskID int    `xml:"Hold"`

	State ButtonState `xml:"-"`
}

func (b *Button) Kind() string { return KindButton }

func (b *Button) Capabilities() []Capability {
	return []Capability{capability.KindButton, capability.KindObject}
}

// HasTask reports whether any of the button's press/release/hold actions
// trigger a task.
func (b *Button) HasTask() bool {
	return b.UpTaskID != 0 || b.DownTaskID != 0 || b.HoldTaskID != 0
}

func (b *Button) buttonCapability() capability.Button {
	return capability.Button{Client: b.Client()}
}

// Press simulates pressing the button.
func (b *Button) Press(ctx context.Context) error {
	return b.buttonCapability().Press(ctx, int(b.VID))
}

// Release simulates releasing the button.
func (b *Button) Release(ctx context.Context) error {
	return b.buttonCapability().Release(ctx, int(b.VID))
}

// PressAndRelease simulates a full press-then-release.
func (b *Button) PressAndRelease(ctx context.Context) error {
	return b.buttonCapability().PressAndRelease(ctx, int(b.VID))
}

// FetchState refreshes State from the controller and returns the field
// names that changed.
func (b *Button) FetchState(ctx context.Context) ([]string, error) {
	down, err := b.buttonCapability().GetState(ctx, int(b.VID))
	if err != nil {
		return nil, err
	}
	state := ButtonUp
	if down {
		state = ButtonDown
	}
	if state == b.State {
		return nil, nil
	}
	b.State = state
	return []string{"State"}, nil
}
