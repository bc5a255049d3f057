package capability

import (
	"context"
	"fmt"
	"strconv"

	"github.com/loopj/aiovantage-sub001/commandclient"
)

// Button implements the Button.* INVOKE interface, grounded on
// command_client/interfaces/button.py.
type Button struct {
	Client *commandclient.Client
}

// GetState returns whether the button is currently pressed.
func (b Button) GetState(ctx context.Context, vid int) (bool, error) {
	result, err := b.Client.Invoke(ctx, vid, "Button.GetState")
	if err != nil {
		return false, err
	}
	switch result[1] {
	case "Up":
		return false, nil
	case "Down":
		return true, nil
	default:
		return false, fmt.Errorf("capability: Button.GetState: invalid state %q", result[1])
	}
}

// SetState presses or releases the button.
func (b Button) SetState(ctx context.Context, vid int, pressed bool) error {
	state := "0"
	if pressed {
		state = "1"
	}
	_, err := b.Client.Invoke(ctx, vid, "Button.SetState", state)
	return err
}

func (b Button) Press(ctx context.Context, vid int) error   { return b.SetState(ctx, vid, true) }
func (b Button) Release(ctx context.Context, vid int) error { return b.SetState(ctx, vid, false) }

// PressAndRelease sends a press immediately followed by a release.
func (b Button) PressAndRelease(ctx context.Context, vid int) error {
	if err := b.Press(ctx, vid); err != nil {
		return err
	}
	return b.Release(ctx, vid)
}

// ParseCategoryStatus parses an "S:BTN" event into the button's pressed
// state.
func (b Button) ParseCategoryStatus(args []string) (field string, value any, err error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: S:BTN: missing argument")
	}
	switch args[0] {
	case "RELEASE":
		return "State", false, nil
	case "PRESS":
		return "State", true, nil
	default:
		return "", nil, fmt.Errorf("capability: S:BTN: invalid state %q", args[0])
	}
}

// ParseObjectStatus handles Button.GetState.
func (b Button) ParseObjectStatus(method string, args []string) (field string, value any, err error) {
	if method != "Button.GetState" {
		return "", nil, fmt.Errorf("capability: Button: unhandled method %q", method)
	}
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: %s: missing argument", method)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("capability: %s: %w", method, err)
	}
	return "State", n != 0, nil
}
