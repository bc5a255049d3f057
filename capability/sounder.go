package capability

import (
	"context"
	"fmt"
	"strconv"

	"github.com/loopj/aiovantage-sub001/commandclient"
)

// Sounder implements the Sounder.* INVOKE interface used by station
// objects with a built-in piezo (EqCtrl, Keypad). The retrieval pack
// references object_interfaces.SounderInterface but does not include its
// source; the method names here follow the Get/Set naming convention used
// uniformly by every other command_client/interfaces/*.py file.
type Sounder struct {
	Client *commandclient.Client
}

// GetVolume returns the sounder's volume, 0-100.
func (s Sounder) GetVolume(ctx context.Context, vid int) (int, error) {
	result, err := s.Client.Invoke(ctx, vid, "Sounder.GetVolume")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(result[1])
}

// SetVolume sets the sounder's volume, clamped to 0-100.
func (s Sounder) SetVolume(ctx context.Context, vid int, volume int) error {
	_, err := s.Client.Invoke(ctx, vid, "Sounder.SetVolume", strconv.Itoa(clampInt(volume, 0, 100)))
	return err
}

// GetSoundType returns the sounder's active sound type index.
func (s Sounder) GetSoundType(ctx context.Context, vid int) (int, error) {
	result, err := s.Client.Invoke(ctx, vid, "Sounder.GetSoundType")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(result[1])
}

// SetSoundType sets the sounder's active sound type index.
func (s Sounder) SetSoundType(ctx context.Context, vid int, soundType int) error {
	_, err := s.Client.Invoke(ctx, vid, "Sounder.SetSoundType", strconv.Itoa(soundType))
	return err
}

// ParseObjectStatus handles Sounder.GetVolume and Sounder.GetSoundType.
func (s Sounder) ParseObjectStatus(method string, args []string) (field string, value any, err error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: %s: missing argument", method)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("capability: %s: %w", method, err)
	}
	switch method {
	case "Sounder.GetVolume":
		return "Volume", n, nil
	case "Sounder.GetSoundType":
		return "SoundType", n, nil
	default:
		return "", nil, fmt.Errorf("capability: Sounder: unhandled method %q", method)
	}
}
