package capability

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/converter"
)

// GMem implements the variable-access commands (GETVARIABLE/VARIABLE),
// grounded on command_client/interfaces/gmem.py. Unlike the other
// capabilities this does not go through INVOKE: variables are addressed
// directly by their own top-level command pair.
type GMem struct {
	Client *commandclient.Client
}

// GetValue returns the raw wire-format value of a variable.
func (g GMem) GetValue(ctx context.Context, vid int) (string, error) {
	result, err := g.Client.Command(ctx, "GETVARIABLE", converter.EncodeInt(vid))
	if err != nil {
		return "", err
	}
	if len(result) < 2 {
		return "", fmt.Errorf("capability: GETVARIABLE %d: short reply", vid)
	}
	return result[1], nil
}

// SetValue sets a variable's value, always quoting it (the original forces
// quotes so the controller accepts bool/int/str uniformly).
func (g GMem) SetValue(ctx context.Context, vid int, value string) error {
	_, err := g.Client.Command(ctx, "VARIABLE", converter.EncodeInt(vid), converter.EncodeString(value))
	return err
}

// ParseCategoryStatus parses an "S:VARIABLE" event into the variable's raw
// value.
func (g GMem) ParseCategoryStatus(args []string) (field string, value any, err error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: S:VARIABLE: missing argument")
	}
	return "Value", args[0], nil
}
