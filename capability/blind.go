package capability

import (
	"context"
	"fmt"
	"strconv"

	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/converter"
	"github.com/shopspring/decimal"
)

// Blind implements the Blind.* INVOKE interface, grounded on
// command_client/interfaces/blind.py.
type Blind struct {
	Client *commandclient.Client
}

// BlindState is the decoded shape of Blind.GetBlindState.
type BlindState struct {
	IsMoving       bool
	StartPos       decimal.Decimal
	EndPos         decimal.Decimal
	TransitionTime decimal.Decimal
	StartTime      int
}

func (b Blind) Open(ctx context.Context, vid int) error {
	_, err := b.Client.Invoke(ctx, vid, "Blind.Open")
	return err
}

func (b Blind) Close(ctx context.Context, vid int) error {
	_, err := b.Client.Invoke(ctx, vid, "Blind.Close")
	return err
}

func (b Blind) Stop(ctx context.Context, vid int) error {
	_, err := b.Client.Invoke(ctx, vid, "Blind.Stop")
	return err
}

// GetPosition returns the blind's position, 0-100.
func (b Blind) GetPosition(ctx context.Context, vid int) (decimal.Decimal, error) {
	result, err := b.Client.Invoke(ctx, vid, "Blind.GetPosition")
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(result[1])
}

// SetPosition sets the blind's position, 0-100.
func (b Blind) SetPosition(ctx context.Context, vid int, position float64) error {
	_, err := b.Client.Invoke(ctx, vid, "Blind.SetPosition", converter.EncodeFixed(decimalOf(position)))
	return err
}

// ParseCategoryStatus parses an "S:BLIND" event into the blind's position.
func (b Blind) ParseCategoryStatus(args []string) (field string, value any, err error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: S:BLIND: missing argument")
	}
	pos, err := decimal.NewFromString(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("capability: S:BLIND: %w", err)
	}
	return "Position", pos, nil
}

// ParseObjectStatus handles Blind.GetPosition and Blind.GetBlindState.
func (b Blind) ParseObjectStatus(method string, args []string) (field string, value any, err error) {
	switch method {
	case "Blind.GetPosition":
		if len(args) < 1 {
			return "", nil, fmt.Errorf("capability: %s: missing argument", method)
		}
		raw, err := decimal.NewFromString(args[0])
		if err != nil {
			return "", nil, fmt.Errorf("capability: %s: %w", method, err)
		}
		return "Position", raw.Div(decimal.NewFromInt(1000)), nil
	case "Blind.GetBlindState":
		if len(args) < 5 {
			return "", nil, fmt.Errorf("capability: %s: expected 5 arguments, got %d", method, len(args))
		}
		state, err := parseBlindState(args)
		if err != nil {
			return "", nil, err
		}
		return "BlindState", state, nil
	default:
		return "", nil, fmt.Errorf("capability: Blind: unhandled method %q", method)
	}
}

func parseBlindState(args []string) (BlindState, error) {
	moving, err := strconv.Atoi(args[0])
	if err != nil {
		return BlindState{}, fmt.Errorf("capability: Blind.GetBlindState: %w", err)
	}
	start, err := decimal.NewFromString(args[1])
	if err != nil {
		return BlindState{}, fmt.Errorf("capability: Blind.GetBlindState: %w", err)
	}
	end, err := decimal.NewFromString(args[2])
	if err != nil {
		return BlindState{}, fmt.Errorf("capability: Blind.GetBlindState: %w", err)
	}
	transition, err := decimal.NewFromString(args[3])
	if err != nil {
		return BlindState{}, fmt.Errorf("capability: Blind.GetBlindState: %w", err)
	}
	startTime, err := strconv.Atoi(args[4])
	if err != nil {
		return BlindState{}, fmt.Errorf("capability: Blind.GetBlindState: %w", err)
	}

	thousand := decimal.NewFromInt(1000)
	return BlindState{
		IsMoving:       moving != 0,
		StartPos:       start.Div(thousand),
		EndPos:         end.Div(thousand),
		TransitionTime: transition.Div(thousand),
		StartTime:      startTime,
	}, nil
}
