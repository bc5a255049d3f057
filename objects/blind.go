package objects

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/capability"
	"github.com/shopspring/decimal"
)

// Blind is a motorized shade/blind, grounded on
// config_client/objects/blind.py.
type Blind struct {
	LocationBase
	Parent      *ParentRef `xml:"Parent"`
	Orientation string     `xml:"ShadeOrientation,attr"`
	Type        string     `xml:"ShadeType,attr"`

	Position decimal.Decimal `xml:"-"`
}

func (b *Blind) Kind() string                      { return KindBlind }
func (b *Blind) Capabilities() []Capability        { return []Capability{capability.KindBlind, capability.KindObject} }
func (b *Blind) blindCapability() capability.Blind { return capability.Blind{Client: b.Client()} }

// Open opens the blind fully.
func (b *Blind) Open(ctx context.Context) error { return b.blindCapability().Open(ctx, int(b.VID)) }

// Close closes the blind fully.
func (b *Blind) Close(ctx context.Context) error { return b.blindCapability().Close(ctx, int(b.VID)) }

// Stop halts any in-progress blind movement.
func (b *Blind) Stop(ctx context.Context) error { return b.blindCapability().Stop(ctx, int(b.VID)) }

// SetPosition moves the blind to position, 0-100.
func (b *Blind) SetPosition(ctx context.Context, position float64) error {
	return b.blindCapability().SetPosition(ctx, int(b.VID), position)
}

// FetchState refreshes Position from the controller and returns the field
// names that changed.
func (b *Blind) FetchState(ctx context.Context) ([]string, error) {
	pos, err := b.blindCapability().GetPosition(ctx, int(b.VID))
	if err != nil {
		return nil, fmt.Errorf("objects: Blind %d: %w", b.VID, err)
	}
	if pos.Equal(b.Position) {
		return nil, nil
	}
	b.Position = pos
	return []string{"Position"}, nil
}

// QISBlind is a QIS-protocol variant of Blind, grounded on
// config_client/objects/qis_blind.py.
type QISBlind struct{ Blind }

func (b *QISBlind) Kind() string { return KindQISBlind }

// QubeBlind is a Qube-protocol variant of Blind, grounded on
// config_client/objects/qube_blind.py.
type QubeBlind struct{ Blind }

func (b *QubeBlind) Kind() string { return KindQubeBlind }

// RelayBlind is a relay-driven variant of Blind, grounded on
// config_client/objects/relay_blind.py.
type RelayBlind struct{ Blind }

func (b *RelayBlind) Kind() string { return KindRelayBlind }

// BlindGroup is a named collection of blinds moved together, grounded on
// config_client/objects/blind_group.py.
type BlindGroup struct {
	LocationBase
	BlindIDs []VID `xml:"BlindTable>Blind"`
}

func (g *BlindGroup) Kind() string               { return KindBlindGroup }
func (g *BlindGroup) Capabilities() []Capability { return []Capability{capability.KindObject} }
