package objects

import "github.com/loopj/aiovantage-sub001/capability"

// DryContact is a dry-contact input (doorbell, security sensor, etc.),
// grounded on config_client/objects/dry_contact.py.
type DryContact struct {
	LocationBase
	ParentID int `xml:"Parent"`

	State ButtonState `xml:"-"`
}

func (d *DryContact) Kind() string { return KindDryContact }

func (d *DryContact) Capabilities() []Capability {
	return []Capability{capability.KindButton, capability.KindObject}
}
