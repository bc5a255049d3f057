// Package objects defines the flattened Go type system for every concrete
// Vantage object kind: identity/location/station base structs, the
// capability tag set, and one struct per wire tag from the config client's
// XML object model.
package objects

import "time"

// VID identifies an object uniquely within a controller's object database.
type VID int

// Object is implemented by every concrete type in this package: identity,
// the wire tag used for config-client filtering and decoding, and the set
// of capability interfaces the object implements.
type Object interface {
	ObjectVID() VID
	Kind() string
	Capabilities() []Capability
}

// Base holds the fields every SystemObject carries, grounded on
// config_client/objects/system_object.go's SystemObject dataclass.
type Base struct {
	VID         VID       `xml:"VID,attr"`
	MasterID    int       `xml:"Master,attr"`
	MTime       time.Time `xml:"MTime,attr"`
	Name        string    `xml:"Name"`
	Note        string    `xml:"Note"`
	Model       string    `xml:"Model"`
	DisplayName string    `xml:"DName"`

	client client `xml:"-"`
}

// ObjectVID returns the object's VID, satisfying Object.
func (b *Base) ObjectVID() VID { return b.VID }

// LocationBase adds area/location placement, grounded on
// config_client/objects/location_object.py's LocationObject.
type LocationBase struct {
	Base
	AreaID   int    `xml:"Area"`
	Location string `xml:"Location"`
}

// StationBase adds the station bus attachment fields, grounded on
// config_client/objects/station_object.py's StationObject.
type StationBase struct {
	LocationBase
	SerialNumber string `xml:"SerialNumber"`
	BusID        int    `xml:"Bus"`
}

// ParentRef mirrors the original's ChildObject.Parent: a child object's
// owning object VID and its position within that parent, grounded on
// config_client/objects/child_object.py.
type ParentRef struct {
	VID      VID `xml:",chardata"`
	Position int `xml:"Position,attr"`
}
