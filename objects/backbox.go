package objects

import "github.com/loopj/aiovantage-sub001/capability"

// BackBox is a gang box in a wall that may hold several stations or
// dimmers; useful only for reconstructing device hierarchy, grounded on
// _controllers/back_boxes.py (no dedicated field-bearing source file
// exists in the retrieval pack — a plain SystemObject, like PortDevice).
type BackBox struct {
	Base
}

func (b *BackBox) Kind() string { return KindBackBox }

func (b *BackBox) Capabilities() []Capability {
	return []Capability{capability.KindObject}
}
