package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// StationsController tracks every station-family object (keypads, touch
// panels, relay stations), useful mostly for device-hierarchy
// reconstruction, grounded on _controllers/stations.py's
// StationsController. Unlike the original, which also tracks several wire
// tags this client has no Go type for (ContactInput, DINContactInput,
// IRX2, RS232Station, RS485Station, the DIN relay stations), this
// controller is limited to the station kinds this package models.
type StationsController struct {
	*Base[objects.Object]
}

// NewStationsController builds a StationsController bound to
// cfg/cmd/dispatcher.
func NewStationsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *StationsController {
	base := NewBase[objects.Object](cfg, cmd, dispatcher)
	base.WireTags = []string{
		objects.KindDimmer, objects.KindDualRelayStation, objects.KindEqCtrl, objects.KindEqUX,
		objects.KindKeypad, objects.KindScenePointRelay, objects.KindDmxDaliGateway,
	}
	return &StationsController{Base: base}
}
