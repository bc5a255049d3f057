package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// KeypadsController tracks every ScenePoint keypad-family station (Keypad,
// Dimmer, DualRelayStation, ScenePointRelay), grounded by analogy to
// buttons.py/gmem.py's single-family controllers: the original groups these
// devices only under the broader StationsController, but this client also
// exposes a narrower, sounder-capability-focused controller since every
// member here shares SetVolume.
type KeypadsController struct {
	*Base[objects.Object]
}

// NewKeypadsController builds a KeypadsController bound to
// cfg/cmd/dispatcher.
func NewKeypadsController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *KeypadsController {
	base := NewBase[objects.Object](cfg, cmd, dispatcher)
	base.WireTags = []string{
		objects.KindKeypad, objects.KindDimmer, objects.KindDualRelayStation, objects.KindScenePointRelay,
	}
	return &KeypadsController{Base: base}
}
