package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// PowerProfilesController tracks every PowerProfile (and its DC/PWM
// variants), grounded on _controllers/power_profiles.py's
// PowerProfilesController. Power profiles are static configuration with no
// runtime state, so this controller never enables status monitoring.
type PowerProfilesController struct {
	*Base[objects.Object]
}

// NewPowerProfilesController builds a PowerProfilesController bound to
// cfg/cmd/dispatcher.
func NewPowerProfilesController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *PowerProfilesController {
	base := NewBase[objects.Object](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindPowerProfile, objects.KindDCPowerProfile, objects.KindPWMPowerProfile}
	return &PowerProfilesController{Base: base}
}
