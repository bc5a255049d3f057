package vantage

import (
	"testing"

	"github.com/loopj/aiovantage-sub001/events"
)

func TestNewWiresEveryController(t *testing.T) {
	c := New("127.0.0.1")

	accessors := map[string]bool{
		"Loads":         c.Loads() != nil,
		"RGBLoads":      c.RGBLoads() != nil,
		"Blinds":        c.Blinds() != nil,
		"Buttons":       c.Buttons() != nil,
		"DryContacts":   c.DryContacts() != nil,
		"GMem":          c.GMem() != nil,
		"Keypads":       c.Keypads() != nil,
		"Stations":      c.Stations() != nil,
		"Masters":       c.Masters() != nil,
		"Modules":       c.Modules() != nil,
		"OmniSensors":   c.OmniSensors() != nil,
		"LightSensors":  c.LightSensors() != nil,
		"AnemoSensors":  c.AnemoSensors() != nil,
		"Temperatures":  c.Temperatures() != nil,
		"Thermostats":   c.Thermostats() != nil,
		"Tasks":         c.Tasks() != nil,
		"PowerProfiles": c.PowerProfiles() != nil,
		"Areas":         c.Areas() != nil,
		"BackBoxes":     c.BackBoxes() != nil,
		"PortDevices":   c.PortDevices() != nil,
		"StationBus":    c.StationBus() != nil,
	}
	for name, ok := range accessors {
		if !ok {
			t.Errorf("%s() returned nil", name)
		}
	}

	if got := len(c.controllers()); got != len(accessors) {
		t.Errorf("controllers() has %d entries, want %d", got, len(accessors))
	}
}

func TestNewAppliesOptions(t *testing.T) {
	c := New("127.0.0.1", WithCredentials("admin", "hunter2"), WithTLS(false))

	if c.cfg == nil || c.cmd == nil {
		t.Fatal("New did not construct underlying clients")
	}
}

func TestSubscribeForwardsDispatcherEvents(t *testing.T) {
	c := New("127.0.0.1")

	var got []any
	unsub := c.Subscribe(func(e any) {
		got = append(got, e)
	})
	defer unsub()

	c.dispatcher.Emit(events.Connected{})
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if _, ok := got[0].(events.Connected); !ok {
		t.Errorf("got %T, want events.Connected", got[0])
	}
}
