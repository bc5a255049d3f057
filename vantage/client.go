// Package vantage provides a single facade over the config and command
// clients plus every object-family controller, grounded on aiovantage's
// top-level Vantage class (aiovantage/vantage.py) wiring ConfigClient +
// CommandClient + one controller per object family behind a single
// connect/close lifecycle.
package vantage

import (
	"context"
	"fmt"
	"sync"

	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/controller"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/internal/vlog"
)

var log = vlog.Get("vantage")

// Client is the top-level entry point: one config client connection, one
// command client connection, and a controller per object family, all
// sharing a single event dispatcher.
type Client struct {
	cfg *configclient.Client
	cmd *commandclient.Client

	dispatcher *events.Dispatcher

	mu        sync.Mutex
	connected bool

	loads         *controller.LoadsController
	rgbLoads      *controller.RGBLoadsController
	blinds        *controller.BlindsController
	buttons       *controller.ButtonsController
	dryContacts   *controller.DryContactsController
	gmem          *controller.GMemController
	keypads       *controller.KeypadsController
	stations      *controller.StationsController
	masters       *controller.MastersController
	modules       *controller.ModulesController
	omniSensors   *controller.OmniSensorsController
	lightSensors  *controller.LightSensorsController
	anemoSensors  *controller.AnemoSensorsController
	temperatures  *controller.TemperaturesController
	thermostats   *controller.ThermostatsController
	tasks         *controller.TasksController
	powerProfiles *controller.PowerProfilesController
	areas         *controller.AreasController
	backBoxes     *controller.BackBoxesController
	portDevices   *controller.PortDevicesController
	stationBus    *controller.StationBusController
}

// New builds a Client targeting host. No connection is opened until
// Connect is called.
func New(host string, opts ...Option) *Client {
	cfg := &config{useTLS: true}
	for _, opt := range opts {
		opt(cfg)
	}

	var cfgOpts []configclient.Option
	var cmdOpts []commandclient.Option
	if cfg.username != "" || cfg.password != "" {
		cfgOpts = append(cfgOpts, configclient.WithCredentials(cfg.username, cfg.password))
		cmdOpts = append(cmdOpts, commandclient.WithCredentials(cfg.username, cfg.password))
	}
	cfgOpts = append(cfgOpts, configclient.WithTLS(cfg.useTLS))
	cmdOpts = append(cmdOpts, commandclient.WithTLS(cfg.useTLS))
	if cfg.configPort != 0 {
		cfgOpts = append(cfgOpts, configclient.WithPort(cfg.configPort))
	}
	if cfg.commandPort != 0 {
		cmdOpts = append(cmdOpts, commandclient.WithPort(cfg.commandPort))
	}
	if cfg.connTimeout != 0 {
		cfgOpts = append(cfgOpts, configclient.WithConnTimeout(cfg.connTimeout))
		cmdOpts = append(cmdOpts, commandclient.WithConnTimeout(cfg.connTimeout))
	}
	if cfg.readTimeout != 0 {
		cfgOpts = append(cfgOpts, configclient.WithReadTimeout(cfg.readTimeout))
		cmdOpts = append(cmdOpts, commandclient.WithReadTimeout(cfg.readTimeout))
	}

	c := &Client{
		cfg:        configclient.New(host, cfgOpts...),
		cmd:        commandclient.New(host, cmdOpts...),
		dispatcher: &events.Dispatcher{},
	}

	c.loads = controller.NewLoadsController(c.cfg, c.cmd, c.dispatcher)
	c.rgbLoads = controller.NewRGBLoadsController(c.cfg, c.cmd, c.dispatcher)
	c.blinds = controller.NewBlindsController(c.cfg, c.cmd, c.dispatcher)
	c.buttons = controller.NewButtonsController(c.cfg, c.cmd, c.dispatcher)
	c.dryContacts = controller.NewDryContactsController(c.cfg, c.cmd, c.dispatcher)
	c.gmem = controller.NewGMemController(c.cfg, c.cmd, c.dispatcher)
	c.keypads = controller.NewKeypadsController(c.cfg, c.cmd, c.dispatcher)
	c.stations = controller.NewStationsController(c.cfg, c.cmd, c.dispatcher)
	c.masters = controller.NewMastersController(c.cfg, c.cmd, c.dispatcher)
	c.modules = controller.NewModulesController(c.cfg, c.cmd, c.dispatcher)
	c.omniSensors = controller.NewOmniSensorsController(c.cfg, c.cmd, c.dispatcher)
	c.lightSensors = controller.NewLightSensorsController(c.cfg, c.cmd, c.dispatcher)
	c.anemoSensors = controller.NewAnemoSensorsController(c.cfg, c.cmd, c.dispatcher)
	c.temperatures = controller.NewTemperaturesController(c.cfg, c.cmd, c.dispatcher)
	c.thermostats = controller.NewThermostatsController(c.cfg, c.cmd, c.dispatcher)
	c.tasks = controller.NewTasksController(c.cfg, c.cmd, c.dispatcher)
	c.powerProfiles = controller.NewPowerProfilesController(c.cfg, c.cmd, c.dispatcher)
	c.areas = controller.NewAreasController(c.cfg, c.cmd, c.dispatcher)
	c.backBoxes = controller.NewBackBoxesController(c.cfg, c.cmd, c.dispatcher)
	c.portDevices = controller.NewPortDevicesController(c.cfg, c.cmd, c.dispatcher)
	c.stationBus = controller.NewStationBusController(c.cfg, c.cmd, c.dispatcher)

	return c
}

// controllers lists every family's *Base[T] behind the non-generic
// controller.Controller interface, so Connect/Close can loop over them
// instead of repeating the same calls once per family.
func (c *Client) controllers() []controller.Controller {
	return []controller.Controller{
		c.loads.Base, c.rgbLoads.Base, c.blinds.Base, c.buttons.Base, c.dryContacts.Base,
		c.gmem.Base, c.keypads.Base, c.stations.Base, c.masters.Base, c.modules.Base,
		c.omniSensors.Base, c.lightSensors.Base, c.anemoSensors.Base, c.temperatures.Base,
		c.thermostats.Base, c.tasks.Base, c.powerProfiles.Base, c.areas.Base,
		c.backBoxes.Base, c.portDevices.Base, c.stationBus.Base,
	}
}

// Connect opens the config and command client connections, populates every
// controller from the config client's object database, and, when
// enableStateMonitoring is true, subscribes each controller to live status
// updates, grounded on aiovantage.vantage.Vantage.initialize.
func (c *Client) Connect(ctx context.Context, enableStateMonitoring bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		return nil
	}

	supportsEnhancedLog := true
	if _, err := c.cfg.GetVersion(ctx); err != nil {
		log.Warningf("version probe failed, assuming no enhanced log support: %v", err)
		supportsEnhancedLog = false
	}

	for _, ctl := range c.controllers() {
		ctl.SetSupportsEnhancedLog(supportsEnhancedLog)
		if err := ctl.Initialize(ctx, true, enableStateMonitoring); err != nil {
			return fmt.Errorf("vantage: initialize: %w", err)
		}
	}

	c.cmd.Subscribe(func(e commandclient.Event) {
		switch e.Tag {
		case commandclient.Connected:
			c.dispatcher.Emit(events.Connected{})
		case commandclient.Reconnected:
			c.dispatcher.Emit(events.Reconnected{})
			for _, ctl := range c.controllers() {
				ctl.HandleReconnect()
			}
		case commandclient.Disconnected:
			c.dispatcher.Emit(events.Disconnected{})
		}
	}, commandclient.Connected, commandclient.Reconnected, commandclient.Disconnected)

	c.connected = true
	return nil
}

// Close closes both underlying connections and cancels every controller's
// status subscription.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ctl := range c.controllers() {
		ctl.DisableStateMonitoring()
	}

	if err := c.cmd.Close(); err != nil {
		return fmt.Errorf("vantage: close command client: %w", err)
	}
	if err := c.cfg.Close(); err != nil {
		return fmt.Errorf("vantage: close config client: %w", err)
	}
	c.connected = false
	return nil
}

// Subscribe registers callback for every event this client emits: command
// connection lifecycle plus object add/update/delete notifications from
// every controller.
func (c *Client) Subscribe(callback events.Callback) events.Unsubscribe {
	return c.dispatcher.Subscribe(callback)
}

// Loads returns the LoadsController.
func (c *Client) Loads() *controller.LoadsController { return c.loads }

// RGBLoads returns the RGBLoadsController.
func (c *Client) RGBLoads() *controller.RGBLoadsController { return c.rgbLoads }

// Blinds returns the BlindsController.
func (c *Client) Blinds() *controller.BlindsController { return c.blinds }

// Buttons returns the ButtonsController.
func (c *Client) Buttons() *controller.ButtonsController { return c.buttons }

// DryContacts returns the DryContactsController.
func (c *Client) DryContacts() *controller.DryContactsController { return c.dryContacts }

// GMem returns the GMemController.
func (c *Client) GMem() *controller.GMemController { return c.gmem }

// Keypads returns the KeypadsController.
func (c *Client) Keypads() *controller.KeypadsController { return c.keypads }

// Stations returns the StationsController.
func (c *Client) Stations() *controller.StationsController { return c.stations }

// Masters returns the MastersController.
func (c *Client) Masters() *controller.MastersController { return c.masters }

// Modules returns the ModulesController.
func (c *Client) Modules() *controller.ModulesController { return c.modules }

// OmniSensors returns the OmniSensorsController.
func (c *Client) OmniSensors() *controller.OmniSensorsController { return c.omniSensors }

// LightSensors returns the LightSensorsController.
func (c *Client) LightSensors() *controller.LightSensorsController { return c.lightSensors }

// AnemoSensors returns the AnemoSensorsController.
func (c *Client) AnemoSensors() *controller.AnemoSensorsController { return c.anemoSensors }

// Temperatures returns the TemperaturesController.
func (c *Client) Temperatures() *controller.TemperaturesController { return c.temperatures }

// Thermostats returns the ThermostatsController.
func (c *Client) Thermostats() *controller.ThermostatsController { return c.thermostats }

// Tasks returns the TasksController.
func (c *Client) Tasks() *controller.TasksController { return c.tasks }

// PowerProfiles returns the PowerProfilesController.
func (c *Client) PowerProfiles() *controller.PowerProfilesController { return c.powerProfiles }

// Areas returns the AreasController.
func (c *Client) Areas() *controller.AreasController { return c.areas }

// BackBoxes returns the BackBoxesController.
func (c *Client) BackBoxes() *controller.BackBoxesController { return c.backBoxes }

// PortDevices returns the PortDevicesController.
func (c *Client) PortDevices() *controller.PortDevicesController { return c.portDevices }

// StationBus returns the StationBusController.
func (c *Client) StationBus() *controller.StationBusController { return c.stationBus }
