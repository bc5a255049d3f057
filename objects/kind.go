package objects

import "github.com/loopj/aiovantage-sub001/capability"

// Capability is a re-export of capability.Kind for callers that only need
// the objects package, keeping the import surface of a simple program
// (e.g. cmd/vantagectl) to this package alone.
type Capability = capability.Kind

// Known wire tags, grounded on config_client/objects/__init__.py's
// CONCRETE_TYPES and the flattened object family it enumerates.
const (
	KindArea             = "Area"
	KindLoad             = "Load"
	KindLoadGroup        = "LoadGroup"
	KindBlind            = "Blind"
	KindBlindGroup       = "BlindGroup"
	KindQISBlind         = "QISBlind"
	KindQubeBlind        = "QubeBlind"
	KindRelayBlind       = "RelayBlind"
	KindButton           = "Button"
	KindDryContact       = "DryContact"
	KindGMem             = "GMem"
	KindKeypad           = "Keypad"
	KindDimmer           = "Dimmer"
	KindDualRelayStation = "DualRelayStation"
	KindScenePointRelay  = "ScenePointRelay"
	KindEqCtrl           = "EqCtrl"
	KindEqUX             = "EqUX"
	KindMaster           = "Master"
	KindModule           = "Module"
	KindModuleGen2       = "ModuleGen2"
	KindOmniSensor       = "OmniSensor"
	KindLightSensor      = "LightSensor"
	KindAnemoSensor      = "AnemoSensor"
	KindTemperature      = "Temperature"
	KindThermostat       = "Thermostat"
	KindTask             = "Task"
	KindPowerProfile     = "PowerProfile"
	KindDCPowerProfile   = "DCPowerProfile"
	KindPWMPowerProfile  = "PWMPowerProfile"
	KindStationBus       = "StationBus"
	KindBackBox          = "BackBox"

	// Port devices: gateway/hub objects reached through a bus rather than
	// an area, grounded on _controllers/port_devices.py's vantage_types.
	KindDmxGateway            = "Vantage.DmxGateway"
	KindDmxDaliGateway        = "Vantage.DmxDaliGateway"
	KindGenericHVACRS485Port  = "Vantage.Generic_HVAC_RS485_PORT"
	KindHVACIUPort            = "Vantage.HVAC-IU_PORT"
	KindSomfyRS485Port        = "Somfy.RS-485_SDN_2_x2E_0_PORT"
	KindSomfyURTSI2Port       = "Somfy.URTSI_2_PORT"

	// RGB loads and their dotted-namespace Vantage gateway children.
	KindRGBLoad      = "RGBLoad"
	KindDGColorLoad  = "Vantage.DGColorLoad"
	KindDDGColorLoad = "Vantage.DDGColorLoad"

	// Somfy dotted-namespace children.
	KindURTSI2Shade       = "Somfy.URTSI_2_Shade_CHILD"
	KindURTSI2GroupChild  = "Somfy.URTSI_2_Group_CHILD"
	KindRS485ShadeChild   = "Somfy.RS-485_Shade_CHILD"
	KindRS485GroupChild   = "Somfy.RS-485_Group_CHILD"
)
