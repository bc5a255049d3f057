package objects

// Registry maps a wire tag to a constructor for its Go type, generalizing
// the original's dataclass-registry reflection (xml_dataclass.py) into an
// explicit, hand-written static table per spec.md §9's guidance to avoid
// reflective XML decoding.
var Registry = map[string]func() Object{
	KindArea:             func() Object { return &Area{} },
	KindLoad:             func() Object { return &Load{} },
	KindLoadGroup:        func() Object { return &LoadGroup{} },
	KindBlind:            func() Object { return &Blind{} },
	KindBlindGroup:       func() Object { return &BlindGroup{} },
	KindQISBlind:         func() Object { return &QISBlind{} },
	KindQubeBlind:        func() Object { return &QubeBlind{} },
	KindRelayBlind:       func() Object { return &RelayBlind{} },
	KindButton:           func() Object { return &Button{} },
	KindDryContact:       func() Object { return &DryContact{} },
	KindGMem:             func() Object { return &GMem{} },
	KindKeypad:           func() Object { return &Keypad{} },
	KindDimmer:           func() Object { return &Dimmer{} },
	KindDualRelayStation: func() Object { return &DualRelayStation{} },
	KindScenePointRelay:  func() Object { return &ScenePointRelay{} },
	KindEqCtrl:           func() Object { return &EqCtrl{} },
	KindEqUX:             func() Object { return &EqUX{} },
	KindMaster:           func() Object { return &Master{} },
	KindModule:           func() Object { return &Module{} },
	KindModuleGen2:       func() Object { return &ModuleGen2{} },
	KindOmniSensor:       func() Object { return &OmniSensor{} },
	KindLightSensor:      func() Object { return &LightSensor{} },
	KindAnemoSensor:      func() Object { return &AnemoSensor{} },
	KindTemperature:      func() Object { return &Temperature{} },
	KindThermostat:       func() Object { return &Thermostat{} },
	KindTask:             func() Object { return &Task{} },
	KindPowerProfile:     func() Object { return &PowerProfile{} },
	KindDCPowerProfile:   func() Object { return &DCPowerProfile{} },
	KindPWMPowerProfile:  func() Object { return &PWMPowerProfile{} },
	KindStationBus:       func() Object { return &StationBus{} },
	KindBackBox:          func() Object { return &BackBox{} },

	KindDGColorLoad:  func() Object { return &DGColorLoad{} },
	KindDDGColorLoad: func() Object { return &DDGColorLoad{} },

	KindURTSI2Shade:      func() Object { return &URTSI2Shade{} },
	KindURTSI2GroupChild: func() Object { return &SomfyURTSI2GroupChild{} },
	KindRS485ShadeChild:  func() Object { return &SomfyRS485ShadeChild{} },
	KindRS485GroupChild:  func() Object { return &SomfyRS485GroupChild{} },

	KindDmxGateway:           func() Object { return &PortDevice{kind: KindDmxGateway} },
	KindDmxDaliGateway:       func() Object { return &PortDevice{kind: KindDmxDaliGateway} },
	KindGenericHVACRS485Port: func() Object { return &PortDevice{kind: KindGenericHVACRS485Port} },
	KindHVACIUPort:           func() Object { return &PortDevice{kind: KindHVACIUPort} },
	KindSomfyRS485Port:       func() Object { return &PortDevice{kind: KindSomfyRS485Port} },
	KindSomfyURTSI2Port:      func() Object { return &PortDevice{kind: KindSomfyURTSI2Port} },
}

// New constructs a zero-value object for the given wire tag, or nil if the
// tag is unknown.
func New(kind string) Object {
	ctor, ok := Registry[kind]
	if !ok {
		return nil
	}
	return ctor()
}
