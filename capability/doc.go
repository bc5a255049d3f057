// Package capability implements the Host Command INVOKE interfaces: one
// type per capability named in the object catalog (Load, Blind, RGBLoad,
// ColorTemperature, Button, Sensor, Temperature, Thermostat, GMem, Task,
// Sounder, Object), each holding a non-owning *commandclient.Client and
// exposing invocation methods plus a matching pair of status parsers for
// the "S:<CAT>" and "S:STATUS"/"EL:" event shapes.
package capability

// Kind names a capability a concrete object type may implement.
type Kind string

const (
	KindObject           Kind = "Object"
	KindLoad             Kind = "Load"
	KindBlind            Kind = "Blind"
	KindRGBLoad          Kind = "RGBLoad"
	KindColorTemperature Kind = "ColorTemperature"
	KindButton           Kind = "Button"
	KindSensor           Kind = "Sensor"
	KindTemperature      Kind = "Temperature"
	KindThermostat       Kind = "Thermostat"
	KindGMem             Kind = "GMem"
	KindTask             Kind = "Task"
	KindSounder          Kind = "Sounder"
)
