package converter

import (
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// ParameterValue is any Go value the registry knows how to serialize: a
// string, bool, int, decimal.Decimal, []byte, time.Time, or a named int type
// registered as an enum.
type ParameterValue = any

// ParameterType identifies a registered value's shape for Deserialize,
// typically obtained with reflect.TypeOf on a zero value of the target type.
type ParameterType = reflect.Type

type codec struct {
	encode func(ParameterValue) (string, error)
	decode func(string) (ParameterValue, error)
}

var registry = map[ParameterType]codec{
	reflect.TypeOf(""): {
		encode: func(v ParameterValue) (string, error) { return EncodeString(v.(string)), nil },
		decode: func(s string) (ParameterValue, error) { return ParseString(s), nil },
	},
	reflect.TypeOf(false): {
		encode: func(v ParameterValue) (string, error) { return EncodeBool(v.(bool)), nil },
		decode: func(s string) (ParameterValue, error) { return ParseBool(s) },
	},
	reflect.TypeOf(0): {
		encode: func(v ParameterValue) (string, error) { return EncodeInt(v.(int)), nil },
		decode: func(s string) (ParameterValue, error) { return ParseInt(s) },
	},
	reflect.TypeOf(decimal.Decimal{}): {
		encode: func(v ParameterValue) (string, error) { return EncodeFixed(v.(decimal.Decimal)), nil },
		decode: func(s string) (ParameterValue, error) { return ParseFixed(s) },
	},
	reflect.TypeOf([]byte(nil)): {
		encode: func(v ParameterValue) (string, error) { return EncodeBytes(v.([]byte)), nil },
		decode: func(s string) (ParameterValue, error) { return ParseBytes(s) },
	},
	reflect.TypeOf(time.Time{}): {
		encode: func(v ParameterValue) (string, error) { return EncodeDateTime(v.(time.Time)), nil },
		decode: func(s string) (ParameterValue, error) { return ParseDateTime(s) },
	},
}

// RegisterEnum registers a named int type (e.g. `type ThermostatMode int`)
// with the symbolic names it may arrive as on the wire. Subsequent calls to
// Serialize/Deserialize with that concrete type use e for conversion.
func RegisterEnum(t ParameterType, e Enum) {
	if t.Kind() != reflect.Int {
		panic(fmt.Sprintf("converter: RegisterEnum: %s is not backed by int", t))
	}
	registry[t] = codec{
		encode: func(v ParameterValue) (string, error) {
			return e.EncodeEnum(int(reflect.ValueOf(v).Int())), nil
		},
		decode: func(s string) (ParameterValue, error) {
			n, err := e.ParseEnum(s)
			if err != nil {
				return nil, err
			}
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		},
	}
}

// Serialize renders v to its wire token form using the codec registered for
// v's concrete type. Named int types not individually registered fall back
// to the plain int codec (the "ancestor" lookup), so an enum type needs
// RegisterEnum only when it must read back symbolic names.
func Serialize(v ParameterValue) (string, error) {
	t := reflect.TypeOf(v)
	c, ok := lookup(t)
	if !ok {
		return "", fmt.Errorf("converter: serialize: no codec for %T", v)
	}
	if _, registered := registry[t]; !registered {
		switch rv := reflect.ValueOf(v); t.Kind() {
		case reflect.Int:
			v = int(rv.Int())
		case reflect.String:
			v = rv.String()
		case reflect.Bool:
			v = rv.Bool()
		}
	}
	return c.encode(v)
}

// Deserialize parses s into the shape described by into, using the codec
// registered for that type (or falling back to its underlying kind for
// unregistered named int types).
func Deserialize(s string, into ParameterType) (ParameterValue, error) {
	c, ok := lookup(into)
	if !ok {
		return nil, fmt.Errorf("converter: deserialize: no codec for %s", into)
	}
	v, err := c.decode(s)
	if err != nil {
		return nil, err
	}
	if v != nil && reflect.TypeOf(v) != into && reflect.TypeOf(v).ConvertibleTo(into) {
		v = reflect.ValueOf(v).Convert(into).Interface()
	}
	return v, nil
}

// lookup finds the codec for t, falling back to its underlying kind's codec
// (int, string, bool) when t is a named type without its own registration —
// e.g. a `type VID int` or an enum type nobody called RegisterEnum for.
func lookup(t ParameterType) (codec, bool) {
	if c, ok := registry[t]; ok {
		return c, true
	}
	if t == nil {
		return codec{}, false
	}
	switch t.Kind() {
	case reflect.Int:
		return registry[reflect.TypeOf(0)], true
	case reflect.String:
		return registry[reflect.TypeOf("")], true
	case reflect.Bool:
		return registry[reflect.TypeOf(false)], true
	}
	return codec{}, false
}
