package converter

import (
	"fmt"
	"strconv"
)

// Enum describes an int-backed enumeration whose wire form may be either its
// numeric value or, for some status tokens, the case-sensitive symbolic name
// a controller sends instead (e.g. a thermostat mode's display string).
// Writes always use the numeric form.
type Enum struct {
	// Names maps numeric value to symbolic name, for tokens that read as
	// names. May be nil for enums the controller never sends symbolically.
	Names map[int]string
}

// ParseEnum decodes tok as either a bare integer or, if Names is set and the
// token isn't numeric, the enum member whose name matches exactly.
func (e Enum) ParseEnum(tok string) (int, error) {
	if n, err := strconv.Atoi(tok); err == nil {
		return n, nil
	}
	for v, name := range e.Names {
		if name == tok {
			return v, nil
		}
	}
	return 0, fmt.Errorf("converter: parse enum %q: not a known member", tok)
}

// EncodeEnum renders an enum value in its canonical numeric wire form.
func (e Enum) EncodeEnum(v int) string {
	return strconv.Itoa(v)
}
