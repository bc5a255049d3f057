package converter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// fixedScale is the number of implied decimal places a Host Command
// fixed-point token carries, e.g. level, temperature, and ramp-rate
// parameters.
const fixedScale = 3

// ParseFixed decodes a fixed-point decimal token in either of the two forms
// a controller may send: a dotted form ("123.456") that already carries its
// decimal point, or an undotted form ("123456") whose last fixedScale digits
// are implied to be after the point. Both forms for the same value parse to
// the same decimal.Decimal.
func ParseFixed(tok string) (decimal.Decimal, error) {
	if strings.Contains(tok, ".") {
		d, err := decimal.NewFromString(tok)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("converter: parse fixed %q: %w", tok, err)
		}
		return d, nil
	}

	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converter: parse fixed %q: %w", tok, err)
	}
	return d.Shift(-fixedScale), nil
}

// EncodeFixed renders a decimal.Decimal in the dotted wire form, at
// fixedScale decimal places.
func EncodeFixed(v decimal.Decimal) string {
	return v.StringFixed(fixedScale)
}
