package capability

import "github.com/shopspring/decimal"

// decimalOf converts a plain float argument to the fixed-point decimal the
// wire protocol expects, at the protocol's standard three-decimal scale.
func decimalOf(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
