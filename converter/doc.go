// Package converter implements the scalar serialize/deserialize registry and
// line tokenizer used by the Host Command protocol: strings, booleans,
// integers, fixed-point decimals, byte arrays, datetimes, and int enums.
package converter
