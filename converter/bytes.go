package converter

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// ParseBytes decodes a brace-delimited byte-array token, e.g. "{305419896
// 19088743}". Each space-separated element is a signed 32-bit integer packed
// little-endian; the decoded byte slice is the concatenation of those 4-byte
// chunks, so its length is always a multiple of 4.
func ParseBytes(tok string) ([]byte, error) {
	inner := strings.TrimSpace(tok)
	inner = strings.TrimPrefix(inner, "{")
	inner = strings.TrimSuffix(inner, "}")
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return nil, nil
	}

	fields := strings.Fields(inner)
	out := make([]byte, 0, len(fields)*4)
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("converter: parse bytes %q: %w", tok, err)
		}
		var chunk [4]byte
		binary.LittleEndian.PutUint32(chunk[:], uint32(int32(n)))
		out = append(out, chunk[:]...)
	}
	return out, nil
}

// EncodeBytes renders a byte slice as a brace-delimited token, padding with
// zero bytes up to the next multiple of 4 before chunking, so the inverse of
// ParseBytes always round-trips the padded length rather than the original.
func EncodeBytes(b []byte) string {
	padded := make([]byte, len(b))
	copy(padded, b)
	if rem := len(padded) % 4; rem != 0 {
		padded = append(padded, make([]byte, 4-rem)...)
	}

	fields := make([]string, 0, len(padded)/4)
	for i := 0; i < len(padded); i += 4 {
		v := binary.LittleEndian.Uint32(padded[i : i+4])
		fields = append(fields, strconv.FormatInt(int64(int32(v)), 10))
	}
	return "{" + strings.Join(fields, " ") + "}"
}
