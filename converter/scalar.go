package converter

import (
	"fmt"
	"strconv"
	"time"
)

// ParseBool decodes a Host Command boolean token ("0"/"1", or more broadly
// any integer where non-zero is true, matching controllers that echo "2" for
// some tri-state fields).
func ParseBool(tok string) (bool, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return false, fmt.Errorf("converter: parse bool %q: %w", tok, err)
	}
	return n != 0, nil
}

// EncodeBool renders a bool as the canonical "0"/"1" wire token.
func EncodeBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// ParseInt decodes a base-10 integer token.
func ParseInt(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("converter: parse int %q: %w", tok, err)
	}
	return n, nil
}

// EncodeInt renders an int as a base-10 token.
func EncodeInt(v int) string {
	return strconv.Itoa(v)
}

// ParseString decodes a possibly-quoted string token. Tokens that were not
// quote-delimited are returned unchanged, since some Host Command replies
// (object names without spaces) omit quotes.
func ParseString(tok string) string {
	return Unquote(tok)
}

// EncodeString renders a string as a quoted wire token.
func EncodeString(v string) string {
	return Quote(v)
}

// ParseDateTime decodes a Unix-seconds timestamp token (UTC).
func ParseDateTime(tok string) (time.Time, error) {
	secs, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("converter: parse datetime %q: %w", tok, err)
	}
	return time.Unix(secs, 0).UTC(), nil
}

// EncodeDateTime renders a time.Time as a Unix-seconds token.
func EncodeDateTime(v time.Time) string {
	return strconv.FormatInt(v.Unix(), 10)
}
