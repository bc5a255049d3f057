package converter

import "strings"

// Tokenize splits a Host Command response or status line into its
// whitespace-delimited parameter tokens. Four token shapes are recognized:
//
//	"..."   a double-quoted string, with "" as an escaped literal quote
//	{...}   a byte array, passed through with its braces intact
//	[...]   a reserved nested form, passed through with its brackets intact
//	anything else is a bare run of non-space characters
//
// A hand-rolled scanner is used (mirroring the byte-level state machine
// idiom used elsewhere in this module) rather than building the token up as
// one regular expression, so each of the four shapes above is a distinct,
// steppable state instead of one dense alternation.
func Tokenize(line string) []string {
	var tokens []string
	i, n := 0, len(line)

	for i < n {
		for i < n && isSpace(line[i]) {
			i++
		}
		if i >= n {
			break
		}

		switch line[i] {
		case '"':
			tok, next := scanQuoted(line, i)
			tokens = append(tokens, tok)
			i = next
		case '{':
			tok, next := scanDelimited(line, i, '{', '}')
			tokens = append(tokens, tok)
			i = next
		case '[':
			tok, next := scanDelimited(line, i, '[', ']')
			tokens = append(tokens, tok)
			i = next
		default:
			start := i
			for i < n && !isSpace(line[i]) {
				i++
			}
			tokens = append(tokens, line[start:i])
		}
	}

	return tokens
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// scanQuoted consumes a double-quoted token starting at line[start] (which
// must be '"'), treating "" inside the quotes as an escaped literal quote.
// It returns the token with its surrounding quotes still attached (Unquote
// strips them) and the index just past the closing quote.
func scanQuoted(line string, start int) (string, int) {
	i := start + 1
	n := len(line)
	for i < n {
		if line[i] == '"' {
			if i+1 < n && line[i+1] == '"' {
				i += 2
				continue
			}
			return line[start : i+1], i + 1
		}
		i++
	}
	// Unterminated quote: consume to end of line rather than losing input.
	return line[start:n], n
}

// scanDelimited consumes a token starting at line[start] (which must be
// open) up to and including its matching close delimiter, with no nesting
// or escaping. Both {...} byte arrays and [...] reserved forms use this.
func scanDelimited(line string, start int, open, close byte) (string, int) {
	i := start + 1
	n := len(line)
	for i < n && line[i] != close {
		i++
	}
	if i < n {
		return line[start : i+1], i + 1
	}
	return line[start:n], n
}

// Unquote strips the surrounding quotes from a token produced by Tokenize
// and collapses any "" escapes into a single literal quote. Passing a token
// that was not quote-delimited returns it unchanged.
func Unquote(tok string) string {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return tok
	}
	inner := tok[1 : len(tok)-1]
	return strings.ReplaceAll(inner, `""`, `"`)
}

// Quote wraps s in double quotes, escaping any embedded quote as "".
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
