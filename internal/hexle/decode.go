// Package hexle decodes hexadecimal digit strings written least-significant
// digit first: the character at index i carries weight 16^i.
//
// Decoding is lenient. Characters that are not hex digits contribute zero but
// still occupy their position, so "B!5" decodes to 0xB + 0x5*16^2.
package hexle

import (
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding white space and upper-cases s.
//
// Upper-casing uses full case mapping, so a rune may expand into several
// (ß becomes SS). That shifts the positions of every character after it.
func Normalize(s string) string {
	// Casers carry state, so each call gets its own.
	return cases.Upper(language.Und).String(strings.TrimFunc(s, isSpace))
}

// isSpace matches unicode.IsSpace plus the ASCII information separators
// U+001C..U+001F, which text readers also treat as white space.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// DigitValue returns the value of an upper-case hex digit.
func DigitValue(r rune) (uint8, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), true
	case r >= 'A' && r <= 'F':
		return uint8(r-'A') + 10, true
	default:
		return 0, false
	}
}

// Decode normalizes s and returns its little-endian hex value.
// It never fails: empty or all-invalid input decodes to zero.
func Decode(s string) *big.Int {
	runes := []rune(Normalize(s))
	if len(runes) == 0 {
		return new(big.Int)
	}

	// Position i is nibble i counted from the least significant end.
	buf := make([]byte, (len(runes)+1)/2)
	last := len(buf) - 1
	for i, r := range runes {
		d, ok := DigitValue(r)
		if !ok || d == 0 {
			continue
		}
		buf[last-i/2] |= d << (4 * uint(i%2))
	}
	return new(big.Int).SetBytes(buf)
}
