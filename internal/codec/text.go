package codec

import "strings"

// Render maps every byte to the code point of the same value. Bytes are
// never interpreted as UTF-8, so the result is always printable as text even
// when the input is not.
func Render(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}
