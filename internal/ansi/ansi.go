// Package ansi converts the single-byte (Windows-1252) names captured from
// the registry into UTF-8 for display and comparison. The entry model
// itself never holds decoded text.
package ansi

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
)

// Decode returns s, read as Windows-1252, as UTF-8.
func Decode(s string) string {
	out, err := charmap.Windows1252.NewDecoder().String(s)
	if err != nil {
		// Every byte maps in Windows-1252; keep the raw text if that changes.
		return s
	}
	return out
}

// Encode returns UTF-8 text as Windows-1252 bytes. Runes the code page
// can't hold become '?', as with the ANSI registry API.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

// Fold returns the case-folded UTF-8 form of a Windows-1252 name, suitable
// as a case-insensitive comparison key.
func Fold(s string) string {
	return cases.Fold().String(Decode(s))
}

// Contains reports whether query occurs in name, ignoring case. Both are
// Windows-1252. An empty query matches everything.
func Contains(name, query string) bool {
	return strings.Contains(Fold(name), Fold(query))
}
