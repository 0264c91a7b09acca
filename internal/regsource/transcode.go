package regsource

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/changefont/internal/ansi"
)

// toANSI encodes UTF-8 text as Windows-1252.
func toANSI(s string) []byte {
	return ansi.Encode(s)
}

// utf16ToANSI converts UTF-16LE registry string data to Windows-1252.
// Trailing NUL terminators survive the conversion; entry.FromRaw trims them.
func utf16ToANSI(b []byte) ([]byte, error) {
	if len(b)%2 == 1 {
		b = b[:len(b)-1]
	}
	s, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return nil, err
	}
	return ansi.Encode(string(s)), nil
}
