package regtext

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/changefont/internal/ansi"
)

// decodeInput returns .reg bytes in the single-byte (Windows-1252) form the
// entry model works with.
//
// reg.exe and regedit export UTF-16LE with a BOM; some editors save UTF-8
// with a BOM. Both are decoded and re-encoded to Windows-1252, with runes
// the code page can't hold replaced. Input without a BOM is already ANSI
// and is returned as-is.
func decodeInput(data []byte) ([]byte, error) {
	var dec *encoding.Decoder
	switch {
	case bytes.HasPrefix(data, UTF16LEBOM):
		dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case bytes.HasPrefix(data, UTF8BOM):
		dec = unicode.UTF8BOM.NewDecoder()
	default:
		return data, nil
	}
	utf8Text, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, err
	}
	return ansi.Encode(string(utf8Text)), nil
}
