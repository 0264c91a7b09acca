package regtext

import (
	"bytes"
	"strings"
)

// Escape applies the .reg string escaping: backslash becomes \\ and line
// feed becomes \n. Every other byte, printable or not, passes through.
func Escape(s string) string {
	var buf bytes.Buffer
	buf.Grow(len(s))
	writeEscaped(&buf, s)
	return buf.String()
}

func writeEscaped(buf *bytes.Buffer, s string) {
	// Fast path: nothing to escape
	if strings.IndexByte(s, '\\') == -1 && strings.IndexByte(s, '\n') == -1 {
		buf.WriteString(s)
		return
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			buf.WriteString(EscapedBackslash)
		case '\n':
			buf.WriteString(EscapedNewline)
		default:
			buf.WriteByte(c)
		}
	}
}

// Unescape reverses Escape. It also accepts \" as written by regedit; an
// unknown escape is kept as-is.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s // Fast path: no backslashes = no escapes
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case '"':
			b.WriteByte('"')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
