package regtext

import (
	"bytes"
	"strconv"

	"github.com/joshuapare/changefont/internal/entry"
)

// Section is one [key] block of a .reg document. KeyPath is relative to
// HKEY_LOCAL_MACHINE.
type Section struct {
	KeyPath string
	Entries entry.List
}

// RenderDocument emits the .reg banner once followed by every section in
// order.
func RenderDocument(sections []Section) []byte {
	var buf bytes.Buffer
	buf.WriteString(RegFileHeader + LF)
	for _, s := range sections {
		writeSection(&buf, s.KeyPath, s.Entries)
	}
	return buf.Bytes()
}

// RenderSection emits a blank line, the [HKEY_LOCAL_MACHINE\keyPath] header
// and one line per entry, in list order.
func RenderSection(keyPath string, entries entry.List) []byte {
	var buf bytes.Buffer
	writeSection(&buf, keyPath, entries)
	return buf.Bytes()
}

func writeSection(buf *bytes.Buffer, keyPath string, entries entry.List) {
	buf.WriteString(LF)
	buf.WriteString(KeyOpenBracket + HKEYLocalMachine + Backslash)
	buf.WriteString(keyPath)
	buf.WriteString(KeyCloseBracket + LF)
	for _, e := range entries {
		writeEntry(buf, e)
	}
}

// RenderEntry returns the single .reg line for e, without the line ending.
func RenderEntry(e entry.Entry) string {
	var buf bytes.Buffer
	writeEntry(&buf, e)
	return string(bytes.TrimSuffix(buf.Bytes(), []byte(LF)))
}

func writeEntry(buf *bytes.Buffer, e entry.Entry) {
	buf.WriteString(Quote)
	writeEscaped(buf, e.Name)
	buf.WriteString(Quote + ValueAssignment)

	switch e.Kind {
	case entry.KindString:
		buf.WriteString(Quote)
		writeEscaped(buf, string(e.Data))
		buf.WriteString(Quote)
	case entry.KindBinary:
		buf.WriteString(HexTypedPrefix)
		buf.WriteString(strconv.FormatUint(uint64(e.Type), 16))
		buf.WriteString(HexTypedSuffix)
		writeHex(buf, e.Data)
	case entry.KindDelete:
		buf.WriteString(DeleteValueToken)
	}
	buf.WriteString(LF)
}

// writeHex writes bytes as unpadded lowercase hex, comma separated.
func writeHex(buf *bytes.Buffer, data []byte) {
	var scratch [2]byte
	for i, b := range data {
		if i > 0 {
			buf.WriteString(HexByteSeparator)
		}
		buf.Write(strconv.AppendUint(scratch[:0], uint64(b), 16))
	}
}
