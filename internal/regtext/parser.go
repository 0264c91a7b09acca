package regtext

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/changefont/internal/entry"
	"github.com/joshuapare/changefont/pkg/types"
)

// ParseSections reads a .reg document back into sections of entries, in
// file order. Only HKEY_LOCAL_MACHINE keys are accepted, since that is the
// only root RenderSection writes.
//
// Accepted value forms: "string", hex:..., hex(N):..., dword:XXXXXXXX and
// the - tombstone. @= names the default value (empty name). Hex data may be
// split over several lines with a trailing backslash.
func ParseSections(data []byte) ([]Section, error) {
	text, err := decodeInput(data)
	if err != nil {
		return nil, types.Wrap(types.ErrKindFormat, "regtext: decode input", err)
	}

	var (
		sections   []Section
		current    = -1 // index into sections
		seenHeader bool
		pending    string // joined continuation lines
		pendingNo  int
	)

	lines := bytes.Split(text, []byte(LF))
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(string(raw), CR)

		if pending != "" {
			pending += strings.TrimSpace(line)
			if strings.HasSuffix(pending, LineContinuation) {
				continue
			}
			line, lineNo = pending, pendingNo
			pending = ""
		} else if trim := strings.TrimSpace(line); strings.HasSuffix(trim, LineContinuation) && !strings.HasPrefix(trim, KeyOpenBracket) {
			pending, pendingNo = trim, lineNo
			continue
		}

		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, CommentPrefix) {
			continue
		}
		if !seenHeader {
			if trim != RegFileHeader && trim != RegFileHeaderV4 {
				return nil, formatErr(lineNo, "missing header", trim)
			}
			seenHeader = true
			continue
		}

		if strings.HasPrefix(trim, KeyOpenBracket) {
			if !strings.HasSuffix(trim, KeyCloseBracket) {
				return nil, formatErr(lineNo, "malformed section", trim)
			}
			path := strings.TrimSuffix(strings.TrimPrefix(trim, KeyOpenBracket), KeyCloseBracket)
			if strings.HasPrefix(path, DeleteKeyPrefix) {
				return nil, formatErr(lineNo, "key deletion is not supported", trim)
			}
			rel, ok := normalizePath(path)
			if !ok {
				return nil, formatErr(lineNo, unsupportedRoot(path), trim)
			}
			sections = append(sections, Section{KeyPath: rel})
			current = len(sections) - 1
			continue
		}

		if current < 0 {
			return nil, formatErr(lineNo, "value without section", trim)
		}
		e, err := parseValueLine(trim)
		if err != nil {
			return nil, formatErr(lineNo, err.Error(), trim)
		}
		sections[current].Entries = append(sections[current].Entries, e)
	}

	if pending != "" {
		return nil, formatErr(pendingNo, "unterminated line continuation", pending)
	}
	if !seenHeader {
		return nil, types.Wrap(types.ErrKindFormat, "regtext: missing header", nil)
	}
	return sections, nil
}

func formatErr(lineNo int, msg, line string) error {
	return &types.Error{
		Kind: types.ErrKindFormat,
		Msg:  fmt.Sprintf("regtext: line %d: %s: %q", lineNo, msg, line),
	}
}

func parseValueLine(line string) (entry.Entry, error) {
	if strings.HasPrefix(line, DefaultValuePrefix) {
		return parseValue("", line[len(DefaultValuePrefix):])
	}
	if !strings.HasPrefix(line, Quote) {
		return entry.Entry{}, fmt.Errorf("malformed value line")
	}
	end := findAssignment(line)
	if end < 0 {
		return entry.Entry{}, fmt.Errorf("missing '=' after value name")
	}
	return parseValue(Unescape(line[1:end]), line[end+2:])
}

func parseValue(name, payload string) (entry.Entry, error) {
	payload = strings.TrimSpace(payload)
	switch {
	case payload == DeleteValueToken:
		return entry.Delete(name), nil

	case strings.HasPrefix(payload, Quote):
		if len(payload) < 2 || !strings.HasSuffix(payload, Quote) {
			return entry.Entry{}, fmt.Errorf("unterminated string")
		}
		return entry.String(name, []byte(Unescape(payload[1:len(payload)-1]))), nil

	case strings.HasPrefix(payload, DWORDPrefix):
		hexPart := payload[len(DWORDPrefix):]
		if len(hexPart) != DWORDHexLength {
			return entry.Entry{}, fmt.Errorf("invalid dword")
		}
		n, err := strconv.ParseUint(hexPart, 16, 32)
		if err != nil {
			return entry.Entry{}, fmt.Errorf("invalid dword: %w", err)
		}
		buf := make([]byte, DWORDSize)
		binary.LittleEndian.PutUint32(buf, uint32(n))
		return entry.Binary(name, types.REG_DWORD, buf), nil

	case strings.HasPrefix(payload, HexPrefix):
		data, err := parseHexBytes(payload[len(HexPrefix):])
		if err != nil {
			return entry.Entry{}, err
		}
		return entry.Binary(name, types.REG_BINARY, data), nil

	case strings.HasPrefix(payload, HexTypedPrefix):
		end := strings.Index(payload, HexTypedSuffix)
		if end < 0 {
			return entry.Entry{}, fmt.Errorf("malformed hex type")
		}
		typ, err := strconv.ParseUint(payload[len(HexTypedPrefix):end], 16, 32)
		if err != nil {
			return entry.Entry{}, fmt.Errorf("invalid hex type: %w", err)
		}
		data, err := parseHexBytes(payload[end+len(HexTypedSuffix):])
		if err != nil {
			return entry.Entry{}, err
		}
		return entry.Binary(name, types.RegType(typ), data), nil
	}
	return entry.Entry{}, fmt.Errorf("unsupported value")
}
