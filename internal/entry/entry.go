// Package entry models a single named registry value as it is captured from
// a key and later emitted into a .reg document.
//
// An Entry is one of three kinds:
//   - String: REG_SZ text, emitted as "name"="data"
//   - Binary: any other type code, emitted as "name"=hex(t):...
//   - Delete: a tombstone, emitted as "name"=-
//
// Names and string data are raw single-byte text. Nothing here decodes or
// re-encodes them; FromRaw is the one place captured bytes are normalized.
package entry

import (
	"bytes"

	"github.com/joshuapare/changefont/pkg/types"
)

// Kind selects how an Entry is serialized.
type Kind uint8

const (
	// KindString is REG_SZ text.
	KindString Kind = iota
	// KindBinary is any non-REG_SZ value, echoed as hex with its type code.
	KindBinary
	// KindDelete removes the value on import.
	KindDelete
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Entry is one named registry value.
type Entry struct {
	Name string
	Kind Kind
	// Type is the registry type code of a Binary entry. Zero otherwise.
	Type types.RegType
	Data []byte
}

// String builds a REG_SZ entry. A nil data slice is stored as empty.
func String(name string, data []byte) Entry {
	if data == nil {
		data = []byte{}
	}
	return Entry{Name: name, Kind: KindString, Data: data}
}

// Binary builds an entry that is emitted as hex(t).
func Binary(name string, t types.RegType, data []byte) Entry {
	if data == nil {
		data = []byte{}
	}
	return Entry{Name: name, Kind: KindBinary, Type: t, Data: data}
}

// Delete builds a tombstone for name.
func Delete(name string) Entry {
	return Entry{Name: name, Kind: KindDelete}
}

// FromRaw converts one enumerated (name, type, data) triple into an Entry.
//
// Trailing NULs are trimmed from the name, and from the data of REG_SZ
// values (the registry stores the terminator). Every other type code becomes
// a Binary entry with its data copied verbatim.
func FromRaw(name []byte, t types.RegType, data []byte) Entry {
	n := string(TrimNUL(name))
	if t == types.REG_SZ {
		return String(n, bytes.Clone(TrimNUL(data)))
	}
	return Binary(n, t, bytes.Clone(data))
}

// TrimNUL drops trailing NUL padding.
func TrimNUL(b []byte) []byte {
	return bytes.TrimRight(b, "\x00")
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	if e.Data != nil {
		e.Data = bytes.Clone(e.Data)
	}
	return e
}

// Equal reports whether two entries serialize identically.
func (e Entry) Equal(o Entry) bool {
	if e.Name != o.Name || e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case KindDelete:
		return true
	case KindBinary:
		if e.Type != o.Type {
			return false
		}
	}
	return bytes.Equal(e.Data, o.Data)
}

// List is the ordered set of entries of one key. Order is enumeration order
// and is preserved through emission.
type List []Entry

// Clone returns a deep copy of l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	for i, e := range l {
		out[i] = e.Clone()
	}
	return out
}

// Equal reports whether both lists hold equal entries in the same order.
func (l List) Equal(o List) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
