// Package snapshot captures the three font-related registry keys at one
// point in time.
package snapshot

import (
	"fmt"

	"github.com/joshuapare/changefont/internal/entry"
	"github.com/joshuapare/changefont/pkg/types"
)

// Key paths, relative to HKEY_LOCAL_MACHINE.
const (
	FontsKeyPath       = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`
	SubstitutesKeyPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\FontSubstitutes`
	LinksKeyPath       = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\FontLink\SystemLink`
)

// ListID names one of the three captured lists.
type ListID int

const (
	Fonts ListID = iota
	Substitutes
	Links
)

func (l ListID) String() string {
	switch l {
	case Fonts:
		return "fonts"
	case Substitutes:
		return "substitutes"
	case Links:
		return "links"
	default:
		return fmt.Sprintf("list(%d)", int(l))
	}
}

// KeyPath returns the registry key the list is captured from.
func (l ListID) KeyPath() string {
	switch l {
	case Fonts:
		return FontsKeyPath
	case Substitutes:
		return SubstitutesKeyPath
	case Links:
		return LinksKeyPath
	default:
		return ""
	}
}

// RawValue is one (name, type, data) triple as enumerated from a key.
type RawValue struct {
	Name []byte
	Type types.RegType
	Data []byte
}

// Source enumerates the values of a key under HKEY_LOCAL_MACHINE, in
// enumeration order.
type Source interface {
	Values(keyPath string) ([]RawValue, error)
}

// Snapshot is the three entry lists captured together by one run.
type Snapshot struct {
	Fonts       entry.List
	Substitutes entry.List
	Links       entry.List
}

// CaptureError reports which list could not be read.
type CaptureError struct {
	List    ListID
	KeyPath string
	Err     error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture %s [HKEY_LOCAL_MACHINE\\%s]: %v", e.List, e.KeyPath, e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// Capture reads fonts, substitutes and links from src. The first failing key
// aborts the capture; a partial snapshot is never returned.
func Capture(src Source) (Snapshot, error) {
	var s Snapshot
	for _, id := range []ListID{Fonts, Substitutes, Links} {
		raw, err := src.Values(id.KeyPath())
		if err != nil {
			return Snapshot{}, &CaptureError{List: id, KeyPath: id.KeyPath(), Err: err}
		}
		list := make(entry.List, 0, len(raw))
		for _, v := range raw {
			list = append(list, entry.FromRaw(v.Name, v.Type, v.Data))
		}
		*s.list(id) = list
	}
	return s, nil
}

func (s *Snapshot) list(id ListID) *entry.List {
	switch id {
	case Substitutes:
		return &s.Substitutes
	case Links:
		return &s.Links
	default:
		return &s.Fonts
	}
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Fonts:       s.Fonts.Clone(),
		Substitutes: s.Substitutes.Clone(),
		Links:       s.Links.Clone(),
	}
}
