package regsource

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/joshuapare/changefont/internal/ansi"
	"github.com/joshuapare/changefont/internal/entry"
	"github.com/joshuapare/changefont/internal/regtext"
	"github.com/joshuapare/changefont/internal/snapshot"
	"github.com/joshuapare/changefont/pkg/types"
)

// RegFile is a Source backed by a .reg export.
type RegFile struct {
	path string
	keys map[string]entry.List // folded key path -> values
	// optional keys read as empty when the file has no section for them
	optional map[string]struct{}
}

// FromRegFile parses the .reg file at path. Keys listed in optional read as
// empty when absent; any other missing key is an error.
func FromRegFile(fs afero.Fs, path string, optional ...string) (*RegFile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, types.Wrap(types.ErrKindIO, "read "+path, err)
	}
	sections, err := regtext.ParseSections(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rf := &RegFile{
		path:     path,
		keys:     make(map[string]entry.List, len(sections)),
		optional: make(map[string]struct{}, len(optional)),
	}
	for _, k := range optional {
		rf.optional[ansi.Fold(k)] = struct{}{}
	}
	for _, s := range sections {
		key := ansi.Fold(s.KeyPath)
		rf.keys[key] = merge(rf.keys[key], s.Entries)
	}
	return rf, nil
}

// merge appends values, letting a repeated name replace the earlier value
// in place, as a later line does on import.
func merge(dst, src entry.List) entry.List {
	for _, e := range src {
		replaced := false
		for i := range dst {
			if dst[i].Name == e.Name {
				dst[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			dst = append(dst, e)
		}
	}
	return dst
}

// Values returns the values recorded for keyPath, matched case-insensitively.
func (r *RegFile) Values(keyPath string) ([]snapshot.RawValue, error) {
	key := ansi.Fold(keyPath)
	list, ok := r.keys[key]
	if !ok {
		if _, opt := r.optional[key]; opt {
			return nil, nil
		}
		return nil, types.Wrap(types.ErrKindNotFound,
			fmt.Sprintf("%s: [HKEY_LOCAL_MACHINE\\%s]", r.path, keyPath), types.ErrNotFound)
	}

	out := make([]snapshot.RawValue, 0, len(list))
	for _, e := range list {
		switch e.Kind {
		case entry.KindString:
			out = append(out, snapshot.RawValue{Name: []byte(e.Name), Type: types.REG_SZ, Data: e.Data})
		case entry.KindBinary:
			out = append(out, snapshot.RawValue{Name: []byte(e.Name), Type: e.Type, Data: e.Data})
		case entry.KindDelete:
			return nil, &types.Error{
				Kind: types.ErrKindFormat,
				Msg:  fmt.Sprintf("%s: value %q is a deletion, not a captured value", r.path, e.Name),
			}
		}
	}
	return out, nil
}
