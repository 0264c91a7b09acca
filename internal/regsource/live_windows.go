//go:build windows

package regsource

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/joshuapare/changefont/internal/snapshot"
	"github.com/joshuapare/changefont/pkg/types"
)

// Live returns a Source reading HKEY_LOCAL_MACHINE.
func Live() (snapshot.Source, error) {
	return liveSource{}, nil
}

type liveSource struct{}

// Values opens keyPath read-only and returns its values in enumeration
// order. The key handle is closed before returning.
func (liveSource) Values(keyPath string) ([]snapshot.RawValue, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.QUERY_VALUE)
	if err != nil {
		return nil, types.Wrap(types.ErrKindIO, "open key", err)
	}
	defer k.Close()

	names, err := k.ReadValueNames(-1)
	if err != nil {
		return nil, types.Wrap(types.ErrKindIO, "enumerate values", err)
	}

	out := make([]snapshot.RawValue, 0, len(names))
	for _, name := range names {
		v, err := readValue(k, name)
		if err != nil {
			return nil, types.Wrap(types.ErrKindIO, fmt.Sprintf("read value %q", name), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func readValue(k registry.Key, name string) (snapshot.RawValue, error) {
	// A nil buffer reports the size needed.
	n, _, err := k.GetValue(name, nil)
	if err != nil {
		return snapshot.RawValue{}, err
	}
	buf := make([]byte, n)
	n, typ, err := k.GetValue(name, buf)
	if err != nil {
		return snapshot.RawValue{}, err
	}
	data := buf[:n]

	if typ == registry.SZ {
		data, err = utf16ToANSI(data)
		if err != nil {
			return snapshot.RawValue{}, err
		}
	}
	return snapshot.RawValue{
		Name: toANSI(name),
		Type: types.RegType(typ),
		Data: data,
	}, nil
}
