//go:build !windows

package regsource

import (
	"github.com/joshuapare/changefont/internal/snapshot"
	"github.com/joshuapare/changefont/pkg/types"
)

// Live is only available on Windows; use FromRegFile elsewhere.
func Live() (snapshot.Source, error) {
	return nil, types.ErrUnsupported
}
