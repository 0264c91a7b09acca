//go:build !windows && !unix

package elevation

// IsElevated has no notion of elevation on this platform.
func IsElevated() (bool, error) {
	return false, nil
}
