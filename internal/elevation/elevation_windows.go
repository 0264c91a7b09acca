//go:build windows

package elevation

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token is elevated (UAC) and a
// member of the built-in Administrators group.
func IsElevated() (bool, error) {
	token := windows.GetCurrentProcessToken()
	if !token.IsElevated() {
		return false, nil
	}
	sid, err := windows.CreateWellKnownSid(windows.WinBuiltinAdministratorsSid)
	if err != nil {
		return false, err
	}
	// A zero token checks the calling thread's effective token.
	return windows.Token(0).IsMember(sid)
}
