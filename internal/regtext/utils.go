package regtext

import (
	"fmt"
	"strings"
)

// normalizePath strips an HKEY_LOCAL_MACHINE (or HKLM) root from path.
// ok is false when path names a different root.
func normalizePath(path string) (string, bool) {
	prefixes := []string{
		HKEYLocalMachine + Backslash,
		HKEYLocalMachineShort + Backslash,
	}
	for _, prefix := range prefixes {
		if len(path) >= len(prefix) && strings.EqualFold(path[:len(prefix)], prefix) {
			return path[len(prefix):], true
		}
	}
	return path, false
}

// foreignRoots maps every other root key spelling to its long name.
var foreignRoots = map[string]string{
	HKEYClassesRoot:        HKEYClassesRoot,
	HKEYClassesRootShort:   HKEYClassesRoot,
	HKEYCurrentUser:        HKEYCurrentUser,
	HKEYCurrentUserShort:   HKEYCurrentUser,
	HKEYUsers:              HKEYUsers,
	HKEYUsersShort:         HKEYUsers,
	HKEYCurrentConfig:      HKEYCurrentConfig,
	HKEYCurrentConfigShort: HKEYCurrentConfig,
}

// unsupportedRoot describes why a key path outside HKEY_LOCAL_MACHINE was
// rejected, naming its root when it is a known one.
func unsupportedRoot(path string) string {
	first, _, _ := strings.Cut(path, Backslash)
	if root, ok := foreignRoots[strings.ToUpper(first)]; ok {
		return root + " keys are not supported, only " + HKEYLocalMachine
	}
	return "unknown root key, only " + HKEYLocalMachine + " is supported"
}

// findAssignment finds the closing quote of a quoted value name, i.e. the
// first unescaped quote followed by '='. The search starts at position 1
// (the opening quote is at position 0). Returns -1 if there is none.
func findAssignment(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		// Count consecutive backslashes before this quote
		numBackslashes := 0
		for j := i - 1; j >= 1 && line[j] == '\\'; j-- {
			numBackslashes++
		}
		// If odd number of backslashes, the quote is escaped
		if numBackslashes%2 == 1 {
			continue
		}
		if i+1 < len(line) && line[i+1] == '=' {
			return i
		}
	}
	return -1
}

// parseHexBytes parses the comma separated bytes that follow a hex prefix.
// Whitespace and line continuation backslashes are skipped, and single
// digit bytes (as this package emits them) are accepted.
func parseHexBytes(hexStr string) ([]byte, error) {
	result := make([]byte, 0, len(hexStr)/3+1)

	i := 0
	for i < len(hexStr) {
		// Skip whitespace, commas, backslashes (line continuation)
		for i < len(hexStr) && isHexSkipChar(hexStr[i]) {
			i++
		}
		if i >= len(hexStr) {
			break
		}

		hiVal := hexCharToNibble(hexStr[i])
		if hiVal == 0xFF {
			return nil, fmt.Errorf("invalid hex digit %q at position %d", hexStr[i], i)
		}
		i++

		// Second digit is optional
		var loVal byte
		if i < len(hexStr) && !isHexSkipChar(hexStr[i]) {
			loVal = hexCharToNibble(hexStr[i])
			if loVal == 0xFF {
				return nil, fmt.Errorf("invalid hex digit %q at position %d", hexStr[i], i)
			}
			i++
		} else {
			loVal = hiVal
			hiVal = 0
		}

		if i < len(hexStr) && !isHexSkipChar(hexStr[i]) {
			return nil, fmt.Errorf("hex byte longer than two digits at position %d", i)
		}

		result = append(result, (hiVal<<4)|loVal)
	}

	return result, nil
}

// hexCharToNibble converts a hex character to its 4-bit value
// Returns 0xFF for invalid characters.
func hexCharToNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xFF
	}
}

// isHexSkipChar returns true for characters to skip during hex parsing.
func isHexSkipChar(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' || c == '\\'
}
