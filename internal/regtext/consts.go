package regtext

const (
	// ============================================================================
	// .reg File Format Tokens
	// ============================================================================

	// RegFileHeader is the required header line for .reg files version 5.00
	RegFileHeader = "Windows Registry Editor Version 5.00"

	// RegFileHeaderV4 is the legacy ANSI header accepted when reading
	RegFileHeaderV4 = "REGEDIT4"

	// ============================================================================
	// Delimiters and Structural Tokens
	// ============================================================================

	// KeyOpenBracket marks the start of a registry key path
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of a registry key path
	KeyCloseBracket = "]"

	// DeleteKeyPrefix marks a key for deletion (e.g., [-HKEY_LOCAL_MACHINE\...])
	DeleteKeyPrefix = "-"

	// ValueAssignment separates value names from their data
	ValueAssignment = "="

	// DefaultValuePrefix marks the default (unnamed) value
	DefaultValuePrefix = "@="

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// ============================================================================
	// Quote and Escape Characters
	// ============================================================================

	// Quote is the double-quote character for value names and string data
	Quote = "\""

	// Backslash is used for escaping and path separators
	Backslash = "\\"

	// EscapedBackslash is the escaped backslash sequence
	EscapedBackslash = "\\\\"

	// EscapedNewline is the escaped line feed sequence
	EscapedNewline = "\\n"

	// ============================================================================
	// Line Endings
	// ============================================================================

	// LF terminates every emitted line
	LF = "\n"

	// CR is stripped from input lines
	CR = "\r"

	// LineContinuation ends a hex line that continues on the next one
	LineContinuation = "\\"

	// ============================================================================
	// Value Type Prefixes
	// ============================================================================

	// DWORDPrefix identifies a DWORD value in .reg format
	DWORDPrefix = "dword:"

	// HexPrefix identifies REG_BINARY data in .reg format
	HexPrefix = "hex:"

	// HexTypedPrefix opens a typed hex value: hex(<type>):
	HexTypedPrefix = "hex("

	// HexTypedSuffix closes the type code of a typed hex value
	HexTypedSuffix = "):"

	// DeleteValueToken marks a value for deletion
	DeleteValueToken = "-"

	// ============================================================================
	// Hex Data Formatting
	// ============================================================================

	// HexByteSeparator separates bytes in hex data
	HexByteSeparator = ","

	// DWORDHexLength is the expected length of a DWORD hex string
	DWORDHexLength = 8

	// DWORDSize is the size of a DWORD payload in bytes
	DWORDSize = 4

	// ============================================================================
	// Registry Key Path Prefixes (HKEY roots)
	// ============================================================================

	HKEYLocalMachine      = "HKEY_LOCAL_MACHINE"
	HKEYLocalMachineShort = "HKLM"

	HKEYClassesRoot      = "HKEY_CLASSES_ROOT"
	HKEYClassesRootShort = "HKCR"

	HKEYCurrentUser      = "HKEY_CURRENT_USER"
	HKEYCurrentUserShort = "HKCU"

	HKEYUsers      = "HKEY_USERS"
	HKEYUsersShort = "HKU"

	HKEYCurrentConfig      = "HKEY_CURRENT_CONFIG"
	HKEYCurrentConfigShort = "HKCC"
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)
