// Package regsource provides the snapshot.Source implementations: the live
// registry on Windows, and files written by "reg export" or regedit.
//
// Both hand the entry model single-byte text. Names and REG_SZ data that
// arrive as UTF-16 are transcoded to Windows-1252, the way the ANSI
// registry API (RegEnumValueA) reports them.
package regsource
