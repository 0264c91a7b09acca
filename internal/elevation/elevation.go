// Package elevation answers whether the process runs with administrative
// rights. It gates reading the live registry, since the files written are
// meant to be imported by an administrator from the same machine.
package elevation

// Checker reports elevation. The CLI swaps it out in tests.
type Checker func() (bool, error)

// Default is the platform check.
var Default Checker = IsElevated
