// Package types holds the small set of registry definitions shared by the
// changefont packages: the Windows value type table and a typed error with
// stable categories.
//
// This package has no dependencies beyond the standard library.
package types
