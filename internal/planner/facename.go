package planner

import "strings"

// DeriveFaceName turns a Fonts value name into the face name used for
// substitution, by dropping a trailing parenthesized annotation:
//
//	"Arial (TrueType)"       -> "Arial"
//	"Cambria & Cambria Math" -> "Cambria & Cambria Math"
//
// Trailing NUL padding is trimmed first. When the name ends in ')' but has
// no matching '(' the name is returned untruncated. Only the last suffix is
// removed, so "A (B) (C)" becomes "A (B)".
func DeriveFaceName(name string) string {
	name = strings.TrimRight(name, "\x00")
	if !strings.HasSuffix(name, ")") {
		return name
	}
	open := strings.LastIndexByte(name, '(')
	if open < 0 {
		return name
	}
	face := name[:open]
	return strings.TrimSuffix(face, " ")
}
