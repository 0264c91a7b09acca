// Package planner derives the two entry bundles written for a font swap
// from one captured snapshot.
//
// The rollback bundle undoes the change: the captured fonts and links, plus
// a tombstone for every face name that the forward bundle aliases. The
// forward bundle applies it: every font but the winner loses its file, every
// face is aliased to the winner, and every font link is removed.
//
// Both bundles are built from clones. Nothing here mutates the snapshot, so
// the rollback bundle always reflects the pre-change state regardless of
// the order in which the bundles are rendered.
package planner
