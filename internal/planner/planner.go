package planner

import (
	"fmt"

	"github.com/joshuapare/changefont/internal/ansi"
	"github.com/joshuapare/changefont/internal/entry"
	"github.com/joshuapare/changefont/internal/snapshot"
	"github.com/joshuapare/changefont/pkg/types"
)

// ErrWinnerOutOfRange is returned when the winner index does not name a font.
var ErrWinnerOutOfRange = &types.Error{Kind: types.ErrKindNotFound, Msg: "planner: winner index out of range"}

// Bundle is one set of entry lists, one per key, rendered into a .reg
// document in the order Fonts, Substitutes, Links.
type Bundle struct {
	Fonts       entry.List
	Substitutes entry.List
	Links       entry.List
}

// Clone returns a deep copy of b.
func (b Bundle) Clone() Bundle {
	return Bundle{
		Fonts:       b.Fonts.Clone(),
		Substitutes: b.Substitutes.Clone(),
		Links:       b.Links.Clone(),
	}
}

// Plan is the outcome of planning one swap.
type Plan struct {
	Winner     int
	WinnerName string // Fonts value name of the winner
	WinnerFace string // derived face name of the winner

	Rollback Bundle
	Forward  Bundle

	// Collisions lists face names that already had a FontSubstitutes value
	// before the change. The rollback bundle tombstones them like any other
	// face, so the original alias is not restored.
	Collisions []string
}

// FaceNames derives one face name per font, index aligned with fonts.
func FaceNames(fonts entry.List) []string {
	names := make([]string, len(fonts))
	for i, f := range fonts {
		names[i] = DeriveFaceName(f.Name)
	}
	return names
}

// Rollback builds the undo bundle: the captured fonts and links unchanged,
// and a Delete for each derived face name.
func Rollback(s snapshot.Snapshot) Bundle {
	faces := FaceNames(s.Fonts)
	subs := make(entry.List, len(faces))
	for i, face := range faces {
		subs[i] = entry.Delete(face)
	}
	return Bundle{
		Fonts:       s.Fonts.Clone(),
		Substitutes: subs,
		Links:       s.Links.Clone(),
	}
}

// Forward rewrites a clone of rollback into the apply bundle for winner.
//
// Every font except the winner keeps its name and kind but loses its data.
// Every substitute except the winner's becomes a string naming the winner's
// face. Every link becomes a Delete. rollback is not modified.
func Forward(rollback Bundle, winner int) (Bundle, error) {
	if winner < 0 || winner >= len(rollback.Fonts) || winner >= len(rollback.Substitutes) {
		return Bundle{}, winnerErr(winner, len(rollback.Fonts))
	}
	fwd := rollback.Clone()
	face := []byte(fwd.Substitutes[winner].Name)

	for i := range fwd.Fonts {
		if i == winner {
			continue
		}
		fwd.Fonts[i].Data = []byte{}
	}
	for i := range fwd.Substitutes {
		if i == winner {
			continue
		}
		fwd.Substitutes[i].Kind = entry.KindString
		fwd.Substitutes[i].Type = 0
		fwd.Substitutes[i].Data = append([]byte(nil), face...)
	}
	for i := range fwd.Links {
		fwd.Links[i] = entry.Delete(fwd.Links[i].Name)
	}
	return fwd, nil
}

// New plans a swap of every font to the one at index winner.
func New(s snapshot.Snapshot, winner int) (*Plan, error) {
	if winner < 0 || winner >= len(s.Fonts) {
		return nil, winnerErr(winner, len(s.Fonts))
	}
	rb := Rollback(s)
	fwd, err := Forward(rb, winner)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Winner:     winner,
		WinnerName: s.Fonts[winner].Name,
		WinnerFace: rb.Substitutes[winner].Name,
		Rollback:   rb,
		Forward:    fwd,
		Collisions: collisions(rb.Substitutes, s.Substitutes),
	}, nil
}

func winnerErr(winner, n int) error {
	return &types.Error{
		Kind: ErrWinnerOutOfRange.Kind,
		Msg:  ErrWinnerOutOfRange.Msg,
		Err:  fmt.Errorf("index %d, %d fonts", winner, n),
	}
}

// collisions returns the face names (first occurrence, in order) that match
// an existing substitute, ignoring case.
func collisions(faces, existing entry.List) []string {
	if len(existing) == 0 {
		return nil
	}
	have := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		have[ansi.Fold(e.Name)] = struct{}{}
	}
	var out []string
	seen := make(map[string]struct{})
	for _, f := range faces {
		key := ansi.Fold(f.Name)
		if _, ok := have[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f.Name)
	}
	return out
}
