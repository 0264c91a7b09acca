// Package assembly turns a snapshot into the backup and forward .reg
// documents and writes them.
//
// The backup is written before the forward document, and only if no backup
// exists yet: an existing backup is the first captured rollback state and is
// never overwritten. The forward document is always written.
package assembly

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/joshuapare/changefont/internal/ansi"
	"github.com/joshuapare/changefont/internal/planner"
	"github.com/joshuapare/changefont/internal/regtext"
	"github.com/joshuapare/changefont/internal/snapshot"
	"github.com/joshuapare/changefont/pkg/types"
)

// Sink is where documents go.
type Sink interface {
	Exists(path string) (bool, error)
	WriteFile(path string, data []byte) error
}

// Result reports what a run produced.
type Result struct {
	Plan *planner.Plan

	BackupPath    string
	BackupWritten bool // false when an existing backup was kept
	ForwardPath   string

	// Backup is nil when BackupWritten is false.
	Backup  []byte
	Forward []byte
}

// Assembler plans, renders and writes one swap.
type Assembler struct {
	sink Sink
	opts Options
	log  *slog.Logger
}

// New returns an Assembler writing to sink. A nil logger discards.
func New(sink Sink, opts Options, log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Assembler{sink: sink, opts: opts.withDefaults(), log: log}
}

// BackupPath is where the rollback document is written.
func (a *Assembler) BackupPath() string {
	return filepath.Join(a.opts.OutputDir, a.opts.BackupName)
}

// ForwardPath is where the forward document for a winner face is written.
func (a *Assembler) ForwardPath(face string) string {
	return filepath.Join(a.opts.OutputDir, a.opts.ForwardPrefix+SanitizeFileName(face)+RegExtension)
}

// Assemble plans the swap to the font at index winner, writes the backup
// (unless one exists) and then the forward document.
func (a *Assembler) Assemble(s snapshot.Snapshot, winner int) (*Result, error) {
	p, err := planner.New(s, winner)
	if err != nil {
		return nil, err
	}
	for _, face := range p.Collisions {
		a.log.Warn("face already has a substitute; the backup removes it",
			"face", ansi.Decode(face))
	}

	res := &Result{
		Plan:        p,
		BackupPath:  a.BackupPath(),
		ForwardPath: a.ForwardPath(p.WinnerFace),
	}

	exists, err := a.sink.Exists(res.BackupPath)
	if err != nil {
		return nil, types.Wrap(types.ErrKindIO, "check backup "+res.BackupPath, err)
	}
	if exists {
		a.log.Warn("backup already exists, keeping it", "path", res.BackupPath)
	} else {
		res.Backup = RenderBundle(p.Rollback)
		if err := a.sink.WriteFile(res.BackupPath, res.Backup); err != nil {
			return nil, types.Wrap(types.ErrKindIO, "write backup "+res.BackupPath, err)
		}
		res.BackupWritten = true
		a.log.Info("wrote backup", "path", res.BackupPath, "bytes", len(res.Backup))
	}

	res.Forward = RenderBundle(p.Forward)
	if err := a.sink.WriteFile(res.ForwardPath, res.Forward); err != nil {
		return nil, types.Wrap(types.ErrKindIO, "write forward "+res.ForwardPath, err)
	}
	a.log.Info("wrote forward", "path", res.ForwardPath, "bytes", len(res.Forward),
		"winner", ansi.Decode(p.WinnerName))
	return res, nil
}

// RenderBundle renders a bundle as one .reg document, sections in the order
// fonts, substitutes, links.
func RenderBundle(b planner.Bundle) []byte {
	return regtext.RenderDocument([]regtext.Section{
		{KeyPath: snapshot.FontsKeyPath, Entries: b.Fonts},
		{KeyPath: snapshot.SubstitutesKeyPath, Entries: b.Substitutes},
		{KeyPath: snapshot.LinksKeyPath, Entries: b.Links},
	})
}

// SanitizeFileName replaces characters Windows forbids in file names, and
// control bytes, with '_'. An empty face becomes "unnamed".
func SanitizeFileName(face string) string {
	face = strings.TrimSpace(face)
	if face == "" {
		return "unnamed"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, strings.ContainsRune(`<>:"/\|?*`, r):
			return '_'
		default:
			return r
		}
	}, ansi.Decode(face))
}
