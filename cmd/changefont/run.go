package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/joshuapare/changefont/internal/ansi"
	"github.com/joshuapare/changefont/internal/assembly"
	"github.com/joshuapare/changefont/internal/elevation"
	"github.com/joshuapare/changefont/internal/logger"
	"github.com/joshuapare/changefont/internal/regsource"
	"github.com/joshuapare/changefont/internal/snapshot"
	"github.com/joshuapare/changefont/internal/writer"
	"github.com/joshuapare/changefont/pkg/types"
)

// exitNotElevated matches the status the tool has always used for a
// missing Administrator token.
const exitNotElevated = 10

var (
	fromReg            string
	outDir             string
	queryFlag          string
	indexFlag          int
	assumeYes          bool
	skipElevationCheck bool
)

// Collaborators, swapped by tests.
var (
	appFs        = afero.NewOsFs()
	liveSource   = regsource.Live
	checkElevate = elevation.Default
	executable   = os.Executable
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&fromReg, "from-reg", "", "Read the font keys from a .reg export instead of the live registry")
	f.StringVar(&outDir, "out-dir", "", "Directory for the .reg files (default: the executable's directory)")
	f.StringVar(&queryFlag, "query", "", "Answer the first search prompt")
	f.IntVar(&indexFlag, "index", -1, "Font index to use, skipping the search prompts")
	f.BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	f.BoolVar(&skipElevationCheck, "skip-elevation-check", false, "Read the live registry without Administrator rights")
}

// runResult is the --json output.
type runResult struct {
	Fonts         int      `json:"fonts"`
	Substitutes   int      `json:"substitutes"`
	Links         int      `json:"links"`
	Winner        string   `json:"winner"`
	Face          string   `json:"face"`
	BackupPath    string   `json:"backup_path"`
	BackupWritten bool     `json:"backup_written"`
	ForwardPath   string   `json:"forward_path"`
	Collisions    []string `json:"collisions,omitempty"`
}

func runChange() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	closeLog, err := logger.Init(logger.Options{
		Enabled: verbose || logFile != "",
		Writer:  stderr,
		File:    logFile,
		Level:   level,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	if err := change(); err != nil {
		logger.Error("run failed", "err", err, "exit", exitCode(err))
		return err
	}
	return nil
}

// change captures, prompts and assembles. It returns nil when the user
// declines.
func change() error {
	src, err := openSource()
	if err != nil {
		return err
	}

	snap, err := snapshot.Capture(src)
	if err != nil {
		return err
	}
	logger.Debug("captured snapshot",
		"fonts", len(snap.Fonts), "substitutes", len(snap.Substitutes), "links", len(snap.Links))
	for _, l := range snap.Links {
		logger.Debug("font link", "name", ansi.Decode(l.Name), "type", l.Type.String(), "bytes", len(l.Data))
	}
	printInfo("Amount of fonts: %d\n", len(snap.Fonts))
	if len(snap.Fonts) == 0 {
		return errors.New("no fonts found in " + snapshot.FontsKeyPath)
	}

	p := newPrompter(stdin)

	winner := indexFlag
	if winner >= 0 {
		if winner >= len(snap.Fonts) {
			return fmt.Errorf("font index %d out of range (0-%d)", winner, len(snap.Fonts)-1)
		}
	} else {
		if winner, err = p.selectFont(snap.Fonts, queryFlag); err != nil {
			return err
		}
	}

	name := ansi.Decode(snap.Fonts[winner].Name)
	printPlain("\n")
	printWarning("This will replace ALL fonts with `%s`.\n", name)
	printWarning("A backup will be created and can be restored later.\n")
	if !assumeYes {
		ok, err := p.confirm("Are you SURE you want to continue?")
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("declined", "winner", name)
			printInfo("Nothing was written.\n")
			return nil
		}
	}

	dir, err := outputDir()
	if err != nil {
		return err
	}
	opts := assembly.DefaultOptions()
	opts.OutputDir = dir
	printVerbose("Output directory: %s\n", dir)

	res, err := assembly.New(writer.New(appFs), opts, logger.L).Assemble(snap, winner)
	if err != nil {
		return err
	}

	logger.Info("run complete", "backup", res.BackupPath, "backup_written", res.BackupWritten,
		"forward", res.ForwardPath, "collisions", len(res.Plan.Collisions))

	if jsonOut {
		out := runResult{
			Fonts:         len(snap.Fonts),
			Substitutes:   len(snap.Substitutes),
			Links:         len(snap.Links),
			Winner:        name,
			Face:          ansi.Decode(res.Plan.WinnerFace),
			BackupPath:    res.BackupPath,
			BackupWritten: res.BackupWritten,
			ForwardPath:   res.ForwardPath,
		}
		for _, c := range res.Plan.Collisions {
			out.Collisions = append(out.Collisions, ansi.Decode(c))
		}
		return printJSON(out)
	}

	if res.BackupWritten {
		printInfo("Wrote backup file to %s\n", res.BackupPath)
	} else {
		printWarning("A backup already exists at %s, keeping it.\n", res.BackupPath)
	}
	for _, c := range res.Plan.Collisions {
		printWarning("`%s` already had a substitute; the backup deletes it instead of restoring it.\n", ansi.Decode(c))
	}
	printInfo("Wrote font change file to %s\n", res.ForwardPath)
	printInfo("Import it with regedit and sign out to apply. Import %s to undo.\n", filepath.Base(res.BackupPath))
	return nil
}

// openSource picks the .reg export or the live registry. Reading the live
// registry requires elevation unless explicitly skipped.
func openSource() (snapshot.Source, error) {
	if fromReg != "" {
		printVerbose("Reading font keys from %s\n", fromReg)
		return regsource.FromRegFile(appFs, fromReg, snapshot.SubstitutesKeyPath, snapshot.LinksKeyPath)
	}
	if skipElevationCheck {
		logger.Warn("elevation check skipped, reading the live registry anyway")
	} else {
		ok, err := checkElevate()
		if err != nil {
			return nil, fmt.Errorf("check privileges: %w", err)
		}
		if !ok {
			return nil, &exitError{
				code: exitNotElevated,
				err:  &types.Error{Kind: types.ErrKindState, Msg: "you need to run this tool with Administrator privileges"},
			}
		}
	}
	src, err := liveSource()
	if err != nil {
		return nil, fmt.Errorf("live registry: %w (use --from-reg with a reg export)", err)
	}
	return src, nil
}

func outputDir() (string, error) {
	if outDir != "" {
		return outDir, nil
	}
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}
