package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/changefont/internal/snapshot"
	"github.com/joshuapare/changefont/pkg/types"
)

const fontsExport = "Windows Registry Editor Version 5.00\r\n" +
	"\r\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\Fonts]\r\n" +
	"\"Arial (TrueType)\"=\"arial.ttf\"\r\n" +
	"\"Courier New (TrueType)\"=\"cour.ttf\"\r\n" +
	"\r\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\FontSubstitutes]\r\n" +
	"\"Arial\"=\"Helvetica\"\r\n" +
	"\r\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\FontLink\\SystemLink]\r\n" +
	"\"Tahoma\"=hex(7):4d,00,00,00\r\n"

const wantBackup = "Windows Registry Editor Version 5.00\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\Fonts]\n" +
	"\"Arial (TrueType)\"=\"arial.ttf\"\n" +
	"\"Courier New (TrueType)\"=\"cour.ttf\"\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\FontSubstitutes]\n" +
	"\"Arial\"=-\n" +
	"\"Courier New\"=-\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\FontLink\\SystemLink]\n" +
	"\"Tahoma\"=hex(7):4d,0,0,0\n"

const wantForwardCourier = "Windows Registry Editor Version 5.00\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\Fonts]\n" +
	"\"Arial (TrueType)\"=\"\"\n" +
	"\"Courier New (TrueType)\"=\"cour.ttf\"\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\FontSubstitutes]\n" +
	"\"Arial\"=\"Courier New\"\n" +
	"\"Courier New\"=-\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\FontLink\\SystemLink]\n" +
	"\"Tahoma\"=-\n"

const forwardCourier = "change_fonts_to_Courier New.reg"

func TestRun_NonInteractive(t *testing.T) {
	fs := withExport(t, fontsExport)
	run := runCLI(t, fs, "", "--from-reg", "/fonts.reg", "--out-dir", testOutDir, "--index", "1", "--yes")
	require.NoError(t, run.err)

	assertContains(t, run.stdout, []string{
		"Amount of fonts: 2",
		"This will replace ALL fonts with `Courier New (TrueType)`.",
		"A backup will be created and can be restored later.",
		"Wrote backup file to /out/backup_fonts.reg",
		"Wrote font change file to /out/" + forwardCourier,
		"`Arial` already had a substitute",
	})
	assert.Equal(t, wantBackup, readOut(t, fs, "backup_fonts.reg"))
	assert.Equal(t, wantForwardCourier, readOut(t, fs, forwardCourier))
}

func TestRun_Interactive(t *testing.T) {
	fs := withExport(t, fontsExport)
	run := runCLI(t, fs, "times\ncour\nabc\n7\n1\ny\n", "--from-reg", "/fonts.reg")
	require.NoError(t, run.err)

	assertContains(t, run.stdout, []string{
		"Search query: ",
		"Fonts that match the query:",
		"  [1] Courier New (TrueType)",
		"Enter the number of the font you want: ",
		"Are you SURE you want to continue? [y/N] ",
	})
	assert.NotContains(t, run.stdout, "[0] Arial")
	assert.Equal(t, 1, strings.Count(run.stderr, "No fonts were found, try again."))
	assert.Equal(t, 2, strings.Count(run.stderr, "Invalid number, try again."))

	// Without --out-dir the files land next to the executable.
	assert.Equal(t, wantForwardCourier, readOut(t, fs, forwardCourier))
}

func TestRun_QueryFlagIsCaseInsensitive(t *testing.T) {
	fs := withExport(t, fontsExport)
	run := runCLI(t, fs, "0\nY\n", "--from-reg", "/fonts.reg", "--query", "ARIAL")
	require.NoError(t, run.err)

	assert.NotContains(t, run.stdout, "Search query: ")
	assertContains(t, run.stdout, []string{"  [0] Arial (TrueType)"})
	readOut(t, fs, "change_fonts_to_Arial.reg")
}

func TestRun_DeclineWritesNothing(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "nope\n", " N"} {
		fs := withExport(t, fontsExport)
		run := runCLI(t, fs, answer, "--from-reg", "/fonts.reg", "--index", "0")
		require.NoError(t, run.err, "answer %q", answer)
		assertContains(t, run.stdout, []string{"Nothing was written."})

		entries, err := afero.ReadDir(fs, testOutDir)
		require.NoError(t, err)
		assert.Empty(t, entries, "answer %q", answer)
	}
}

func TestRun_KeepsExistingBackup(t *testing.T) {
	fs := withExport(t, fontsExport)
	require.NoError(t, fs.MkdirAll(testOutDir, 0o755))
	require.NoError(t, afero.WriteFile(fs, testOutDir+"/backup_fonts.reg", []byte("first"), 0o644))

	run := runCLI(t, fs, "", "--from-reg", "/fonts.reg", "--index", "1", "--yes")
	require.NoError(t, run.err)

	assertContains(t, run.stdout, []string{"A backup already exists at /out/backup_fonts.reg, keeping it."})
	assert.Equal(t, "first", readOut(t, fs, "backup_fonts.reg"))
	assert.Equal(t, wantForwardCourier, readOut(t, fs, forwardCourier))
}

func TestRun_JSON(t *testing.T) {
	fs := withExport(t, fontsExport)
	run := runCLI(t, fs, "", "--from-reg", "/fonts.reg", "--index", "1", "--yes", "--json")
	require.NoError(t, run.err)

	var got runResult
	require.NoError(t, json.Unmarshal([]byte(run.stdout), &got), "stdout: %s", run.stdout)
	assert.Equal(t, runResult{
		Fonts:         2,
		Substitutes:   1,
		Links:         1,
		Winner:        "Courier New (TrueType)",
		Face:          "Courier New",
		BackupPath:    "/out/backup_fonts.reg",
		BackupWritten: true,
		ForwardPath:   "/out/" + forwardCourier,
		Collisions:    []string{"Arial"},
	}, got)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		export   string
		input    string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "index out of range",
			export:   fontsExport,
			args:     []string{"--index", "2", "--yes"},
			wantCode: 1,
			wantMsg:  "out of range",
		},
		{
			name:     "stdin closed during search",
			export:   fontsExport,
			input:    "",
			wantCode: 1,
			wantMsg:  errInputClosed.Error(),
		},
		{
			name:     "stdin closed at confirmation",
			export:   fontsExport,
			input:    "",
			args:     []string{"--index", "0"},
			wantCode: 1,
			wantMsg:  errInputClosed.Error(),
		},
		{
			name: "no fonts",
			export: "Windows Registry Editor Version 5.00\r\n\r\n" +
				"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\Fonts]\r\n",
			args:     []string{"--index", "0", "--yes"},
			wantCode: 1,
			wantMsg:  "no fonts found",
		},
		{
			name:     "fonts key missing",
			export:   "Windows Registry Editor Version 5.00\r\n",
			args:     []string{"--index", "0", "--yes"},
			wantCode: 1,
			wantMsg:  "Fonts",
		},
		{
			name:     "malformed export",
			export:   "not a registry file\r\n",
			args:     []string{"--index", "0", "--yes"},
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := withExport(t, tt.export)
			args := append([]string{"--from-reg", "/fonts.reg"}, tt.args...)
			run := runCLI(t, fs, tt.input, args...)
			require.Error(t, run.err)
			assert.Equal(t, tt.wantCode, exitCode(run.err))
			if tt.wantMsg != "" {
				assert.Contains(t, run.err.Error(), tt.wantMsg)
			}
		})
	}
}

type fakeSource map[string][]snapshot.RawValue

func (f fakeSource) Values(keyPath string) ([]snapshot.RawValue, error) {
	return f[keyPath], nil
}

func TestRun_LiveRegistry(t *testing.T) {
	live := fakeSource{
		snapshot.FontsKeyPath: {
			{Name: []byte("Tahoma (TrueType)\x00"), Type: types.REG_SZ, Data: []byte("tahoma.ttf\x00")},
		},
	}

	t.Run("not elevated", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		checkElevate = func() (bool, error) { return false, nil }
		run := runCLI(t, fs, "", "--index", "0", "--yes")
		require.Error(t, run.err)
		assert.Equal(t, exitNotElevated, exitCode(run.err))
		assert.Contains(t, run.err.Error(), "Administrator privileges")
		assert.True(t, types.IsKind(run.err, types.ErrKindState))
	})

	t.Run("elevation check fails", func(t *testing.T) {
		checkElevate = func() (bool, error) { return false, errors.New("no token") }
		run := runCLI(t, nil, "", "--index", "0", "--yes")
		require.Error(t, run.err)
		assert.Equal(t, 1, exitCode(run.err))
	})

	t.Run("elevated", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		checkElevate = func() (bool, error) { return true, nil }
		liveSource = func() (snapshot.Source, error) { return live, nil }
		run := runCLI(t, fs, "", "--index", "0", "--yes")
		require.NoError(t, run.err)
		assert.Contains(t, readOut(t, fs, "change_fonts_to_Tahoma.reg"), "\"Tahoma (TrueType)\"=\"tahoma.ttf\"\n")
	})

	t.Run("skip elevation check", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		checkElevate = func() (bool, error) { t.Fatal("elevation checked"); return false, nil }
		liveSource = func() (snapshot.Source, error) { return live, nil }
		run := runCLI(t, fs, "", "--skip-elevation-check", "--index", "0", "--yes")
		require.NoError(t, run.err)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		checkElevate = func() (bool, error) { return true, nil }
		liveSource = func() (snapshot.Source, error) { return nil, types.ErrUnsupported }
		run := runCLI(t, nil, "", "--index", "0", "--yes")
		require.ErrorIs(t, run.err, types.ErrUnsupported)
		assert.Contains(t, run.err.Error(), "--from-reg")
	})
}

func TestRun_Quiet(t *testing.T) {
	fs := withExport(t, fontsExport)
	run := runCLI(t, fs, "", "-q", "--from-reg", "/fonts.reg", "--index", "0", "--yes")
	require.NoError(t, run.err)
	assert.Empty(t, run.stdout)
	readOut(t, fs, "change_fonts_to_Arial.reg")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
	assert.Equal(t, 10, exitCode(&exitError{code: 10, err: errors.New("x")}))
}

func readLog(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var recs []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		recs = append(recs, rec)
	}
	return recs
}

func findRecord(recs []map[string]any, msg string) map[string]any {
	for _, r := range recs {
		if r["msg"] == msg {
			return r
		}
	}
	return nil
}

func TestRun_LogFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "changefont.log")
		fs := withExport(t, fontsExport)
		run := runCLI(t, fs, "", "-v", "--log-file", logPath, "--from-reg", "/fonts.reg", "--index", "1", "--yes")
		require.NoError(t, run.err)

		recs := readLog(t, logPath)
		link := findRecord(recs, "font link")
		require.NotNil(t, link, "records: %v", recs)
		assert.Equal(t, "Tahoma", link["name"])
		assert.Equal(t, "REG_MULTI_SZ", link["type"])

		done := findRecord(recs, "run complete")
		require.NotNil(t, done)
		assert.Equal(t, "/out/"+forwardCourier, done["forward"])
		assert.Equal(t, true, done["backup_written"])
	})

	t.Run("declined", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "changefont.log")
		fs := withExport(t, fontsExport)
		run := runCLI(t, fs, "n\n", "--log-file", logPath, "--from-reg", "/fonts.reg", "--index", "0")
		require.NoError(t, run.err)

		rec := findRecord(readLog(t, logPath), "declined")
		require.NotNil(t, rec)
		assert.Equal(t, "Arial (TrueType)", rec["winner"])
	})

	t.Run("failure", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "changefont.log")
		checkElevate = func() (bool, error) { return false, nil }
		run := runCLI(t, nil, "", "--log-file", logPath, "--index", "0", "--yes")
		require.Error(t, run.err)

		rec := findRecord(readLog(t, logPath), "run failed")
		require.NotNil(t, rec)
		assert.EqualValues(t, exitNotElevated, rec["exit"])
		assert.Equal(t, "ERROR", rec["level"])
	})

	t.Run("skip elevation check", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "changefont.log")
		liveSource = func() (snapshot.Source, error) {
			return fakeSource{snapshot.FontsKeyPath: {{Name: []byte("A"), Type: types.REG_SZ, Data: []byte("a.ttf")}}}, nil
		}
		run := runCLI(t, nil, "", "--log-file", logPath, "--skip-elevation-check", "--index", "0", "--yes")
		require.NoError(t, run.err)

		rec := findRecord(readLog(t, logPath), "elevation check skipped, reading the live registry anyway")
		require.NotNil(t, rec)
		assert.Equal(t, "WARN", rec["level"])
	})
}
