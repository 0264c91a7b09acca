package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/changefont/internal/elevation"
	"github.com/joshuapare/changefont/internal/regsource"
)

const testOutDir = "/out"

// cliRun is the outcome of one in-process invocation.
type cliRun struct {
	stdout string
	stderr string
	err    error
	fs     afero.Fs
}

// resetFlags restores every flag variable to its default, since cobra only
// assigns the flags that appear on the command line.
func resetFlags() {
	verbose, quiet, jsonOut, noColor, logFile = false, false, false, false, ""
	fromReg, outDir, queryFlag = "", "", ""
	indexFlag = -1
	assumeYes, skipElevationCheck = false, false
}

// runCLI executes the root command with args, feeding input on stdin. fs
// becomes the output filesystem; nil means a fresh MemMapFs.
func runCLI(t *testing.T, fs afero.Fs, input string, args ...string) cliRun {
	t.Helper()
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	require.NoError(t, fs.MkdirAll(testOutDir, 0o755))

	var out, errOut bytes.Buffer
	origIn, origOut, origErr := stdin, stdout, stderr
	origFs, origExe := appFs, executable
	t.Cleanup(func() {
		stdin, stdout, stderr = origIn, origOut, origErr
		appFs, executable = origFs, origExe
		liveSource = regsource.Live
		checkElevate = elevation.Default
		resetFlags()
	})

	stdin, stdout, stderr = strings.NewReader(input), &out, &errOut
	appFs = fs
	executable = func() (string, error) { return testOutDir + "/changefont.exe", nil }

	resetFlags()
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return cliRun{stdout: out.String(), stderr: errOut.String(), err: err, fs: fs}
}

// withExport returns a MemMapFs holding content at /fonts.reg.
func withExport(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/fonts.reg", []byte(content), 0o644))
	return fs
}

// readOut reads a file written under testOutDir.
func readOut(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, testOutDir+"/"+name)
	require.NoError(t, err)
	return string(b)
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
