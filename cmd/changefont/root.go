package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	logFile string
)

// Streams, swapped by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "changefont",
	Short: "Replace all Windows fonts with one font via .reg files",
	Long: `changefont snapshots the Fonts, FontSubstitutes and FontLink\SystemLink
registry keys and writes two .reg files next to the executable:

  backup_fonts.reg              restores the current fonts (never overwritten)
  change_fonts_to_<Face>.reg    points every font at the chosen face

Import the change file with regedit to apply it, and the backup to undo it.

Example:
  changefont
  changefont --query arial --index 12 --yes
  changefont --from-reg fonts-export.reg --out-dir . --index 0 --yes`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChange()
	},
	Version: version,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output the result in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append structured JSON logs to this file")
}

// exitError carries a specific process exit status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// exitCode maps a run error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(exitCode(err))
	}
}

// Helper functions for output

var (
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func styled(s lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

// printInfo prints an info message if not in quiet or JSON mode
func printInfo(format string, args ...interface{}) {
	if !quiet && !jsonOut {
		fmt.Fprintf(stdout, styled(infoStyle, "INFO:")+" "+format, args...)
	}
}

// printPlain prints interactive text (prompts, match lists) if not in quiet mode
func printPlain(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printWarning prints a warning unless quiet or in JSON mode
func printWarning(format string, args ...interface{}) {
	if !quiet && !jsonOut {
		fmt.Fprintf(stdout, styled(warnStyle, "WARNING:")+" "+format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(stderr, styled(errorStyle, "ERROR:")+" "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
