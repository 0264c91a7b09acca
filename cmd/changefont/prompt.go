package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/changefont/internal/ansi"
	"github.com/joshuapare/changefont/internal/entry"
)

// errInputClosed is returned when stdin ends before a prompt is answered.
var errInputClosed = errors.New("input closed before an answer was given")

// prompter asks line-based questions on a terminal.
type prompter struct {
	r *bufio.Reader
}

func newPrompter(r io.Reader) *prompter {
	return &prompter{r: bufio.NewReader(r)}
}

// ask prints question and returns the answer without its line ending.
func (p *prompter) ask(question string) (string, error) {
	printPlain("%s", question)
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// matchFonts returns the indices of fonts whose name contains query,
// ignoring case. query is what the user typed (UTF-8).
func matchFonts(fonts entry.List, query string) []int {
	q := string(ansi.Encode(query))
	var out []int
	for i, f := range fonts {
		if ansi.Contains(f.Name, q) {
			out = append(out, i)
		}
	}
	return out
}

// selectFont runs the search and index prompts until a valid index is given.
// A non-empty initial query answers the first search prompt.
func (p *prompter) selectFont(fonts entry.List, initial string) (int, error) {
	printPlain("Now, you will choose a font to replace all other fonts with.\n")
	printPlain("The amount of fonts is probably too high to list them now.\nThat's why you can search through them.\n")

	query := initial
	for {
		if query == "" {
			var err error
			if query, err = p.ask("Search query: "); err != nil {
				return -1, err
			}
		}
		matches := matchFonts(fonts, query)
		if len(matches) > 0 {
			printPlain("Fonts that match the query:\n")
			for _, i := range matches {
				printPlain("  [%d] %s\n", i, ansi.Decode(fonts[i].Name))
			}
			break
		}
		printError("No fonts were found, try again.\n")
		query = ""
	}

	for {
		answer, err := p.ask("Enter the number of the font you want: ")
		if err != nil {
			return -1, err
		}
		idx, err := parseIndex(answer, len(fonts))
		if err == nil {
			return idx, nil
		}
		printError("Invalid number, try again.\n")
	}
}

// confirm asks a [y/N] question; only an answer starting with y/Y accepts.
func (p *prompter) confirm(question string) (bool, error) {
	answer, err := p.ask(question + " [y/N] ")
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y'), nil
}

// parseIndex parses a font index and checks it against n fonts.
func parseIndex(s string, n int) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1, fmt.Errorf("invalid font index %q", s)
	}
	if idx < 0 || idx >= n {
		return -1, fmt.Errorf("font index %d out of range (0-%d)", idx, n-1)
	}
	return idx, nil
}
