package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on a reader/writer pair. Keeping the I/O
// injectable lets the wizard run against canned input in tests.
type Prompter struct {
	source io.Reader
	reader *bufio.Reader
	writer io.Writer
}

func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		source: r,
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Confirm asks a yes/no question. An empty submission selects the default.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.writer, "%s [%s]: ", label, hint)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	line = strings.ToLower(line)
	if line == "" {
		return def, nil
	}
	return line == "y" || line == "yes", nil
}

// Input asks for a line of text. An empty submission selects the default
// verbatim.
func (p *Prompter) Input(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.writer, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.writer, "%s: ", label)
	}
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Secret asks for a value without echoing it when the input is a terminal.
// Empty values are allowed.
func (p *Prompter) Secret(label string) (string, error) {
	fmt.Fprintf(p.writer, "%s: ", label)
	if f, ok := p.source.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.writer)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
