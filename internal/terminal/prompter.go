package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter is the input half of the I/O boundary. The engine only ever
// asks for a line or a yes/no answer; everything else is rendering.
type Prompter interface {
	// Line shows label and blocks for one line of input, returned as
	// typed. Callers that want a trimmed field trim it themselves; the
	// post composer relies on raw lines to keep indentation and to tell
	// a blank line from a whitespace-only one.
	Line(label string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)
}

// StdPrompter reads from an io.Reader (normally stdin) and echoes
// labels to an io.Writer (normally stdout).
type StdPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewStdPrompter(in io.Reader, out io.Writer) *StdPrompter {
	return &StdPrompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *StdPrompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *StdPrompter) Confirm(question string) (bool, error) {
	answer, err := p.Line(question + " (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
