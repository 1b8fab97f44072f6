package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks yes/no questions on a terminal
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing questions to out.
// nil values default to os.Stdin and os.Stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints "Do you want to <question>? [Y/n]" until the answer is y, n or
// empty. Empty and y mean yes. End of input means no.
func (p *Prompter) Ask(question string) bool {
	for {
		_, _ = fmt.Fprintf(p.out, "Do you want to %s? [Y/n]", question)

		line, err := p.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			_, _ = fmt.Fprintln(p.out)
			return false
		}

		answer := strings.TrimRight(line, "\r\n")

		switch strings.ToLower(answer) {
		case "y", "":
			return true
		case "n":
			return false
		}

		if err != nil {
			return false
		}
	}
}
