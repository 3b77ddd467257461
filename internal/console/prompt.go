package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Prompter asks the operator a yes/no question with a stated default.
type Prompter interface {
	// Confirm blocks until the operator answers yes, no, or accepts the
	// default with an empty line. Any other input re-prompts.
	Confirm(message string, defaultAnswer bool) (bool, error)
}

// Terminal prompts on a reader/writer pair, usually stdin/stdout.
type Terminal struct {
	// in reads operator answers line by line.
	in *bufio.Scanner
	// out receives the prompt text.
	out io.Writer
	// suffixColor highlights the default indicator.
	suffixColor *color.Color
}

// NewTerminal creates a prompter reading answers from in and writing prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:          bufio.NewScanner(in),
		out:         out,
		suffixColor: color.New(color.FgCyan),
	}
}

// Confirm asks message with a [y/N] or [Y/n] indicator. Tokens are matched
// case-insensitively; an empty answer takes the default; anything else
// re-prompts. End of input also takes the default.
func (t *Terminal) Confirm(message string, defaultAnswer bool) (bool, error) {
	suffix := " [y/N] "
	if defaultAnswer {
		suffix = " [Y/n] "
	}

	for {
		_, _ = fmt.Fprint(t.out, message, t.suffixColor.Sprint(suffix))

		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return defaultAnswer, err
			}

			// Closed input: take the stated default, same as an empty answer.
			_, _ = fmt.Fprintln(t.out)

			return defaultAnswer, nil
		}

		switch strings.ToLower(strings.TrimSpace(t.in.Text())) {
		case "":
			return defaultAnswer, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			_, _ = fmt.Fprintln(t.out, "Please enter y or n.")
		}
	}
}
