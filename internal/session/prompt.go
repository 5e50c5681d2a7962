package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed reports that the input stream ended. The session treats it
// the same as choosing Exit.
var ErrInputClosed = errors.New("input closed")

// Prompter reads selections from the shopper's terminal. Anything that is
// not a usable answer is reported and asked again; only a closed stream
// ends the conversation.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Int asks for an integer between min and max inclusive, re-prompting until
// it gets one.
func (p *Prompter) Int(label string, min, max int64) (int64, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		value, parseErr := strconv.ParseInt(line, 10, 64)
		if parseErr != nil || value < min || value > max {
			fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return value, nil
	}
}

// Confirm asks a yes/no question, re-prompting until it gets one of y/n.
func (p *Prompter) Confirm(label string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s (y/n): ", label)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
