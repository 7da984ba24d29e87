package tui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	gcaerrors "gca.dev/gca/internal/errors"
)

// LinePrompter asks questions one line at a time. It is used when stdin is
// piped or not a terminal, and prints numbered menus instead of arrow-key lists.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading answers from in
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Select prints a numbered menu and reads the chosen number.
// 'q' cancels; anything else that is not a listed number asks again.
func (p *LinePrompter) Select(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}

	fmt.Fprintf(p.out, "\n%s\n", Bold(title))
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, opt.Label)
	}

	for {
		fmt.Fprint(p.out, "\nEnter number (or 'q' to quit): ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		choice := strings.ToLower(line)
		if choice == "q" {
			return "", gcaerrors.ErrCanceled
		}
		if idx, convErr := strconv.Atoi(choice); convErr == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1].Value, nil
		}
		fmt.Fprintf(p.out, "⚠️  Invalid choice %q. Enter a number from 1 to %d.\n", line, len(options))
	}
}

// Input prints the prompt and reads one trimmed line
func (p *LinePrompter) Input(prompt string) (string, error) {
	fmt.Fprintf(p.out, "\n%s\n> ", prompt)
	return p.readLine()
}

// Confirm reads a yes/no answer. Only "y" or "yes" confirm.
func (p *LinePrompter) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", prompt)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine returns the next line without its terminator. Running out of
// input before any answer is treated as the operator walking away.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			fmt.Fprintln(p.out)
			return "", gcaerrors.ErrCanceled
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
