// Package cli holds the read-validate-reprompt helpers shared by every
// exercise. All readers are injected so tests can feed scripted input.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter wraps a line-oriented input source and the writers prompts and
// diagnostics go to.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, err: os.Stderr}
}

// NewStdio reads from stdin and writes to stdout/stderr.
func NewStdio() *Prompter {
	return &Prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout, err: os.Stderr}
}

// ReadLine prints the prompt and returns the next trimmed line. An I/O
// failure is fatal for the caller's run and is returned as-is.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// WaitEnter blocks until the user presses Enter.
func (p *Prompter) WaitEnter(prompt string) error {
	_, err := p.ReadLine(prompt)
	return err
}

// AskInt re-prompts until it reads an integer in [min, max].
func (p *Prompter) AskInt(prompt string, min, max int) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.err, "Error: %v. Please enter a number between %d and %d.\n", err, min, max)
			continue
		}
		if n < min || n > max {
			fmt.Fprintf(p.out, "Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// AskPositiveFloat re-prompts until it reads a number greater than zero.
// name is used in diagnostics ("time (hours) must be positive").
func (p *Prompter) AskPositiveFloat(prompt, name string) (float64, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(p.err, "Error: %v. Please enter a valid number.\n", err)
			continue
		}
		if v <= 0 {
			fmt.Fprintf(p.out, "Invalid input. %s must be positive.\n", name)
			continue
		}
		return v, nil
	}
}

// AskChoice re-prompts until the answer matches one of the given options.
// Matching is case-insensitive; the canonical (lowercased) option is
// returned.
func (p *Prompter) AskChoice(prompt string, options ...string) (string, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		for _, opt := range options {
			if strings.EqualFold(line, opt) {
				return strings.ToLower(opt), nil
			}
		}
		fmt.Fprintf(p.out, "Invalid input. Please enter one of: %s.\n", strings.Join(options, ", "))
	}
}

// Printf writes to the prompter's output stream.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Errorf writes a diagnostic to the error stream.
func (p *Prompter) Errorf(format string, args ...any) {
	fmt.Fprintf(p.err, format, args...)
}
