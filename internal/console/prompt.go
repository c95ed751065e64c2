package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the operator types the cancel sentinel
// ('q' or 'cancel') at a cancelable prompt. The current operation aborts
// with nothing persisted.
var ErrCancelled = errors.New("cancelled")

// Prompter reads typed values from the input stream. Every prompt is a
// parse-and-validate function returning a value or an error; malformed
// input re-prompts, it never panics or throws.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Line prompts once and returns the raw input line. io.EOF signals the
// input stream is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// CancelableLine is Line with the cancel sentinel mapped to ErrCancelled.
func (p *Prompter) CancelableLine(prompt string) (string, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return "", err
	}
	if isCancel(line) {
		return "", ErrCancelled
	}
	return line, nil
}

// Int re-prompts until the input parses as an integer. subject names the
// field in the retry message; there is no retry cap.
func (p *Prompter) Int(prompt, subject string) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return value, nil
		}
		fmt.Fprintf(p.out, "Invalid input. Please enter a valid %s.\n", subject)
	}
}

// ID re-prompts until the input parses as an unsigned identifier.
func (p *Prompter) ID(prompt, subject string) (uint, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
		if convErr == nil {
			return uint(value), nil
		}
		fmt.Fprintf(p.out, "Invalid input. Please enter a valid %s.\n", subject)
	}
}

// CancelableID is ID with the cancel sentinel mapped to ErrCancelled.
func (p *Prompter) CancelableID(prompt, subject string) (uint, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		if isCancel(line) {
			return 0, ErrCancelled
		}
		value, convErr := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
		if convErr == nil {
			return uint(value), nil
		}
		fmt.Fprintf(p.out, "Invalid input. Please enter a valid %s or 'q' to go back.\n", subject)
	}
}

// Pause waits for Enter before returning to the main menu.
func (p *Prompter) Pause() {
	fmt.Fprint(p.out, "\nPress Enter to return to the main menu.")
	p.in.Scan()
	fmt.Fprintln(p.out)
}

func isCancel(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "q" || s == "cancel"
}
