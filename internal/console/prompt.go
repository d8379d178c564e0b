package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/dealornodeal/internal/advisor"
)

// InvalidInputError is bad user input. It never escapes a prompt loop.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "Invalid Input: " + e.Reason
}

// ParseInt parses one line as an integer in [min, max].
func ParseInt(line string, min, max int) (int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, &InvalidInputError{Reason: "Empty input"}
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, &InvalidInputError{Reason: "Non-numeric input"}
	}
	if n < min || n > max {
		return 0, &InvalidInputError{Reason: fmt.Sprintf("Input out of range (%d-%d)", min, max)}
	}
	return n, nil
}

// ParseYesNo accepts anything starting with y or n, in either case.
func ParseYesNo(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, &InvalidInputError{Reason: "Empty input"}
	}
	switch line[0] {
	case 'y', 'Y':
		return true, nil
	case 'n', 'N':
		return false, nil
	}
	return false, &InvalidInputError{Reason: "Invalid choice"}
}

// Prompter reads answers line by line and re-asks until they parse.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles

	// pending carries a read still in flight after its caller gave up
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewPrompter reads from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer, styles Styles) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

// Int asks until the answer is an integer in [min, max]. Only a read error,
// io.EOF included, or ctx's error is returned.
func (p *Prompter) Int(ctx context.Context, prompt string, min, max int) (int, error) {
	for {
		fmt.Fprint(p.out, p.styles.Prompt.Render(prompt))
		line, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := ParseInt(line, min, max)
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			fmt.Fprintln(p.out, p.styles.Error.Render(invalid.Error()+". Please try again."))
			continue
		}
		return n, err
	}
}

// YesNo asks until the answer starts with y or n.
func (p *Prompter) YesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		fmt.Fprint(p.out, p.styles.Prompt.Render(prompt+" (y/n): "))
		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		ok, err := ParseYesNo(line)
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			fmt.Fprintln(p.out, p.styles.Error.Render(invalid.Error()+". Please enter 'y' or 'n'."))
			continue
		}
		return ok, err
	}
}

// Warn prints a recoverable problem with the player's last answer.
func (p *Prompter) Warn(msg string) {
	fmt.Fprintln(p.out, p.styles.Warning.Render(msg))
}

// Advise prints the advisor's view of the current offer.
func (p *Prompter) Advise(a advisor.Assessment) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.styles.Title.Render("=== AI ADVISOR ==="))
	fmt.Fprintln(p.out, p.styles.Advice.Render(a.String()))
}

// readLine waits for the next line or for ctx to end. A read abandoned on
// cancellation is kept, so the line it returns goes to the next caller.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.pending == nil {
		p.pending = make(chan readResult, 1)
		go func(ch chan<- readResult) {
			line, err := p.read()
			ch <- readResult{line: line, err: err}
		}(p.pending)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.err
	}
}

func (p *Prompter) read() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
