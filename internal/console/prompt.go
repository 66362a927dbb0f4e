// Package console drives a battle session from a terminal: menus, the human
// Controller and the narration renderer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrNoInput is returned when standard input is closed.
var ErrNoInput = errors.New("no more input")

// Prompter reads answers line by line. Reading happens on a background
// goroutine so a pending prompt can be abandoned on context cancellation.
type Prompter struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan string
	err   error // set before lines is closed
}

// NewPrompter creates a prompter reading in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func (p *Prompter) start() {
	p.once.Do(func() {
		p.lines = make(chan string)
		go func() {
			sc := bufio.NewScanner(p.in)
			for sc.Scan() {
				p.lines <- sc.Text()
			}
			p.err = sc.Err()
			close(p.lines)
		}()
	})
}

// Ask prints prompt and returns the next trimmed line.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.start()
	fmt.Fprint(p.out, prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", fmt.Errorf("%w: %w", ErrNoInput, p.err)
			}
			return "", ErrNoInput
		}
		return strings.TrimSpace(line), nil
	}
}

// AskDefault is Ask with a fallback for an empty answer.
func (p *Prompter) AskDefault(ctx context.Context, prompt, def string) (string, error) {
	s, err := p.Ask(ctx, prompt)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// Choose asks until the answer is a number in 1..n and returns its 0-based index.
func (p *Prompter) Choose(ctx context.Context, prompt string, n int) (int, error) {
	for {
		s, err := p.Ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		idx, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter number of choice.")
			continue
		}
		if idx < 1 || idx > n {
			fmt.Fprintln(p.out, "Invalid choice index.")
			continue
		}
		return idx - 1, nil
	}
}
