package cli

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

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// LineReader reads answers to prompts line by line and gives up when its context ends.
type LineReader struct {
	reader *bufio.Reader
	out    io.Writer
	mu     sync.Mutex
}

// NewLineReader reads from in and writes prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	if out == nil {
		out = io.Discard
	}
	return &LineReader{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine reads one trimmed line, respecting context cancellation.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		value, err := r.reader.ReadString('\n')
		if errors.Is(err, io.EOF) && value != "" {
			err = nil
		}
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The read goroutine finishes on its own once input arrives.
		return "", ErrInputCancelled
	case res := <-resultCh:
		return strings.TrimSpace(res.value), res.err
	}
}

// Ask prints prompt and returns the answer, or def when the answer is blank.
func (r *LineReader) Ask(ctx context.Context, prompt, def string) (string, error) {
	label := prompt
	if def != "" {
		label = fmt.Sprintf("%s [%s]", prompt, def)
	}
	if _, err := fmt.Fprint(r.out, FormatPrompt(label)); err != nil {
		return "", err
	}

	answer, err := r.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// AskAmount asks until the answer is a non-negative number. A blank answer means 0.
func (r *LineReader) AskAmount(ctx context.Context, prompt string) (float64, error) {
	for {
		answer, err := r.Ask(ctx, prompt, "")
		if err != nil {
			return 0, err
		}
		v, err := ParseAmount(answer)
		if err == nil {
			return v, nil
		}
		if _, err := fmt.Fprintln(r.out, FormatError(err.Error())); err != nil {
			return 0, err
		}
	}
}

// ParseAmount parses a non-negative amount, accepting thousands separators and a
// leading $. A blank string is 0.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must be a positive number")
	}
	return v, nil
}
