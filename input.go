package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const dimensionPrompt = "Size of matrix to generate: "

// DimensionReader supplies the matrix dimension for one run.
type DimensionReader interface {
	ReadDimension() (int, error)
}

// ParseError reports dimension input that is not an integer.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid matrix size %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return n, nil
}

// promptReader asks for the dimension on out and reads a single line from in.
type promptReader struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptReader(in io.Reader, out io.Writer) *promptReader {
	return &promptReader{in: bufio.NewReader(in), out: out}
}

func (p *promptReader) ReadDimension() (int, error) {
	if _, err := io.WriteString(p.out, dimensionPrompt); err != nil {
		return 0, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read matrix size: %w", err)
	}
	// a last line without newline is still a valid answer
	if errors.Is(err, io.EOF) && line == "" {
		return 0, &ParseError{Input: line, Err: io.ErrUnexpectedEOF}
	}
	return parseDimension(line)
}

// fixedDimension is a dimension already known as text, e.g. a form value.
type fixedDimension string

func (d fixedDimension) ReadDimension() (int, error) {
	return parseDimension(string(d))
}
