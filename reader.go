package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	readBufferSize = 64 * 1024        // 64KB
	maxLineSize    = 64 * 1024 * 1024 // one row of a very large matrix
)

type Matrix struct {
	Size int
	Rows [][]int
}

type Summary struct {
	Size  int   `json:"size"`
	Cells int   `json:"cells"`
	Min   int   `json:"min"`
	Max   int   `json:"max"`
	Sum   int64 `json:"sum"`
}

// ReadMatrix parses a matrix file: comment lines start with '#', the first
// other line holds the size N, and exactly N rows of N integers follow.
// Blank lines are ignored.
func ReadMatrix(r io.Reader) (*Matrix, error) {
	scanner := bufio.NewScanner(bufio.NewReaderSize(r, readBufferSize))
	scanner.Buffer(make([]byte, 0, readBufferSize), maxLineSize)

	var (
		m       *Matrix
		lineNum int
	)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m == nil {
			size, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid size %q", lineNum, line)
			}
			if size < 0 {
				return nil, fmt.Errorf("line %d: negative size %d", lineNum, size)
			}
			m = &Matrix{Size: size, Rows: make([][]int, 0, size)}
			continue
		}

		if len(m.Rows) == m.Size {
			return nil, fmt.Errorf("line %d: more than %d rows", lineNum, m.Size)
		}
		fields := strings.Fields(line)
		// return error if the current line doesn't have the declared number of columns
		if len(fields) != m.Size {
			return nil, fmt.Errorf("line %d: column number inconsistent: got %d, expects %d", lineNum, len(fields), m.Size)
		}
		row := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: not a number: %q", lineNum, field)
			}
			row[i] = v
		}
		m.Rows = append(m.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}

	if m == nil {
		return nil, errors.New("missing size line")
	}
	if len(m.Rows) != m.Size {
		return nil, fmt.Errorf("not a matrix: rows: %d, size: %d", len(m.Rows), m.Size)
	}
	return m, nil
}

// Summary returns min, max and sum over all cells. Min and Max are 0 for an empty matrix.
func (m *Matrix) Summary() Summary {
	s := Summary{Size: m.Size}
	if m.Size == 0 {
		return s
	}
	s.Min, s.Max = math.MaxInt, math.MinInt
	for _, row := range m.Rows {
		for _, v := range row {
			s.Cells++
			s.Sum += int64(v)
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
		}
	}
	return s
}

// checkRange reports the first value outside [low, high].
func (m *Matrix) checkRange(low, high int) error {
	for i, row := range m.Rows {
		for j, v := range row {
			if v < low || v > high {
				return fmt.Errorf("value %d at row %d, column %d out of range [%d, %d]", v, i+1, j+1, low, high)
			}
		}
	}
	return nil
}
