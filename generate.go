package main

import (
	"bufio"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"io"
	"os"
	"strconv"
	"strings"
)

const writeBufferSize = 128 * 1024 // 128KB

// writeMatrix writes the header, the size line and n rows of n random values.
// Every value is followed by a single space, including the last one of a row.
func writeMatrix(w io.Writer, n int, src IntSource) error {
	bw := bufio.NewWriterSize(w, writeBufferSize)

	fmt.Fprintf(bw, "# Matrix size: %dx%d\n", n, n)
	fmt.Fprintf(bw, "%d\n", n)

	// values are streamed one at a time, so n never sizes an allocation
	var num [24]byte
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := strconv.AppendInt(num[:0], int64(src.NextInt(minValue, maxValue)), 10)
			if _, err := bw.Write(append(v, ' ')); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeMatrixFile creates (or truncates) path and writes the matrix into it.
// The file is closed on every path; a partially written file is left behind on error.
func writeMatrixFile(path string, n int, src IntSource) (err error) {
	file, err := os.Create(path)
	if err != nil {
		logger.Debugf("fail to create matrix file %s: %v", path, err)
		return fmt.Errorf("create matrix file: %w", err)
	}
	defer func() {
		err = appendCloseError(err, file.Close())
	}()

	if err = writeMatrix(file, n, src); err != nil {
		logger.Debugf("fail to write matrix file %s: %v", path, err)
		return fmt.Errorf("write matrix file: %w", err)
	}
	logger.Debugf("wrote %dx%d matrix to %s", n, n, path)
	return nil
}

// appendCloseError combines a close failure with an earlier error.
// A close failure on its own is returned as a plain wrapped error.
func appendCloseError(err, cerr error) error {
	if cerr == nil {
		return err
	}
	cerr = fmt.Errorf("close matrix file: %w", cerr)
	if err == nil {
		return cerr
	}
	merr := multierror.Append(err, cerr)
	merr.ErrorFormat = compactErrorFormat
	return merr
}

func compactErrorFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
