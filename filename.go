package main

import (
	"fmt"
	"os"
)

const (
	defaultOutputDir = "matrices"
	matrixExt        = ".txt"
	filenamePattern  = "matrix%d" + matrixExt
)

func matrixFilename(index int) string {
	return fmt.Sprintf(filenamePattern, index)
}

// nextAvailableIndex returns the smallest index >= 1 whose filename is not in existing.
// Gaps are reused since the scan always starts at 1.
func nextAvailableIndex(existing map[string]struct{}) int {
	i := 1
	for {
		if _, taken := existing[matrixFilename(i)]; !taken {
			return i
		}
		i++
	}
}

// listExisting takes a snapshot of the entry names in dir. The directory must exist.
func listExisting(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debugf("fail to list output directory %s: %v", dir, err)
		return nil, fmt.Errorf("list output directory: %w", err)
	}
	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		names[entry.Name()] = struct{}{}
	}
	return names, nil
}
