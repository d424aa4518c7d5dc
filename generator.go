package main

import (
	"path/filepath"
)

// Generator produces one new matrix file per call to Generate.
type Generator struct {
	Dir    string
	Source IntSource
}

func NewGenerator(dir string, src IntSource) *Generator {
	if dir == "" {
		dir = defaultOutputDir
	}
	return &Generator{Dir: dir, Source: src}
}

// Generate resolves the next free filename, reads the dimension from dim and
// writes the matrix. It returns the path of the created file.
// Nothing is written when the dimension cannot be read.
func (g *Generator) Generate(dim DimensionReader) (string, error) {
	existing, err := listExisting(g.Dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(g.Dir, matrixFilename(nextAvailableIndex(existing)))
	logger.Debugf("next matrix file: %s", path)

	n, err := dim.ReadDimension()
	if err != nil {
		logger.Debugf("dimension input rejected: %v", err)
		return "", err
	}

	if err = writeMatrixFile(path, n, g.Source); err != nil {
		return "", err
	}
	return path, nil
}
