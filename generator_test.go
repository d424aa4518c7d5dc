package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestGeneratorGenerate(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		wantFile string
	}{
		{name: "empty directory", wantFile: "matrix1.txt"},
		{name: "contiguous", existing: []string{"matrix1.txt", "matrix2.txt"}, wantFile: "matrix3.txt"},
		{name: "gap", existing: []string{"matrix1.txt", "matrix3.txt"}, wantFile: "matrix2.txt"},
		{name: "unrelated files", existing: []string{"readme.md", "matrix1.csv"}, wantFile: "matrix1.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tt.existing...)

			gen := NewGenerator(dir, &sequenceSource{values: []int{3, -4}})
			path, err := gen.Generate(fixedDimension("2"))
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantFile), path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "# Matrix size: 2x2\n2\n3 -4 \n3 -4 \n", string(data))
		})
	}
}

func TestGeneratorSequentialRuns(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(dir, newRandSource(7))
	for i, want := range []string{"matrix1.txt", "matrix2.txt", "matrix3.txt"} {
		path, err := gen.Generate(fixedDimension("1"))
		require.NoError(t, err, "run %d", i)
		assert.Equal(t, filepath.Join(dir, want), path)
	}
}

func TestGeneratorInvalidInput(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "matrix1.txt")

	gen := NewGenerator(dir, newRandSource(1))
	_, err := gen.Generate(fixedDimension("abc"))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, []string{"matrix1.txt"}, dirNames(t, dir))
}

func TestGeneratorMissingDir(t *testing.T) {
	gen := NewGenerator(filepath.Join(t.TempDir(), "matrices"), newRandSource(1))
	_, err := gen.Generate(fixedDimension("2"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNewGeneratorDefaultDir(t *testing.T) {
	assert.Equal(t, defaultOutputDir, NewGenerator("", nil).Dir)
}
