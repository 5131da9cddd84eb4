// Copyright 2026 The boot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readAllFrom(t *testing.T, input string) ([]float64, error) {
	t.Helper()
	r := NewReader(strings.NewReader(input), "test.txt")
	var xs []float64
	for r.Scan() {
		xs = append(xs, r.Value())
	}
	return xs, r.Err()
}

func TestReader(t *testing.T) {
	xs, err := readAllFrom(t, "1 2\n# a comment\n\n  3.5\t-4e2\n")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3.5, -400}, xs)
}

func TestReaderEmpty(t *testing.T) {
	xs, err := readAllFrom(t, "# nothing but comments\n\n")
	require.NoError(t, err)
	require.Empty(t, xs)
}

func TestReaderSyntaxError(t *testing.T) {
	xs, err := readAllFrom(t, "1\n2 bogus\n3\n")
	require.Equal(t, []float64{1, 2}, xs)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "test.txt", serr.FileName)
	require.Equal(t, 2, serr.Line)
	require.Contains(t, err.Error(), "test.txt:2:")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("1 2\n3\n"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("# more\n4\n"), 0o644))

	xs, err := ReadAll([]string{p1, p2})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, xs)
}

func TestFilesMissing(t *testing.T) {
	_, err := ReadAll([]string{filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
}

func TestFilesSyntaxErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(p, []byte("1\nx\n"), 0o644))

	_, err := ReadAll([]string{p})
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, p, serr.FileName)
	require.Equal(t, 2, serr.Line)
}
