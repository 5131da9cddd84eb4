// Copyright 2026 The boot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numio reads whitespace-separated numeric observations from
// input streams and sequences of input files. It serves the command
// line; the resampling packages themselves never perform I/O.
package numio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A SyntaxError reports a malformed number on a particular line of an
// input file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads float64 observations from an input stream. Its API
// is modeled on bufio.Scanner. Blank lines and lines starting with
// "#" are skipped; any other line must hold one or more
// whitespace-separated numbers.
//
// The zero value of the Reader is a valid Reader, but the user must
// call Reset before using it.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int

	fields []string
	pos    int
	val    float64
	err    error
}

// NewReader constructs a reader of observations from r. fileName is
// used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.fields = nil
	r.pos = 0
	r.err = nil
}

// Scan advances the reader to the next observation and returns true
// if one was read. The caller should use the Value method to get the
// observation. If an I/O or syntax error occurs, or this reaches the
// end of the input, it returns false and the caller should use the
// Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for {
		if r.pos < len(r.fields) {
			f := r.fields[r.pos]
			r.pos++
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				r.err = &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("parsing observation %q", f)}
				return false
			}
			r.val = v
			return true
		}

		if !r.s.Scan() {
			if err := r.s.Err(); err != nil {
				r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.lineNum, err)
			}
			return false
		}
		r.lineNum++
		line := strings.TrimSpace(r.s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r.fields = strings.Fields(line)
		r.pos = 0
	}
}

// Value returns the last observation read.
func (r *Reader) Value() float64 {
	return r.val
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// Files reads observations from a sequence of input files.
//
// The path "-" is treated as stdin, and if the path list is empty it
// is treated as consisting of stdin. This is generally the desired
// behavior when the file list comes from command-line arguments.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// pos is the position of the next file to read from in Paths
	// when the current file is exhausted.
	pos int

	reader  Reader
	file    *os.File
	isStdin bool
	err     error
}

// Scan advances the reader to the next observation in the sequence of
// files and returns true if one was read. The caller should use the
// Value method to get the observation. If an error occurs, or this
// reaches the end of the file sequence, it returns false and the
// caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	for {
		if f.file == nil {
			// Open the next file.
			var path string
			if len(f.Paths) == 0 && f.pos == 0 {
				path = "-"
			} else if f.pos < len(f.Paths) {
				path = f.Paths[f.pos]
			} else {
				// We're out of files.
				return false
			}
			f.pos++
			if path == "-" {
				f.isStdin, f.file = true, os.Stdin
				path = "<stdin>"
			} else {
				file, err := os.Open(path)
				if err != nil {
					f.err = err
					return false
				}
				f.isStdin, f.file = false, file
			}
			f.reader.Reset(f.file, path)
		}

		if f.reader.Scan() {
			return true
		}
		if err := f.reader.Err(); err != nil {
			f.err = err
			break
		}
		// Just an EOF. Close this file and open the next.
		if !f.isStdin {
			f.file.Close()
		}
		f.file = nil
	}
	return false
}

// Value returns the last observation read.
func (f *Files) Value() float64 {
	return f.reader.Value()
}

// Err returns the first error encountered by the Files.
func (f *Files) Err() error {
	return f.err
}

// ReadAll reads every observation from the given paths ("-" or an
// empty list means stdin).
func ReadAll(paths []string) ([]float64, error) {
	f := &Files{Paths: paths}
	var xs []float64
	for f.Scan() {
		xs = append(xs, f.Value())
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}
