// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package csvfile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates that the file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid utf-8")

const bom = "\ufeff"

// Record is a single row of a glossary file.
type Record struct {
	// Line is the line number the row starts on.
	Line int

	// Fields are the row's column values.
	Fields []string

	// Err is set when the row could not be parsed. Fields is nil in that
	// case.
	Err error
}

// ScannerOptions are options for scanning a glossary file.
type ScannerOptions struct {
	// Comma is the field delimiter.
	Comma rune
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	Comma: ',',
}

// Scanner scans a glossary file from start to end.
type Scanner struct {
	r   io.ReadCloser
	c   *csv.Reader
	rec *Record
	err error
}

// NewScanner returns a new Scanner that reads rows from r. The Scanner
// assumes ownership of the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) *Scanner {
	if options == nil {
		options = DefaultScannerOptions
	}

	br := bufio.NewReader(r)
	if b, err := br.Peek(len(bom)); err == nil && string(b) == bom {
		_, _ = br.Discard(len(bom))
	}

	c := csv.NewReader(br)
	c.Comma = DefaultScannerOptions.Comma
	if options.Comma != 0 {
		c.Comma = options.Comma
	}
	// Column counts are validated by the caller.
	c.FieldsPerRecord = -1

	return &Scanner{
		r: r,
		c: c,
	}
}

// NewScannerFromPath opens the file at path and returns a Scanner for it.
func NewScannerFromPath(path string, options *ScannerOptions) (*Scanner, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewScanner(f, options), nil
}

// Scan advances to the next row. It returns false when the end of the input
// is reached or a read error occurs. Rows with CSV syntax errors do not stop
// the scan.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	fields, err := s.c.Read()
	if errors.Is(err, io.EOF) {
		s.rec = nil
		return false
	}

	var perr *csv.ParseError
	if errors.As(err, &perr) {
		s.rec = &Record{
			Line: perr.StartLine,
			Err:  err,
		}
		return true
	}
	if err != nil {
		s.err = fmt.Errorf("reading csv: %w", err)
		s.rec = nil
		return false
	}

	line, _ := s.c.FieldPos(0)

	for _, f := range fields {
		if !utf8.ValidString(f) {
			s.err = fmt.Errorf("%w: line %d: %q", ErrInvalidUTF8, line, bytes.ToValidUTF8([]byte(f), []byte("\ufffd")))
			s.rec = nil
			return false
		}
	}

	s.rec = &Record{
		Line:   line,
		Fields: fields,
	}
	return true
}

// Record returns the most recent row read by Scan.
func (s *Scanner) Record() *Record {
	return s.rec
}

// Err returns the first non-parse error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing csv file: %w", err)
	}
	return nil
}
