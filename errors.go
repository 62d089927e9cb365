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

package glossary

import (
	"errors"
	"fmt"
)

// ErrGlossary is a parent error for all glossary errors.
var ErrGlossary = errors.New("glossary")

// ErrLoad indicates that a glossary could not be loaded.
var ErrLoad = fmt.Errorf("%w: load", ErrGlossary)

// ErrNotLoaded indicates that a scan was attempted before any glossary was
// successfully loaded.
var ErrNotLoaded = fmt.Errorf("%w: not loaded", ErrGlossary)

// ErrMalformedRow indicates a row that could not be parsed as a term.
var ErrMalformedRow = fmt.Errorf("%w: malformed row", ErrGlossary)

// ErrEmptyTerm indicates a row with an empty source term.
var ErrEmptyTerm = fmt.Errorf("%w: empty term", ErrGlossary)

// ErrHeaderRow indicates that the first row of a file was detected as a
// header and not loaded as a term.
var ErrHeaderRow = fmt.Errorf("%w: header row", ErrGlossary)

// LoadError is returned when a glossary file could not be opened, read or
// decoded. It wraps [ErrLoad] and the underlying error.
type LoadError struct {
	// Path is the glossary file path.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements error.Error.
func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrLoad, e.Path, e.Err)
}

// Unwrap returns [ErrLoad] and the underlying error.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// Warning is a non-fatal problem with a single glossary row. The row is
// not loaded as a term and loading continues.
type Warning struct {
	// Path is the glossary file path.
	Path string

	// Line is the line number of the row.
	Line int

	// Err describes the problem. It wraps [ErrMalformedRow], [ErrEmptyTerm]
	// or [ErrHeaderRow].
	Err error
}

// Error implements error.Error.
func (w *Warning) Error() string {
	return fmt.Sprintf("%s:%d: %v", w.Path, w.Line, w.Err)
}

// Unwrap returns the underlying error.
func (w *Warning) Unwrap() error {
	return w.Err
}
