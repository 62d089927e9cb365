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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// Exts are the recognized glossary file extensions.
var Exts = []string{
	".csv",
	".csv.gz",
	".csv.dz",
	".tsv",
	".tsv.gz",
	".tsv.dz",
}

// IsGlossaryFile reports whether the file name has a recognized glossary
// file extension. The comparison is case-insensitive.
func IsGlossaryFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range Exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Name returns the glossary name for the file at path: its base name without
// the glossary file extension. For example "glossaries/en.csv.gz" is named
// "en".
func Name(path string) string {
	base := filepath.Base(path)
	for _, ext := range Exts {
		if len(base) > len(ext) && strings.EqualFold(base[len(base)-len(ext):], ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}

// IsTSV reports whether the file name indicates tab separated values.
func IsTSV(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range []string{".gz", ".dz"} {
		lower = strings.TrimSuffix(lower, ext)
	}
	return filepath.Ext(lower) == ".tsv"
}

// readCloser closes both the decompressing reader and the underlying file.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// readerAtReader reads sequentially from an io.ReaderAt.
type readerAtReader struct {
	r   io.ReaderAt
	off int64
}

func (r *readerAtReader) Read(p []byte) (int, error) {
	n, err := r.r.ReadAt(p, r.off)
	r.off += int64(n)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	if n > 0 && errors.Is(err, io.EOF) {
		// Report EOF on the next call.
		err = nil
	}
	return n, err
}

// Open opens the glossary file at path. Files ending in .gz are decompressed
// with gzip and files ending in .dz are decompressed with dictzip.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening glossary file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return &readCloser{
			Reader:  z,
			closers: []io.Closer{z, f},
		}, nil
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("creating dictzip reader: %w", err)
		}
		return &readCloser{
			Reader:  &readerAtReader{r: z},
			closers: []io.Closer{f},
		}, nil
	default:
		return f, nil
	}
}
