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
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"time"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-glossary/csvfile"
	"github.com/ianlewis/go-glossary/internal/folding"
	"github.com/ianlewis/go-glossary/internal/index"
	"github.com/ianlewis/go-glossary/internal/trie"
)

// Store is an in-memory glossary. A Store is immutable once loaded.
type Store struct {
	// index is sorted by the normalised term.
	index *index.Index[*keyedEntry]

	// trie holds the normalised terms for scanning.
	trie *trie.Trie[*Entry]

	folder     func() transform.Transformer
	wholeWords bool

	// glossaries holds a Store for each named glossary.
	glossaries map[string]*Store
	info       []*GlossaryInfo
}

// GlossaryInfo describes a named glossary in a Store. A glossary is named
// after its files with the extension removed, so "en.csv" and
// "en.csv.gz" both belong to the glossary "en".
type GlossaryInfo struct {
	// Name is the glossary name.
	Name string

	// Paths are the files the glossary was loaded from.
	Paths []string

	// Terms is the number of distinct terms in the glossary.
	Terms int

	// LoadedAt is the time the glossary was loaded.
	LoadedAt time.Time
}

// FindAll returns the paths of all glossary files under a directory in
// lexical order. This function will return all glossary files found along
// with any errors that occurred.
func FindAll(path string) ([]string, []error) {
	var paths []string
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && csvfile.IsGlossaryFile(info.Name()) {
			paths = append(paths, path)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return paths, errs
}

// Load loads the glossary files at the given paths into a new Store. Paths
// that are directories are searched for glossary files with [FindAll]. Files
// are merged in order. Rows that cannot be used are skipped and returned as
// warnings. If any file cannot be opened or decoded, a *LoadError is returned
// and no Store is created.
func Load(paths []string, options *Options) (*Store, []*Warning, error) {
	b := newBuilder(options)
	for _, path := range paths {
		files, err := expand(path)
		if err != nil {
			return nil, b.warnings, err
		}
		for _, f := range files {
			if err := b.loadFile(f); err != nil {
				return nil, b.warnings, err
			}
		}
	}
	return b.store(), b.warnings, nil
}

// expand returns the glossary files for path.
func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		// Files that cannot be opened are reported when they are loaded.
		return []string{path}, nil
	}

	files, errs := FindAll(path)
	if len(errs) > 0 {
		return nil, &LoadError{Path: path, Err: errors.Join(errs...)}
	}
	return files, nil
}

// New returns a new Store containing the given entries. Entries are merged
// in order according to the options' merge policy. Entries with an empty
// term are ignored. Entries without Origins are treated as coming from the
// glossary named by their Glossary field.
func New(entries []*Entry, options *Options) *Store {
	b := newBuilder(options)
	for _, e := range entries {
		key := folding.String(e.Term, b.folder)
		if key == "" {
			continue
		}

		c := e.clone()
		if c.Origins == nil {
			for _, t := range c.Translations {
				c.Origins = append(c.Origins, Translation{
					Text:     t,
					Glossary: c.Glossary,
				})
			}
		}
		b.add(key, c)
	}
	return b.store()
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.index.Len()
}

// Glossary returns a Store holding only the entries and translations loaded
// from the named glossary.
func (s *Store) Glossary(name string) (*Store, bool) {
	if s == nil {
		return nil, false
	}
	g, ok := s.glossaries[name]
	return g, ok
}

// Glossaries returns information about the named glossaries in the store
// ordered by name.
func (s *Store) Glossaries() []*GlossaryInfo {
	if s == nil {
		return nil
	}
	return slices.Clone(s.info)
}

// Lookup returns the entry for the given term. The term is normalised in the
// same way as terms in the glossary.
func (s *Store) Lookup(term string) (*Entry, bool) {
	if s == nil {
		return nil, false
	}

	ke, ok := s.index.Get(folding.String(term, s.folder))
	if !ok {
		return nil, false
	}
	return ke.entry, true
}

// PrefixSearch returns the entries whose normalised term starts with the
// normalised prefix, ordered by normalised term.
func (s *Store) PrefixSearch(prefix string) []*Entry {
	if s == nil {
		return nil
	}

	var entries []*Entry
	for _, ke := range s.index.Prefix(folding.String(prefix, s.folder)) {
		entries = append(entries, ke.entry)
	}
	return entries
}

// AllTerms returns an iterator over the normalised terms in the store in
// sorted order. The iterator may be used more than once.
func (s *Store) AllTerms() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}
		for ke := range s.index.All() {
			if !yield(ke.key) {
				return
			}
		}
	}
}

// Entries returns an iterator over the entries in the store ordered by
// normalised term.
func (s *Store) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		if s == nil {
			return
		}
		for ke := range s.index.All() {
			if !yield(ke.entry) {
				return
			}
		}
	}
}
