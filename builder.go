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
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-glossary/csvfile"
	"github.com/ianlewis/go-glossary/internal/folding"
	"github.com/ianlewis/go-glossary/internal/index"
	"github.com/ianlewis/go-glossary/internal/trie"
)

// Header labels are compared after default folding.
var (
	termLabels        = []string{"term", "terms", "source", "source term", "用語", "原語"}
	translationLabels = []string{"translation", "translations", "target", "訳語", "翻訳"}
	notesLabels       = []string{"notes", "note", "comment", "comments", "備考", "メモ"}
)

// layout describes the columns of a glossary file.
type layout struct {
	// term is the index of the source term column.
	term int

	// notes is the index of the notes column or -1.
	notes int

	// width is the required number of columns or zero if any number of
	// columns is allowed.
	width int
}

var defaultLayout = layout{
	term:  0,
	notes: -1,
}

// builder accumulates entries from one or more glossary files.
type builder struct {
	opts   *Options
	folder func() transform.Transformer

	entries  map[string]*Entry
	warnings []*Warning

	// glossaries holds a builder for each named glossary. It is nil for
	// the builders of single glossaries.
	glossaries map[string]*builder

	// paths are the files loaded into a single glossary.
	paths []string
}

func newBuilder(options *Options) *builder {
	b := newGlossaryBuilder(options)
	b.glossaries = map[string]*builder{}
	return b
}

func newGlossaryBuilder(options *Options) *builder {
	return &builder{
		opts:    options.orDefault(),
		folder:  options.folder(),
		entries: map[string]*Entry{},
	}
}

// glossary returns the builder for the named glossary.
func (b *builder) glossary(name string) *builder {
	g, ok := b.glossaries[name]
	if !ok {
		g = newGlossaryBuilder(b.opts)
		b.glossaries[name] = g
	}
	return g
}

func (b *builder) warn(path string, line int, err error) {
	b.warnings = append(b.warnings, &Warning{
		Path: path,
		Line: line,
		Err:  err,
	})
}

func (b *builder) loadFile(path string) error {
	comma := b.opts.Comma
	if comma == 0 && csvfile.IsTSV(path) {
		comma = '\t'
	}

	s, err := csvfile.NewScannerFromPath(path, &csvfile.ScannerOptions{
		Comma: comma,
	})
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer s.Close()

	name := csvfile.Name(path)
	if g := b.glossary(name); !slices.Contains(g.paths, path) {
		g.paths = append(g.paths, path)
	}

	l := defaultLayout
	first := true
	for s.Scan() {
		rec := s.Record()
		if rec.Err != nil {
			b.warn(path, rec.Line, fmt.Errorf("%w: %w", ErrMalformedRow, rec.Err))
			first = false
			continue
		}

		if first {
			first = false
			if h, ok := b.header(rec.Fields); ok {
				if b.opts.Header == HeaderAuto {
					b.warn(path, rec.Line, fmt.Errorf("%w: %q", ErrHeaderRow, rec.Fields))
				}
				l = h
				continue
			}
		}

		b.addRecord(path, name, rec, l)
	}
	if err := s.Err(); err != nil {
		return &LoadError{Path: path, Err: err}
	}

	return nil
}

// header returns the layout described by fields if fields is a header row.
// With HeaderAuto a row is a header only if one column is labeled as the term
// column and another as a translation or notes column.
func (b *builder) header(fields []string) (layout, bool) {
	if b.opts.Header == HeaderAbsent {
		return layout{}, false
	}

	l := layout{
		term:  -1,
		notes: -1,
		width: len(fields),
	}
	labeled := false
	for i, f := range fields {
		label := folding.String(f, folding.Default)
		switch {
		case slices.Contains(termLabels, label):
			if l.term < 0 {
				l.term = i
			}
		case slices.Contains(notesLabels, label):
			if l.notes < 0 {
				l.notes = i
			}
			labeled = true
		case slices.Contains(translationLabels, label):
			labeled = true
		}
	}

	if b.opts.Header == HeaderAuto && (l.term < 0 || !labeled) {
		return layout{}, false
	}
	if l.term < 0 {
		l.term = 0
		if l.notes == 0 {
			l.notes = -1
		}
	}
	return l, true
}

func (b *builder) addRecord(path, name string, rec *csvfile.Record, l layout) {
	fields := rec.Fields
	if l.width > 0 && len(fields) != l.width {
		b.warn(path, rec.Line, fmt.Errorf("%w: expected %d columns, got %d", ErrMalformedRow, l.width, len(fields)))
		return
	}
	if len(fields) < 2 {
		b.warn(path, rec.Line, fmt.Errorf("%w: expected at least 2 columns, got %d", ErrMalformedRow, len(fields)))
		return
	}

	term := strings.TrimSpace(fields[l.term])
	key := folding.String(term, b.folder)
	if key == "" {
		b.warn(path, rec.Line, ErrEmptyTerm)
		return
	}

	var notes string
	var translations []string
	var origins []Translation
	for i, f := range fields {
		switch i {
		case l.term:
			continue
		case l.notes:
			notes = strings.TrimSpace(f)
			continue
		}
		if t := strings.TrimSpace(f); t != "" {
			translations = append(translations, t)
			origins = append(origins, Translation{
				Text:     t,
				Glossary: name,
			})
		}
	}
	if len(translations) == 0 {
		b.warn(path, rec.Line, fmt.Errorf("%w: no translation for %q", ErrMalformedRow, term))
		return
	}

	b.add(key, &Entry{
		Term:         term,
		Translations: translations,
		Notes:        notes,
		Source:       path,
		Line:         rec.Line,
		Glossary:     name,
		Origins:      origins,
	})
}

// add adds the entry under key to the store and to the entry's glossary.
// The builder takes ownership of e.
func (b *builder) add(key string, e *Entry) {
	if b.glossaries != nil && e.Glossary != "" {
		b.glossary(e.Glossary).merge(key, e.clone())
	}
	b.merge(key, e)
}

// merge adds the entry under key according to the merge policy.
func (b *builder) merge(key string, e *Entry) {
	prev, ok := b.entries[key]
	if !ok || b.opts.Merge == LastWins {
		b.entries[key] = e
		return
	}

	for _, t := range e.Translations {
		if !slices.Contains(prev.Translations, t) {
			prev.Translations = append(prev.Translations, t)
		}
	}
	for _, o := range e.Origins {
		if !slices.Contains(prev.Origins, o) {
			prev.Origins = append(prev.Origins, o)
		}
	}
	if prev.Notes == "" {
		prev.Notes = e.Notes
	}
}

func (b *builder) store() *Store {
	s := b.glossaryStore()
	if b.glossaries == nil {
		return s
	}

	loaded := time.Now()
	s.glossaries = make(map[string]*Store, len(b.glossaries))
	for name, g := range b.glossaries {
		gs := g.glossaryStore()
		gs.info = []*GlossaryInfo{{
			Name:     name,
			Paths:    slices.Clone(g.paths),
			Terms:    gs.Len(),
			LoadedAt: loaded,
		}}
		s.glossaries[name] = gs
		s.info = append(s.info, gs.info[0])
	}
	slices.SortFunc(s.info, func(a, b *GlossaryInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return s
}

func (b *builder) glossaryStore() *Store {
	keyed := make([]*keyedEntry, 0, len(b.entries))
	t := trie.New[*Entry]()
	for key, e := range b.entries {
		keyed = append(keyed, &keyedEntry{
			key:   key,
			entry: e,
		})
		t.Insert([]rune(key), e)
	}

	return &Store{
		index:      index.NewIndex(keyed),
		trie:       t,
		folder:     b.folder,
		wholeWords: b.opts.WholeWords,
	}
}
