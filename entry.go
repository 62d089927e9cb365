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
	"slices"
	"strings"
)

// Entry is a glossary entry.
type Entry struct {
	// Term is the source term as written in the glossary with surrounding
	// whitespace removed.
	Term string

	// Translations are the entry's translations in column order. When
	// entries from several rows are merged, translations from later rows
	// follow those of earlier rows.
	Translations []string

	// Notes are free form notes from a "notes" column.
	Notes string

	// Source is the path of the file the entry was loaded from.
	Source string

	// Line is the line number of the row the entry was loaded from.
	Line int

	// Glossary is the name of the glossary the entry was loaded from.
	Glossary string

	// Origins lists each translation along with the glossary it came from.
	// A translation found in more than one glossary is listed once per
	// glossary.
	Origins []Translation
}

// Translation is a translation of a term in a named glossary.
type Translation struct {
	// Text is the translated term.
	Text string

	// Glossary is the name of the glossary the translation was loaded from.
	Glossary string
}

// TranslationsIn returns the entry's translations that came from the named
// glossary.
func (e *Entry) TranslationsIn(name string) []string {
	var result []string
	for _, o := range e.Origins {
		if o.Glossary == name {
			result = append(result, o.Text)
		}
	}
	return result
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Term)
	b.WriteString("\n")
	for _, t := range e.Translations {
		b.WriteString(t)
		b.WriteString("\n")
	}
	if e.Notes != "" {
		b.WriteString(e.Notes)
		b.WriteString("\n")
	}
	return b.String()
}

func (e *Entry) clone() *Entry {
	c := *e
	c.Translations = slices.Clone(e.Translations)
	c.Origins = slices.Clone(e.Origins)
	return &c
}

// keyedEntry is an entry indexed by its normalised term.
type keyedEntry struct {
	key   string
	entry *Entry
}

func (e *keyedEntry) String() string {
	return e.key
}
