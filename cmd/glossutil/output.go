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

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rodaine/table"
	"golang.org/x/text/width"

	"github.com/ianlewis/go-glossary"
)

// displayWidth returns the number of terminal columns needed to display s.
// East Asian wide and full-width runes take two columns.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func newTable(w io.Writer, columns ...interface{}) table.Table {
	return table.New(columns...).WithWriter(w).WithWidthFunc(displayWidth)
}

// oneLine replaces line breaks so that s fits in a table cell.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func printMatches(w io.Writer, matches []*glossary.Match) {
	tbl := newTable(w, "Offset", "Text", "Term", "Translations")
	for _, m := range matches {
		tbl.AddRow(
			fmt.Sprintf("%d-%d", m.Start, m.End),
			oneLine(m.Text),
			m.Term,
			strings.Join(m.Translations, ", "),
		)
	}
	tbl.Print()
}

func printEntries(w io.Writer, entries []*glossary.Entry) {
	tbl := newTable(w, "Term", "Translations", "Notes")
	for _, e := range entries {
		tbl.AddRow(e.Term, strings.Join(e.Translations, ", "), oneLine(e.Notes))
	}
	tbl.Print()
}

// unique returns the first match of each glossary entry.
func printGlossaries(w io.Writer, glossaries []*glossary.GlossaryInfo) {
	tbl := newTable(w, "Glossary", "Terms", "Files", "Loaded")
	for _, g := range glossaries {
		tbl.AddRow(g.Name, g.Terms, strings.Join(g.Paths, ", "), g.LoadedAt.Format(time.DateTime))
	}
	tbl.Print()
}

func unique(matches []*glossary.Match) []*glossary.Match {
	seen := map[*glossary.Entry]bool{}
	var result []*glossary.Match
	for _, m := range matches {
		if seen[m.Entry] {
			continue
		}
		seen[m.Entry] = true
		result = append(result, m)
	}
	return result
}
