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

// Package folding implements the normalisation applied to glossary terms and
// scanned text.
//
// Folding is applied to one character at a time so that every folded rune
// can be mapped back to the runes of the original text it came from. A
// character is a base rune followed by any combining marks, including the
// half-width katakana voiced sound marks. Whitespace spans always fold to a
// single ASCII space regardless of the folder.
package folding

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Default returns the default folder. It folds full-width ASCII to
// half-width, half-width katakana to full-width, applies Unicode case folding
// and then composes the result to NFC, so "ﾃﾞ" folds to "デ". Case folding
// is a no-op for CJK scripts.
func Default() transform.Transformer {
	return transform.Chain(width.Fold, cases.Fold(), norm.NFC)
}

// None returns a folder that leaves runes unchanged.
func None() transform.Transformer {
	return transform.Nop
}

// Text is a folded string along with a mapping back to the original runes.
type Text struct {
	// Runes are the folded runes.
	Runes []rune

	// Origin holds, for each folded rune, the index of the first original
	// rune it was produced from.
	Origin []int

	// Next holds, for each folded rune, the index just past the last
	// original rune it was produced from.
	Next []int
}

func (t *Text) append(r rune, origin, next int) {
	t.Runes = append(t.Runes, r)
	t.Origin = append(t.Origin, origin)
	t.Next = append(t.Next, next)
}

// Len returns the number of folded runes.
func (t *Text) Len() int {
	return len(t.Runes)
}

// IsStart reports whether the folded rune at i is the first rune produced
// from an original rune. Matches may only begin at such positions.
func (t *Text) IsStart(i int) bool {
	return i == 0 || i == len(t.Runes) || t.Origin[i] != t.Origin[i-1]
}

// IsEnd reports whether a match ending just before the folded rune at j
// covers whole original runes.
func (t *Text) IsEnd(j int) bool {
	return j == 0 || j == len(t.Runes) || t.Origin[j] != t.Origin[j-1]
}

// Span returns the original rune span [start, end) covered by the folded
// runes [i, j).
func (t *Text) Span(i, j int) (int, int) {
	return t.Origin[i], t.Next[j-1]
}

// String returns the folded string.
func (t *Text) String() string {
	return string(t.Runes)
}

// Fold folds s one character at a time using the transformer returned by
// folder. A nil folder uses [Default].
func Fold(s string, folder func() transform.Transformer) *Text {
	if folder == nil {
		folder = Default
	}
	tr := folder()

	t := &Text{
		Runes:  make([]rune, 0, len(s)),
		Origin: make([]int, 0, len(s)),
		Next:   make([]int, 0, len(s)),
	}

	// Text is mostly made up of a small set of characters so fold results
	// are memoized for the duration of the call.
	folded := map[string][]rune{}

	runes := []rune(s)
	for i := 0; i < len(runes); {
		if IsSpace(runes[i]) {
			t.appendSpace(i)
			i++
			continue
		}

		j := i + 1
		for j < len(runes) && isMark(runes[j]) {
			j++
		}

		c := string(runes[i:j])
		f, ok := folded[c]
		if !ok {
			f = foldChar(tr, c)
			folded[c] = f
		}
		for _, fr := range f {
			if IsSpace(fr) {
				fr = ' '
			}
			t.append(fr, i, j)
		}
		i = j
	}

	return t
}

// isMark reports whether r combines with the rune before it.
func isMark(r rune) bool {
	switch r {
	case '\uff9e', '\uff9f':
		// Half-width katakana voiced and semi-voiced sound marks.
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Me)
}

// String folds s and trims leading and trailing whitespace. This is the
// normalised form used as a glossary key.
func String(s string, folder func() transform.Transformer) string {
	return Fold(s, folder).TrimSpace().String()
}

func foldChar(tr transform.Transformer, c string) []rune {
	out, _, err := transform.String(tr, c)
	if err != nil {
		// Fall back to the unfolded character.
		return []rune(c)
	}
	return []rune(out)
}
