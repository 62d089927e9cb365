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
	"unicode"

	"github.com/ianlewis/go-glossary/internal/folding"
)

// Match is an occurrence of a glossary term in scanned text.
type Match struct {
	// Term is the matched entry's term as written in the glossary.
	Term string

	// Text is the matched text as written in the scanned text.
	Text string

	// Start is the offset of the first rune of the match.
	Start int

	// End is the offset just past the last rune of the match.
	End int

	// Translations are the matched entry's translations.
	Translations []string

	// Entry is the matched entry.
	Entry *Entry
}

// Scan finds all non-overlapping occurrences of glossary terms in text and
// returns them ordered by offset. Offsets count runes. At each position the
// longest matching term is chosen and scanning resumes after it. Scan
// returns [ErrNotLoaded] if s is nil.
func Scan(text string, s *Store) ([]*Match, error) {
	return s.Scan(text)
}

// Scan finds all non-overlapping occurrences of the store's terms in text.
// See [Scan].
func (s *Store) Scan(text string) ([]*Match, error) {
	if s == nil {
		return nil, ErrNotLoaded
	}
	if text == "" || s.trie.Len() == 0 {
		return nil, nil
	}

	orig := []rune(text)
	ft := folding.Fold(text, s.folder)

	var matches []*Match
	for i := 0; i < ft.Len(); {
		if !ft.IsStart(i) || (s.wholeWords && !wordStart(orig, ft.Origin[i])) {
			i++
			continue
		}

		e, n, ok := s.trie.LongestPrefix(ft.Runes[i:], func(n int) bool {
			if !ft.IsEnd(i + n) {
				return false
			}
			return !s.wholeWords || wordEnd(orig, ft.Next[i+n-1])
		})
		if !ok {
			i++
			continue
		}

		start, end := ft.Span(i, i+n)
		matches = append(matches, &Match{
			Term:         e.Term,
			Text:         string(orig[start:end]),
			Start:        start,
			End:          end,
			Translations: slices.Clone(e.Translations),
			Entry:        e,
		})
		i += n
	}

	return matches, nil
}

// isWordRune reports whether r is part of a word in a space delimited
// script.
func isWordRune(r rune) bool {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return false
	}
	// Korean attaches particles directly to nouns so it is treated like
	// Japanese and Chinese here.
	return !unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}

// wordStart reports whether a match may start at rune offset i.
func wordStart(text []rune, i int) bool {
	return i == 0 || !isWordRune(text[i-1]) || !isWordRune(text[i])
}

// wordEnd reports whether a match may end at rune offset i.
func wordEnd(text []rune, i int) bool {
	return i == len(text) || !isWordRune(text[i-1]) || !isWordRune(text[i])
}
