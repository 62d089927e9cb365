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
	"strings"
)

// Highlight returns text with each match replaced by the result of mark.
// mark is passed the match and the matched text. Matches must be ordered by
// offset as returned by [Scan]. Matches that overlap a previous match or fall
// outside of text are ignored.
func Highlight(text string, matches []*Match, mark func(m *Match, matched string) string) string {
	runes := []rune(text)

	var b strings.Builder
	pos := 0
	for _, m := range matches {
		if m.Start < pos || m.End > len(runes) || m.Start >= m.End {
			continue
		}
		b.WriteString(string(runes[pos:m.Start]))
		b.WriteString(mark(m, string(runes[m.Start:m.End])))
		pos = m.End
	}
	b.WriteString(string(runes[pos:]))

	return b.String()
}

// Bracket returns a mark function for [Highlight] that surrounds matched text
// with before and after.
func Bracket(before, after string) func(*Match, string) string {
	return func(_ *Match, matched string) string {
		return before + matched + after
	}
}
