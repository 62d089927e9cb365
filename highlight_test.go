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

package glossary_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-glossary"
)

func TestHighlight(t *testing.T) {
	t.Parallel()

	s := glossary.New([]*glossary.Entry{
		{Term: "日本語", Translations: []string{"Japanese"}},
		{Term: "cat", Translations: []string{"猫", "ネコ"}},
	}, nil)

	tests := []struct {
		name     string
		text     string
		mark     func(*glossary.Match, string) string
		expected string
	}{
		{
			name:     "no matches",
			text:     "hello",
			mark:     glossary.Bracket("[", "]"),
			expected: "hello",
		},
		{
			name:     "bracket",
			text:     "日本語を学ぶ cat",
			mark:     glossary.Bracket("[", "]"),
			expected: "[日本語]を学ぶ [cat]",
		},
		{
			name: "translations",
			text: "the CAT sat",
			mark: func(m *glossary.Match, matched string) string {
				return matched + "(" + strings.Join(m.Translations, "/") + ")"
			},
			expected: "the CAT(猫/ネコ) sat",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			matches, err := s.Scan(test.text)
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}

			if diff := cmp.Diff(test.expected, glossary.Highlight(test.text, matches, test.mark)); diff != "" {
				t.Fatalf("Highlight (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestHighlight_invalidMatches(t *testing.T) {
	t.Parallel()

	matches := []*glossary.Match{
		{Start: 0, End: 2},
		{Start: 1, End: 3},
		{Start: 3, End: 10},
	}

	got := glossary.Highlight("abcd", matches, glossary.Bracket("<", ">"))
	if diff := cmp.Diff("<ab>cd", got); diff != "" {
		t.Fatalf("Highlight (-want, +got):\n%s", diff)
	}
}
