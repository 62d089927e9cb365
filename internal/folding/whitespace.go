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

package folding

import (
	"unicode"
)

// IsSpace reports whether r is treated as whitespace when folding. All
// Unicode white space is included, so the ideographic space (U+3000) used in
// Japanese text folds the same way as an ASCII space.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// appendSpace appends a single ASCII space for the original rune at index i.
// Consecutive whitespace runes are collapsed into the space emitted for the
// first rune of the span.
func (t *Text) appendSpace(i int) {
	if n := len(t.Runes); n > 0 && t.Runes[n-1] == ' ' && t.Next[n-1] == i {
		// We are in an internal whitespace span. Extend it.
		t.Next[n-1] = i + 1
		return
	}
	t.append(' ', i, i+1)
}

// TrimSpace removes the leading and trailing whitespace spans from t. The
// returned Text shares storage with t.
func (t *Text) TrimSpace() *Text {
	start, end := 0, len(t.Runes)
	for start < end && t.Runes[start] == ' ' {
		start++
	}
	for end > start && t.Runes[end-1] == ' ' {
		end--
	}
	return &Text{
		Runes:  t.Runes[start:end],
		Origin: t.Origin[start:end],
		Next:   t.Next[start:end],
	}
}
