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

package index

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type String string

func (s String) String() string {
	return string(s)
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		query    string
		expected []String
	}{
		{
			name:     "single results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "foo",
			expected: []String{"foo"},
		},
		{
			name:     "multiple results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "bar",
			expected: []String{"bar", "bar"},
		},
		{
			name:     "no results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "none",
			expected: nil,
		},
		{
			name:     "empty index",
			query:    "foo",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(test.index)

			if diff := cmp.Diff(test.expected, index.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_Prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		prefix   string
		expected []String
	}{
		{
			name:     "ascii",
			index:    []String{"cat", "dog", "category", "ca", "cow"},
			prefix:   "ca",
			expected: []String{"ca", "cat", "category"},
		},
		{
			name:     "cjk",
			index:    []String{"日本語", "日本", "中国", "日曜日"},
			prefix:   "日本",
			expected: []String{"日本", "日本語"},
		},
		{
			name:     "empty prefix",
			index:    []String{"b", "a"},
			prefix:   "",
			expected: []String{"a", "b"},
		},
		{
			name:     "no results",
			index:    []String{"cat", "dog"},
			prefix:   "x",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(test.index)

			if diff := cmp.Diff(test.expected, index.Prefix(test.prefix)); diff != "" {
				t.Fatalf("Prefix (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_All(t *testing.T) {
	t.Parallel()

	index := NewIndex([]String{"c", "a", "b"})

	// The sequence is restartable.
	for range 2 {
		if diff := cmp.Diff([]String{"a", "b", "c"}, slices.Collect(index.All())); diff != "" {
			t.Fatalf("All (-want, +got):\n%s", diff)
		}
	}

	if v, ok := index.Get("b"); !ok || v != "b" {
		t.Fatalf("Get(b); want: (b, true), got: (%q, %v)", v, ok)
	}
}
