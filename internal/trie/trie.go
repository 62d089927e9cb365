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

// Package trie implements a rune prefix tree used for longest-match scanning.
package trie

// node is a trie node. Children are keyed by rune.
type node[V any] struct {
	children map[rune]*node[V]
	value    V
	terminal bool
}

// Trie is a prefix tree mapping rune sequences to values.
type Trie[V any] struct {
	root node[V]
	size int
}

// New returns an empty Trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Len returns the number of keys in the trie.
func (t *Trie[V]) Len() int {
	return t.size
}

// Insert sets the value for key, replacing any existing value. Empty keys are
// ignored.
func (t *Trie[V]) Insert(key []rune, v V) {
	if len(key) == 0 {
		return
	}

	n := &t.root
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			if n.children == nil {
				n.children = map[rune]*node[V]{}
			}
			child = &node[V]{}
			n.children[r] = child
		}
		n = child
	}

	if !n.terminal {
		t.size++
	}
	n.value = v
	n.terminal = true
}

// Get returns the value stored for key.
func (t *Trie[V]) Get(key []rune) (V, bool) {
	var zero V
	if len(key) == 0 {
		return zero, false
	}

	n := &t.root
	for _, r := range key {
		n = n.children[r]
		if n == nil {
			return zero, false
		}
	}
	if !n.terminal {
		return zero, false
	}
	return n.value, true
}

// LongestPrefix returns the value of the longest key that is a prefix of s
// along with the key's length. If accept is not nil, only prefixes of length
// n for which accept(n) returns true are considered.
func (t *Trie[V]) LongestPrefix(s []rune, accept func(n int) bool) (V, int, bool) {
	var (
		value V
		size  int
		found bool
	)

	n := &t.root
	for i, r := range s {
		n = n.children[r]
		if n == nil {
			break
		}
		if n.terminal && (accept == nil || accept(i+1)) {
			value, size, found = n.value, i+1, true
		}
	}

	return value, size, found
}
