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
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-glossary/internal/folding"
)

// HeaderMode controls how the first row of a glossary file is treated.
type HeaderMode int

const (
	// HeaderAuto treats the first row as a header when one column is labeled
	// "term" (or "source", "用語", ...) and another "translation" or "notes"
	// (or "訳語", "備考", ...). A detected header is reported as a warning
	// wrapping [ErrHeaderRow].
	HeaderAuto HeaderMode = iota

	// HeaderPresent always treats the first row as a header.
	HeaderPresent

	// HeaderAbsent never treats the first row as a header.
	HeaderAbsent
)

// MergePolicy controls how rows with the same normalised term are combined.
type MergePolicy int

const (
	// MergeTranslations keeps the first entry and appends translations from
	// later rows that it does not already have.
	MergeTranslations MergePolicy = iota

	// LastWins replaces the earlier entry with the later one.
	LastWins
)

// Options are options for loading a glossary.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, width folding, etc.) on terms and scanned text. It is
	// applied one rune at a time. Whitespace is always trimmed and folded
	// regardless of the Folder.
	Folder func() transform.Transformer

	// Header controls header row detection.
	Header HeaderMode

	// Merge controls how duplicate terms are combined.
	Merge MergePolicy

	// Comma is the field delimiter. If zero, the delimiter is a comma, or a
	// tab for .tsv files.
	Comma rune

	// WholeWords prevents matches that start or end in the middle of a word
	// in space delimited scripts. For example "cat" will not match inside
	// "category". Scripts written without spaces such as Japanese and
	// Chinese are not affected.
	WholeWords bool
}

// DefaultOptions is the default options for loading a glossary.
var DefaultOptions = &Options{
	Folder: folding.Default,
	Header: HeaderAuto,
	Merge:  MergeTranslations,
}

func (o *Options) folder() func() transform.Transformer {
	if o == nil || o.Folder == nil {
		return DefaultOptions.Folder
	}
	return o.Folder
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions
	}
	return o
}
