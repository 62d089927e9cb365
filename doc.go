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

// Package glossary implements glossary term lookup and text scanning.
//
// A glossary maps source language terms to one or more translations. It is
// loaded from CSV files with one term per row:
//
//	sourceTerm,translation1[,translation2,...]
//
// An optional header row may label the columns. A column labelled "term"
// holds the source term and a column labelled "notes" holds free form notes.
// All other columns are translations.
//
// Terms are normalised before they are stored or looked up. Surrounding
// whitespace is removed, whitespace spans fold to a single space, full-width
// ASCII folds to half-width, half-width katakana folds to full-width and case
// is folded.
//
// A loaded [Store] is immutable and safe for concurrent use. [Scan] finds
// all non-overlapping occurrences of glossary terms in a text, preferring the
// longest term at each position. A [Holder] keeps the current store and
// replaces it atomically on reload.
package glossary
