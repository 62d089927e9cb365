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
	"sync"
	"sync/atomic"
)

// Holder holds the current glossary Store. Loading a new glossary replaces
// the Store atomically. Scans already running keep using the Store they
// started with. A failed load leaves the current Store in place.
type Holder struct {
	opts  *Options
	store atomic.Pointer[Store]

	// mu serializes loads and guards paths.
	mu    sync.Mutex
	paths []string
}

// NewHolder returns a new Holder with no Store loaded.
func NewHolder(options *Options) *Holder {
	return &Holder{
		opts: options,
	}
}

// Store returns the current Store or nil if no glossary has been loaded.
func (h *Holder) Store() *Store {
	return h.store.Load()
}

// Load loads the glossary files at paths and replaces the current Store. On
// error the current Store is kept.
func (h *Holder) Load(paths []string) ([]*Warning, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.load(slices.Clone(paths))
}

// Reload loads the paths from the last successful Load again. Directories
// are searched again so glossary files added since are loaded. It returns
// [ErrNotLoaded] if Load has never succeeded.
func (h *Holder) Reload() ([]*Warning, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.paths == nil {
		return nil, ErrNotLoaded
	}
	return h.load(h.paths)
}

func (h *Holder) load(paths []string) ([]*Warning, error) {
	s, warnings, err := Load(paths, h.opts)
	if err != nil {
		return warnings, err
	}
	h.store.Store(s)
	h.paths = paths
	if h.paths == nil {
		h.paths = []string{}
	}
	return warnings, nil
}

// Scan scans text using the current Store. It returns [ErrNotLoaded] if no
// glossary has been loaded.
func (h *Holder) Scan(text string) ([]*Match, error) {
	return Scan(text, h.Store())
}
