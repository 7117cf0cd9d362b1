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

package dictinfo

import (
	"slices"
	"strings"

	"github.com/ianlewis/go-dictinfo/locale"
)

// Registry holds at most one dictionary per locale, the one with the highest
// version. A Registry is not safe for concurrent use.
type Registry struct {
	byLocale map[locale.Locale]*DictionaryInfo
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byLocale: map[locale.Locale]*DictionaryInfo{},
	}
}

// Merge adds info to the registry if no dictionary for its locale is present
// or if info has a strictly greater version than the present one, which it
// then replaces. It reports whether info was added.
func (r *Registry) Merge(info *DictionaryInfo) bool {
	if cur, ok := r.byLocale[info.Locale()]; ok && info.Version() <= cur.Version() {
		return false
	}
	r.byLocale[info.Locale()] = info
	return true
}

// Lookup returns the dictionary for the locale.
func (r *Registry) Lookup(l locale.Locale) (*DictionaryInfo, bool) {
	info, ok := r.byLocale[l]
	return info, ok
}

// Len returns the number of dictionaries in the registry.
func (r *Registry) Len() int {
	return len(r.byLocale)
}

// Infos returns the dictionaries sorted by locale string.
func (r *Registry) Infos() []*DictionaryInfo {
	infos := make([]*DictionaryInfo, 0, len(r.byLocale))
	for _, info := range r.byLocale {
		infos = append(infos, info)
	}
	slices.SortFunc(infos, func(a, b *DictionaryInfo) int {
		return strings.Compare(a.Locale().String(), b.Locale().String())
	})
	return infos
}
