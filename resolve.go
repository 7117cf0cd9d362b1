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
	"strings"

	"github.com/ianlewis/go-dictinfo/asset"
	"github.com/ianlewis/go-dictinfo/locale"
)

// DefaultMainDictionary is the name of the built-in dictionary used when no
// dictionary exists for a locale.
const DefaultMainDictionary = "main.dict"

// BuiltinDictionaryName returns the name of the built-in main dictionary for
// the locale. "main_<language>_<country>" (lowercased) is tried first if the
// locale has a country, then "main_<language>".
func BuiltinDictionaryName(p asset.Prober, l locale.Locale) (string, bool) {
	if l.HasCountry() {
		name := asset.MainPrefix + strings.ToLower(l.String())
		if p.Exists(name) {
			return name, true
		}
	}

	name := asset.MainPrefix + l.Language
	if p.Exists(name) {
		return name, true
	}

	return "", false
}

// MainDictionaryName is like BuiltinDictionaryName but returns
// DefaultMainDictionary if no dictionary exists for the locale.
func MainDictionaryName(p asset.Prober, l locale.Locale) string {
	if name, ok := BuiltinDictionaryName(p, l); ok {
		return name
	}
	return DefaultMainDictionary
}
