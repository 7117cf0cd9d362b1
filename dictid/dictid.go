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

// Package dictid implements dictionary ids. A dictionary id has the form
// "category:locale", e.g. "main:en_US".
package dictid

import (
	"strings"

	"github.com/ianlewis/go-dictinfo/escape"
	"github.com/ianlewis/go-dictinfo/locale"
)

const (
	// Separator separates the category and locale of an id.
	Separator = ":"

	// MainCategory is the category of main dictionaries.
	MainCategory = "main"
)

// Format returns the id for the given category and locale string.
func Format(category, localeTag string) string {
	return category + Separator + localeTag
}

// split returns the category and locale of id. ok is false unless id has
// exactly two non-empty parts.
func split(id string) (category, localeTag string, ok bool) {
	parts := strings.Split(id, Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Category returns the category of the id. ok is false if id is not a valid
// id.
func Category(id string) (string, bool) {
	category, _, ok := split(id)
	return category, ok
}

// Locale returns the locale string of the id. ok is false if id is not a valid
// id.
func Locale(id string) (string, bool) {
	_, localeTag, ok := split(id)
	return localeTag, ok
}

// IsMain reports whether id is a valid id in the main category.
func IsMain(id string) bool {
	category, ok := Category(id)
	return ok && category == MainCategory
}

// MainID returns the id of the main dictionary for l. Only the language is
// used. Bundled dictionaries do not differ by country.
func MainID(l locale.Locale) string {
	return Format(MainCategory, l.Language)
}

// FileName returns the file name used to store the dictionary with the given
// id.
func FileName(id string) string {
	return escape.Encode(id)
}

// FromFileName returns the id stored in the file with the given name.
func FromFileName(name string) (string, error) {
	//nolint:wrapcheck // error is already descriptive.
	return escape.Decode(name)
}
