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

// Package locale implements the locale strings used to name dictionaries and
// their cache directories, e.g. "en", "en_US" or "sr_RS_latin".
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Separator separates the parts of a locale string.
const Separator = "_"

// Locale is a language with an optional country and variant. Locales are
// comparable and can be used as map keys.
type Locale struct {
	Language string
	Country  string
	Variant  string
}

// Parse parses a locale string. It never fails: a string with more than three
// parts is kept whole as the language.
func Parse(s string) Locale {
	parts := strings.Split(s, Separator)
	switch len(parts) {
	case 1:
		return New(parts[0], "", "")
	case 2:
		return New(parts[0], parts[1], "")
	case 3:
		return New(parts[0], parts[1], parts[2])
	default:
		return New(s, "", "")
	}
}

// New returns a normalized Locale. The language is lowercased and the country
// uppercased.
func New(lang, country, variant string) Locale {
	return Locale{
		Language: strings.ToLower(lang),
		Country:  strings.ToUpper(country),
		Variant:  variant,
	}
}

// String returns the locale string, e.g. "en_US". Empty trailing parts are
// omitted but a variant without a country keeps both separators ("de__POSIX").
func (l Locale) String() string {
	switch {
	case l.Variant != "":
		return l.Language + Separator + l.Country + Separator + l.Variant
	case l.Country != "":
		return l.Language + Separator + l.Country
	default:
		return l.Language
	}
}

// HasCountry reports whether the locale has a country.
func (l Locale) HasCountry() bool {
	return l.Country != ""
}

// Base returns the language-only locale.
func (l Locale) Base() Locale {
	return Locale{Language: l.Language}
}

// Tag returns the BCP 47 language tag for the locale. Parts that are not valid
// BCP 47 subtags are dropped.
func (l Locale) Tag() language.Tag {
	tag, err := language.Parse(l.Language)
	if err != nil {
		return language.Und
	}
	if l.Country == "" {
		return tag
	}
	region, err := language.ParseRegion(l.Country)
	if err != nil {
		return tag
	}
	tag, err = language.Compose(tag, region)
	if err != nil {
		return language.Und
	}
	return tag
}

// DisplayName returns the English name of the locale, e.g. "American English".
// The locale string is returned if no name is known.
func (l Locale) DisplayName() string {
	tag := l.Tag()
	if tag == language.Und {
		return l.String()
	}
	if name := display.Tags(language.English).Name(tag); name != "" {
		return name
	}
	return l.String()
}
