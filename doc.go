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

// Package dictinfo finds the word list dictionaries available to a text input
// application.
//
// Dictionaries come from two sources:
//  1. A writable cache of downloaded dictionaries (see package cache). The
//     cache holds one directory per locale and each file is named after the
//     escaped dictionary id, e.g. "main:en_US".
//  2. Read-only built-in dictionaries (see package asset), named e.g.
//     "main_en_us" or "main_fr".
//
// Discover scans both sources and keeps the dictionary with the highest
// version for each locale. BuiltinDictionaryName and MainDictionaryName pick
// the built-in dictionary for a locale, falling back from the language and
// country to the language alone.
package dictinfo
