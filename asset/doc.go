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

// Package asset provides access to built-in dictionaries.
//
// Built-in dictionaries are named resources such as "main_en_us" or
// "main_fr". They are either stored one per file in a directory (see Dir) or
// concatenated into a single blob described by a TOML manifest (see Blob):
//
//	blob = "dicts.bin"
//	locales = ["en_US", "fr"]
//
//	[[resource]]
//	name = "main_en_us"
//	offset = 0
//	length = 1024
//
//	[[resource]]
//	name = "main_fr"
//	offset = 1024
//	length = 2048
package asset
