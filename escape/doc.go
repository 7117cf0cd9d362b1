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

// Package escape converts arbitrary strings such as dictionary ids and locale
// strings to tokens that are safe to use as file and directory names.
//
// ASCII letters, ASCII digits and '_' are kept as is. Every other code point
// is replaced by '%' followed by six lowercase hex digits. For example the
// dictionary id "main:en_US" is encoded as "main%00003aen_US".
package escape
