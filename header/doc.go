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

// Package header implements reading word list dictionary headers.
//
// A header starts with a magic line followed by key/value entries and ends at
// the first empty line:
//
//	dictinfo word list header
//	id=main:en_US
//	locale=en_US
//	version=12
//	description=English (US)
//
// The word list data following the header is not interpreted. A dictionary
// may be compressed with dictzip, in which case the header is read from the
// decompressed stream.
package header
