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

// Package cache manages the cache of downloaded word lists.
//
// The cache has one directory per locale below a private root. Directory and
// file names are escaped with package escape:
//
//	<root>/dicts/<escaped locale>/<escaped dictionary id>
//	<root>/tmp/
//
// For example the main en_US word list is stored at
// <root>/dicts/en_US/main%00003aen_US.
package cache
