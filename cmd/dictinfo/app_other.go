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

//go:build !windows

package main

import (
	"os"
	"path/filepath"
)

// assetLocations returns the directories searched for built-in dictionaries
// when none is configured.
func assetLocations() []string {
	var loc []string

	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		loc = append(loc, filepath.Join(xdgDataHome, "dictinfo/assets"))
	}

	if dataDir := os.Getenv("DICTINFO_ASSET_DIR"); dataDir != "" {
		loc = append(loc, dataDir)
	}

	loc = append(loc,
		"/usr/local/share/dictinfo/assets",
		"/usr/share/dictinfo/assets",
	)

	return loc
}
