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

package asset

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotFound indicates that a named resource does not exist.
var ErrNotFound = errors.New("resource not found")

// FileAddress is a byte range within a file. A dictionary may be a whole file
// or a range inside a larger asset blob.
type FileAddress struct {
	Path   string
	Offset int64
	Length int64
}

// FromFile returns the address of the whole file at path.
func FromFile(path string) (FileAddress, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileAddress{}, fmt.Errorf("stat %q: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return FileAddress{}, fmt.Errorf("%q is not a regular file", path)
	}
	return FileAddress{
		Path:   path,
		Offset: 0,
		Length: fi.Size(),
	}, nil
}

// Prober checks for the existence of named resources.
type Prober interface {
	// Exists reports whether the named resource exists. Failure to open the
	// resource means it does not exist.
	Exists(name string) bool
}

// Provider provides the built-in dictionaries.
type Provider interface {
	Prober

	// Locales returns the locale strings the provider has resources for.
	Locales() ([]string, error)

	// Address returns the address of the named resource.
	Address(name string) (FileAddress, error)
}
