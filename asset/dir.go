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
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-dictinfo/locale"
)

// MainPrefix is the name prefix of main dictionary resources.
const MainPrefix = "main_"

// Dir is a Provider backed by a directory holding one file per resource.
type Dir struct {
	path string
}

// NewDir returns a Provider for the resources in the directory at path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the directory path.
func (d *Dir) Path() string {
	return d.path
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}

// Exists implements Prober.Exists.
func (d *Dir) Exists(name string) bool {
	if !validName(name) {
		return false
	}
	f, err := os.Open(filepath.Join(d.path, name))
	if err != nil {
		return false
	}
	defer f.Close()

	fi, err := f.Stat()
	return err == nil && fi.Mode().IsRegular()
}

// Address implements Provider.Address.
func (d *Dir) Address(name string) (FileAddress, error) {
	if !validName(name) {
		return FileAddress{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	addr, err := FromFile(filepath.Join(d.path, name))
	if errors.Is(err, fs.ErrNotExist) {
		return FileAddress{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return addr, err
}

// Locales implements Provider.Locales. Locales are derived from the names of
// main dictionary resources, e.g. "main_en_us" provides "en_US".
func (d *Dir) Locales() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", d.path, err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	return localesFromNames(names), nil
}

// localesFromNames returns the sorted, distinct locale strings of the main
// dictionary resource names.
func localesFromNames(names []string) []string {
	var locales []string
	for _, name := range names {
		rest, ok := strings.CutPrefix(name, MainPrefix)
		if !ok || rest == "" {
			continue
		}
		l := locale.Parse(rest).String()
		if !slices.Contains(locales, l) {
			locales = append(locales, l)
		}
	}
	slices.Sort(locales)
	return locales
}
