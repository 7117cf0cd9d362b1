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
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidManifest indicates that a blob manifest is invalid.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest describes the resources stored in an asset blob.
type Manifest struct {
	// Blob is the path to the blob file. Relative paths are relative to the
	// manifest.
	Blob string `toml:"blob"`

	// Locales are the locales the blob provides. If empty, locales are
	// derived from the main dictionary resource names.
	Locales []string `toml:"locales"`

	Resources []Resource `toml:"resource"`
}

// Resource is a named byte range in the blob.
type Resource struct {
	Name   string `toml:"name"`
	Offset int64  `toml:"offset"`
	Length int64  `toml:"length"`
}

// Blob is a Provider backed by a single file containing all resources.
type Blob struct {
	path      string
	locales   []string
	resources map[string]Resource
}

// OpenBlob reads the TOML manifest at path and returns a Provider for the
// blob it describes.
func OpenBlob(path string) (*Blob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	var m Manifest
	d := toml.NewDecoder(f)
	d.DisallowUnknownFields()
	if err := d.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidManifest, path, err)
	}

	if m.Blob != "" && !filepath.IsAbs(m.Blob) {
		m.Blob = filepath.Join(filepath.Dir(path), m.Blob)
	}

	return NewBlob(&m)
}

// NewBlob returns a Provider for the blob described by m. Every resource must
// lie within the blob file.
func NewBlob(m *Manifest) (*Blob, error) {
	if m.Blob == "" {
		return nil, fmt.Errorf("%w: missing blob", ErrInvalidManifest)
	}
	fi, err := os.Stat(m.Blob)
	if err != nil {
		return nil, fmt.Errorf("stat blob: %w", err)
	}

	b := &Blob{
		path:      m.Blob,
		resources: make(map[string]Resource, len(m.Resources)),
	}

	names := make([]string, 0, len(m.Resources))
	for _, r := range m.Resources {
		if !validName(r.Name) {
			return nil, fmt.Errorf("%w: invalid resource name %q", ErrInvalidManifest, r.Name)
		}
		if _, ok := b.resources[r.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate resource %q", ErrInvalidManifest, r.Name)
		}
		if r.Offset < 0 || r.Length < 0 || r.Offset+r.Length > fi.Size() {
			return nil, fmt.Errorf("%w: resource %q [%d, +%d) outside of blob (size %d)",
				ErrInvalidManifest, r.Name, r.Offset, r.Length, fi.Size())
		}
		b.resources[r.Name] = r
		names = append(names, r.Name)
	}

	if len(m.Locales) > 0 {
		b.locales = slices.Clone(m.Locales)
	} else {
		b.locales = localesFromNames(names)
	}

	return b, nil
}

// Path returns the blob path.
func (b *Blob) Path() string {
	return b.path
}

// Exists implements Prober.Exists.
func (b *Blob) Exists(name string) bool {
	if _, ok := b.resources[name]; !ok {
		return false
	}
	f, err := os.Open(b.path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Address implements Provider.Address.
func (b *Blob) Address(name string) (FileAddress, error) {
	r, ok := b.resources[name]
	if !ok {
		return FileAddress{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return FileAddress{
		Path:   b.path,
		Offset: r.Offset,
		Length: r.Length,
	}, nil
}

// Locales implements Provider.Locales.
func (b *Blob) Locales() ([]string, error) {
	return slices.Clone(b.locales), nil
}
