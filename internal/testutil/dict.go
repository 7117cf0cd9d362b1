// Copyright 2021 Google LLC
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

// Package testutil builds dictionary fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"github.com/pelletier/go-toml/v2"

	"github.com/ianlewis/go-dictinfo/asset"
	"github.com/ianlewis/go-dictinfo/escape"
	"github.com/ianlewis/go-dictinfo/header"
)

// MakeDictOptions are options for building a dictionary file.
type MakeDictOptions struct {
	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool

	// Payload is word list data written after the header.
	Payload []byte
}

func (o *MakeDictOptions) getPayload() []byte {
	if o == nil || o.Payload == nil {
		return []byte("word list data")
	}
	return o.Payload
}

// NewHeader returns a header for a main dictionary.
func NewHeader(localeTag string, version int) *header.Header {
	return &header.Header{
		ID:          "main:" + localeTag,
		Locale:      localeTag,
		Description: "Test dictionary for " + localeTag,
		Version:     strconv.Itoa(version),
	}
}

// MakeDict returns the contents of a dictionary file with the given header.
func MakeDict(t *testing.T, h *header.Header, opts *MakeDictOptions) []byte {
	t.Helper()

	b, err := h.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	b = append(b, opts.getPayload()...)

	if opts == nil || !opts.DictZip {
		return b
	}

	f, err := os.CreateTemp(t.TempDir(), "dictinfo.*.dz")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}

	compressed, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	return compressed
}

// WriteFile writes data to path, creating parent directories, and returns the
// address of the whole file.
func WriteFile(t *testing.T, path string, data []byte) asset.FileAddress {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return asset.FileAddress{
		Path:   path,
		Offset: 0,
		Length: int64(len(data)),
	}
}

// WriteCacheDict writes a dictionary file with the given id into the cache
// directory for dirLocale under root, i.e. root/dicts/<dirLocale>/<id>.
func WriteCacheDict(t *testing.T, root, dirLocale, id string, data []byte) asset.FileAddress {
	t.Helper()

	path := filepath.Join(root, "dicts", escape.Encode(dirLocale), escape.Encode(id))
	return WriteFile(t, path, data)
}

// BlobEntry is a named resource in a test blob.
type BlobEntry struct {
	Name string
	Data []byte
}

// WriteBlob writes the entries into a single blob file in dir along with a
// TOML manifest and returns the manifest path.
func WriteBlob(t *testing.T, dir string, locales []string, entries []BlobEntry) string {
	t.Helper()

	var blob []byte
	m := asset.Manifest{
		Blob:    "dicts.bin",
		Locales: locales,
	}
	for _, e := range entries {
		m.Resources = append(m.Resources, asset.Resource{
			Name:   e.Name,
			Offset: int64(len(blob)),
			Length: int64(len(e.Data)),
		})
		blob = append(blob, e.Data...)
	}

	WriteFile(t, filepath.Join(dir, m.Blob), blob)

	manifest, err := toml.Marshal(&m)
	if err != nil {
		t.Fatal(err)
	}
	manifestPath := filepath.Join(dir, "dicts.toml")
	WriteFile(t, manifestPath, manifest)
	return manifestPath
}
