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

package asset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-dictinfo/asset"
	"github.com/ianlewis/go-dictinfo/internal/testutil"
)

func TestDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "main_en_us"), []byte("en_US data"))
	testutil.WriteFile(t, filepath.Join(dir, "main_fr"), []byte("fr data"))
	testutil.WriteFile(t, filepath.Join(dir, "main.dict"), []byte("default"))
	testutil.WriteFile(t, filepath.Join(dir, "other_de"), []byte("other"))
	if err := os.Mkdir(filepath.Join(dir, "main_xx"), 0o700); err != nil {
		t.Fatal(err)
	}

	d := asset.NewDir(dir)

	locales, err := d.Locales()
	if err != nil {
		t.Fatalf("Locales: %v", err)
	}
	if diff := cmp.Diff([]string{"en_US", "fr"}, locales); diff != "" {
		t.Fatalf("Locales (-want, +got):\n%s", diff)
	}

	for name, want := range map[string]bool{
		"main_en_us": true,
		"main_fr":    true,
		"main.dict":  true,
		"main_en":    false,
		"main_xx":    false,
		"":           false,
		"..":         false,
		"../main_fr": false,
	} {
		if got := d.Exists(name); got != want {
			t.Errorf("Exists(%q): want: %v, got: %v", name, want, got)
		}
	}

	addr, err := d.Address("main_fr")
	if err != nil {
		t.Fatalf("Address: %v", err)
	}
	want := asset.FileAddress{
		Path:   filepath.Join(dir, "main_fr"),
		Offset: 0,
		Length: int64(len("fr data")),
	}
	if diff := cmp.Diff(want, addr); diff != "" {
		t.Fatalf("Address (-want, +got):\n%s", diff)
	}

	if _, err := d.Address("main_en"); !errors.Is(err, asset.ErrNotFound) {
		t.Fatalf("Address: want: %v, got: %v", asset.ErrNotFound, err)
	}
}

func TestDir_missing(t *testing.T) {
	t.Parallel()

	d := asset.NewDir(filepath.Join(t.TempDir(), "missing"))
	if d.Exists("main_en") {
		t.Fatal("Exists: want false")
	}
	if _, err := d.Locales(); err == nil {
		t.Fatal("Locales: expected failure")
	}
}

func TestBlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := testutil.WriteBlob(t, dir, nil, []testutil.BlobEntry{
		{Name: "main_en_us", Data: []byte("0123456789")},
		{Name: "main_fr", Data: []byte("abcde")},
	})

	b, err := asset.OpenBlob(manifest)
	if err != nil {
		t.Fatalf("OpenBlob: %v", err)
	}

	locales, err := b.Locales()
	if err != nil {
		t.Fatalf("Locales: %v", err)
	}
	if diff := cmp.Diff([]string{"en_US", "fr"}, locales); diff != "" {
		t.Fatalf("Locales (-want, +got):\n%s", diff)
	}

	if !b.Exists("main_fr") {
		t.Fatal("Exists(main_fr): want true")
	}
	if b.Exists("main_de") {
		t.Fatal("Exists(main_de): want false")
	}

	addr, err := b.Address("main_fr")
	if err != nil {
		t.Fatalf("Address: %v", err)
	}
	want := asset.FileAddress{
		Path:   filepath.Join(dir, "dicts.bin"),
		Offset: 10,
		Length: 5,
	}
	if diff := cmp.Diff(want, addr); diff != "" {
		t.Fatalf("Address (-want, +got):\n%s", diff)
	}

	if _, err := b.Address("main_de"); !errors.Is(err, asset.ErrNotFound) {
		t.Fatalf("Address: want: %v, got: %v", asset.ErrNotFound, err)
	}
}

func TestBlob_explicitLocales(t *testing.T) {
	t.Parallel()

	manifest := testutil.WriteBlob(t, t.TempDir(), []string{"de", "en_GB"}, []testutil.BlobEntry{
		{Name: "main_en", Data: []byte("en")},
	})

	b, err := asset.OpenBlob(manifest)
	if err != nil {
		t.Fatalf("OpenBlob: %v", err)
	}
	locales, err := b.Locales()
	if err != nil {
		t.Fatalf("Locales: %v", err)
	}
	if diff := cmp.Diff([]string{"de", "en_GB"}, locales); diff != "" {
		t.Fatalf("Locales (-want, +got):\n%s", diff)
	}
}

func TestNewBlob_invalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blob := filepath.Join(dir, "dicts.bin")
	testutil.WriteFile(t, blob, []byte("0123456789"))

	tests := []struct {
		name     string
		manifest *asset.Manifest
	}{
		{
			name:     "missing blob",
			manifest: &asset.Manifest{},
		},
		{
			name: "out of range",
			manifest: &asset.Manifest{
				Blob:      blob,
				Resources: []asset.Resource{{Name: "main_en", Offset: 5, Length: 6}},
			},
		},
		{
			name: "negative offset",
			manifest: &asset.Manifest{
				Blob:      blob,
				Resources: []asset.Resource{{Name: "main_en", Offset: -1, Length: 1}},
			},
		},
		{
			name: "duplicate",
			manifest: &asset.Manifest{
				Blob: blob,
				Resources: []asset.Resource{
					{Name: "main_en", Offset: 0, Length: 1},
					{Name: "main_en", Offset: 1, Length: 1},
				},
			},
		},
		{
			name: "path name",
			manifest: &asset.Manifest{
				Blob:      blob,
				Resources: []asset.Resource{{Name: "a/main_en", Offset: 0, Length: 1}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if _, err := asset.NewBlob(test.manifest); !errors.Is(err, asset.ErrInvalidManifest) {
				t.Fatalf("NewBlob: want: %v, got: %v", asset.ErrInvalidManifest, err)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	addr := testutil.WriteFile(t, filepath.Join(dir, "f"), []byte("hello"))

	got, err := asset.FromFile(addr.Path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if diff := cmp.Diff(addr, got); diff != "" {
		t.Fatalf("FromFile (-want, +got):\n%s", diff)
	}

	if _, err := asset.FromFile(dir); err == nil {
		t.Fatal("FromFile(dir): expected failure")
	}
	if _, err := asset.FromFile(filepath.Join(dir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("FromFile: want: %v, got: %v", os.ErrNotExist, err)
	}
}
