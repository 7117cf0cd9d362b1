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

package cache_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-dictinfo/asset"
	"github.com/ianlewis/go-dictinfo/cache"
	"github.com/ianlewis/go-dictinfo/internal/logging"
	"github.com/ianlewis/go-dictinfo/internal/testutil"
)

func TestCache_FileName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	c := cache.New(root, nil)

	got := c.FileName("main:en_US", "en_US")
	want := filepath.Join(root, "dicts", "en_US", "main%00003aen_US")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FileName (-want, +got):\n%s", diff)
	}

	fi, err := os.Stat(filepath.Dir(got))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !fi.IsDir() {
		t.Fatalf("%q is not a directory", filepath.Dir(got))
	}

	if diff := cmp.Diff(filepath.Join(root, "tmp"), c.TempDir()); diff != "" {
		t.Fatalf("TempDir (-want, +got):\n%s", diff)
	}
}

func TestCache_LocaleDir_concurrent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	c := cache.New(t.TempDir(), logger)

	var wg sync.WaitGroup
	dirs := make([]string, 16)
	for i := range dirs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dirs[i] = c.LocaleDir("pt_BR")
		}()
	}
	wg.Wait()

	for _, dir := range dirs {
		if dir != dirs[0] {
			t.Fatalf("LocaleDir: want: %q, got: %q", dirs[0], dir)
		}
	}
	if _, err := os.Stat(dirs[0]); err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}

func TestCache_LocaleDir_failure(t *testing.T) {
	t.Parallel()

	// The cache root is a regular file so no directory can be created.
	root := filepath.Join(t.TempDir(), "root")
	testutil.WriteFile(t, root, []byte("not a directory"))

	var buf bytes.Buffer
	logger, err := logging.New(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	c := cache.New(root, logger)

	dir := c.LocaleDir("en")
	if diff := cmp.Diff(filepath.Join(root, "dicts", "en"), dir); diff != "" {
		t.Fatalf("LocaleDir (-want, +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "could not create directory") {
		t.Fatalf("expected warning, got: %q", buf.String())
	}
}

func TestCache_Locales(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, l := range []string{"en", "en_US", "sr_RS_latin"} {
		testutil.WriteCacheDict(t, root, l, "main:"+l, []byte("data"))
	}
	if err := os.Mkdir(filepath.Join(root, "dicts", "bad%zz"), 0o700); err != nil {
		t.Fatal(err)
	}
	testutil.WriteFile(t, filepath.Join(root, "dicts", "stray"), []byte("file"))

	locales, err := cache.New(root, nil).Locales()
	if err != nil {
		t.Fatalf("Locales: %v", err)
	}
	if diff := cmp.Diff([]string{"en", "en_US", "sr_RS_latin"}, locales); diff != "" {
		t.Fatalf("Locales (-want, +got):\n%s", diff)
	}
}

func TestCache_Locales_empty(t *testing.T) {
	t.Parallel()

	locales, err := cache.New(filepath.Join(t.TempDir(), "missing"), nil).Locales()
	if err != nil {
		t.Fatalf("Locales: %v", err)
	}
	if len(locales) != 0 {
		t.Fatalf("Locales: want none, got: %v", locales)
	}
}

func TestCache_Candidates(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	enMain := testutil.WriteCacheDict(t, root, "en", "main:en", []byte("en main"))
	enUser := testutil.WriteCacheDict(t, root, "en", "user:en", []byte("en user"))
	enUSMain := testutil.WriteCacheDict(t, root, "en_US", "main:en_US", []byte("en_US main"))
	frMain := testutil.WriteCacheDict(t, root, "fr", "main:fr", []byte("fr main"))
	testutil.WriteCacheDict(t, root, "fr", "not-an-id", []byte("ignored"))

	c := cache.New(root, nil)

	tests := []struct {
		locale   string
		expected []asset.FileAddress
	}{
		{
			// main comes from en_US, user from en.
			locale:   "en_US",
			expected: []asset.FileAddress{enUser, enUSMain},
		},
		{
			locale:   "en_GB",
			expected: []asset.FileAddress{enMain, enUser},
		},
		{
			locale:   "en",
			expected: []asset.FileAddress{enMain, enUser},
		},
		{
			locale:   "fr",
			expected: []asset.FileAddress{frMain},
		},
		{
			locale:   "de",
			expected: []asset.FileAddress{},
		},
	}

	for _, test := range tests {
		t.Run(test.locale, func(t *testing.T) {
			t.Parallel()

			got, err := c.Candidates(test.locale)
			if err != nil {
				t.Fatalf("Candidates: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Candidates (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestCache_Install(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	c := cache.New(root, nil)

	path, err := c.Install("main:de", "de", strings.NewReader("de data"))
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if diff := cmp.Diff(c.FileName("main:de", "de"), path); diff != "" {
		t.Fatalf("Install (-want, +got):\n%s", diff)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff("de data", string(b)); diff != "" {
		t.Fatalf("contents (-want, +got):\n%s", diff)
	}

	// Only the lock file is left in the temp directory.
	entries, err := os.ReadDir(c.TempDir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp dir: want 1 entry, got: %v", entries)
	}

	if _, err := c.Install("main", "de", strings.NewReader("x")); !errors.Is(err, cache.ErrInvalidID) {
		t.Fatalf("Install: want: %v, got: %v", cache.ErrInvalidID, err)
	}
}

func TestCache_Install_concurrent(t *testing.T) {
	t.Parallel()

	c := cache.New(t.TempDir(), nil)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := fmt.Sprintf("l%d", i)
			_, errs[i] = c.Install("main:"+l, l, strings.NewReader(l))
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			t.Fatalf("Install: %v", err)
		}
	}

	locales, err := c.Locales()
	if err != nil {
		t.Fatalf("Locales: %v", err)
	}
	if len(locales) != len(errs) {
		t.Fatalf("Locales: want %d, got: %v", len(errs), locales)
	}
}
