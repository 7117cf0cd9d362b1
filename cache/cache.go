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

package cache

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gofrs/flock"

	"github.com/ianlewis/go-dictinfo/asset"
	"github.com/ianlewis/go-dictinfo/dictid"
	"github.com/ianlewis/go-dictinfo/escape"
	"github.com/ianlewis/go-dictinfo/internal/logging"
	"github.com/ianlewis/go-dictinfo/locale"
)

const (
	dictsDirName = "dicts"
	tempDirName  = "tmp"
	lockFileName = "install.lock"
)

// ErrInvalidID indicates that a dictionary id is malformed.
var ErrInvalidID = errors.New("invalid dictionary id")

// Cache is a word list cache rooted at a private directory.
type Cache struct {
	root   string
	logger *slog.Logger
}

// New returns a Cache rooted at root. Directories are created on demand. A
// nil logger discards log records.
func New(root string, logger *slog.Logger) *Cache {
	return &Cache{
		root:   root,
		logger: logging.Component(logger, "cache"),
	}
}

// Root returns the root directory of the cache.
func (c *Cache) Root() string {
	return c.root
}

// DictDir returns the directory holding the per-locale word list
// directories.
func (c *Cache) DictDir() string {
	return filepath.Join(c.root, dictsDirName)
}

// TempDir returns the directory for temporary files, creating it if
// necessary.
func (c *Cache) TempDir() string {
	dir := filepath.Join(c.root, tempDirName)
	c.ensureDir(dir)
	return dir
}

// LocaleDir returns the directory holding the word lists for the given locale
// string, creating it if necessary. Failure to create the directory is logged
// and the path is returned regardless.
func (c *Cache) LocaleDir(localeTag string) string {
	dir := filepath.Join(c.DictDir(), escape.Encode(localeTag))
	c.ensureDir(dir)
	return dir
}

// FileName returns the path of the cached word list with the given id and
// locale string. The locale directory is created if necessary.
func (c *Cache) FileName(id, localeTag string) string {
	return filepath.Join(c.LocaleDir(localeTag), dictid.FileName(id))
}

// ensureDir creates dir. Concurrent creation of the same directory is not an
// error.
func (c *Cache) ensureDir(dir string) {
	err := os.MkdirAll(dir, 0o700)
	if err == nil {
		return
	}
	if errors.Is(err, fs.ErrExist) {
		if fi, statErr := os.Stat(dir); statErr == nil && fi.IsDir() {
			return
		}
	}
	c.logger.Warn("could not create directory",
		slog.String("path", dir),
		slog.String("error", err.Error()))
}

// Locales returns the locale strings of all locale directories in the cache.
// Directories whose names cannot be decoded are skipped.
func (c *Cache) Locales() ([]string, error) {
	entries, err := os.ReadDir(c.DictDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	var locales []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		l, err := escape.Decode(e.Name())
		if err != nil {
			c.logger.Info("skipping cache directory",
				slog.String("name", e.Name()),
				slog.String("error", err.Error()))
			continue
		}
		locales = append(locales, l)
	}
	return locales, nil
}

// matchLevel returns how well a directory locale matches the target locale.
// Zero means no match.
func matchLevel(dir, target locale.Locale) int {
	switch {
	case dir == target:
		return 3
	case dir.Variant == "" && dir.Language == target.Language && dir.Country == target.Country:
		return 2
	case dir == target.Base():
		return 1
	default:
		return 0
	}
}

type candidate struct {
	addr  asset.FileAddress
	level int
}

// Candidates returns the cached word lists usable for the given locale
// string. Word lists in the locale's own directory and in less specific
// directories (e.g. "en" for "en_US") are considered. For each category only
// the word list from the most specific directory is returned.
func (c *Cache) Candidates(localeTag string) ([]asset.FileAddress, error) {
	entries, err := os.ReadDir(c.DictDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	target := locale.Parse(localeTag)
	best := map[string]candidate{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dirLocale, err := escape.Decode(e.Name())
		if err != nil {
			continue
		}
		level := matchLevel(locale.Parse(dirLocale), target)
		if level == 0 {
			continue
		}

		dir := filepath.Join(c.DictDir(), e.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			c.logger.Warn("could not read cache directory",
				slog.String("path", dir),
				slog.String("error", err.Error()))
			continue
		}
		for _, f := range files {
			if !f.Type().IsRegular() {
				continue
			}
			id, err := dictid.FromFileName(f.Name())
			if err != nil {
				continue
			}
			category, ok := dictid.Category(id)
			if !ok {
				continue
			}
			if cur, ok := best[category]; ok && cur.level >= level {
				continue
			}
			addr, err := asset.FromFile(filepath.Join(dir, f.Name()))
			if err != nil {
				continue
			}
			best[category] = candidate{addr: addr, level: level}
		}
	}

	addrs := make([]asset.FileAddress, 0, len(best))
	for _, cand := range best {
		addrs = append(addrs, cand.addr)
	}
	slices.SortFunc(addrs, func(a, b asset.FileAddress) int {
		return strings.Compare(a.Path, b.Path)
	})
	return addrs, nil
}

// Install copies the word list read from r into the cache under the given id
// and locale string and returns its path. The file is written to the temp
// directory first and then renamed into place. Concurrent installs are
// serialized with a file lock.
func (c *Cache) Install(id, localeTag string, r io.Reader) (string, error) {
	if _, ok := dictid.Category(id); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	tmpDir := c.TempDir()
	lock := flock.New(filepath.Join(tmpDir, lockFileName))
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("locking cache: %w", err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			c.logger.Warn("could not unlock cache", slog.String("error", err.Error()))
		}
	}()

	f, err := os.CreateTemp(tmpDir, dictid.FileName(id)+".*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %q: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %q: %w", tmpPath, err)
	}

	dst := c.FileName(id, localeTag)
	if err := os.Rename(tmpPath, dst); err != nil {
		return "", fmt.Errorf("installing %q: %w", dst, err)
	}

	c.logger.Debug("installed word list",
		slog.String("id", id),
		slog.String("locale", localeTag),
		slog.String("path", dst))

	return dst, nil
}
