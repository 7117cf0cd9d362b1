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

package dictinfo

import (
	"log/slog"
	"path/filepath"

	"github.com/ianlewis/go-dictinfo/asset"
	"github.com/ianlewis/go-dictinfo/dictid"
	"github.com/ianlewis/go-dictinfo/header"
	"github.com/ianlewis/go-dictinfo/internal/logging"
	"github.com/ianlewis/go-dictinfo/locale"
)

// HeaderReader reads dictionary headers.
type HeaderReader interface {
	// ReadHeader reads the header of the dictionary at addr.
	ReadHeader(addr asset.FileAddress) (*header.Header, error)
}

// CacheSource lists cached dictionaries. It is implemented by *cache.Cache.
type CacheSource interface {
	// Locales returns the locale strings of the cache directories.
	Locales() ([]string, error)

	// Candidates returns the cached dictionaries usable for the locale.
	Candidates(localeTag string) ([]asset.FileAddress, error)
}

// Options are options for Discover.
type Options struct {
	// Cache is the cache of downloaded dictionaries. It is skipped if nil.
	Cache CacheSource

	// Assets provides the built-in dictionaries. It is skipped if nil.
	Assets asset.Provider

	// Headers reads dictionary headers. Defaults to header.FileReader.
	Headers HeaderReader

	// Logger receives diagnostics. Defaults to discarding them.
	Logger *slog.Logger
}

type scanner struct {
	cache   CacheSource
	assets  asset.Provider
	headers HeaderReader
	logger  *slog.Logger
	reg     *Registry
}

// Discover returns the main dictionaries in the cache and in the assets, at
// most one per locale, sorted by locale string. The cache is scanned before the
// assets. A dictionary replaces one found earlier for the same locale only if
// its version is strictly greater.
//
// Dictionaries whose header cannot be read or whose header locale differs from
// the locale they are stored for are skipped. Discover fails with an error
// wrapping ErrCorruptVersion if a header has an invalid version.
func Discover(opts *Options) ([]*DictionaryInfo, error) {
	if opts == nil {
		opts = &Options{}
	}
	s := &scanner{
		cache:   opts.Cache,
		assets:  opts.Assets,
		headers: opts.Headers,
		logger:  logging.Component(opts.Logger, "discover"),
		reg:     NewRegistry(),
	}
	if s.headers == nil {
		s.headers = header.FileReader{}
	}

	if err := s.scanCache(); err != nil {
		return nil, err
	}
	if err := s.scanAssets(); err != nil {
		return nil, err
	}
	return s.reg.Infos(), nil
}

func (s *scanner) scanCache() error {
	if s.cache == nil {
		return nil
	}

	locales, err := s.cache.Locales()
	if err != nil {
		s.logger.Warn("could not list cached dictionaries", slog.String("error", err.Error()))
		return nil
	}

	for _, localeTag := range locales {
		dirLocale := locale.Parse(localeTag)
		addrs, err := s.cache.Candidates(localeTag)
		if err != nil {
			s.logger.Warn("could not list cached dictionaries",
				slog.String("locale", localeTag),
				slog.String("error", err.Error()))
			continue
		}
		for _, addr := range addrs {
			id, err := dictid.FromFileName(filepath.Base(addr.Path))
			if err != nil || !dictid.IsMain(id) {
				continue
			}
			if err := s.add(addr, dirLocale, "cache"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *scanner) scanAssets() error {
	if s.assets == nil {
		return nil
	}

	locales, err := s.assets.Locales()
	if err != nil {
		s.logger.Warn("could not list built-in dictionaries", slog.String("error", err.Error()))
		return nil
	}

	for _, localeTag := range locales {
		l := locale.Parse(localeTag)
		name, ok := BuiltinDictionaryName(s.assets, l)
		if !ok {
			continue
		}
		addr, err := s.assets.Address(name)
		if err != nil {
			s.logger.Warn("could not load built-in dictionary",
				slog.String("name", name),
				slog.String("error", err.Error()))
			continue
		}
		if err := s.add(addr, l, "assets"); err != nil {
			return err
		}
	}
	return nil
}

// add reads the header of the dictionary at addr, which is stored for locale
// want, and merges it into the registry.
func (s *scanner) add(addr asset.FileAddress, want locale.Locale, source string) error {
	h, err := s.headers.ReadHeader(addr)
	if err != nil {
		s.logger.Debug("skipping unreadable dictionary",
			slog.String("source", source),
			slog.String("path", addr.Path),
			slog.String("error", err.Error()))
		return nil
	}

	info, err := fromHeader(h, addr)
	if err != nil {
		return err
	}

	// A less specific dictionary, e.g. "en" found for "en_US", is usable for
	// the locale but is not listed for it.
	if info.Locale() != want {
		s.logger.Debug("skipping dictionary for another locale",
			slog.String("source", source),
			slog.String("path", addr.Path),
			slog.String("locale", want.String()),
			slog.String("header_locale", info.Locale().String()))
		return nil
	}

	if s.reg.Merge(info) {
		s.logger.Debug("found dictionary",
			slog.String("source", source),
			slog.String("id", info.ID()),
			slog.String("locale", info.Locale().String()),
			slog.Int("version", info.Version()),
			slog.String("path", addr.Path))
	}
	return nil
}
