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

package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-dictinfo/asset"
)

// Magic is the first line of every header.
const Magic = "dictinfo word list header"

// maxHeaderSize is the maximum number of bytes read for a header.
const maxHeaderSize = 64 * 1024

// Well known header keys.
const (
	KeyID          = "id"
	KeyLocale      = "locale"
	KeyDescription = "description"
	KeyVersion     = "version"
)

// gzipMagic starts every gzip, and so every dictzip, stream.
var gzipMagic = []byte{0x1f, 0x8b}

var (
	// ErrUnsupportedFormat indicates that data is not a dictionary header.
	ErrUnsupportedFormat = errors.New("unsupported format")

	errNewline = errors.New("value contains a newline")
)

// Header is a dictionary file header.
type Header struct {
	// ID is the dictionary id, e.g. "main:en_US".
	ID string

	// Locale is the locale string of the dictionary, e.g. "en_US".
	Locale string

	// Description is a human readable description. It may contain HTML.
	Description string

	// Version is the dictionary version as written in the header. It is
	// expected to be a non-negative decimal integer.
	Version string

	// Attributes holds any other entries.
	Attributes map[string]string
}

// Value returns the value of the header entry with the given key.
func (h *Header) Value(key string) string {
	switch key {
	case KeyID:
		return h.ID
	case KeyLocale:
		return h.Locale
	case KeyDescription:
		return h.Description
	case KeyVersion:
		return h.Version
	default:
		return h.Attributes[key]
	}
}

// New reads a header from r. The id, locale and version entries are required.
func New(r io.Reader) (*Header, error) {
	s, err := NewScanner(r)
	if err != nil {
		return nil, err
	}

	h := &Header{}
	seen := map[string]bool{}
	for s.Scan() {
		key := s.Key()
		seen[key] = true
		switch key {
		case KeyID:
			h.ID = s.Value()
		case KeyLocale:
			h.Locale = s.Value()
		case KeyDescription:
			h.Description = s.Value()
		case KeyVersion:
			h.Version = s.Value()
		default:
			if h.Attributes == nil {
				h.Attributes = map[string]string{}
			}
			h.Attributes[key] = s.Value()
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	for _, key := range []string{KeyID, KeyLocale, KeyVersion} {
		if !seen[key] {
			return nil, fmt.Errorf("%w: missing %s", ErrUnsupportedFormat, key)
		}
	}

	return h, nil
}

// Read reads the header of the dictionary at addr. The byte range may be
// compressed with dictzip.
func Read(addr asset.FileAddress) (*Header, error) {
	if addr.Offset < 0 || addr.Length <= 0 {
		return nil, fmt.Errorf("%w: empty range in %q", ErrUnsupportedFormat, addr.Path)
	}

	f, err := os.Open(addr.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", addr.Path, err)
	}
	defer f.Close()

	sr := io.NewSectionReader(f, addr.Offset, addr.Length)

	prefix := make([]byte, len(gzipMagic))
	if _, err := sr.ReadAt(prefix, 0); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading %q: %w", addr.Path, err)
	}

	var r io.Reader = io.NewSectionReader(sr, 0, maxHeaderSize)
	if bytes.Equal(prefix, gzipMagic) {
		z, err := dictzip.NewReader(sr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedFormat, addr.Path, err)
		}
		r = io.NewSectionReader(z, 0, maxHeaderSize)
	}

	h, err := New(r)
	if err != nil {
		return nil, fmt.Errorf("reading header of %q: %w", addr.Path, err)
	}
	return h, nil
}

// FileReader reads headers from the file system.
type FileReader struct{}

// ReadHeader reads the header at addr. See Read.
func (FileReader) ReadHeader(addr asset.FileAddress) (*Header, error) {
	return Read(addr)
}

// MarshalText returns the encoded header including the terminating empty
// line.
func (h *Header) MarshalText() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(Magic + "\n")

	write := func(key, value string) error {
		if !keyRegex.MatchString(key) {
			return fmt.Errorf("invalid key %q", key)
		}
		if strings.ContainsAny(value, "\r\n") {
			return fmt.Errorf("%s: %w", key, errNewline)
		}
		b.WriteString(key + "=" + value + "\n")
		return nil
	}

	for _, kv := range [][2]string{
		{KeyID, h.ID},
		{KeyLocale, h.Locale},
		{KeyVersion, h.Version},
		{KeyDescription, h.Description},
	} {
		if err := write(kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	for _, key := range slices.Sorted(maps.Keys(h.Attributes)) {
		switch key {
		case KeyID, KeyLocale, KeyVersion, KeyDescription:
			continue
		}
		if err := write(key, h.Attributes[key]); err != nil {
			return nil, err
		}
	}
	b.WriteString("\n")

	return b.Bytes(), nil
}
