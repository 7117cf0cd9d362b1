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
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ianlewis/go-dictinfo/asset"
	"github.com/ianlewis/go-dictinfo/header"
	"github.com/ianlewis/go-dictinfo/locale"
)

// ErrCorruptVersion indicates that a dictionary header has a version that is
// not a non-negative integer.
var ErrCorruptVersion = errors.New("corrupt dictionary version")

// DictionaryInfo describes a usable dictionary.
type DictionaryInfo struct {
	id          string
	locale      locale.Locale
	description string
	addr        asset.FileAddress
	version     int
}

// NewDictionaryInfo returns a new DictionaryInfo.
func NewDictionaryInfo(id string, l locale.Locale, description string, addr asset.FileAddress, version int) *DictionaryInfo {
	return &DictionaryInfo{
		id:          id,
		locale:      l,
		description: description,
		addr:        addr,
		version:     version,
	}
}

// fromHeader returns the DictionaryInfo for the dictionary at addr with header
// h.
func fromHeader(h *header.Header, addr asset.FileAddress) (*DictionaryInfo, error) {
	version, err := strconv.Atoi(h.Version)
	if err != nil || version < 0 {
		return nil, fmt.Errorf("%w: %q in %q", ErrCorruptVersion, h.Version, addr.Path)
	}
	return NewDictionaryInfo(h.ID, locale.Parse(h.Locale), h.Description, addr, version), nil
}

// ID returns the dictionary id.
func (d *DictionaryInfo) ID() string {
	return d.id
}

// Locale returns the dictionary locale as reported by its header.
func (d *DictionaryInfo) Locale() locale.Locale {
	return d.locale
}

// Description returns the dictionary description.
func (d *DictionaryInfo) Description() string {
	return d.description
}

// FileAddress returns the location of the dictionary.
func (d *DictionaryInfo) FileAddress() asset.FileAddress {
	return d.addr
}

// Version returns the dictionary version.
func (d *DictionaryInfo) Version() int {
	return d.version
}

// Column names of a Row.
const (
	ColumnID          = "id"
	ColumnLocale      = "locale"
	ColumnFilename    = "filename"
	ColumnDescription = "description"
	ColumnDate        = "date"
	ColumnFileSize    = "filesize"
	ColumnVersion     = "version"
)

// Row is the stored form of a DictionaryInfo.
type Row struct {
	ID          string `toml:"id"`
	Locale      string `toml:"locale"`
	Filename    string `toml:"filename"`
	Description string `toml:"description"`

	// Date is the modification time of the file in seconds since the Unix
	// epoch or zero if it is unknown.
	Date int64 `toml:"date"`

	// FileSize is the size of the dictionary in bytes.
	FileSize int64 `toml:"filesize"`

	Version int `toml:"version"`
}

// Row returns the stored form of the dictionary info.
func (d *DictionaryInfo) Row() Row {
	var date int64
	if fi, err := os.Stat(d.addr.Path); err == nil {
		date = fi.ModTime().Unix()
	}
	return Row{
		ID:          d.id,
		Locale:      d.locale.String(),
		Filename:    d.addr.Path,
		Description: d.description,
		Date:        date,
		FileSize:    d.addr.Length,
		Version:     d.version,
	}
}

// Values returns the row keyed by column name.
func (r Row) Values() map[string]any {
	return map[string]any{
		ColumnID:          r.ID,
		ColumnLocale:      r.Locale,
		ColumnFilename:    r.Filename,
		ColumnDescription: r.Description,
		ColumnDate:        r.Date,
		ColumnFileSize:    r.FileSize,
		ColumnVersion:     r.Version,
	}
}
