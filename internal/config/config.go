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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the default location of the configuration file.
const DefaultPath = "~/.config/dictinfo/config.toml"

const (
	defaultDataDir  = "~/.local/share/dictinfo"
	defaultLogLevel = "info"
)

// ErrInvalid indicates an invalid configuration.
var ErrInvalid = errors.New("invalid configuration")

// Config is the dictinfo configuration.
type Config struct {
	// DataDir is the root of the dictionary cache.
	DataDir string `toml:"data_dir"`

	// AssetDir is a directory holding the built-in dictionaries, one file
	// each.
	AssetDir string `toml:"asset_dir"`

	// AssetManifest is the TOML manifest of a blob holding the built-in
	// dictionaries. It may not be set together with AssetDir.
	AssetManifest string `toml:"asset_manifest"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DataDir:  defaultDataDir,
		LogLevel: defaultLogLevel,
	}
}

// Load reads and validates the configuration file at path. If path is empty
// DefaultPath is used. A missing file yields the default configuration. Load
// returns the resolved path and whether the file exists.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolvePath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		f, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		d := toml.NewDecoder(f)
		d.DisallowUnknownFields()
		if err := d.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("%w: %s: %w", ErrInvalid, resolvedPath, err)
		}
	}

	if err := cfg.Normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolvePath(path string) (string, bool, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("%w: %s is a directory", ErrInvalid, expanded)
	}
	return expanded, true, nil
}

// Normalize expands the paths and lowercases the log level. Flag values
// applied after Load should be normalized again.
func (c *Config) Normalize() error {
	var err error
	if c.DataDir, err = ExpandPath(strings.TrimSpace(c.DataDir)); err != nil {
		return err
	}
	if c.AssetDir, err = ExpandPath(strings.TrimSpace(c.AssetDir)); err != nil {
		return err
	}
	if c.AssetManifest, err = ExpandPath(strings.TrimSpace(c.AssetManifest)); err != nil {
		return err
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	return nil
}

// ExpandPath expands a leading "~" or "~/" to the home directory and makes the
// path absolute. An empty path is returned as is. "~user" forms are rejected
// with ErrInvalid.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		switch {
		case pathValue == "~":
			pathValue = home
		case pathValue[1] == '/' || pathValue[1] == '\\':
			pathValue = filepath.Join(home, pathValue[2:])
		default:
			// Other users' home directories are not expanded.
			return "", fmt.Errorf("%w: unsupported path %q", ErrInvalid, pathValue)
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
