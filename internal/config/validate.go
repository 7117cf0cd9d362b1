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
	"fmt"
	"slices"

	"github.com/ianlewis/go-dictinfo/internal/logging"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is required", ErrInvalid)
	}
	if c.AssetDir != "" && c.AssetManifest != "" {
		return fmt.Errorf("%w: asset_dir and asset_manifest are mutually exclusive", ErrInvalid)
	}
	if !slices.Contains(logging.Levels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q must be one of %v", ErrInvalid, c.LogLevel, logging.Levels)
	}
	return nil
}
