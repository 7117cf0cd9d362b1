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

// Package logging constructs the slog loggers used throughout the module.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/charmbracelet/log"
)

// FieldComponent is the attribute naming the component that logged a record.
const FieldComponent = "component"

// ErrInvalidLevel indicates an unknown log level name.
var ErrInvalidLevel = errors.New("invalid log level")

// Levels are the valid level names, from most to least verbose.
var Levels = []string{"debug", "info", "warn", "error"}

// New returns a logger writing human readable records to w. level must be one
// of Levels.
func New(w io.Writer, level string) (*slog.Logger, error) {
	if !slices.Contains(Levels, level) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "dictinfo",
	})
	return slog.New(handler), nil
}

// NewNop returns a logger that discards all records.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// Component returns a logger for the named component. A nil logger yields a
// no-op logger.
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, name))
}
