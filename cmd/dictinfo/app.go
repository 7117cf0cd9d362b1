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

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dictinfo/asset"
	"github.com/ianlewis/go-dictinfo/cache"
	"github.com/ianlewis/go-dictinfo/internal/config"
	"github.com/ianlewis/go-dictinfo/internal/logging"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrDictinfo is a parent error for all command errors.
var ErrDictinfo = errors.New("dictinfo")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrDictinfo)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// which is confusing for `dictinfo --help list`.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	default:
		return ExitCodeUnknownError
	}
}

// env holds the resources shared by commands.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	cache  *cache.Cache

	// assets is nil if no built-in dictionaries are configured.
	assets asset.Provider
}

// newEnv loads the configuration file and applies the global flags.
func newEnv(c *cli.Context) (*env, error) {
	cfg, path, exists, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictinfo, err)
	}

	if v := c.String("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if v := c.String("asset-dir"); v != "" {
		cfg.AssetDir = v
		cfg.AssetManifest = ""
	}
	if v := c.String("asset-manifest"); v != "" {
		cfg.AssetManifest = v
		cfg.AssetDir = ""
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictinfo, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	logger, err := logging.New(c.App.ErrWriter, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	logger.Debug("loaded configuration",
		slog.String("path", path),
		slog.Bool("exists", exists),
		slog.String("data_dir", cfg.DataDir))

	e := &env{
		cfg:    cfg,
		logger: logger,
		cache:  cache.New(cfg.DataDir, logger),
	}

	switch {
	case cfg.AssetManifest != "":
		b, err := asset.OpenBlob(cfg.AssetManifest)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDictinfo, err)
		}
		e.assets = b
	case cfg.AssetDir != "":
		e.assets = asset.NewDir(cfg.AssetDir)
	default:
		if dir, ok := findAssetDir(assetLocations()); ok {
			logger.Debug("using built-in dictionaries", slog.String("path", dir))
			e.assets = asset.NewDir(dir)
		}
	}

	return e, nil
}

// findAssetDir returns the first of dirs that is a directory.
func findAssetDir(dirs []string) (string, bool) {
	for _, dir := range dirs {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir, true
		}
	}
	return "", false
}

// requireArgs returns an error unless exactly n arguments were given.
func requireArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return fmt.Errorf("%w: %s: expected %d argument(s), got %d",
			ErrFlagParse, c.Command.Name, n, c.NArg())
	}
	return nil
}

func newDictinfoApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Inspect word list dictionaries.",
		Description: strings.Join([]string{
			"Lists the cached and built-in word list dictionaries and manages the cache.",
			"http://github.com/ianlewis/go-dictinfo",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				Value:   config.DefaultPath,
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "use `DIR` as the dictionary cache",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "asset-dir",
				Usage: "read built-in dictionaries from `DIR`",
			},
			&cli.StringFlag{
				Name:  "asset-manifest",
				Usage: "read built-in dictionaries from the blob described by `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log at `LEVEL` (debug, info, warn, error)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			listCommand,
			resolveCommand,
			pathCommand,
			escapeCommand,
			unescapeCommand,
			installCommand,
		},
	}
}
