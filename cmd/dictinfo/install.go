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
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dictinfo/asset"
	"github.com/ianlewis/go-dictinfo/dictid"
	"github.com/ianlewis/go-dictinfo/header"
)

var installCommand = &cli.Command{
	Name:      "install",
	Usage:     "copy a dictionary file into the cache",
	ArgsUsage: "ID LOCALE FILE",
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 3); err != nil {
			return err
		}
		id, localeTag, path := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)
		if _, ok := dictid.Category(id); !ok {
			return fmt.Errorf("%w: invalid dictionary id %q", ErrFlagParse, id)
		}
		e, err := newEnv(c)
		if err != nil {
			return err
		}

		addr, err := asset.FromFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDictinfo, err)
		}
		h, err := header.Read(addr)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDictinfo, err)
		}
		if h.ID != id {
			e.logger.Warn("dictionary id differs from its header",
				slog.String("id", id),
				slog.String("header_id", h.ID))
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDictinfo, err)
		}
		defer f.Close()

		dst, err := e.cache.Install(id, localeTag, f)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDictinfo, err)
		}
		_, err = fmt.Fprintln(c.App.Writer, dst)
		return err
	},
}
