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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dictinfo"
	"github.com/ianlewis/go-dictinfo/dictid"
	"github.com/ianlewis/go-dictinfo/locale"
)

var resolveCommand = &cli.Command{
	Name:      "resolve",
	Usage:     "print the built-in main dictionary used for a locale",
	ArgsUsage: "LOCALE",
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		e, err := newEnv(c)
		if err != nil {
			return err
		}

		name := dictinfo.DefaultMainDictionary
		if e.assets != nil {
			name = dictinfo.MainDictionaryName(e.assets, locale.Parse(c.Args().First()))
		}
		_, err = fmt.Fprintln(c.App.Writer, name)
		return err
	},
}

var pathCommand = &cli.Command{
	Name:      "path",
	Usage:     "print the cache file name of a dictionary",
	ArgsUsage: "ID LOCALE",
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 2); err != nil {
			return err
		}
		id := c.Args().Get(0)
		if _, ok := dictid.Category(id); !ok {
			return fmt.Errorf("%w: invalid dictionary id %q", ErrFlagParse, id)
		}
		e, err := newEnv(c)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.App.Writer, e.cache.FileName(id, c.Args().Get(1)))
		return err
	},
}
