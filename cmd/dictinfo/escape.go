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

	"github.com/ianlewis/go-dictinfo/escape"
)

var escapeCommand = &cli.Command{
	Name:      "escape",
	Usage:     "escape a string for use as a file name",
	ArgsUsage: "STRING",
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		_, err := fmt.Fprintln(c.App.Writer, escape.Encode(c.Args().First()))
		return err
	},
}

var unescapeCommand = &cli.Command{
	Name:      "unescape",
	Usage:     "decode an escaped file name",
	ArgsUsage: "NAME",
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		s, err := escape.Decode(c.Args().First())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDictinfo, err)
		}
		_, err = fmt.Fprintln(c.App.Writer, s)
		return err
	},
}
