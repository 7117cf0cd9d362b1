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
	"strings"

	"github.com/k3a/html2text"
	"github.com/pelletier/go-toml/v2"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dictinfo"
)

// rowsDocument is the TOML document printed by "list --toml".
type rowsDocument struct {
	Dictionaries []dictinfo.Row `toml:"dictionary"`
}

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "list the available main dictionaries",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "toml",
			Usage:              "print the dictionaries as TOML",
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 0); err != nil {
			return err
		}
		e, err := newEnv(c)
		if err != nil {
			return err
		}

		infos, err := dictinfo.Discover(&dictinfo.Options{
			Cache:  e.cache,
			Assets: e.assets,
			Logger: e.logger,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDictinfo, err)
		}

		if c.Bool("toml") {
			return printRows(c, infos)
		}

		tbl := table.New("ID", "Locale", "Language", "Version", "Size", "Description").
			WithWriter(c.App.Writer)
		for _, info := range infos {
			tbl.AddRow(
				info.ID(),
				info.Locale().String(),
				info.Locale().DisplayName(),
				info.Version(),
				info.FileAddress().Length,
				plainText(info.Description()),
			)
		}
		tbl.Print()
		return nil
	},
}

func printRows(c *cli.Context, infos []*dictinfo.DictionaryInfo) error {
	doc := rowsDocument{
		Dictionaries: make([]dictinfo.Row, 0, len(infos)),
	}
	for _, info := range infos {
		doc.Dictionaries = append(doc.Dictionaries, info.Row())
	}

	b, err := toml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDictinfo, err)
	}
	if _, err := c.App.Writer.Write(b); err != nil {
		return fmt.Errorf("%w: %w", ErrDictinfo, err)
	}
	return nil
}

// plainText renders a description, which may contain HTML markup, as a single
// line of text.
func plainText(s string) string {
	return strings.Join(strings.Fields(html2text.HTML2Text(s)), " ")
}
