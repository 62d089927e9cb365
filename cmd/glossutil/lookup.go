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

	"github.com/ianlewis/go-glossary"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up a glossary term",
	ArgsUsage: "TERM",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "prefix",
			Usage:   "list all terms starting with TERM",
			Aliases: []string{"p"},
		},
	},
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		term := c.Args().First()

		s, err := loadStore(c)
		if err != nil {
			return err
		}

		var entries []*glossary.Entry
		if c.Bool("prefix") {
			entries = s.PrefixSearch(term)
		} else if e, ok := s.Lookup(term); ok {
			entries = append(entries, e)
		}
		if len(entries) == 0 {
			return fmt.Errorf("%w: %q", ErrNotFound, term)
		}

		for _, e := range entries {
			fmt.Fprintln(c.App.Writer, e)
		}
		return nil
	},
}
