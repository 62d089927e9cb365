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
	"bufio"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary"
)

var interactiveCommand = &cli.Command{
	Name:    "interactive",
	Aliases: []string{"i"},
	Usage:   "Scan lines of text interactively",
	Description: strings.Join([]string{
		"Read lines from standard input and list the glossary terms found in",
		"each line. Enter :reload to load the glossary files again or :quit to",
		"exit. Directories are searched for glossary files again on reload. If",
		"a reload fails the previous glossary stays in use.",
	}, "\n"),
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		h, err := loadHolder(c)
		if err != nil {
			return err
		}
		if _, err := selectGlossary(c, h.Store()); err != nil {
			return err
		}
		printLoaded(c, h.Store())

		s := bufio.NewScanner(c.App.Reader)
		for {
			fmt.Fprint(c.App.Writer, "> ")
			if !s.Scan() {
				break
			}

			line := s.Text()
			switch strings.TrimSpace(line) {
			case "":
				continue
			case ":quit", ":q":
				return nil
			case ":reload":
				warnings, err := h.Reload()
				for _, w := range warnings {
					warn(c, w)
				}
				if err != nil {
					fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", c.App.Name, err)
					continue
				}
				printLoaded(c, h.Store())
				continue
			}

			st, err := selectGlossary(c, h.Store())
			if err != nil {
				fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", c.App.Name, err)
				continue
			}
			matches, err := glossary.Scan(line, st)
			if err != nil {
				return fmt.Errorf("scanning: %w", err)
			}
			printMatches(c.App.Writer, matches)
		}
		fmt.Fprintln(c.App.Writer)

		if err := s.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		return nil
	},
}

// printLoaded prints the number of loaded terms and the loaded glossaries.
func printLoaded(c *cli.Context, s *glossary.Store) {
	fmt.Fprintf(c.App.Writer, "loaded %d terms\n", s.Len())
	printGlossaries(c.App.Writer, s.Glossaries())
}
