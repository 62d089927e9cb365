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
	"io"
	"os"
	"strings"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary"
)

var scanCommand = &cli.Command{
	Name:      "scan",
	Usage:     "Find glossary terms in text",
	ArgsUsage: "[FILE]",
	Description: strings.Join([]string{
		"Scan FILE for glossary terms. If FILE is omitted or -, text is read",
		"from standard input.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "html",
			Usage: "treat the input as HTML and scan its text",
		},
		&cli.BoolFlag{
			Name:  "highlight",
			Usage: "print the text with matched terms in brackets",
		},
		&cli.BoolFlag{
			Name:    "translate",
			Usage:   "with --highlight, print translations after matched terms",
			Aliases: []string{"t"},
		},
		&cli.BoolFlag{
			Name:    "unique",
			Usage:   "list each matched term once",
			Aliases: []string{"u"},
		},
	},
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		text, err := readText(c, c.Args().First())
		if err != nil {
			return err
		}

		s, err := loadStore(c)
		if err != nil {
			return err
		}

		matches, err := glossary.Scan(text, s)
		if err != nil {
			return fmt.Errorf("scanning: %w", err)
		}

		if c.Bool("highlight") {
			mark := glossary.Bracket("[", "]")
			if c.Bool("translate") {
				mark = func(m *glossary.Match, matched string) string {
					return "[" + matched + "](" + strings.Join(m.Translations, ", ") + ")"
				}
			}
			fmt.Fprintln(c.App.Writer, glossary.Highlight(text, matches, mark))
			return nil
		}

		if c.Bool("unique") {
			matches = unique(matches)
		}
		printMatches(c.App.Writer, matches)
		return nil
	},
}

// readText reads the text to scan from the named file or standard input.
func readText(c *cli.Context, name string) (string, error) {
	var b []byte
	var err error
	if name == "" || name == "-" {
		b, err = io.ReadAll(c.App.Reader)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	text := string(b)
	if c.Bool("html") {
		text = html2text.HTML2Text(text)
	}
	return text, nil
}
