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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/internal/folding"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeLoadError is the exit code when no glossary could be loaded.
	ExitCodeLoadError

	// ExitCodeNotFound is the exit code when a looked up term is not found.
	ExitCodeNotFound

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrGlossutil is a parent error for all command errors.
var ErrGlossutil = errors.New("glossutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrGlossutil)

// ErrNotFound indicates that a term was not found in the glossary.
var ErrNotFound = fmt.Errorf("%w: not found", ErrGlossutil)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s
`,
		c.App.Name,
		versionInfo.GitVersion,
		strings.Join(copyrightNames, "\nCopyright (c) "),
		versionInfo.String(),
	)
	if err != nil {
		return fmt.Errorf("printing version: %w", err)
	}
	return nil
}

// loadOptions returns the glossary options set by the global flags.
func loadOptions(c *cli.Context) (*glossary.Options, error) {
	opts := &glossary.Options{
		Folder:     folding.Default,
		WholeWords: c.Bool("whole-words"),
	}

	if c.Bool("no-fold") {
		opts.Folder = folding.None
	}

	switch h := c.String("header"); h {
	case "auto":
		opts.Header = glossary.HeaderAuto
	case "yes":
		opts.Header = glossary.HeaderPresent
	case "no":
		opts.Header = glossary.HeaderAbsent
	default:
		return nil, fmt.Errorf("%w: invalid header mode %q", ErrFlagParse, h)
	}

	switch m := c.String("merge"); m {
	case "merge":
		opts.Merge = glossary.MergeTranslations
	case "last":
		opts.Merge = glossary.LastWins
	default:
		return nil, fmt.Errorf("%w: invalid merge policy %q", ErrFlagParse, m)
	}

	return opts, nil
}

// glossaryPaths returns the glossary files and directories given by the
// --glossary flag. Default locations that do not exist are ignored.
func glossaryPaths(c *cli.Context) ([]string, error) {
	var paths []string
	for _, p := range c.StringSlice("glossary") {
		if _, err := os.Stat(p); err != nil && !c.IsSet("glossary") {
			continue
		}
		// Missing files are reported by the load.
		paths = append(paths, p)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no glossary files found", glossary.ErrNotLoaded)
	}
	return paths, nil
}

// selectGlossary returns the part of s loaded from the glossary chosen with
// the --lang flag, or s if no glossary was chosen.
func selectGlossary(c *cli.Context, s *glossary.Store) (*glossary.Store, error) {
	name := c.String("lang")
	if name == "" {
		return s, nil
	}

	g, ok := s.Glossary(name)
	if !ok {
		return nil, fmt.Errorf("%w: no glossary named %q", glossary.ErrNotLoaded, name)
	}
	return g, nil
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func warn(c *cli.Context, err error) {
	if c.Bool("quiet") {
		return
	}
	fmt.Fprintf(c.App.ErrWriter, "%s: warning: %v\n", c.App.Name, err)
}

// loadHolder loads the glossary files given by the global flags.
func loadHolder(c *cli.Context) (*glossary.Holder, error) {
	opts, err := loadOptions(c)
	if err != nil {
		return nil, err
	}

	paths, err := glossaryPaths(c)
	if err != nil {
		return nil, err
	}

	h := glossary.NewHolder(opts)
	warnings, err := h.Load(paths)
	for _, w := range warnings {
		warn(c, w)
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

// loadStore loads the glossary files given by the global flags and returns
// the glossary selected with --lang.
func loadStore(c *cli.Context) (*glossary.Store, error) {
	h, err := loadHolder(c)
	if err != nil {
		return nil, err
	}
	return selectGlossary(c, h.Store())
}

func newGlossutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Find glossary terms in text.",
		Description: strings.Join([]string{
			"Glossary term search utility written in Go.",
			"http://github.com/ianlewis/go-glossary",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "glossary",
				Usage:   "load glossary files from `PATH` (a file or directory)",
				Aliases: []string{"g"},
				EnvVars: []string{"GLOSSUTIL_GLOSSARY"},
				Value:   cli.NewStringSlice(glossaryLocations()...),
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "use only the glossary `NAME` (its file name without extension, e.g. en)",
				Aliases: []string{"l"},
				EnvVars: []string{"GLOSSUTIL_LANG"},
			},
			&cli.StringFlag{
				Name:    "header",
				Usage:   "header row `MODE` (auto, yes, no)",
				EnvVars: []string{"GLOSSUTIL_HEADER"},
				Value:   "auto",
			},
			&cli.StringFlag{
				Name:    "merge",
				Usage:   "duplicate term `POLICY` (merge, last)",
				EnvVars: []string{"GLOSSUTIL_MERGE"},
				Value:   "merge",
			},
			&cli.BoolFlag{
				Name:    "whole-words",
				Usage:   "do not match inside words of space delimited scripts",
				Aliases: []string{"w"},
				EnvVars: []string{"GLOSSUTIL_WHOLE_WORDS"},
			},
			&cli.BoolFlag{
				Name:  "no-fold",
				Usage: "match case and character width exactly",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Usage:   "do not print warnings",
				Aliases: []string{"q"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		Reader:          os.Stdin,
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		OnUsageError:    onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			scanCommand,
			lookupCommand,
			listCommand,
			infoCommand,
			interactiveCommand,
		},
	}
}
