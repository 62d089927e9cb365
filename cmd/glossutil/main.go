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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary"
)

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, glossary.ErrLoad), errors.Is(err, glossary.ErrNotLoaded):
		return ExitCodeLoadError
	case errors.Is(err, ErrNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeUnknownError
	}
}

// run runs the app and returns the exit code.
func run(app *cli.App, args []string) int {
	err := app.Run(args)
	if err != nil {
		fmt.Fprintf(app.ErrWriter, "%s: %v\n", app.Name, err)
	}
	return exitCode(err)
}

func main() {
	// Configuration may also be given in a .env file in the working
	// directory. Variables already set in the environment take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "%s: loading .env: %v\n", filepath.Base(os.Args[0]), err)
		os.Exit(ExitCodeUnknownError)
	}

	os.Exit(run(newGlossutilApp(), os.Args))
}
