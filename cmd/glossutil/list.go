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
	"slices"

	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:         "list",
	Usage:        "List glossary terms",
	Description:  "List all terms and translations in the loaded glossaries.",
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		s, err := loadStore(c)
		if err != nil {
			return err
		}

		printEntries(c.App.Writer, slices.Collect(s.Entries()))
		return nil
	},
}
