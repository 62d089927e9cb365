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
	"github.com/urfave/cli/v2"
)

var infoCommand = &cli.Command{
	Name:         "info",
	Usage:        "Show the loaded glossaries",
	Description:  "Show the number of terms and the files of each loaded glossary.",
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		h, err := loadHolder(c)
		if err != nil {
			return err
		}

		printGlossaries(c.App.Writer, h.Store().Glossaries())
		return nil
	},
}
