// Copyright 2025 Tom Barlow
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

package commands

import (
	"github.com/spf13/cobra"

	"github.com/tombee/drybot/internal/catalog"
	"github.com/tombee/drybot/internal/config"
)

// NewTargetsCommand creates the targets command, which prints the demo
// target catalogue the wizard will offer.
func NewTargetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the demo target catalogue",
		RunE:  runTargets,
	}

	cmd.Flags().String("file", "", "Catalogue YAML file (default: configured path or built-in list)")

	return cmd
}

func runTargets(cmd *cobra.Command, args []string) error {
	path := stringFlag(cmd.Flags(), "file")
	if path == "" {
		cfg, err := config.Load(stringFlag(cmd.Flags(), "config"))
		if err != nil {
			return err
		}
		path = cfg.Catalog.Path
	}

	cat, err := catalog.New(path, nil)
	if err != nil {
		return err
	}

	for i, name := range cat.Names() {
		cmd.Printf("%d. %s\n", i+1, name)
	}
	return nil
}
