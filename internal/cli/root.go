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

// Package cli assembles the drybot command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tombee/drybot/internal/commands"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	commands.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for drybot
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drybot",
		Short: "drybot - single-operator Telegram demo bot",
		Long: `drybot is a single-operator Telegram bot that walks through a short
configuration wizard and then runs a simulated send loop. It is a
dry-run demonstration: no message is ever delivered to a target.

Run 'drybot run' to start the bot.
Run 'drybot targets' to inspect the demo target catalogue.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // Errors are printed by main with proper exit codes
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/drybot/config.yaml)")

	cmd.AddCommand(
		commands.NewRunCommand(),
		commands.NewTargetsCommand(),
		commands.NewSplitCommand(),
		commands.NewVersionCommand(),
	)

	return cmd
}
