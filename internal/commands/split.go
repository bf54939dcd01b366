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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombee/drybot/internal/payload"
)

// NewSplitCommand creates the split command, a local preview of how a
// payload will be divided into messages.
func NewSplitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split [text]",
		Short: "Preview how a payload splits into messages",
		Long: `Split a payload the same way the message input step does: on "&"
(including unicode ampersand variants) and on the standalone word "and".
Reads from stdin when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSplit,
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = payload.Decode(data)
	}

	messages := payload.Split(text)
	if len(messages) == 0 {
		return fmt.Errorf("no messages found in payload")
	}

	for i, m := range messages {
		cmd.Printf("%d: %s\n", i+1, m)
	}
	return nil
}
