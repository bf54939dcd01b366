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

package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tombee/drybot/internal/log"
	"github.com/tombee/drybot/internal/wizard"
)

// handleMessage feeds free text (or an uploaded payload file) to the
// wizard and renders the outcome.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) string {
	text := msg.Text
	if b.session.Step == wizard.StepPayload && msg.Document != nil {
		raw, err := b.documentText(ctx, msg.Document)
		if err != nil {
			b.logger.Warn("payload file read failed", log.Error(err))
			return "Could not read the uploaded file. Try again or paste the text directly."
		}
		text = raw
	}

	res := b.machine.Handle(b.session, text)
	if res.Kind != wizard.KindNone {
		b.logger.Debug("wizard input handled",
			slog.String(log.StepKey, b.session.Step.String()),
			slog.Int(log.EventKey, int(res.Kind)))
	}

	switch res.Kind {
	case wizard.KindLoggedIn:
		return fmt.Sprintf("Logged in (demo)\nSession: %s", res.Label)

	case wizard.KindCatalog:
		lines := []string{
			"AVAILABLE GROUP CHATS (DEMO)",
			divider,
			"",
		}
		for i, name := range res.Catalog {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, name))
		}
		lines = append(lines, "", "Send group number (e.g. 1)")
		return strings.Join(lines, "\n")

	case wizard.KindTargetSelected:
		return strings.Join([]string{
			"MESSAGE INPUT",
			divider,
			"",
			"- Type messages separated by &",
			"- Or upload a .txt file",
		}, "\n")

	case wizard.KindPayloadAccepted:
		return strings.Join([]string{
			"SEND COUNT",
			divider,
			"",
			"- 0 = infinite",
			"- 10 = send 10",
			"",
			"Send a number:",
		}, "\n")

	case wizard.KindEngineStart:
		run := b.engine.Start(ctx, res.Messages, res.Limit)
		b.logger.Info("engine started",
			slog.String(log.RunIDKey, run.ID),
			slog.Int("limit", res.Limit))
		bound := "Limited"
		if res.Limit == 0 {
			bound = "Infinite"
		}
		return strings.Join([]string{
			"ENGINE LIVE (DEMO)",
			divider,
			"",
			"Speed: ULTRA (simulated)",
			fmt.Sprintf("Count: %d (%s)", res.Limit, bound),
			"",
			"Running...",
		}, "\n")

	case wizard.KindInvalidSelection:
		return "Invalid selection"

	case wizard.KindEmptyPayload:
		return "No messages found"

	default:
		return ""
	}
}
