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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tombee/drybot/internal/log"
	"github.com/tombee/drybot/internal/wizard"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━"

// handleCommand dispatches the recognized commands. Anything else is
// fed to the wizard as plain text, matching how a free-form "/foo"
// behaves mid-step.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) string {
	switch msg.Command() {
	case "start":
		b.machine.Begin(b.session)
		b.logger.Info("session reset", slog.String(log.StepKey, b.session.Step.String()))
		return strings.Join([]string{
			"DEMO BOT ONLINE",
			divider,
			"",
			"Login (simulated)",
			"Send any text as a session label.",
			"",
			"This is a dry-run demo.",
			"No external messages are sent.",
		}, "\n")

	case "attack":
		if err := b.machine.Configure(b.session); err != nil {
			if errors.Is(err, wizard.ErrNotLoggedIn) {
				return "Login first with /start"
			}
			b.logger.Error("configure failed", log.Error(err))
			return ""
		}
		return strings.Join([]string{
			"SEND ENGINE SETUP",
			divider,
			"",
			"Destination",
			"Reply with: GC",
		}, "\n")

	case "stop":
		stopped := b.engine.Stop()
		b.logger.Info("stop requested", slog.Bool("was_running", stopped))
		return strings.Join([]string{
			"ENGINE HALTED",
			divider,
			"",
			"Simulation stopped.",
			"You can restart with /attack.",
		}, "\n")

	case "status":
		return b.renderStatus()

	case "help":
		return strings.Join([]string{
			"COMMAND CENTER",
			divider,
			"",
			"/start  - Begin demo login",
			"/attack - Configure send flow",
			"/stop   - Stop engine",
			"/status - View status",
			"/help   - This help",
			"",
			"Dry-run only. Safe demo.",
		}, "\n")

	default:
		return b.handleMessage(ctx, msg)
	}
}

// renderStatus snapshots the session and engine into the dashboard.
func (b *Bot) renderStatus() string {
	st := b.engine.Status()
	state := "IDLE"
	if st.Running {
		state = "RUNNING"
	}

	return strings.Join([]string{
		"ENGINE DASHBOARD",
		divider,
		"",
		fmt.Sprintf("Logged in   : %t", b.session.Authorized),
		fmt.Sprintf("Mode        : %s", b.session.Mode),
		fmt.Sprintf("Targets     : %d", len(b.session.Targets)),
		fmt.Sprintf("Messages    : %d", len(b.session.Messages)),
		fmt.Sprintf("Count       : %d (0 = infinite)", b.session.SendLimit),
		fmt.Sprintf("Sent (demo) : %d", st.Sent),
		fmt.Sprintf("Uptime      : %ds", st.Uptime()),
		fmt.Sprintf("State       : %s", state),
	}, "\n")
}
