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

// Package bot adapts Telegram updates onto the wizard and the dry-run
// engine. It owns the single operator session and produces at most one
// reply per handled update.
package bot

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tombee/drybot/internal/catalog"
	"github.com/tombee/drybot/internal/engine"
	"github.com/tombee/drybot/internal/log"
	"github.com/tombee/drybot/internal/wizard"
)

// API is the slice of the Telegram client the bot depends on.
// *tgbotapi.BotAPI satisfies it.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Config holds transport settings.
type Config struct {
	// OwnerID is the only Telegram user the bot responds to.
	OwnerID int64

	// PollTimeout is the long-polling timeout in seconds.
	PollTimeout int
}

// Bot routes updates from a single authorized operator through the
// wizard and engine.
type Bot struct {
	api     API
	cfg     Config
	machine *wizard.Machine
	session *wizard.Session
	engine  *engine.Engine
	logger  *slog.Logger
	client  *http.Client
}

// New creates a bot. The catalogue is consulted each time the mode step
// completes, so file-backed catalogues stay current.
func New(api API, cfg Config, cat *catalog.Catalog, eng *engine.Engine, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		api:     api,
		cfg:     cfg,
		machine: wizard.NewMachine(cat.Names),
		session: &wizard.Session{},
		engine:  eng,
		logger:  log.WithComponent(logger, "bot"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Run consumes updates until the context is cancelled or the update
// channel closes.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.PollTimeout

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("update loop started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("update loop stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				b.logger.Info("update channel closed")
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate processes one inbound update. Updates without a message
// or from anyone but the owner are dropped without a reply.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	from := update.SentFrom()
	if from == nil || from.ID != b.cfg.OwnerID {
		updatesIgnored.Inc()
		return
	}
	updatesHandled.Inc()

	var reply string
	if msg.IsCommand() {
		reply = b.handleCommand(ctx, msg)
	} else {
		reply = b.handleMessage(ctx, msg)
	}
	if reply == "" {
		return
	}
	b.reply(msg.Chat.ID, reply)
}

// reply sends a single text reply.
func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error("failed to send reply",
			slog.Int64(log.ChatIDKey, chatID),
			log.Error(err))
		return
	}
	repliesSent.Inc()
}
