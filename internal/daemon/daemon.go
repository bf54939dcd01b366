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

// Package daemon wires the configured components into a running drybot
// process: Telegram transport, wizard bot, dry-run engine, catalogue
// watcher, metrics listener, and PID file.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tombee/drybot/internal/bot"
	"github.com/tombee/drybot/internal/catalog"
	"github.com/tombee/drybot/internal/config"
	"github.com/tombee/drybot/internal/engine"
	"github.com/tombee/drybot/internal/lifecycle"
	"github.com/tombee/drybot/internal/log"
)

// shutdownTimeout bounds the metrics server drain on exit.
const shutdownTimeout = 5 * time.Second

// Option customizes daemon construction.
type Option func(*Daemon)

// WithAPI injects a Telegram client. Used by tests; the default
// connects to the real Bot API with the configured token.
func WithAPI(api bot.API) Option {
	return func(d *Daemon) { d.api = api }
}

// WithLogger sets the daemon logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Daemon) { d.logger = logger }
}

// Daemon owns the lifecycle of a drybot process.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger

	api     bot.API
	bot     *bot.Bot
	engine  *engine.Engine
	catalog *catalog.Catalog
	watcher *catalog.Watcher
	metrics *http.Server
	pidFile *lifecycle.PIDFile
}

// New builds a daemon from validated configuration.
func New(cfg *config.Config, opts ...Option) (*Daemon, error) {
	d := &Daemon{cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	d.logger = log.WithComponent(d.logger, "daemon")

	if d.api == nil {
		api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			return nil, fmt.Errorf("connect to telegram: %w", err)
		}
		d.api = api
	}

	cat, err := catalog.New(cfg.Catalog.Path, d.logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	d.catalog = cat

	if cfg.Catalog.Watch {
		w, err := catalog.NewWatcher(cat, d.logger)
		if err != nil {
			return nil, fmt.Errorf("watch catalog: %w", err)
		}
		d.watcher = w
	}

	d.engine = engine.New(d.logger)
	d.bot = bot.New(d.api, bot.Config{
		OwnerID:     cfg.Telegram.OwnerID,
		PollTimeout: cfg.Telegram.PollTimeoutSeconds,
	}, cat, d.engine, d.logger)

	if cfg.PIDFile != "" {
		d.pidFile = lifecycle.NewPIDFile(cfg.PIDFile)
	}

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok\n"))
		})
		d.metrics = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return d, nil
}

// Run starts all components and blocks until the context is cancelled
// or the update stream ends. Components are torn down in reverse order
// on the way out.
func (d *Daemon) Run(ctx context.Context) error {
	if d.pidFile != nil {
		if err := d.pidFile.Create(); err != nil {
			return fmt.Errorf("create PID file: %w", err)
		}
		defer func() {
			if err := d.pidFile.Remove(); err != nil {
				d.logger.Warn("failed to remove PID file", log.Error(err))
			}
		}()
	}

	if d.watcher != nil {
		d.watcher.Start(ctx)
		defer func() {
			if err := d.watcher.Stop(); err != nil {
				d.logger.Warn("failed to stop catalog watcher", log.Error(err))
			}
		}()
	}

	if d.metrics != nil {
		go func() {
			d.logger.Info("metrics listener started", slog.String("addr", d.metrics.Addr))
			if err := d.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				d.logger.Error("metrics listener failed", log.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := d.metrics.Shutdown(shutdownCtx); err != nil {
				d.logger.Warn("metrics listener shutdown failed", log.Error(err))
			}
		}()
	}

	// Any run left behind by the update loop is halted on exit.
	defer d.engine.Stop()

	d.logger.Info("drybot started", slog.Int64("owner_id", d.cfg.Telegram.OwnerID))
	err := d.bot.Run(ctx)
	d.logger.Info("drybot stopped")
	return err
}
