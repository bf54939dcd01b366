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
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tombee/drybot/internal/config"
	"github.com/tombee/drybot/internal/daemon"
	"github.com/tombee/drybot/internal/log"
)

// NewRunCommand creates the run command, which starts the bot and
// blocks until interrupted.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the bot and serve the operator session",
		Long: `Connect to the Telegram Bot API with the configured token and serve
the single-operator wizard until interrupted. All sends are simulated;
nothing is ever delivered to the selected target.`,
		RunE: runRun,
	}

	cmd.Flags().String("token", "", "Bot API token (overrides config and DRYBOT_TELEGRAM_TOKEN)")
	cmd.Flags().Int64("owner", 0, "Telegram user ID of the operator (overrides config)")
	cmd.Flags().String("pid-file", "", "Path to PID file (overrides config)")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(stringFlag(cmd.Flags(), "config"))
	if err != nil {
		return err
	}

	// CLI flag overrides
	if token := stringFlag(cmd.Flags(), "token"); token != "" {
		cfg.Telegram.Token = token
	}
	if owner := int64Flag(cmd.Flags(), "owner"); owner != 0 {
		cfg.Telegram.OwnerID = owner
	}
	if pidFile := stringFlag(cmd.Flags(), "pid-file"); pidFile != "" {
		cfg.PIDFile = pidFile
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Config file values first, then environment overrides on top.
	logCfg := log.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = log.Format(cfg.Log.Format)
	logger := log.New(log.ApplyEnv(logCfg))
	slog.SetDefault(logger)

	logger.Info("starting drybot",
		slog.String("version", version),
		slog.String("token", log.SanitizeToken(cfg.Telegram.Token)),
		slog.Int64("owner_id", cfg.Telegram.OwnerID))

	d, err := daemon.New(cfg, daemon.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() { errCh <- d.Run(ctx) }()

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", slog.String("signal", sig.String()))
		cancel()
		return <-errCh
	case err := <-errCh:
		return err
	}
}
