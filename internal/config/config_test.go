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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
  owner_id: 42
  poll_timeout_seconds: 10
log:
  level: debug
  format: text
metrics:
  enabled: true
  addr: "127.0.0.1:9999"
catalog:
  path: /tmp/groups.yaml
  watch: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, int64(42), cfg.Telegram.OwnerID)
	assert.Equal(t, 10, cfg.Telegram.PollTimeoutSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9999", cfg.Metrics.Addr)
	assert.Equal(t, "/tmp/groups.yaml", cfg.Catalog.Path)
	assert.True(t, cfg.Catalog.Watch)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Telegram.PollTimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:9344", cfg.Metrics.Addr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DRYBOT_TELEGRAM_TOKEN", "456:def")
	t.Setenv("DRYBOT_OWNER_ID", "777")
	t.Setenv("DRYBOT_METRICS_ADDR", "0.0.0.0:9000")

	path := writeConfig(t, `
telegram:
  token: "file-token"
  owner_id: 1
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "456:def", cfg.Telegram.Token)
	assert.Equal(t, int64(777), cfg.Telegram.OwnerID)
	assert.Equal(t, "0.0.0.0:9000", cfg.Metrics.Addr)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "telegram: [not a map")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "complete",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.Telegram.Token = "" },
			wantErr: true,
		},
		{
			name:    "missing owner",
			mutate:  func(c *Config) { c.Telegram.OwnerID = 0 },
			wantErr: true,
		},
		{
			name:    "watch without path",
			mutate:  func(c *Config) { c.Catalog.Watch = true },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Telegram.Token = "123:abc"
			cfg.Telegram.OwnerID = 42
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
