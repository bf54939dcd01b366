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

// Package catalog provides the demo group-chat catalogue offered during
// target selection. Names are illustrative only; they are never real
// recipients.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned when a catalogue file parses to no entries.
var ErrEmptyCatalog = errors.New("catalog: no groups defined")

// defaults is the built-in demo catalogue.
var defaults = []string{
	"Weekend Hikers 🏔️",
	"Book Club Banter 📚",
	"Market Signals 📈",
	"Crypto Talk 💎",
	"Gaming Squad 🎮",
	"Misfits Boxing 🥊",
	"Design Critique ✍️",
	"Music Drops 🎵",
	"Startup Founders 🚀",
	"Late-Night Chat 🌙",
}

// Default returns a copy of the built-in demo catalogue.
func Default() []string {
	return append([]string(nil), defaults...)
}

// file is the on-disk catalogue format.
type file struct {
	Groups []string `yaml:"groups"`
}

// LoadFile reads a catalogue file. Blank entries are dropped; a file
// with no usable entries is an error.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	var groups []string
	for _, g := range f.Groups {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		return nil, ErrEmptyCatalog
	}
	return groups, nil
}

// Catalog holds the current set of demo group names. It starts with the
// built-in defaults and may be overridden from a file, optionally
// reloaded by a Watcher.
type Catalog struct {
	mu     sync.RWMutex
	names  []string
	path   string
	logger *slog.Logger
}

// New creates a catalogue with the built-in defaults. If path is
// non-empty the file is loaded immediately; a load failure keeps the
// defaults and is returned so callers can decide whether to proceed.
func New(path string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{
		names:  Default(),
		path:   path,
		logger: logger.With(slog.String("component", "catalog")),
	}
	if path == "" {
		return c, nil
	}
	if err := c.Reload(); err != nil {
		return c, err
	}
	return c, nil
}

// Names returns a copy of the current catalogue.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.names...)
}

// Reload re-reads the catalogue file. On failure the previous catalogue
// is kept unchanged.
func (c *Catalog) Reload() error {
	if c.path == "" {
		return nil
	}
	groups, err := LoadFile(c.path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.names = groups
	c.mu.Unlock()

	c.logger.Info("catalog loaded",
		slog.String("path", c.path),
		slog.Int("groups", len(groups)))
	return nil
}
