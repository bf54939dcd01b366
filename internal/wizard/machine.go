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

package wizard

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tombee/drybot/internal/payload"
)

// ErrNotLoggedIn is returned when send configuration is requested
// before the label step has completed.
var ErrNotLoggedIn = errors.New("wizard: not logged in")

// ResultKind classifies the outcome of feeding input to the machine.
type ResultKind int

const (
	// KindNone means the input was not consumed; no reply is owed.
	KindNone ResultKind = iota
	// KindLoggedIn means the label step completed.
	KindLoggedIn
	// KindCatalog means the mode was accepted and the catalogue should
	// be presented for an index pick.
	KindCatalog
	// KindTargetSelected means a valid index was picked; the payload
	// is requested next.
	KindTargetSelected
	// KindPayloadAccepted means the payload parsed to a non-empty pool;
	// the send count is requested next.
	KindPayloadAccepted
	// KindEngineStart means the wizard completed and the dry-run
	// engine should be started with the session's pool and limit.
	KindEngineStart
	// KindInvalidSelection means the index pick was out of range.
	KindInvalidSelection
	// KindEmptyPayload means the payload parsed to zero messages.
	KindEmptyPayload
)

// Result describes a state transition (or validation failure) and
// carries the data the transport needs to render a reply.
type Result struct {
	Kind ResultKind

	// Label is set for KindLoggedIn.
	Label string

	// Catalog is set for KindCatalog.
	Catalog []string

	// Target is set for KindTargetSelected.
	Target string

	// MessageCount is set for KindPayloadAccepted.
	MessageCount int

	// Limit and Messages are set for KindEngineStart.
	Limit    int
	Messages []string
}

// CatalogFunc supplies the demo catalogue. It is called each time the
// mode step completes so reloaded catalogues are picked up.
type CatalogFunc func() []string

// handler advances the session for one step's input.
type handler func(m *Machine, s *Session, text string) Result

// transitions is the step dispatch table. Steps without an entry
// ignore free text entirely.
var transitions = map[Step]handler{
	StepLabel:   (*Machine).handleLabel,
	StepMode:    (*Machine).handleMode,
	StepTarget:  (*Machine).handleTarget,
	StepPayload: (*Machine).handlePayload,
	StepCount:   (*Machine).handleCount,
}

// Machine drives the wizard. It holds no session state of its own.
type Machine struct {
	catalog CatalogFunc
}

// NewMachine creates a wizard machine backed by the given catalogue.
func NewMachine(catalog CatalogFunc) *Machine {
	return &Machine{catalog: catalog}
}

// Begin resets the session and enters the label step. Called for the
// login-start command.
func (m *Machine) Begin(s *Session) {
	s.Reset()
	s.Step = StepLabel
}

// Configure enters the mode step. Called for the configure-send
// command; requires a completed login.
func (m *Machine) Configure(s *Session) error {
	if !s.Authorized {
		return ErrNotLoggedIn
	}
	s.Step = StepMode
	return nil
}

// Handle feeds one free-text input to the current step. Unconsumed
// input returns a KindNone result and leaves the session untouched.
func (m *Machine) Handle(s *Session, text string) Result {
	h, ok := transitions[s.Step]
	if !ok {
		return Result{}
	}
	return h(m, s, strings.TrimSpace(text))
}

func (m *Machine) handleLabel(s *Session, text string) Result {
	s.Authorized = true
	s.Label = text
	if s.Label == "" {
		s.Label = DefaultLabel
	}
	s.Step = StepNone
	return Result{Kind: KindLoggedIn, Label: s.Label}
}

func (m *Machine) handleMode(s *Session, text string) Result {
	if !strings.EqualFold(text, "GC") {
		return Result{}
	}
	s.Mode = "GC"
	s.DemoTargets = m.catalog()
	s.Step = StepTarget
	return Result{Kind: KindCatalog, Catalog: append([]string(nil), s.DemoTargets...)}
}

func (m *Machine) handleTarget(s *Session, text string) Result {
	n, ok := parseIndex(text)
	if !ok {
		return Result{}
	}
	idx := n - 1
	if idx < 0 || idx >= len(s.DemoTargets) {
		return Result{Kind: KindInvalidSelection}
	}
	s.Targets = []string{s.DemoTargets[idx]}
	s.Step = StepPayload
	return Result{Kind: KindTargetSelected, Target: s.Targets[0]}
}

func (m *Machine) handlePayload(s *Session, text string) Result {
	messages := payload.Split(text)
	if len(messages) == 0 {
		return Result{Kind: KindEmptyPayload}
	}
	s.Messages = messages
	s.Step = StepCount
	return Result{Kind: KindPayloadAccepted, MessageCount: len(messages)}
}

func (m *Machine) handleCount(s *Session, text string) Result {
	n, ok := parseIndex(text)
	if !ok {
		return Result{}
	}
	s.SendLimit = n
	s.Step = StepNone
	return Result{
		Kind:     KindEngineStart,
		Limit:    s.SendLimit,
		Messages: append([]string(nil), s.Messages...),
	}
}

// parseIndex parses a string of ASCII digits. Signs, spaces, and empty
// strings are rejected, matching digit-only validation.
func parseIndex(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
