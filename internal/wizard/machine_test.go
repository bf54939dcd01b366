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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []string {
	groups := make([]string, 10)
	for i := range groups {
		groups[i] = fmt.Sprintf("Group %d", i+1)
	}
	return groups
}

func newTestMachine() (*Machine, *Session) {
	return NewMachine(testCatalog), &Session{}
}

func TestHappyPath(t *testing.T) {
	m, s := newTestMachine()

	m.Begin(s)
	assert.Equal(t, StepLabel, s.Step)

	res := m.Handle(s, "my-session")
	assert.Equal(t, KindLoggedIn, res.Kind)
	assert.Equal(t, "my-session", res.Label)
	assert.True(t, s.Authorized)
	assert.Equal(t, StepNone, s.Step)

	require.NoError(t, m.Configure(s))
	assert.Equal(t, StepMode, s.Step)

	res = m.Handle(s, "gc")
	assert.Equal(t, KindCatalog, res.Kind)
	assert.Len(t, res.Catalog, 10)
	assert.Equal(t, StepTarget, s.Step)

	res = m.Handle(s, "3")
	assert.Equal(t, KindTargetSelected, res.Kind)
	assert.Equal(t, "Group 3", res.Target)
	assert.Equal(t, []string{"Group 3"}, s.Targets)
	assert.Equal(t, StepPayload, s.Step)

	res = m.Handle(s, "a & b and c")
	assert.Equal(t, KindPayloadAccepted, res.Kind)
	assert.Equal(t, 3, res.MessageCount)
	assert.Equal(t, []string{"a", "b", "c"}, s.Messages)
	assert.Equal(t, StepCount, s.Step)

	res = m.Handle(s, "10")
	assert.Equal(t, KindEngineStart, res.Kind)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, []string{"a", "b", "c"}, res.Messages)
	assert.Equal(t, StepNone, s.Step)
}

func TestBlankLabelUsesDefault(t *testing.T) {
	m, s := newTestMachine()
	m.Begin(s)

	res := m.Handle(s, "   ")
	assert.Equal(t, KindLoggedIn, res.Kind)
	assert.Equal(t, DefaultLabel, res.Label)
	assert.Equal(t, DefaultLabel, s.Label)
}

func TestConfigureRequiresLogin(t *testing.T) {
	m, s := newTestMachine()

	err := m.Configure(s)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, StepNone, s.Step)
}

func TestBeginResetsSession(t *testing.T) {
	m, s := newTestMachine()
	s.Authorized = true
	s.Label = "old"
	s.Messages = []string{"x"}
	s.SendLimit = 5

	m.Begin(s)

	assert.False(t, s.Authorized)
	assert.Empty(t, s.Label)
	assert.Empty(t, s.Messages)
	assert.Zero(t, s.SendLimit)
	assert.Equal(t, StepLabel, s.Step)
}

func TestModeStepIgnoresOtherInput(t *testing.T) {
	m, s := newTestMachine()
	m.Begin(s)
	m.Handle(s, "label")
	require.NoError(t, m.Configure(s))

	res := m.Handle(s, "DM")
	assert.Equal(t, KindNone, res.Kind)
	assert.Equal(t, StepMode, s.Step)
	assert.Empty(t, s.Mode)
}

func TestModeIsCaseInsensitive(t *testing.T) {
	for _, input := range []string{"GC", "gc", "Gc"} {
		t.Run(input, func(t *testing.T) {
			m, s := newTestMachine()
			m.Begin(s)
			m.Handle(s, "label")
			require.NoError(t, m.Configure(s))

			res := m.Handle(s, input)
			assert.Equal(t, KindCatalog, res.Kind)
			assert.Equal(t, "GC", s.Mode)
		})
	}
}

func advanceToTarget(t *testing.T, m *Machine, s *Session) {
	t.Helper()
	m.Begin(s)
	m.Handle(s, "label")
	require.NoError(t, m.Configure(s))
	res := m.Handle(s, "GC")
	require.Equal(t, KindCatalog, res.Kind)
}

func TestTargetSelection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind ResultKind
		wantStep Step
	}{
		{"valid index", "1", KindTargetSelected, StepPayload},
		{"last index", "10", KindTargetSelected, StepPayload},
		{"out of range", "11", KindInvalidSelection, StepTarget},
		{"zero", "0", KindInvalidSelection, StepTarget},
		{"not a number", "first", KindNone, StepTarget},
		{"negative", "-1", KindNone, StepTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, s := newTestMachine()
			advanceToTarget(t, m, s)

			res := m.Handle(s, tt.input)
			assert.Equal(t, tt.wantKind, res.Kind)
			assert.Equal(t, tt.wantStep, s.Step)
		})
	}
}

func TestEmptyPayloadRejected(t *testing.T) {
	m, s := newTestMachine()
	advanceToTarget(t, m, s)
	m.Handle(s, "1")

	res := m.Handle(s, "  & and &  ")
	assert.Equal(t, KindEmptyPayload, res.Kind)
	assert.Equal(t, StepPayload, s.Step)
	assert.Empty(t, s.Messages)
}

func TestCountStepIgnoresNonNumeric(t *testing.T) {
	m, s := newTestMachine()
	advanceToTarget(t, m, s)
	m.Handle(s, "1")
	m.Handle(s, "hello")

	for _, input := range []string{"ten", "-5", "1.5", ""} {
		res := m.Handle(s, input)
		assert.Equal(t, KindNone, res.Kind, "input %q", input)
		assert.Equal(t, StepCount, s.Step)
	}
}

func TestCountZeroMeansUnbounded(t *testing.T) {
	m, s := newTestMachine()
	advanceToTarget(t, m, s)
	m.Handle(s, "1")
	m.Handle(s, "hello")

	res := m.Handle(s, "0")
	assert.Equal(t, KindEngineStart, res.Kind)
	assert.Zero(t, res.Limit)
	assert.Zero(t, s.SendLimit)
}

func TestIdleIgnoresFreeText(t *testing.T) {
	m, s := newTestMachine()

	res := m.Handle(s, "anything")
	assert.Equal(t, KindNone, res.Kind)
	assert.Equal(t, Session{}, *s)
}

func TestCatalogSnapshotStableAcrossReload(t *testing.T) {
	names := []string{"One", "Two"}
	m := NewMachine(func() []string { return append([]string(nil), names...) })
	s := &Session{}

	m.Begin(s)
	m.Handle(s, "label")
	require.NoError(t, m.Configure(s))
	m.Handle(s, "GC")

	// A reload between presentation and pick must not change what the
	// shown indices refer to.
	names = []string{"Other"}
	res := m.Handle(s, "2")
	assert.Equal(t, KindTargetSelected, res.Kind)
	assert.Equal(t, "Two", res.Target)
}
