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

// DefaultLabel is used when the operator submits a blank session label.
const DefaultLabel = "demo-session"

// Session is the single operator session's configuration record. It is
// owned by the transport handler and mutated only through the Machine.
type Session struct {
	// Authorized is set after the label step completes (simulated login).
	Authorized bool

	// Label is the operator-chosen session label.
	Label string

	// Step is the wizard's current position.
	Step Step

	// Mode is the selected send mode. Only "GC" is supported.
	Mode string

	// Targets holds the selected demo target names (zero or one entry).
	Targets []string

	// Messages is the parsed message pool for the dry-run engine.
	Messages []string

	// SendLimit bounds the simulated send count. Zero means unbounded.
	SendLimit int

	// DemoTargets is the catalogue snapshot taken when the mode was
	// chosen, so index picks stay stable across catalogue reloads.
	DemoTargets []string
}

// Reset clears the session back to its initial state.
func (s *Session) Reset() {
	*s = Session{}
}
