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

// Package wizard implements the linear configuration flow that collects
// a session label, send mode, demo target, message payload, and send
// count before the dry-run engine is started. The machine is pure: it
// consumes text input and returns typed results, leaving all transport
// and formatting concerns to the caller.
package wizard

// Step identifies the wizard's current input step.
type Step int

const (
	// StepNone means the wizard is idle; free text is not consumed.
	StepNone Step = iota
	// StepLabel awaits the operator's session label.
	StepLabel
	// StepMode awaits the send mode keyword.
	StepMode
	// StepTarget awaits a numeric index into the demo catalogue.
	StepTarget
	// StepPayload awaits the message payload (text or uploaded file).
	StepPayload
	// StepCount awaits the send count.
	StepCount
)

// String returns the step name for logging.
func (s Step) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepLabel:
		return "awaiting_label"
	case StepMode:
		return "awaiting_mode"
	case StepTarget:
		return "awaiting_target"
	case StepPayload:
		return "awaiting_payload"
	case StepCount:
		return "awaiting_count"
	default:
		return "unknown"
	}
}
