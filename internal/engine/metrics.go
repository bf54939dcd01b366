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

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// runsStarted tracks total dry-run executions started
	runsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drybot_engine_runs_total",
			Help: "Total dry-run executions started",
		},
	)

	// simulatedSends tracks total simulated send iterations
	simulatedSends = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drybot_engine_simulated_sends_total",
			Help: "Total simulated sends across all runs",
		},
	)

	// engineRunning reflects whether a dry-run loop is currently active
	engineRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drybot_engine_running",
			Help: "1 while a dry-run loop is active, 0 otherwise",
		},
	)
)
