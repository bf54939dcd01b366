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

package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// updatesHandled tracks updates accepted from the owner
	updatesHandled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drybot_updates_handled_total",
			Help: "Total updates accepted from the authorized operator",
		},
	)

	// updatesIgnored tracks updates dropped by the owner gate
	updatesIgnored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drybot_updates_ignored_total",
			Help: "Total updates dropped by the owner gate",
		},
	)

	// repliesSent tracks replies successfully delivered
	repliesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drybot_replies_total",
			Help: "Total replies sent to the operator",
		},
	)
)
