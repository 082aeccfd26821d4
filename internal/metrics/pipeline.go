// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var SimulationsTotal *prometheus.CounterVec
var SubmissionsTotal *prometheus.CounterVec
var PollAttempts prometheus.Histogram
var SubmissionDuration prometheus.Histogram

var MetricsSimulationsTotal = "ff_soroban_simulations_total"
var MetricsSubmissionsTotal = "ff_soroban_submissions_total"
var MetricsPollAttempts = "ff_soroban_poll_attempts"
var MetricsSubmissionDuration = "ff_soroban_submission_duration_seconds"

func InitPipelineMetrics() {
	SimulationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsSimulationsTotal,
		Help: "Number of transaction simulations, by outcome",
	}, []string{"outcome"})
	SubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsSubmissionsTotal,
		Help: "Number of submitted transactions, by terminal status",
	}, []string{"status"})
	PollAttempts = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricsPollAttempts,
		Help:    "Number of getTransaction checks before a submission reached a terminal status",
		Buckets: []float64{1, 2, 3, 5, 10, 20, 30, 50},
	})
	SubmissionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricsSubmissionDuration,
		Help:    "Time from sendTransaction to a terminal status",
		Buckets: prometheus.DefBuckets,
	})
}

func RegisterPipelineMetrics() {
	registry.MustRegister(SimulationsTotal)
	registry.MustRegister(SubmissionsTotal)
	registry.MustRegister(PollAttempts)
	registry.MustRegister(SubmissionDuration)
}
