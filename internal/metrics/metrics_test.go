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
	"context"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-soroban/internal/sbconfig"
	"github.com/stretchr/testify/assert"
)

func newTestMetricsManager(t *testing.T, enabled bool) (*metricsManager, func()) {
	sbconfig.Reset()
	config.Set(sbconfig.MetricsEnabled, enabled)
	Clear()
	ctx, cancel := context.WithCancel(context.Background())
	mmi := NewMetricsManager(ctx)
	mm := mmi.(*metricsManager)
	assert.Equal(t, enabled, mm.IsMetricsEnabled())
	assert.Empty(t, mm.timeMap)
	return mm, cancel
}

func counterValue(t *testing.T, name, label string) float64 {
	mfs, err := Registry().Gather()
	assert.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetValue() == label {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func histogramCount(t *testing.T, name string) uint64 {
	mfs, err := Registry().Gather()
	assert.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == name && len(mf.GetMetric()) > 0 {
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	return 0
}

func TestRegistryIdempotent(t *testing.T) {
	Clear()
	r := Registry()
	assert.Same(t, r, Registry())
	Clear()
	assert.NotSame(t, r, Registry())
}

func TestSimulationOutcome(t *testing.T) {
	ctx := context.Background()
	mm, cancel := newTestMetricsManager(t, true)
	defer cancel()

	mm.SimulationOutcome(ctx, "success")
	mm.SimulationOutcome(ctx, "success")
	mm.SimulationOutcome(ctx, "restore_required")
	assert.Equal(t, float64(2), counterValue(t, MetricsSimulationsTotal, "success"))
	assert.Equal(t, float64(1), counterValue(t, MetricsSimulationsTotal, "restore_required"))
}

func TestSubmissionLifecycle(t *testing.T) {
	ctx := context.Background()
	mm, cancel := newTestMetricsManager(t, true)
	defer cancel()

	mm.SubmissionStarted(ctx, "aabb")
	assert.Len(t, mm.timeMap, 1)
	mm.SubmissionFinished(ctx, "aabb", "SUCCESS", 3)
	assert.Empty(t, mm.timeMap)
	assert.Equal(t, float64(1), counterValue(t, MetricsSubmissionsTotal, "SUCCESS"))
	assert.Equal(t, uint64(1), histogramCount(t, MetricsPollAttempts))
	assert.Equal(t, uint64(1), histogramCount(t, MetricsSubmissionDuration))

	// Finishing without a start still counts the status
	mm.SubmissionFinished(ctx, "ccdd", "FAILED", 0)
	assert.Equal(t, float64(1), counterValue(t, MetricsSubmissionsTotal, "FAILED"))
}

func TestMetricsDisabled(t *testing.T) {
	ctx := context.Background()
	mm, cancel := newTestMetricsManager(t, false)
	defer cancel()

	mm.SimulationOutcome(ctx, "success")
	mm.SubmissionStarted(ctx, "aabb")
	mm.SubmissionFinished(ctx, "aabb", "SUCCESS", 1)
	assert.Empty(t, mm.timeMap)
}
