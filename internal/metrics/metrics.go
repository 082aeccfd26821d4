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
	"sync"
	"time"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-soroban/internal/sbconfig"
)

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
	timeMux        sync.Mutex
	timeMap        map[string]time.Time
}

func NewMetricsManager(ctx context.Context) Metrics {
	mm := &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(sbconfig.MetricsEnabled),
		timeMap:        make(map[string]time.Time),
	}
	if mm.metricsEnabled {
		// Ensure the collectors exist before the first emit
		Registry()
	}
	return mm
}

type Metrics interface {
	IsMetricsEnabled() bool

	SimulationOutcome(ctx context.Context, outcome string)
	SubmissionStarted(ctx context.Context, hash string)
	SubmissionFinished(ctx context.Context, hash string, status string, pollAttempts int)
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

func (mm *metricsManager) SimulationOutcome(ctx context.Context, outcome string) {
	if mm.metricsEnabled {
		SimulationsTotal.WithLabelValues(outcome).Inc()
		log.L(ctx).Tracef("Simulation outcome %s", outcome)
	}
}

func (mm *metricsManager) SubmissionStarted(_ context.Context, hash string) {
	if mm.metricsEnabled {
		mm.timeMux.Lock()
		defer mm.timeMux.Unlock()
		mm.timeMap[hash] = time.Now()
	}
}

func (mm *metricsManager) SubmissionFinished(_ context.Context, hash string, status string, pollAttempts int) {
	if !mm.metricsEnabled {
		return
	}
	SubmissionsTotal.WithLabelValues(status).Inc()
	if pollAttempts > 0 {
		PollAttempts.Observe(float64(pollAttempts))
	}
	mm.timeMux.Lock()
	defer mm.timeMux.Unlock()
	if started, ok := mm.timeMap[hash]; ok {
		SubmissionDuration.Observe(time.Since(started).Seconds())
		delete(mm.timeMap, hash)
	}
}
