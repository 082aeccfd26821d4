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

package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorRetryable(t *testing.T) {
	assert.True(t, (&Error{Reason: ErrorReasonSubmissionFailed, Status: "TRY_AGAIN_LATER"}).Retryable())
	assert.True(t, (&Error{Reason: ErrorReasonStatusUnknown}).Retryable())
	assert.False(t, (&Error{Reason: ErrorReasonSubmissionFailed, Status: "ERROR"}).Retryable())
	assert.False(t, (&Error{Reason: ErrorReasonTransactionFailed}).Retryable())
	assert.False(t, (&Error{Reason: ErrorReasonSimulationFailed}).Retryable())
}

func TestErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", newError(ErrorReasonDecodeFailed, assert.AnError))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, ErrorReasonDecodeFailed, ReasonOf(err))
	assert.Regexp(t, "outer: "+assert.AnError.Error(), err)
	assert.Empty(t, ReasonOf(assert.AnError))
}

func TestErrorUnwrapCause(t *testing.T) {
	msg := fmt.Errorf("simulation failed: %s", assert.AnError)
	err := &Error{Reason: ErrorReasonSimulationFailed, Err: msg, Cause: assert.AnError}
	assert.ErrorIs(t, err, msg)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, msg.Error(), err.Error())

	noCause := &Error{Reason: ErrorReasonSimulationFailed, Err: msg}
	assert.ErrorIs(t, noCause, msg)
	assert.NotErrorIs(t, noCause, assert.AnError)
}
