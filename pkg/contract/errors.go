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
	"errors"
)

// ErrorReason classifies a pipeline failure, so callers can decide whether
// and how to retry without parsing messages
type ErrorReason string

const (
	// ErrorReasonInvalidInputs the request was rejected locally, before any network call
	ErrorReasonInvalidInputs ErrorReason = "invalid_inputs"
	// ErrorReasonDecodeFailed an envelope or value failed to decode, or did not round trip
	ErrorReasonDecodeFailed ErrorReason = "decode_failed"
	// ErrorReasonSimulationFailed the dry run rejected the transaction, nothing was signed or spent
	ErrorReasonSimulationFailed ErrorReason = "simulation_failed"
	// ErrorReasonAuthorizationFailed an authorization entry is missing a signature, or its signer failed
	ErrorReasonAuthorizationFailed ErrorReason = "authorization_failed"
	// ErrorReasonSubmissionFailed the transaction could not be handed to the network
	ErrorReasonSubmissionFailed ErrorReason = "submission_failed"
	// ErrorReasonTransactionFailed the network executed the transaction and it failed, the fee is spent
	ErrorReasonTransactionFailed ErrorReason = "transaction_failed"
	// ErrorReasonStatusUnknown polling ended before a final status was observed
	ErrorReasonStatusUnknown ErrorReason = "status_unknown"
)

// Error carries the context a caller needs to decide on a retry. Err holds
// the localized message, and Cause the lower level error it was raised for.
// Both are reachable through errors.Is and errors.As.
type Error struct {
	Reason     ErrorReason
	Hash       string
	Status     string
	Diagnostic string
	Err        error
	Cause      error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Retryable reports whether submitting the same envelope again may succeed
func (e *Error) Retryable() bool {
	switch e.Reason {
	case ErrorReasonSubmissionFailed, ErrorReasonStatusUnknown:
		return e.Status != "ERROR"
	default:
		return false
	}
}

func newError(reason ErrorReason, err error) *Error {
	return &Error{Reason: reason, Err: err}
}

// ReasonOf returns the reason of a pipeline error, or an empty reason for
// any other error
func ReasonOf(err error) ErrorReason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
