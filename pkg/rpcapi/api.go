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

package rpcapi

import (
	"context"
)

// API is the contract-execution RPC service, consumed over the network.
//
// The functions follow the request/response pattern of the connector APIs,
// returning an ErrorReason alongside any error so callers can decide
// whether a failure is worth retrying.
type API interface {

	// SimulateTransaction dry-runs a transaction, returning its footprint, resource fee, auth entries and result
	SimulateTransaction(ctx context.Context, req *SimulateTransactionRequest) (*SimulateTransactionResponse, ErrorReason, error)

	// SendTransaction hands a signed envelope to the network, without waiting for it to be applied
	SendTransaction(ctx context.Context, req *SendTransactionRequest) (*SendTransactionResponse, ErrorReason, error)

	// GetTransaction reports the status of a previously sent transaction
	GetTransaction(ctx context.Context, req *GetTransactionRequest) (*GetTransactionResponse, ErrorReason, error)

	// GetLatestLedger returns the sequence of the most recent ledger known to the service
	GetLatestLedger(ctx context.Context, req *GetLatestLedgerRequest) (*GetLatestLedgerResponse, ErrorReason, error)

	// GetAccount loads the current sequence number and balance of an account
	GetAccount(ctx context.Context, req *GetAccountRequest) (*GetAccountResponse, ErrorReason, error)

	// GetNetwork returns the passphrase and protocol version of the network the service is attached to
	GetNetwork(ctx context.Context, req *GetNetworkRequest) (*GetNetworkResponse, ErrorReason, error)
}

// ErrorReason are a set of standard error conditions the RPC boundary can return
type ErrorReason string

const (
	// ErrorReasonInvalidInputs the request was rejected before reaching the network
	ErrorReasonInvalidInputs ErrorReason = "invalid_inputs"
	// ErrorReasonNotFound the requested account or transaction does not exist
	ErrorReasonNotFound ErrorReason = "not_found"
	// ErrorReasonRPCError the service returned a JSON-RPC error object
	ErrorReasonRPCError ErrorReason = "rpc_error"
	// ErrorReasonDownstreamDown the service could not be reached, or answered with a transport error
	ErrorReasonDownstreamDown ErrorReason = "downstream_down"
	// ErrorReasonInvalidResponse the service answered with something that could not be parsed
	ErrorReasonInvalidResponse ErrorReason = "invalid_response"
)

// Retryable reports whether a request failing with reason might succeed if sent again unchanged
func (r ErrorReason) Retryable() bool {
	return r == ErrorReasonDownstreamDown
}
