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
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

type ResourceConfig struct {
	InstructionLeeway uint64 `json:"instructionLeeway"`
}

// SimulateTransactionRequest carries a base64 envelope. Signatures are
// ignored by the service, so an unsigned envelope is normal here.
type SimulateTransactionRequest struct {
	Transaction    string          `json:"transaction"`
	ResourceConfig *ResourceConfig `json:"resourceConfig,omitempty"`
}

// SimulateHostFunctionResult is the outcome of the single host function
type SimulateHostFunctionResult struct {
	Auth   []xdr.SorobanAuthorizationEntry
	Retval xdr.ScVal
}

// RestorePreamble is returned when the footprint touches archived entries,
// and describes the RestoreFootprint transaction that must go first
type RestorePreamble struct {
	TransactionData xdr.SorobanTransactionData
	MinResourceFee  int64
}

type SimulateTransactionResponse struct {
	LatestLedger    uint32
	MinResourceFee  int64
	TransactionData *xdr.SorobanTransactionData
	Results         []SimulateHostFunctionResult
	// Events are base64 DiagnosticEvents, kept for error reporting
	Events          []string
	Error           string
	RestorePreamble *RestorePreamble
}

// Failed reports whether the simulation itself rejected the transaction
func (r *SimulateTransactionResponse) Failed() bool {
	return r.Error != ""
}

type SendTransactionStatus string

const (
	SendTransactionStatusPending       SendTransactionStatus = "PENDING"
	SendTransactionStatusDuplicate     SendTransactionStatus = "DUPLICATE"
	SendTransactionStatusTryAgainLater SendTransactionStatus = "TRY_AGAIN_LATER"
	SendTransactionStatusError         SendTransactionStatus = "ERROR"
)

type SendTransactionRequest struct {
	Transaction string `json:"transaction"`
}

type SendTransactionResponse struct {
	Hash                  string
	Status                SendTransactionStatus
	LatestLedger          uint32
	LatestLedgerCloseTime int64
	// ErrorResultXdr is the base64 TransactionResult when Status is ERROR
	ErrorResultXdr      string
	ErrorResult         *xdr.TransactionResultHeader
	DiagnosticEventsXdr []string
}

type TransactionStatus string

const (
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusFailed   TransactionStatus = "FAILED"
	TransactionStatusNotFound TransactionStatus = "NOT_FOUND"
)

type GetTransactionRequest struct {
	Hash string `json:"hash"`
}

type GetTransactionResponse struct {
	Status           TransactionStatus
	LatestLedger     uint32
	Ledger           uint32
	CreatedAt        int64
	ApplicationOrder int32
	FeeBump          bool
	EnvelopeXdr      string
	ResultXdr        string
	ResultMetaXdr    string
	Result           *xdr.TransactionResultHeader
	// ReturnValue is the value returned by the host function of a successful Soroban transaction
	ReturnValue *xdr.ScVal
}

type GetLatestLedgerRequest struct{}

type GetLatestLedgerResponse struct {
	ID              string
	ProtocolVersion uint32
	Sequence        uint32
}

type GetAccountRequest struct {
	Address string
}

type GetAccountResponse struct {
	AccountID string
	Sequence  int64
	Balance   int64
}

type GetNetworkRequest struct{}

type GetNetworkResponse struct {
	Passphrase      string
	ProtocolVersion uint32
	FriendbotURL    string
}
