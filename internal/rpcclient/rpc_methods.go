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

package rpcclient

import (
	"context"
	"encoding/base64"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/rpcapi"
	"github.com/hyperledger/firefly-soroban/pkg/strkey"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// The JSON shapes below are the wire form of the RPC service. Large
// integers arrive as decimal strings, XDR values as base64.

type simulateHostFunctionResultJSON struct {
	Auth []string `json:"auth"`
	XDR  string   `json:"xdr"`
}

type restorePreambleJSON struct {
	TransactionData string           `json:"transactionData"`
	MinResourceFee  fftypes.FFBigInt `json:"minResourceFee"`
}

type simulateTransactionJSON struct {
	LatestLedger    uint32                           `json:"latestLedger"`
	MinResourceFee  fftypes.FFBigInt                 `json:"minResourceFee"`
	TransactionData string                           `json:"transactionData"`
	Results         []simulateHostFunctionResultJSON `json:"results"`
	Events          []string                         `json:"events"`
	Error           string                           `json:"error"`
	RestorePreamble *restorePreambleJSON             `json:"restorePreamble"`
}

type sendTransactionJSON struct {
	Hash                  string           `json:"hash"`
	Status                string           `json:"status"`
	LatestLedger          uint32           `json:"latestLedger"`
	LatestLedgerCloseTime fftypes.FFBigInt `json:"latestLedgerCloseTime"`
	ErrorResultXDR        string           `json:"errorResultXdr"`
	DiagnosticEventsXDR   []string         `json:"diagnosticEventsXdr"`
}

type getTransactionJSON struct {
	Status           string           `json:"status"`
	LatestLedger     uint32           `json:"latestLedger"`
	Ledger           uint32           `json:"ledger"`
	CreatedAt        fftypes.FFBigInt `json:"createdAt"`
	ApplicationOrder int32            `json:"applicationOrder"`
	FeeBump          bool             `json:"feeBump"`
	EnvelopeXDR      string           `json:"envelopeXdr"`
	ResultXDR        string           `json:"resultXdr"`
	ResultMetaXDR    string           `json:"resultMetaXdr"`
	ReturnValue      string           `json:"returnValue"`
}

type getLatestLedgerJSON struct {
	ID              string `json:"id"`
	ProtocolVersion uint32 `json:"protocolVersion"`
	Sequence        uint32 `json:"sequence"`
}

type getNetworkJSON struct {
	FriendbotURL    string `json:"friendbotUrl"`
	Passphrase      string `json:"passphrase"`
	ProtocolVersion uint32 `json:"protocolVersion"`
}

type ledgerEntryJSON struct {
	Key                   string `json:"key"`
	XDR                   string `json:"xdr"`
	LastModifiedLedgerSeq uint32 `json:"lastModifiedLedgerSeq"`
}

type getLedgerEntriesJSON struct {
	Entries      []ledgerEntryJSON `json:"entries"`
	LatestLedger uint32            `json:"latestLedger"`
}

func invalidResponse(ctx context.Context, method string, err error) (rpcapi.ErrorReason, error) {
	return rpcapi.ErrorReasonInvalidResponse, i18n.WrapError(ctx, err, sbmsgs.MsgRPCInvalidResponse, method, err.Error())
}

func (c *rpcClient) SimulateTransaction(ctx context.Context, req *rpcapi.SimulateTransactionRequest) (*rpcapi.SimulateTransactionResponse, rpcapi.ErrorReason, error) {
	const method = "simulateTransaction"
	var raw simulateTransactionJSON
	if reason, err := c.invokeRPC(ctx, method, req, &raw); err != nil {
		return nil, reason, err
	}
	res := &rpcapi.SimulateTransactionResponse{
		LatestLedger:   raw.LatestLedger,
		MinResourceFee: raw.MinResourceFee.Int().Int64(),
		Events:         raw.Events,
		Error:          raw.Error,
	}
	if res.Failed() {
		// The remaining fields are not populated on failure
		return res, "", nil
	}
	if raw.TransactionData != "" {
		res.TransactionData = &xdr.SorobanTransactionData{}
		if err := xdr.UnmarshalBase64(raw.TransactionData, res.TransactionData); err != nil {
			reason, err := invalidResponse(ctx, method, err)
			return nil, reason, err
		}
	}
	for _, r := range raw.Results {
		hr := rpcapi.SimulateHostFunctionResult{}
		if err := xdr.UnmarshalBase64(r.XDR, &hr.Retval); err != nil {
			reason, err := invalidResponse(ctx, method, err)
			return nil, reason, err
		}
		for _, a := range r.Auth {
			var entry xdr.SorobanAuthorizationEntry
			if err := xdr.UnmarshalBase64(a, &entry); err != nil {
				reason, err := invalidResponse(ctx, method, err)
				return nil, reason, err
			}
			hr.Auth = append(hr.Auth, entry)
		}
		res.Results = append(res.Results, hr)
	}
	if raw.RestorePreamble != nil {
		res.RestorePreamble = &rpcapi.RestorePreamble{
			MinResourceFee: raw.RestorePreamble.MinResourceFee.Int().Int64(),
		}
		if err := xdr.UnmarshalBase64(raw.RestorePreamble.TransactionData, &res.RestorePreamble.TransactionData); err != nil {
			reason, err := invalidResponse(ctx, method, err)
			return nil, reason, err
		}
	}
	return res, "", nil
}

func (c *rpcClient) SendTransaction(ctx context.Context, req *rpcapi.SendTransactionRequest) (*rpcapi.SendTransactionResponse, rpcapi.ErrorReason, error) {
	const method = "sendTransaction"
	var raw sendTransactionJSON
	if reason, err := c.invokeRPC(ctx, method, req, &raw); err != nil {
		return nil, reason, err
	}
	res := &rpcapi.SendTransactionResponse{
		Hash:                  raw.Hash,
		Status:                rpcapi.SendTransactionStatus(raw.Status),
		LatestLedger:          raw.LatestLedger,
		LatestLedgerCloseTime: raw.LatestLedgerCloseTime.Int().Int64(),
		ErrorResultXdr:        raw.ErrorResultXDR,
		DiagnosticEventsXdr:   raw.DiagnosticEventsXDR,
	}
	if raw.ErrorResultXDR != "" {
		header, err := decodeResultHeader(raw.ErrorResultXDR)
		if err != nil {
			reason, err := invalidResponse(ctx, method, err)
			return nil, reason, err
		}
		res.ErrorResult = header
	}
	return res, "", nil
}

func (c *rpcClient) GetTransaction(ctx context.Context, req *rpcapi.GetTransactionRequest) (*rpcapi.GetTransactionResponse, rpcapi.ErrorReason, error) {
	const method = "getTransaction"
	var raw getTransactionJSON
	if reason, err := c.invokeRPC(ctx, method, req, &raw); err != nil {
		return nil, reason, err
	}
	res := &rpcapi.GetTransactionResponse{
		Status:           rpcapi.TransactionStatus(raw.Status),
		LatestLedger:     raw.LatestLedger,
		Ledger:           raw.Ledger,
		CreatedAt:        raw.CreatedAt.Int().Int64(),
		ApplicationOrder: raw.ApplicationOrder,
		FeeBump:          raw.FeeBump,
		EnvelopeXdr:      raw.EnvelopeXDR,
		ResultXdr:        raw.ResultXDR,
		ResultMetaXdr:    raw.ResultMetaXDR,
	}
	if raw.ResultXDR != "" {
		header, err := decodeResultHeader(raw.ResultXDR)
		if err != nil {
			reason, err := invalidResponse(ctx, method, err)
			return nil, reason, err
		}
		res.Result = header
	}
	if raw.ReturnValue != "" {
		res.ReturnValue = &xdr.ScVal{}
		if err := xdr.UnmarshalBase64(raw.ReturnValue, res.ReturnValue); err != nil {
			reason, err := invalidResponse(ctx, method, err)
			return nil, reason, err
		}
	}
	return res, "", nil
}

func (c *rpcClient) GetLatestLedger(ctx context.Context, _ *rpcapi.GetLatestLedgerRequest) (*rpcapi.GetLatestLedgerResponse, rpcapi.ErrorReason, error) {
	var raw getLatestLedgerJSON
	if reason, err := c.invokeRPC(ctx, "getLatestLedger", nil, &raw); err != nil {
		return nil, reason, err
	}
	return &rpcapi.GetLatestLedgerResponse{
		ID:              raw.ID,
		ProtocolVersion: raw.ProtocolVersion,
		Sequence:        raw.Sequence,
	}, "", nil
}

func (c *rpcClient) GetNetwork(ctx context.Context, _ *rpcapi.GetNetworkRequest) (*rpcapi.GetNetworkResponse, rpcapi.ErrorReason, error) {
	var raw getNetworkJSON
	if reason, err := c.invokeRPC(ctx, "getNetwork", nil, &raw); err != nil {
		return nil, reason, err
	}
	return &rpcapi.GetNetworkResponse{
		Passphrase:      raw.Passphrase,
		ProtocolVersion: raw.ProtocolVersion,
		FriendbotURL:    raw.FriendbotURL,
	}, "", nil
}

// GetAccount reads the account ledger entry, which is where the current
// sequence number lives
func (c *rpcClient) GetAccount(ctx context.Context, req *rpcapi.GetAccountRequest) (*rpcapi.GetAccountResponse, rpcapi.ErrorReason, error) {
	const method = "getLedgerEntries"
	accountID, err := strkey.AccountIDFromAddress(req.Address)
	if err != nil {
		return nil, rpcapi.ErrorReasonInvalidInputs, err
	}
	key, err := xdr.MarshalBase64(xdr.LedgerKey{
		Type:    xdr.LedgerEntryTypeAccount,
		Account: &xdr.LedgerKeyAccount{AccountID: accountID},
	})
	if err != nil {
		return nil, rpcapi.ErrorReasonInvalidInputs, err
	}

	var raw getLedgerEntriesJSON
	params := map[string]interface{}{"keys": []string{key}}
	if reason, err := c.invokeRPC(ctx, method, params, &raw); err != nil {
		return nil, reason, err
	}
	if len(raw.Entries) == 0 {
		return nil, rpcapi.ErrorReasonNotFound, i18n.NewError(ctx, sbmsgs.MsgRPCAccountNotFound, req.Address)
	}

	var data xdr.LedgerEntryData
	if err := xdr.UnmarshalBase64(raw.Entries[0].XDR, &data); err != nil {
		reason, err := invalidResponse(ctx, method, err)
		return nil, reason, err
	}
	if data.Type != xdr.LedgerEntryTypeAccount || data.Account == nil {
		return nil, rpcapi.ErrorReasonInvalidResponse, i18n.NewError(ctx, sbmsgs.MsgRPCInvalidResponse, method, data.Type.String())
	}
	address, err := strkey.AccountIDToAddress(data.Account.AccountID)
	if err != nil {
		reason, err := invalidResponse(ctx, method, err)
		return nil, reason, err
	}
	return &rpcapi.GetAccountResponse{
		AccountID: address,
		Sequence:  data.Account.SeqNum,
		Balance:   data.Account.Balance,
	}, "", nil
}

func decodeResultHeader(b64 string) (*xdr.TransactionResultHeader, error) {
	b, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	return xdr.DecodeTransactionResultHeader(b)
}
