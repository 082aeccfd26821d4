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

package txnbuild

import (
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// InvokeHostFunction calls a contract, creates one, or uploads Wasm
type InvokeHostFunction struct {
	HostFunction  xdr.HostFunction
	Auth          []xdr.SorobanAuthorizationEntry
	SorobanData   *xdr.SorobanTransactionData
	SourceAccount string
}

func (f *InvokeHostFunction) Validate() error {
	if _, err := xdr.Marshal(f.HostFunction); err != nil {
		return err
	}
	return nil
}

func (f *InvokeHostFunction) BuildXDR() (xdr.Operation, error) {
	return buildOp(f.SourceAccount, xdr.OperationBody{
		Type: xdr.OperationTypeInvokeHostFunction,
		InvokeHostFunctionOp: &xdr.InvokeHostFunctionOp{
			HostFunction: f.HostFunction,
			Auth:         f.Auth,
		},
	})
}

func (f *InvokeHostFunction) GetSourceAccount() string { return f.SourceAccount }

func (f *InvokeHostFunction) BuildTransactionExt() (xdr.TransactionExt, error) {
	return sorobanExt(f.SorobanData)
}

// ExtendFootprintTTL extends the live-until ledger of every read-only key
// in the footprint of SorobanData to at least ExtendTo ledgers from now
type ExtendFootprintTTL struct {
	ExtendTo      uint32
	SorobanData   *xdr.SorobanTransactionData
	SourceAccount string
}

func (e *ExtendFootprintTTL) Validate() error {
	if e.ExtendTo == 0 {
		return invalidField("ExtendFootprintTTL.ExtendTo", "must be positive")
	}
	return nil
}

func (e *ExtendFootprintTTL) BuildXDR() (xdr.Operation, error) {
	return buildOp(e.SourceAccount, xdr.OperationBody{
		Type:                 xdr.OperationTypeExtendFootprintTtl,
		ExtendFootprintTtlOp: &xdr.ExtendFootprintTtlOp{ExtendTo: e.ExtendTo},
	})
}

func (e *ExtendFootprintTTL) GetSourceAccount() string { return e.SourceAccount }

func (e *ExtendFootprintTTL) BuildTransactionExt() (xdr.TransactionExt, error) {
	return sorobanExt(e.SorobanData)
}

// RestoreFootprint revives the archived entries in the read-write
// footprint of SorobanData
type RestoreFootprint struct {
	SorobanData   *xdr.SorobanTransactionData
	SourceAccount string
}

func (r *RestoreFootprint) Validate() error { return nil }

func (r *RestoreFootprint) BuildXDR() (xdr.Operation, error) {
	return buildOp(r.SourceAccount, xdr.OperationBody{
		Type:               xdr.OperationTypeRestoreFootprint,
		RestoreFootprintOp: &xdr.RestoreFootprintOp{},
	})
}

func (r *RestoreFootprint) GetSourceAccount() string { return r.SourceAccount }

func (r *RestoreFootprint) BuildTransactionExt() (xdr.TransactionExt, error) {
	return sorobanExt(r.SorobanData)
}

// NewInvokeContract builds the operation calling method on a contract
func NewInvokeContract(contract xdr.ScAddress, method string, args []xdr.ScVal, sourceAccount string) *InvokeHostFunction {
	return &InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: contract,
				FunctionName:    xdr.ScSymbol(method),
				Args:            args,
			},
		},
		SourceAccount: sourceAccount,
	}
}
