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
	"context"
	"unicode/utf8"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/strkey"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// Operation is one step of a transaction
type Operation interface {
	BuildXDR() (xdr.Operation, error)
	Validate() error
	GetSourceAccount() string
}

// SorobanOperation must be the only operation of its transaction, and
// carries the resources it was simulated with
type SorobanOperation interface {
	Operation
	BuildTransactionExt() (xdr.TransactionExt, error)
}

func sorobanExt(data *xdr.SorobanTransactionData) (xdr.TransactionExt, error) {
	if data == nil {
		return xdr.TransactionExt{V: 0}, nil
	}
	d := *data
	return xdr.TransactionExt{V: 1, SorobanData: &d}, nil
}

func opSource(src string) (*xdr.MuxedAccount, error) {
	if src == "" {
		return nil, nil
	}
	m, err := strkey.MuxedAccountFromAddress(src)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func invalidField(field, reason string) error {
	return i18n.NewError(context.Background(), sbmsgs.MsgTxInvalidField, field, reason)
}

func buildOp(src string, body xdr.OperationBody) (xdr.Operation, error) {
	source, err := opSource(src)
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{SourceAccount: source, Body: body}, nil
}

// CreateAccount funds a new account with a starting balance in stroops
type CreateAccount struct {
	Destination   string
	Amount        int64
	SourceAccount string
}

func (ca *CreateAccount) Validate() error {
	if _, err := strkey.AccountIDFromAddress(ca.Destination); err != nil {
		return err
	}
	if ca.Amount < 0 {
		return invalidField("CreateAccount.Amount", "negative amount")
	}
	return nil
}

func (ca *CreateAccount) BuildXDR() (xdr.Operation, error) {
	dest, err := strkey.AccountIDFromAddress(ca.Destination)
	if err != nil {
		return xdr.Operation{}, err
	}
	return buildOp(ca.SourceAccount, xdr.OperationBody{
		Type:            xdr.OperationTypeCreateAccount,
		CreateAccountOp: &xdr.CreateAccountOp{Destination: dest, StartingBalance: ca.Amount},
	})
}

func (ca *CreateAccount) GetSourceAccount() string { return ca.SourceAccount }

// Payment sends Amount stroops of Asset to a G or M address
type Payment struct {
	Destination   string
	Amount        int64
	Asset         Asset
	SourceAccount string
}

func (p *Payment) Validate() error {
	if _, err := strkey.MuxedAccountFromAddress(p.Destination); err != nil {
		return err
	}
	if p.Amount <= 0 {
		return invalidField("Payment.Amount", "amount must be positive")
	}
	if p.Asset == nil {
		return invalidField("Payment.Asset", "asset is required")
	}
	_, err := p.Asset.ToXDR()
	return err
}

func (p *Payment) BuildXDR() (xdr.Operation, error) {
	dest, err := strkey.MuxedAccountFromAddress(p.Destination)
	if err != nil {
		return xdr.Operation{}, err
	}
	if p.Asset == nil {
		return xdr.Operation{}, invalidField("Payment.Asset", "asset is required")
	}
	asset, err := p.Asset.ToXDR()
	if err != nil {
		return xdr.Operation{}, err
	}
	return buildOp(p.SourceAccount, xdr.OperationBody{
		Type:      xdr.OperationTypePayment,
		PaymentOp: &xdr.PaymentOp{Destination: dest, Asset: asset, Amount: p.Amount},
	})
}

func (p *Payment) GetSourceAccount() string { return p.SourceAccount }

// BumpSequence moves the source account's sequence number forward to BumpTo
type BumpSequence struct {
	BumpTo        int64
	SourceAccount string
}

func (bs *BumpSequence) Validate() error {
	if bs.BumpTo < 0 {
		return invalidField("BumpSequence.BumpTo", "negative sequence number")
	}
	return nil
}

func (bs *BumpSequence) BuildXDR() (xdr.Operation, error) {
	return buildOp(bs.SourceAccount, xdr.OperationBody{
		Type:           xdr.OperationTypeBumpSequence,
		BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: bs.BumpTo},
	})
}

func (bs *BumpSequence) GetSourceAccount() string { return bs.SourceAccount }

// ManageData sets the named data entry of the source account. A nil Value
// deletes it.
type ManageData struct {
	Name          string
	Value         []byte
	SourceAccount string
}

func (md *ManageData) Validate() error {
	if len(md.Name) == 0 || len(md.Name) > 64 || !utf8.ValidString(md.Name) {
		return invalidField("ManageData.Name", "must be 1-64 bytes")
	}
	if len(md.Value) > 64 {
		return invalidField("ManageData.Value", "must be at most 64 bytes")
	}
	return nil
}

func (md *ManageData) BuildXDR() (xdr.Operation, error) {
	op := &xdr.ManageDataOp{DataName: md.Name}
	if md.Value != nil {
		v := xdr.DataValue(md.Value)
		op.DataValue = &v
	}
	return buildOp(md.SourceAccount, xdr.OperationBody{
		Type:         xdr.OperationTypeManageData,
		ManageDataOp: op,
	})
}

func (md *ManageData) GetSourceAccount() string { return md.SourceAccount }
