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
	"encoding/hex"
	"math"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/keypair"
	"github.com/hyperledger/firefly-soroban/pkg/network"
	"github.com/hyperledger/firefly-soroban/pkg/strkey"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

type FeeBumpTransactionParams struct {
	Inner      *Transaction
	FeeAccount string
	BaseFee    int64
}

// FeeBumpTransaction pays for a signed inner transaction from a separate
// account, with its own fee and signatures
type FeeBumpTransaction struct {
	envelope xdr.FeeBumpTransactionEnvelope
	inner    *Transaction
	baseFee  int64
}

func NewFeeBumpTransaction(params FeeBumpTransactionParams) (*FeeBumpTransaction, error) {
	ctx := context.Background()
	if params.Inner == nil {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxInvalidField, "Inner", "inner transaction is required")
	}
	inner := params.Inner
	if len(inner.envelope.Signatures()) == 0 {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxFeeBumpInnerUnsigned)
	}
	minBaseFee := inner.baseFee
	if minBaseFee < MinBaseFee {
		minBaseFee = MinBaseFee
	}
	if params.BaseFee < minBaseFee {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxFeeBumpTooLow, params.BaseFee, minBaseFee)
	}
	feeSource, err := strkey.MuxedAccountFromAddress(params.FeeAccount)
	if err != nil {
		return nil, err
	}
	innerTx := inner.tx()
	// the fee bump counts as one extra operation
	ops := int64(len(innerTx.Operations) + 1)
	if params.BaseFee > (math.MaxInt64-resourceFee(innerTx.Ext))/ops {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxFeeOverflow, params.BaseFee)
	}
	fee := params.BaseFee*ops + resourceFee(innerTx.Ext)

	// V0 inner transactions are carried in V1 form, which hashes identically
	innerEnv := xdr.TransactionV1Envelope{Tx: innerTx, Signatures: inner.Signatures()}
	return &FeeBumpTransaction{
		inner:   inner,
		baseFee: params.BaseFee,
		envelope: xdr.FeeBumpTransactionEnvelope{
			Tx: xdr.FeeBumpTransaction{
				FeeSource: feeSource,
				Fee:       fee,
				InnerTx: xdr.FeeBumpTransactionInnerTx{
					Type: xdr.EnvelopeTypeEnvelopeTypeTx,
					V1:   &innerEnv,
				},
			},
		},
	}, nil
}

func (t *FeeBumpTransaction) InnerTransaction() *Transaction { return t.inner }

func (t *FeeBumpTransaction) FeeAccount() string {
	address, _ := strkey.MuxedAccountToAddress(t.envelope.Tx.FeeSource)
	return address
}

func (t *FeeBumpTransaction) BaseFee() int64 { return t.baseFee }

func (t *FeeBumpTransaction) MaxFee() int64 { return t.envelope.Tx.Fee }

func (t *FeeBumpTransaction) Signatures() []xdr.DecoratedSignature {
	return append([]xdr.DecoratedSignature(nil), t.envelope.Signatures...)
}

func (t *FeeBumpTransaction) Hash(passphrase string) ([32]byte, error) {
	return network.HashFeeBumpTransaction(t.envelope.Tx, passphrase)
}

func (t *FeeBumpTransaction) HashHex(passphrase string) (string, error) {
	h, err := t.Hash(passphrase)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h[:]), nil
}

func (t *FeeBumpTransaction) ToXDR() xdr.TransactionEnvelope {
	env := t.envelope
	env.Signatures = t.Signatures()
	return xdr.TransactionEnvelope{Type: xdr.EnvelopeTypeEnvelopeTypeTxFeeBump, FeeBump: &env}
}

func (t *FeeBumpTransaction) MarshalBinary() ([]byte, error) {
	return xdr.Marshal(t.ToXDR())
}

func (t *FeeBumpTransaction) Base64() (string, error) {
	return xdr.MarshalBase64(t.ToXDR())
}

func (t *FeeBumpTransaction) AddSignatureDecorated(sigs ...xdr.DecoratedSignature) (*FeeBumpTransaction, error) {
	all, err := appendSignatures(context.Background(), t.envelope.Signatures, sigs...)
	if err != nil {
		return nil, err
	}
	c := *t
	c.envelope.Signatures = all
	return &c, nil
}

func (t *FeeBumpTransaction) Sign(passphrase string, kps ...keypair.KP) (*FeeBumpTransaction, error) {
	hash, err := t.Hash(passphrase)
	if err != nil {
		return nil, err
	}
	add, err := signHash(hash, kps...)
	if err != nil {
		return nil, err
	}
	return t.AddSignatureDecorated(add...)
}

func (t *FeeBumpTransaction) AddSignatureBase64(passphrase, signer, signature string) (*FeeBumpTransaction, error) {
	sig, err := decodeSignature(passphrase, t.Hash, signer, signature)
	if err != nil {
		return nil, err
	}
	return t.AddSignatureDecorated(sig)
}
