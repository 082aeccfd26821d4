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
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/keypair"
	"github.com/hyperledger/firefly-soroban/pkg/network"
	"github.com/hyperledger/firefly-soroban/pkg/strkey"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// MinBaseFee is the network minimum inclusion fee per operation, in stroops
const MinBaseFee int64 = 100

type TransactionParams struct {
	SourceAccount        Account
	IncrementSequenceNum bool
	Operations           []Operation
	BaseFee              int64
	Memo                 Memo
	Preconditions        Preconditions
	// SorobanData replaces the resources carried by the Soroban operation
	SorobanData *xdr.SorobanTransactionData
}

// Transaction is an immutable built transaction. Signing and attaching
// resources return new values, leaving the receiver untouched.
type Transaction struct {
	envelope xdr.TransactionEnvelope
	baseFee  int64
}

// NewTransaction builds a transaction, taking the sequence number from the
// source account exactly once. The account is only incremented after every
// other check has passed, so a failed build does not consume a number.
func NewTransaction(params TransactionParams) (*Transaction, error) {
	ctx := context.Background()
	if params.SourceAccount == nil {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxNoSourceAccount)
	}
	n := len(params.Operations)
	if n == 0 || n > xdr.MaxOperations {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxNoOperations, xdr.MaxOperations, n)
	}
	if params.BaseFee < MinBaseFee {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxInvalidBaseFee, params.BaseFee, MinBaseFee)
	}
	accountID := params.SourceAccount.GetAccountID()
	source, err := strkey.MuxedAccountFromAddress(accountID)
	if err != nil {
		return nil, err
	}
	cond, err := params.Preconditions.toXDR(ctx)
	if err != nil {
		return nil, err
	}
	memo, err := memoToXDR(params.Memo)
	if err != nil {
		return nil, err
	}

	ops := make([]xdr.Operation, n)
	var ext xdr.TransactionExt
	soroban := false
	for i, op := range params.Operations {
		if op == nil {
			return nil, i18n.NewError(ctx, sbmsgs.MsgTxInvalidOperation, i, "nil", "operation is nil")
		}
		if err := op.Validate(); err != nil {
			return nil, i18n.WrapError(ctx, err, sbmsgs.MsgTxInvalidOperation, i, fmt.Sprintf("%T", op), err.Error())
		}
		if ops[i], err = op.BuildXDR(); err != nil {
			return nil, i18n.WrapError(ctx, err, sbmsgs.MsgTxInvalidOperation, i, fmt.Sprintf("%T", op), err.Error())
		}
		if sop, ok := op.(SorobanOperation); ok {
			if n != 1 {
				return nil, i18n.NewError(ctx, sbmsgs.MsgTxSorobanMultipleOps)
			}
			soroban = true
			if ext, err = sop.BuildTransactionExt(); err != nil {
				return nil, err
			}
		}
	}
	if params.SorobanData != nil {
		if !soroban {
			return nil, i18n.NewError(ctx, sbmsgs.MsgTxNotSoroban)
		}
		ext, _ = sorobanExt(params.SorobanData)
	}
	fee, err := totalFee(ctx, params.BaseFee, n, ext)
	if err != nil {
		return nil, err
	}

	var seq int64
	if params.IncrementSequenceNum {
		seq, err = params.SourceAccount.IncrementSequenceNumber()
	} else {
		seq, err = params.SourceAccount.GetSequenceNumber()
	}
	if err != nil {
		return nil, i18n.WrapError(ctx, err, sbmsgs.MsgTxSequenceFailed, accountID)
	}

	return &Transaction{
		baseFee: params.BaseFee,
		envelope: xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeEnvelopeTypeTx,
			V1: &xdr.TransactionV1Envelope{
				Tx: xdr.Transaction{
					SourceAccount: source,
					Fee:           fee,
					SeqNum:        seq,
					Cond:          cond,
					Memo:          memo,
					Operations:    ops,
					Ext:           ext,
				},
			},
		},
	}, nil
}

func resourceFee(ext xdr.TransactionExt) int64 {
	if ext.SorobanData != nil {
		return ext.SorobanData.ResourceFee
	}
	return 0
}

// totalFee is the inclusion fee for every operation plus the Soroban resource fee
func totalFee(ctx context.Context, baseFee int64, ops int, ext xdr.TransactionExt) (uint32, error) {
	inclusion := baseFee * int64(ops)
	if inclusion/int64(ops) != baseFee {
		return 0, i18n.NewError(ctx, sbmsgs.MsgTxFeeOverflow, inclusion)
	}
	fee := inclusion + resourceFee(ext)
	if fee < 0 || fee > math.MaxUint32 {
		return 0, i18n.NewError(ctx, sbmsgs.MsgTxFeeOverflow, fee)
	}
	return uint32(fee), nil
}

// tx returns the transaction in V1 form, which is also how V0 is hashed
func (t *Transaction) tx() xdr.Transaction {
	if t.envelope.V0 != nil {
		return t.envelope.V0.Tx.ToV1()
	}
	return t.envelope.V1.Tx
}

func (t *Transaction) SourceAccount() string {
	tx := t.tx()
	address, _ := strkey.MuxedAccountToAddress(tx.SourceAccount)
	return address
}

func (t *Transaction) SequenceNumber() int64 { return t.tx().SeqNum }

func (t *Transaction) BaseFee() int64 { return t.baseFee }

// MaxFee is the total fee the source is willing to pay, including resources
func (t *Transaction) MaxFee() int64 { return int64(t.tx().Fee) }

func (t *Transaction) Memo() xdr.Memo { return t.tx().Memo }

func (t *Transaction) Preconditions() xdr.Preconditions { return t.tx().Cond }

func (t *Transaction) Operations() []xdr.Operation {
	return append([]xdr.Operation(nil), t.tx().Operations...)
}

// SorobanData is nil unless resources have been attached
func (t *Transaction) SorobanData() *xdr.SorobanTransactionData {
	tx := t.tx()
	if tx.Ext.SorobanData == nil {
		return nil
	}
	d := *tx.Ext.SorobanData
	return &d
}

// IsSoroban reports whether the single operation is a Soroban operation
func (t *Transaction) IsSoroban() bool {
	ops := t.tx().Operations
	return len(ops) == 1 && ops[0].Body.Type.IsSoroban()
}

func (t *Transaction) Signatures() []xdr.DecoratedSignature {
	return append([]xdr.DecoratedSignature(nil), t.envelope.Signatures()...)
}

func (t *Transaction) Hash(passphrase string) ([32]byte, error) {
	return network.HashTransaction(t.tx(), passphrase)
}

func (t *Transaction) HashHex(passphrase string) (string, error) {
	h, err := t.Hash(passphrase)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h[:]), nil
}

// ToXDR returns a copy of the envelope
func (t *Transaction) ToXDR() xdr.TransactionEnvelope {
	return t.clone(t.envelope.Signatures()).envelope
}

func (t *Transaction) MarshalBinary() ([]byte, error) {
	return xdr.Marshal(t.envelope)
}

func (t *Transaction) Base64() (string, error) {
	return xdr.MarshalBase64(t.envelope)
}

func (t *Transaction) clone(signatures []xdr.DecoratedSignature) *Transaction {
	sigs := append([]xdr.DecoratedSignature(nil), signatures...)
	c := &Transaction{baseFee: t.baseFee, envelope: xdr.TransactionEnvelope{Type: t.envelope.Type}}
	if t.envelope.V0 != nil {
		c.envelope.V0 = &xdr.TransactionV0Envelope{Tx: t.envelope.V0.Tx, Signatures: sigs}
	} else {
		c.envelope.V1 = &xdr.TransactionV1Envelope{Tx: t.envelope.V1.Tx, Signatures: sigs}
	}
	return c
}

// rebuild replaces the transaction body. The result is always a V1
// envelope with no signatures, since any existing ones no longer apply.
func (t *Transaction) rebuild(tx xdr.Transaction) *Transaction {
	return &Transaction{
		baseFee: t.baseFee,
		envelope: xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeEnvelopeTypeTx,
			V1:   &xdr.TransactionV1Envelope{Tx: tx},
		},
	}
}

// WithSorobanData attaches simulated resources, adding resourceFee to the
// inclusion fee. The sequence number is carried over as-is and the source
// account is never consulted.
func (t *Transaction) WithSorobanData(data xdr.SorobanTransactionData, resourceFee int64) (*Transaction, error) {
	ctx := context.Background()
	if !t.IsSoroban() {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxNotSoroban)
	}
	if data.ResourceFee == 0 {
		data.ResourceFee = resourceFee
	}
	tx := t.tx()
	tx.Ext = xdr.TransactionExt{V: 1, SorobanData: &data}
	inclusion := t.baseFee * int64(len(tx.Operations))
	fee := inclusion + resourceFee
	if fee < 0 || fee > math.MaxUint32 {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxFeeOverflow, fee)
	}
	tx.Fee = uint32(fee)
	return t.rebuild(tx), nil
}

// WithOperationAuth replaces the authorization entries of the single
// InvokeHostFunction operation, keeping the sequence number
func (t *Transaction) WithOperationAuth(auth []xdr.SorobanAuthorizationEntry) (*Transaction, error) {
	tx := t.tx()
	if len(tx.Operations) != 1 || tx.Operations[0].Body.InvokeHostFunctionOp == nil {
		name := "none"
		if len(tx.Operations) > 0 {
			name = tx.Operations[0].Body.Type.String()
		}
		return nil, i18n.NewError(context.Background(), sbmsgs.MsgTxNotSorobanOperation, name)
	}
	op := tx.Operations[0]
	ihf := *op.Body.InvokeHostFunctionOp
	ihf.Auth = append([]xdr.SorobanAuthorizationEntry(nil), auth...)
	op.Body.InvokeHostFunctionOp = &ihf
	tx.Operations = []xdr.Operation{op}
	return t.rebuild(tx), nil
}

// AuthEntries returns the authorization entries of an InvokeHostFunction transaction
func (t *Transaction) AuthEntries() []xdr.SorobanAuthorizationEntry {
	ops := t.tx().Operations
	if len(ops) != 1 || ops[0].Body.InvokeHostFunctionOp == nil {
		return nil
	}
	return append([]xdr.SorobanAuthorizationEntry(nil), ops[0].Body.InvokeHostFunctionOp.Auth...)
}

func appendSignatures(ctx context.Context, existing []xdr.DecoratedSignature, add ...xdr.DecoratedSignature) ([]xdr.DecoratedSignature, error) {
	if len(existing)+len(add) > xdr.MaxSignatures {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxSignatureLimit, xdr.MaxSignatures)
	}
	out := make([]xdr.DecoratedSignature, 0, len(existing)+len(add))
	out = append(out, existing...)
	return append(out, add...), nil
}

func signHash(hash [32]byte, kps ...keypair.KP) ([]xdr.DecoratedSignature, error) {
	sigs := make([]xdr.DecoratedSignature, 0, len(kps))
	for _, kp := range kps {
		sig, err := kp.SignDecorated(hash[:])
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

// Sign returns a copy of the transaction with a signature from each keypair appended
func (t *Transaction) Sign(passphrase string, kps ...keypair.KP) (*Transaction, error) {
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

// SignHashX appends the preimage of a hash(x) signer
func (t *Transaction) SignHashX(preimage []byte) (*Transaction, error) {
	if len(preimage) > 64 {
		return nil, i18n.NewError(context.Background(), sbmsgs.MsgTxInvalidField, "preimage", "must be at most 64 bytes")
	}
	h := sha256.Sum256(preimage)
	var hint xdr.SignatureHint
	copy(hint[:], h[len(h)-4:])
	return t.AddSignatureDecorated(xdr.DecoratedSignature{Hint: hint, Signature: append([]byte(nil), preimage...)})
}

func (t *Transaction) AddSignatureDecorated(sigs ...xdr.DecoratedSignature) (*Transaction, error) {
	all, err := appendSignatures(context.Background(), t.envelope.Signatures(), sigs...)
	if err != nil {
		return nil, err
	}
	return t.clone(all), nil
}

// AddSignatureBase64 appends a base64 signature produced elsewhere by
// signer, after checking it against the transaction hash
func (t *Transaction) AddSignatureBase64(passphrase, signer, signature string) (*Transaction, error) {
	sig, err := decodeSignature(passphrase, t.Hash, signer, signature)
	if err != nil {
		return nil, err
	}
	return t.AddSignatureDecorated(sig)
}

func decodeSignature(passphrase string, hashFn func(string) ([32]byte, error), signer, signature string) (xdr.DecoratedSignature, error) {
	ctx := context.Background()
	kp, err := keypair.ParseAddress(signer)
	if err != nil {
		return xdr.DecoratedSignature{}, err
	}
	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return xdr.DecoratedSignature{}, i18n.WrapError(ctx, err, sbmsgs.MsgTxInvalidField, "signature", err.Error())
	}
	hash, err := hashFn(passphrase)
	if err != nil {
		return xdr.DecoratedSignature{}, err
	}
	if err := kp.Verify(hash[:], raw); err != nil {
		return xdr.DecoratedSignature{}, err
	}
	return xdr.DecoratedSignature{Hint: kp.Hint(), Signature: raw}, nil
}
