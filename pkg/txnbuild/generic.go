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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/keypair"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// GenericTransaction is either a Transaction or a FeeBumpTransaction
type GenericTransaction struct {
	simple  *Transaction
	feeBump *FeeBumpTransaction
}

func (g GenericTransaction) Transaction() (*Transaction, bool) {
	return g.simple, g.simple != nil
}

func (g GenericTransaction) FeeBump() (*FeeBumpTransaction, bool) {
	return g.feeBump, g.feeBump != nil
}

// TransactionFromXDR parses a base64 envelope, which must re-encode to
// exactly the bytes it was parsed from
func TransactionFromXDR(txeB64 string) (*GenericTransaction, error) {
	var env xdr.TransactionEnvelope
	if err := xdr.SafeUnmarshalBase64(txeB64, &env); err != nil {
		return nil, err
	}
	return transactionFromEnvelope(env)
}

func transactionFromEnvelope(env xdr.TransactionEnvelope) (*GenericTransaction, error) {
	switch env.Type {
	case xdr.EnvelopeTypeEnvelopeTypeTxV0, xdr.EnvelopeTypeEnvelopeTypeTx:
		t := &Transaction{envelope: env}
		t.baseFee = inferBaseFee(int64(t.tx().Fee), len(t.tx().Operations), t.tx().Ext)
		return &GenericTransaction{simple: t}, nil
	case xdr.EnvelopeTypeEnvelopeTypeTxFeeBump:
		innerEnv := xdr.TransactionEnvelope{Type: xdr.EnvelopeTypeEnvelopeTypeTx, V1: env.FeeBump.Tx.InnerTx.V1}
		inner := &Transaction{envelope: innerEnv}
		innerTx := inner.tx()
		inner.baseFee = inferBaseFee(int64(innerTx.Fee), len(innerTx.Operations), innerTx.Ext)
		return &GenericTransaction{feeBump: &FeeBumpTransaction{
			envelope: *env.FeeBump,
			inner:    inner,
			baseFee:  inferBaseFee(env.FeeBump.Tx.Fee, len(innerTx.Operations)+1, innerTx.Ext),
		}}, nil
	default:
		return nil, i18n.NewError(context.Background(), sbmsgs.MsgTxUnsupportedEnvelope, env.Type)
	}
}

func inferBaseFee(fee int64, ops int, ext xdr.TransactionExt) int64 {
	if ops == 0 {
		return 0
	}
	return (fee - resourceFee(ext)) / int64(ops)
}

// Signed is anything carrying decorated signatures over a network hash
type Signed interface {
	Hash(passphrase string) ([32]byte, error)
	Signatures() []xdr.DecoratedSignature
}

// VerifySignatures checks every address has a valid signature on tx. The
// signer of each signature is found by its hint, not its position.
func VerifySignatures(tx Signed, passphrase string, addresses ...string) error {
	hash, err := tx.Hash(passphrase)
	if err != nil {
		return err
	}
	sigs := tx.Signatures()
	for _, address := range addresses {
		kp, err := keypair.ParseAddress(address)
		if err != nil {
			return err
		}
		if !hasSignature(kp, hash, sigs) {
			return i18n.NewError(context.Background(), sbmsgs.MsgTxSignerNotFound, address)
		}
	}
	return nil
}

func hasSignature(kp keypair.KP, hash [32]byte, sigs []xdr.DecoratedSignature) bool {
	hint := kp.Hint()
	for _, sig := range sigs {
		if sig.Hint == hint && kp.Verify(hash[:], sig.Signature) == nil {
			return true
		}
	}
	return false
}
