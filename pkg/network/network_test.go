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

package network

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/hyperledger/firefly-soroban/pkg/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTx() xdr.Transaction {
	src := xdr.Uint256{1}
	return xdr.Transaction{
		SourceAccount: xdr.MuxedAccount{Type: xdr.CryptoKeyTypeKeyTypeEd25519, Ed25519: &src},
		Fee:           100,
		SeqNum:        2,
		Cond:          xdr.Preconditions{Type: xdr.PreconditionTypePrecondTime, TimeBounds: &xdr.TimeBounds{}},
		Operations: []xdr.Operation{{Body: xdr.OperationBody{
			Type:           xdr.OperationTypeBumpSequence,
			BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: 3},
		}}},
	}
}

func TestNetworkIDs(t *testing.T) {
	id := ID(TestNetworkPassphrase)
	assert.Equal(t, "cee0302d59844d32bdca915c8203dd44b33fbb7edc19051ea37abedf28ecd472", hex.EncodeToString(id[:]))
	id = ID(PublicNetworkPassphrase)
	assert.Equal(t, "7ac33997544e3175d266bd022439b22cdb16508c01163f26e5cb2a3e1045a979", hex.EncodeToString(id[:]))
}

func TestHashTransactionPayloadLayout(t *testing.T) {
	tx := testTx()
	txBytes, err := xdr.Marshal(tx)
	require.NoError(t, err)

	id := ID(TestNetworkPassphrase)
	expected := sha256.Sum256(append(append(append([]byte{}, id[:]...), 0, 0, 0, 2), txBytes...))

	h, err := HashTransaction(tx, TestNetworkPassphrase)
	assert.NoError(t, err)
	assert.Equal(t, expected, h)

	other, err := HashTransaction(tx, PublicNetworkPassphrase)
	assert.NoError(t, err)
	assert.NotEqual(t, h, other)
}

func TestHashTransactionV0MatchesV1(t *testing.T) {
	tx := testTx()
	v0 := xdr.TransactionV0{
		SourceAccountEd25519: *tx.SourceAccount.Ed25519,
		Fee:                  tx.Fee,
		SeqNum:               tx.SeqNum,
		TimeBounds:           tx.Cond.TimeBounds,
		Operations:           tx.Operations,
	}
	h0, err := HashTransactionV0(v0, TestNetworkPassphrase)
	assert.NoError(t, err)
	h1, err := HashTransaction(tx, TestNetworkPassphrase)
	assert.NoError(t, err)
	assert.Equal(t, h1, h0)

	env0 := xdr.TransactionEnvelope{Type: xdr.EnvelopeTypeEnvelopeTypeTxV0, V0: &xdr.TransactionV0Envelope{Tx: v0}}
	he, err := HashEnvelope(env0, TestNetworkPassphrase)
	assert.NoError(t, err)
	assert.Equal(t, h1, he)
}

func TestHashFeeBumpTransaction(t *testing.T) {
	tx := testTx()
	fb := xdr.FeeBumpTransaction{
		FeeSource: tx.SourceAccount,
		Fee:       400,
		InnerTx: xdr.FeeBumpTransactionInnerTx{
			Type: xdr.EnvelopeTypeEnvelopeTypeTx,
			V1:   &xdr.TransactionV1Envelope{Tx: tx},
		},
	}
	fbBytes, err := xdr.Marshal(fb)
	require.NoError(t, err)
	id := ID(TestNetworkPassphrase)
	expected := sha256.Sum256(append(append(append([]byte{}, id[:]...), 0, 0, 0, 5), fbBytes...))

	h, err := HashFeeBumpTransaction(fb, TestNetworkPassphrase)
	assert.NoError(t, err)
	assert.Equal(t, expected, h)

	he, err := HashEnvelope(xdr.TransactionEnvelope{Type: xdr.EnvelopeTypeEnvelopeTypeTxFeeBump, FeeBump: &xdr.FeeBumpTransactionEnvelope{Tx: fb}}, TestNetworkPassphrase)
	assert.NoError(t, err)
	assert.Equal(t, expected, he)

	_, err = HashEnvelope(xdr.TransactionEnvelope{Type: xdr.EnvelopeTypeEnvelopeTypeTx}, TestNetworkPassphrase)
	assert.Regexp(t, "FF21208", err)
}

func TestContractID(t *testing.T) {
	preimage := xdr.ContractIDPreimage{
		Type:      xdr.ContractIDPreimageTypeContractIDPreimageFromAsset,
		FromAsset: &xdr.Asset{Type: xdr.AssetTypeAssetTypeNative},
	}
	id, err := ContractID(preimage, TestNetworkPassphrase)
	require.NoError(t, err)

	netID := ID(TestNetworkPassphrase)
	raw := append([]byte{0, 0, 0, 8}, netID[:]...)
	raw = append(raw, 0, 0, 0, 1, 0, 0, 0, 0)
	assert.Equal(t, xdr.Hash(sha256.Sum256(raw)), id)

	_, err = ContractID(xdr.ContractIDPreimage{Type: xdr.ContractIDPreimageTypeContractIDPreimageFromAsset}, TestNetworkPassphrase)
	assert.Regexp(t, "FF21208", err)
}
