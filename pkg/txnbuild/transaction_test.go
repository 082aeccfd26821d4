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
	"encoding/base64"
	"testing"

	"github.com/hyperledger/firefly-soroban/pkg/keypair"
	"github.com/hyperledger/firefly-soroban/pkg/network"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassphrase = network.TestNetworkPassphrase

func newTestAccount(t *testing.T, seq int64) (*keypair.Full, *SimpleAccount) {
	kp := keypair.MustRandom()
	acct := NewSimpleAccount(kp.Address(), seq)
	return kp, &acct
}

func newPaymentTx(t *testing.T, acct Account, ops ...Operation) *Transaction {
	if len(ops) == 0 {
		ops = []Operation{&Payment{Destination: keypair.MustRandom().Address(), Amount: 10, Asset: NativeAsset{}}}
	}
	tx, err := NewTransaction(TransactionParams{
		SourceAccount:        acct,
		IncrementSequenceNum: true,
		Operations:           ops,
		BaseFee:              MinBaseFee,
		Preconditions:        Preconditions{TimeBounds: NewInfiniteTimeout()},
	})
	require.NoError(t, err)
	return tx
}

func testInvokeOp() *InvokeHostFunction {
	return NewInvokeContract(xdr.ContractAddress([32]byte{1}), "hello", []xdr.ScVal{xdr.ScvSymbol("world")}, "")
}

func testSorobanData(fee int64) xdr.SorobanTransactionData {
	return xdr.SorobanTransactionData{
		Resources: xdr.SorobanResources{
			Footprint: xdr.LedgerFootprint{
				ReadOnly: []xdr.LedgerKey{{
					Type:         xdr.LedgerEntryTypeContractCode,
					ContractCode: &xdr.LedgerKeyContractCode{Hash: xdr.Hash{9}},
				}},
			},
			Instructions:  1000,
			DiskReadBytes: 200,
			WriteBytes:    0,
		},
		ResourceFee: fee,
	}
}

func TestNewTransactionIncrementsSequenceOnce(t *testing.T) {
	_, acct := newTestAccount(t, 41)
	tx := newPaymentTx(t, acct)
	assert.Equal(t, int64(42), tx.SequenceNumber())
	assert.Equal(t, int64(42), acct.Sequence)
	assert.Equal(t, int64(100), tx.MaxFee())
	assert.Equal(t, acct.AccountID, tx.SourceAccount())
	assert.Equal(t, xdr.PreconditionTypePrecondTime, tx.Preconditions().Type)
	assert.Empty(t, tx.Signatures())
}

func TestNewTransactionNoIncrement(t *testing.T) {
	_, acct := newTestAccount(t, 7)
	tx, err := NewTransaction(TransactionParams{
		SourceAccount: acct,
		Operations:    []Operation{&BumpSequence{BumpTo: 100}},
		BaseFee:       200,
		Preconditions: Preconditions{TimeBounds: NewTimeout(300)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), tx.SequenceNumber())
	assert.Equal(t, int64(7), acct.Sequence)
	assert.Equal(t, int64(200), tx.MaxFee())
	assert.NotZero(t, tx.Preconditions().TimeBounds.MaxTime)
}

func TestNewTransactionFeeScalesWithOperations(t *testing.T) {
	_, acct := newTestAccount(t, 1)
	tx := newPaymentTx(t, acct,
		&BumpSequence{BumpTo: 5},
		&ManageData{Name: "k", Value: []byte("v")},
		&ManageData{Name: "gone"},
	)
	assert.Equal(t, int64(300), tx.MaxFee())
	ops := tx.Operations()
	assert.Len(t, ops, 3)
	assert.Nil(t, ops[2].Body.ManageDataOp.DataValue)
}

func TestNewTransactionValidation(t *testing.T) {
	_, acct := newTestAccount(t, 10)
	infinite := Preconditions{TimeBounds: NewInfiniteTimeout()}
	bump := &BumpSequence{BumpTo: 1}

	_, err := NewTransaction(TransactionParams{Operations: []Operation{bump}, BaseFee: 100, Preconditions: infinite})
	assert.Regexp(t, "FF21231", err)

	_, err = NewTransaction(TransactionParams{SourceAccount: acct, BaseFee: 100, Preconditions: infinite})
	assert.Regexp(t, "FF21230", err)

	tooMany := make([]Operation, xdr.MaxOperations+1)
	for i := range tooMany {
		tooMany[i] = bump
	}
	_, err = NewTransaction(TransactionParams{SourceAccount: acct, Operations: tooMany, BaseFee: 100, Preconditions: infinite})
	assert.Regexp(t, "FF21230", err)

	_, err = NewTransaction(TransactionParams{SourceAccount: acct, Operations: []Operation{bump}, BaseFee: 99, Preconditions: infinite})
	assert.Regexp(t, "FF21232", err)

	_, err = NewTransaction(TransactionParams{SourceAccount: acct, Operations: []Operation{bump}, BaseFee: 100})
	assert.Regexp(t, "FF21234", err)

	_, err = NewTransaction(TransactionParams{SourceAccount: acct, Operations: []Operation{testInvokeOp(), bump}, BaseFee: 100, Preconditions: infinite})
	assert.Regexp(t, "FF21237", err)

	data := testSorobanData(10)
	_, err = NewTransaction(TransactionParams{SourceAccount: acct, Operations: []Operation{bump}, BaseFee: 100, Preconditions: infinite, SorobanData: &data})
	assert.Regexp(t, "FF21238", err)

	_, err = NewTransaction(TransactionParams{SourceAccount: acct, Operations: []Operation{&Payment{Destination: "GBAD", Amount: 1, Asset: NativeAsset{}}}, BaseFee: 100, Preconditions: infinite})
	assert.Regexp(t, "FF21235", err)

	_, err = NewTransaction(TransactionParams{SourceAccount: acct, Operations: []Operation{&ManageData{Name: ""}}, BaseFee: 100, Preconditions: infinite})
	assert.Regexp(t, "FF21235.*FF21245", err)

	_, err = NewTransaction(TransactionParams{SourceAccount: acct, Operations: []Operation{nil}, BaseFee: 100, Preconditions: infinite})
	assert.Regexp(t, "FF21235", err)

	_, err = NewTransaction(TransactionParams{SourceAccount: acct, Operations: []Operation{bump}, BaseFee: 100, Preconditions: infinite, Memo: MemoText("this memo is far too long to fit in 28 bytes")})
	assert.Regexp(t, "FF21243", err)

	// none of the failures consumed a sequence number
	assert.Equal(t, int64(10), acct.Sequence)
}

func TestNewTransactionFeeOverflow(t *testing.T) {
	_, acct := newTestAccount(t, 1)
	_, err := NewTransaction(TransactionParams{
		SourceAccount: acct,
		Operations:    []Operation{&BumpSequence{BumpTo: 1}, &BumpSequence{BumpTo: 2}},
		BaseFee:       1 << 31,
		Preconditions: Preconditions{TimeBounds: NewInfiniteTimeout()},
	})
	assert.Regexp(t, "FF21233", err)
	assert.Equal(t, int64(1), acct.Sequence)
}

func TestMemos(t *testing.T) {
	m, err := memoToXDR(nil)
	require.NoError(t, err)
	assert.Equal(t, xdr.MemoTypeMemoNone, m.Type)

	m, err = MemoText("hello").ToXDR()
	require.NoError(t, err)
	assert.Equal(t, "hello", *m.Text)

	m, err = MemoID(12).ToXDR()
	require.NoError(t, err)
	assert.Equal(t, uint64(12), *m.ID)

	m, err = MemoHash{1}.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, byte(1), m.Hash[0])

	m, err = MemoReturn{2}.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, byte(2), m.RetHash[0])
}

func TestPreconditionsV2(t *testing.T) {
	minSeq := int64(5)
	signer := keypair.MustRandom().Address()
	p := Preconditions{
		TimeBounds:                 NewTimebounds(10, 20),
		LedgerBounds:               &LedgerBounds{MinLedger: 1, MaxLedger: 100},
		MinSequenceNumber:          &minSeq,
		MinSequenceNumberAge:       30,
		MinSequenceNumberLedgerGap: 2,
		ExtraSigners:               []string{signer},
	}
	cond, err := p.toXDR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, xdr.PreconditionTypePrecondV2, cond.Type)
	assert.Equal(t, uint64(20), cond.V2.TimeBounds.MaxTime)
	assert.Equal(t, uint32(100), cond.V2.LedgerBounds.MaxLedger)
	assert.Equal(t, xdr.SignerKeyTypeSignerKeyTypeEd25519, cond.V2.ExtraSigners[0].Type)

	p.ExtraSigners = []string{signer, signer, signer}
	_, err = p.toXDR(context.Background())
	assert.Regexp(t, "FF21245", err)

	_, err = Preconditions{TimeBounds: NewTimebounds(20, 10)}.toXDR(context.Background())
	assert.Regexp(t, "FF21245", err)
}

func TestSignerKeyFromAddress(t *testing.T) {
	_, err := SignerKeyFromAddress(keypair.MustRandom().Seed())
	assert.Regexp(t, "FF21228", err)

	_, err = SignerKeyFromAddress("not a key")
	assert.Regexp(t, "FF21220", err)
}

func TestSignAndVerifyMultiSig(t *testing.T) {
	kp1, acct := newTestAccount(t, 1)
	kp2 := keypair.MustRandom()
	tx := newPaymentTx(t, acct)

	signed, err := tx.Sign(testPassphrase, kp2, kp1)
	require.NoError(t, err)
	assert.Len(t, signed.Signatures(), 2)
	assert.Empty(t, tx.Signatures(), "original is untouched")

	// identity comes from the hint, not the position
	require.NoError(t, VerifySignatures(signed, testPassphrase, kp1.Address(), kp2.Address()))

	err = VerifySignatures(signed, testPassphrase, keypair.MustRandom().Address())
	assert.Regexp(t, "FF21244", err)

	// signatures are bound to the network
	err = VerifySignatures(signed, network.PublicNetworkPassphrase, kp1.Address())
	assert.Regexp(t, "FF21244", err)

	sig := signed.Signatures()[1]
	assert.Equal(t, kp1.Hint(), sig.Hint)
	hash, err := tx.Hash(testPassphrase)
	require.NoError(t, err)
	assert.NoError(t, kp1.Verify(hash[:], sig.Signature))
}

func TestSignVerifyOnlyKeypairFails(t *testing.T) {
	kp, acct := newTestAccount(t, 1)
	tx := newPaymentTx(t, acct)
	_, err := tx.Sign(testPassphrase, kp.Public())
	assert.Regexp(t, "FF21223", err)
}

func TestSignatureLimit(t *testing.T) {
	kp, acct := newTestAccount(t, 1)
	tx := newPaymentTx(t, acct)
	kps := make([]keypair.KP, xdr.MaxSignatures+1)
	for i := range kps {
		kps[i] = kp
	}
	_, err := tx.Sign(testPassphrase, kps...)
	assert.Regexp(t, "FF21242", err)
}

func TestAddSignatureBase64(t *testing.T) {
	kp, acct := newTestAccount(t, 1)
	tx := newPaymentTx(t, acct)
	hash, err := tx.Hash(testPassphrase)
	require.NoError(t, err)
	raw, err := kp.Sign(hash[:])
	require.NoError(t, err)

	signed, err := tx.AddSignatureBase64(testPassphrase, kp.Address(), base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	require.NoError(t, VerifySignatures(signed, testPassphrase, kp.Address()))

	_, err = tx.AddSignatureBase64(testPassphrase, keypair.MustRandom().Address(), base64.StdEncoding.EncodeToString(raw))
	assert.Regexp(t, "FF21225", err)

	_, err = tx.AddSignatureBase64(testPassphrase, kp.Address(), "!!!")
	assert.Regexp(t, "FF21245", err)
}

func TestSignHashX(t *testing.T) {
	_, acct := newTestAccount(t, 1)
	tx := newPaymentTx(t, acct)
	signed, err := tx.SignHashX([]byte("preimage"))
	require.NoError(t, err)
	assert.Equal(t, xdr.Signature("preimage"), signed.Signatures()[0].Signature)

	_, err = tx.SignHashX(make([]byte, 65))
	assert.Regexp(t, "FF21245", err)
}

func TestWithSorobanDataKeepsSequence(t *testing.T) {
	_, acct := newTestAccount(t, 99)
	tx := newPaymentTx(t, acct, testInvokeOp())
	require.Equal(t, int64(100), tx.SequenceNumber())

	first, err := tx.WithSorobanData(testSorobanData(0), 5000)
	require.NoError(t, err)
	second, err := first.WithSorobanData(testSorobanData(7000), 7000)
	require.NoError(t, err)

	// attaching resources twice never touches the account again
	assert.Equal(t, int64(100), first.SequenceNumber())
	assert.Equal(t, int64(100), second.SequenceNumber())
	assert.Equal(t, int64(100), acct.Sequence)

	assert.Equal(t, int64(5100), first.MaxFee())
	assert.Equal(t, int64(5000), first.SorobanData().ResourceFee)
	assert.Equal(t, int64(7100), second.MaxFee())
	assert.Nil(t, tx.SorobanData())
}

func TestWithSorobanDataDropsSignatures(t *testing.T) {
	kp, acct := newTestAccount(t, 1)
	tx := newPaymentTx(t, acct, testInvokeOp())
	signed, err := tx.Sign(testPassphrase, kp)
	require.NoError(t, err)

	rebuilt, err := signed.WithSorobanData(testSorobanData(10), 10)
	require.NoError(t, err)
	assert.Empty(t, rebuilt.Signatures())

	h1, _ := signed.Hash(testPassphrase)
	h2, _ := rebuilt.Hash(testPassphrase)
	assert.NotEqual(t, h1, h2, "resources are part of the signed payload")
}

func TestWithSorobanDataNotSoroban(t *testing.T) {
	_, acct := newTestAccount(t, 1)
	tx := newPaymentTx(t, acct)
	_, err := tx.WithSorobanData(testSorobanData(1), 1)
	assert.Regexp(t, "FF21238", err)
	_, err = tx.WithOperationAuth(nil)
	assert.Regexp(t, "FF21246", err)
}

func TestWithOperationAuth(t *testing.T) {
	_, acct := newTestAccount(t, 1)
	tx := newPaymentTx(t, acct, testInvokeOp())
	entry := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{Type: xdr.SorobanCredentialsTypeSorobanCredentialsSourceAccount},
		RootInvocation: xdr.SorobanAuthorizedInvocation{
			Function: xdr.SorobanAuthorizedFunction{
				Type:       xdr.SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn,
				ContractFn: tx.Operations()[0].Body.InvokeHostFunctionOp.HostFunction.InvokeContract,
			},
		},
	}
	withAuth, err := tx.WithOperationAuth([]xdr.SorobanAuthorizationEntry{entry})
	require.NoError(t, err)
	assert.Len(t, withAuth.AuthEntries(), 1)
	assert.Empty(t, tx.AuthEntries())
	assert.Equal(t, tx.SequenceNumber(), withAuth.SequenceNumber())
}

func TestSorobanOperationCarriesResources(t *testing.T) {
	_, acct := newTestAccount(t, 1)
	data := testSorobanData(321)
	tx := newPaymentTx(t, acct, &RestoreFootprint{SorobanData: &data})
	assert.Equal(t, int64(421), tx.MaxFee())
	assert.Equal(t, int64(321), tx.SorobanData().ResourceFee)

	tx = newPaymentTx(t, acct, &ExtendFootprintTTL{ExtendTo: 1000, SorobanData: &data})
	assert.Equal(t, xdr.OperationTypeExtendFootprintTtl, tx.Operations()[0].Body.Type)

	_, err := NewTransaction(TransactionParams{
		SourceAccount: acct,
		Operations:    []Operation{&ExtendFootprintTTL{}},
		BaseFee:       100,
		Preconditions: Preconditions{TimeBounds: NewInfiniteTimeout()},
	})
	assert.Regexp(t, "FF21245", err)
}

func TestTransactionFromXDRRoundTrip(t *testing.T) {
	kp, acct := newTestAccount(t, 1)
	data := testSorobanData(50)
	tx := newPaymentTx(t, acct, testInvokeOp())
	tx, err := tx.WithSorobanData(data, 50)
	require.NoError(t, err)
	tx, err = tx.Sign(testPassphrase, kp)
	require.NoError(t, err)

	b64, err := tx.Base64()
	require.NoError(t, err)
	parsed, err := TransactionFromXDR(b64)
	require.NoError(t, err)
	ptx, ok := parsed.Transaction()
	require.True(t, ok)
	_, isFeeBump := parsed.FeeBump()
	assert.False(t, isFeeBump)

	again, err := ptx.Base64()
	require.NoError(t, err)
	assert.Equal(t, b64, again)
	assert.Equal(t, int64(100), ptx.BaseFee())
	require.NoError(t, VerifySignatures(ptx, testPassphrase, kp.Address()))

	_, err = TransactionFromXDR("")
	assert.Regexp(t, "FF21213", err)
	_, err = TransactionFromXDR(base64.StdEncoding.EncodeToString([]byte{0, 0, 0, 1}))
	assert.Error(t, err)
}

func TestTransactionFromXDRV0(t *testing.T) {
	kp := keypair.MustRandom()
	pub := kp.RawPublicKey()
	v0 := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeEnvelopeTypeTxV0,
		V0: &xdr.TransactionV0Envelope{
			Tx: xdr.TransactionV0{
				SourceAccountEd25519: pub,
				Fee:                  100,
				SeqNum:               5,
				Memo:                 xdr.Memo{Type: xdr.MemoTypeMemoNone},
				Operations: []xdr.Operation{{Body: xdr.OperationBody{
					Type:           xdr.OperationTypeBumpSequence,
					BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: 9},
				}}},
			},
		},
	}
	b64, err := xdr.MarshalBase64(v0)
	require.NoError(t, err)
	parsed, err := TransactionFromXDR(b64)
	require.NoError(t, err)
	tx, _ := parsed.Transaction()
	assert.Equal(t, kp.Address(), tx.SourceAccount())

	signed, err := tx.Sign(testPassphrase, kp)
	require.NoError(t, err)
	out, err := signed.Base64()
	require.NoError(t, err)
	var env xdr.TransactionEnvelope
	require.NoError(t, xdr.UnmarshalBase64(out, &env))
	assert.Equal(t, xdr.EnvelopeTypeEnvelopeTypeTxV0, env.Type)
	assert.Len(t, env.V0.Signatures, 1)

	// a V0 transaction hashes as its V1 form
	v1Hash, err := network.HashTransaction(env.V0.Tx.ToV1(), testPassphrase)
	require.NoError(t, err)
	h, err := signed.Hash(testPassphrase)
	require.NoError(t, err)
	assert.Equal(t, v1Hash, h)
}

func TestFeeBump(t *testing.T) {
	kp, acct := newTestAccount(t, 1)
	feePayer := keypair.MustRandom()
	inner := newPaymentTx(t, acct)

	_, err := NewFeeBumpTransaction(FeeBumpTransactionParams{Inner: inner, FeeAccount: feePayer.Address(), BaseFee: 200})
	assert.Regexp(t, "FF21241", err)

	inner, err = inner.Sign(testPassphrase, kp)
	require.NoError(t, err)

	_, err = NewFeeBumpTransaction(FeeBumpTransactionParams{Inner: inner, FeeAccount: feePayer.Address(), BaseFee: 50})
	assert.Regexp(t, "FF21240", err)

	_, err = NewFeeBumpTransaction(FeeBumpTransactionParams{FeeAccount: feePayer.Address(), BaseFee: 200})
	assert.Regexp(t, "FF21245", err)

	fb, err := NewFeeBumpTransaction(FeeBumpTransactionParams{Inner: inner, FeeAccount: feePayer.Address(), BaseFee: 200})
	require.NoError(t, err)
	assert.Equal(t, int64(400), fb.MaxFee())
	assert.Equal(t, feePayer.Address(), fb.FeeAccount())
	assert.Same(t, inner, fb.InnerTransaction())

	signed, err := fb.Sign(testPassphrase, feePayer)
	require.NoError(t, err)
	assert.Empty(t, fb.Signatures())
	require.NoError(t, VerifySignatures(signed, testPassphrase, feePayer.Address()))
	assert.Error(t, VerifySignatures(signed, testPassphrase, kp.Address()), "inner signer did not sign the fee bump")

	innerHash, _ := inner.Hash(testPassphrase)
	outerHash, _ := signed.Hash(testPassphrase)
	assert.NotEqual(t, innerHash, outerHash)

	b64, err := signed.Base64()
	require.NoError(t, err)
	parsed, err := TransactionFromXDR(b64)
	require.NoError(t, err)
	pfb, ok := parsed.FeeBump()
	require.True(t, ok)
	assert.Equal(t, int64(200), pfb.BaseFee())
	assert.Equal(t, int64(100), pfb.InnerTransaction().BaseFee())
	again, err := pfb.Base64()
	require.NoError(t, err)
	assert.Equal(t, b64, again)
}

func TestCreditAsset(t *testing.T) {
	issuer := keypair.MustRandom().Address()
	a, err := CreditAsset{Code: "USD", Issuer: issuer}.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.AssetTypeAssetTypeCreditAlphanum4, a.Type)
	assert.Equal(t, xdr.AssetCode4{'U', 'S', 'D', 0}, a.AlphaNum4.AssetCode)

	a, err = CreditAsset{Code: "LONGASSET", Issuer: issuer}.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.AssetTypeAssetTypeCreditAlphanum12, a.Type)

	_, err = CreditAsset{Code: "BAD CODE", Issuer: issuer}.ToXDR()
	assert.Regexp(t, "FF21245", err)
	_, err = CreditAsset{Code: "USD", Issuer: "nope"}.ToXDR()
	assert.Regexp(t, "FF21220", err)
	assert.False(t, CreditAsset{}.IsNative())
	assert.True(t, NativeAsset{}.IsNative())
}

func TestOperationSourceAccount(t *testing.T) {
	src := keypair.MustRandom().Address()
	op := &CreateAccount{Destination: keypair.MustRandom().Address(), Amount: 10_000_000, SourceAccount: src}
	require.NoError(t, op.Validate())
	x, err := op.BuildXDR()
	require.NoError(t, err)
	require.NotNil(t, x.SourceAccount)
	assert.Equal(t, src, op.GetSourceAccount())

	op.SourceAccount = "bad"
	_, err = op.BuildXDR()
	assert.Regexp(t, "FF21220", err)
}
