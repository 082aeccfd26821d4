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

package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type roundTripper interface {
	Encodable
	Decodable
}

// assertRoundTrip checks encode(decode(encode(v))) == encode(v)
func assertRoundTrip[T any, PT interface {
	*T
	roundTripper
}](t *testing.T, v T) []byte {
	b, err := Marshal(PT(&v))
	assert.NoError(t, err)
	var out T
	err = Unmarshal(b, PT(&out))
	assert.NoError(t, err)
	b2, err := Marshal(PT(&out))
	assert.NoError(t, err)
	assert.Equal(t, b, b2)
	return b
}

func testAccount(b byte) AccountID {
	var u Uint256
	for i := range u {
		u[i] = b
	}
	return AccountID{Type: PublicKeyTypePublicKeyTypeEd25519, Ed25519: &u}
}

func testMuxed(b byte) MuxedAccount {
	a := testAccount(b)
	return MuxedAccount{Type: CryptoKeyTypeKeyTypeEd25519, Ed25519: a.Ed25519}
}

func testContract(b byte) ScAddress {
	var id [32]byte
	id[0] = b
	return ContractAddress(id)
}

func TestScSymbolBytes(t *testing.T) {
	b, err := Marshal(ScvSymbol("hi"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 15, 0, 0, 0, 2, 'h', 'i', 0, 0}, b)
}

func TestScValAllArmsRoundTrip(t *testing.T) {
	code := uint32(7)
	hostCode := ScErrorCodeScecInvalidInput
	inst := ScContractInstance{Executable: ContractExecutable{Type: ContractExecutableTypeContractExecutableStellarAsset}}
	tp, dur := uint64(100), uint64(200)
	muxed := ScAddress{Type: ScAddressTypeScAddressTypeMuxedAccount, MuxedAccount: &MuxedEd25519Account{ID: 9}}
	vals := []ScVal{
		ScvBool(false),
		ScvVoid(),
		{Type: ScValTypeScvError, Error: &ScError{Type: ScErrorTypeSceContract, ContractCode: &code}},
		{Type: ScValTypeScvError, Error: &ScError{Type: ScErrorTypeSceAuth, Code: &hostCode}},
		ScvU32(1),
		ScvI32(-1),
		ScvU64(2),
		ScvI64(-2),
		{Type: ScValTypeScvTimepoint, Timepoint: &tp},
		{Type: ScValTypeScvDuration, Duration: &dur},
		ScvU128(1, 2),
		ScvI128FromInt64(-3),
		{Type: ScValTypeScvU256, U256: &UInt256Parts{HiHi: 1, LoLo: 4}},
		{Type: ScValTypeScvI256, I256: &Int256Parts{HiHi: -1, LoLo: 4}},
		ScvBytes([]byte{1, 2, 3}),
		ScvString("hello"),
		ScvSymbol("sym"),
		ScvVec(ScvU32(1)),
		ScvMap(ScMapEntry{Key: ScvSymbol("k"), Val: ScvU32(1)}),
		ScvAddress(AccountAddress([32]byte{1})),
		ScvAddress(testContract(2)),
		ScvAddress(muxed),
		{Type: ScValTypeScvContractInstance, Instance: &inst},
		ScvLedgerKeyContractInstance(),
		ScvLedgerKeyNonce(42),
	}
	for _, v := range vals {
		assertRoundTrip(t, v)
	}
}

func TestScValVecAbsentVersusEmpty(t *testing.T) {
	var absent ScVec
	b := assertRoundTrip(t, ScVal{Type: ScValTypeScvVec, Vec: &absent})
	assert.Equal(t, []byte{0, 0, 0, 16, 0, 0, 0, 0}, b)

	b = assertRoundTrip(t, ScvVec())
	assert.Equal(t, []byte{0, 0, 0, 16, 0, 0, 0, 1, 0, 0, 0, 0}, b)

	var v ScVal
	assert.NoError(t, Unmarshal(b, &v))
	vec, ok := v.GetVec()
	assert.True(t, ok)
	assert.Empty(t, vec)
}

func TestUnionArmMissing(t *testing.T) {
	_, err := Marshal(ScVal{Type: ScValTypeScvU32})
	assert.Regexp(t, "FF21208", err)

	_, err = Marshal(Memo{Type: MemoTypeMemoText})
	assert.Regexp(t, "FF21208", err)

	_, err = Marshal(LedgerKey{Type: LedgerEntryTypeContractData})
	assert.Regexp(t, "FF21208", err)
}

func TestUnknownDiscriminants(t *testing.T) {
	var ext TransactionExt
	assert.Regexp(t, "FF21205", Unmarshal([]byte{0, 0, 0, 2}, &ext))

	var ep ExtensionPoint
	assert.Regexp(t, "FF21205", Unmarshal([]byte{0, 0, 0, 1}, &ep))

	var a Asset
	assert.Regexp(t, "FF21205", Unmarshal([]byte{0, 0, 0, 3}, &a))

	var env TransactionEnvelope
	assert.Regexp(t, "FF21205", Unmarshal([]byte{0, 0, 0, 1}, &env))

	var v ScVal
	assert.Regexp(t, "FF21204", Unmarshal([]byte{0, 0, 0, 99}, &v))
}

func TestUnsupportedOperation(t *testing.T) {
	_, err := Marshal(OperationBody{Type: OperationTypeCreateClaimableBalance})
	assert.Regexp(t, "FF21212", err)

	var body OperationBody
	err = Unmarshal([]byte{0, 0, 0, 18}, &body)
	assert.Regexp(t, "FF21212.*RevokeSponsorship", err)
}

func TestAssetsRoundTrip(t *testing.T) {
	issuer := testAccount(3)
	a4 := Asset{Type: AssetTypeAssetTypeCreditAlphanum4, AlphaNum4: &AlphaNum4{AssetCode: AssetCode4{'U', 'S', 'D'}, Issuer: issuer}}
	a12 := Asset{Type: AssetTypeAssetTypeCreditAlphanum12, AlphaNum12: &AlphaNum12{AssetCode: AssetCode12{'L', 'O', 'N', 'G'}, Issuer: issuer}}
	native := Asset{Type: AssetTypeAssetTypeNative}
	assertRoundTrip(t, a4)
	assertRoundTrip(t, a12)
	b := assertRoundTrip(t, native)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	pool := PoolID{9}
	assertRoundTrip(t, TrustLineAsset{Type: AssetTypeAssetTypePoolShare, LiquidityPoolID: &pool})
	assertRoundTrip(t, ChangeTrustAsset{Type: AssetTypeAssetTypePoolShare, LiquidityPool: &LiquidityPoolParameters{
		ConstantProduct: &LiquidityPoolConstantProductParameters{AssetA: native, AssetB: a4, Fee: 30},
	}})
	code := AssetCode4{'U', 'S', 'D'}
	assertRoundTrip(t, AssetCode{Type: AssetTypeAssetTypeCreditAlphanum4, AssetCode4: &code})
}

func TestOperationsRoundTrip(t *testing.T) {
	dest := testAccount(4)
	muxed := testMuxed(5)
	native := Asset{Type: AssetTypeAssetTypeNative}
	weight := uint32(1)
	domain := "example.com"
	value := DataValue("v")
	pool := PoolID{1}
	ops := []OperationBody{
		{Type: OperationTypeCreateAccount, CreateAccountOp: &CreateAccountOp{Destination: dest, StartingBalance: 10}},
		{Type: OperationTypePayment, PaymentOp: &PaymentOp{Destination: muxed, Asset: native, Amount: 5}},
		{Type: OperationTypePathPaymentStrictReceive, PathPaymentStrictReceiveOp: &PathPaymentStrictReceiveOp{SendAsset: native, Destination: muxed, DestAsset: native, Path: []Asset{native}}},
		{Type: OperationTypeManageSellOffer, ManageSellOfferOp: &ManageSellOfferOp{Selling: native, Buying: native, Price: Price{N: 1, D: 2}}},
		{Type: OperationTypeCreatePassiveSellOffer, CreatePassiveSellOfferOp: &CreatePassiveSellOfferOp{Selling: native, Buying: native}},
		{Type: OperationTypeSetOptions, SetOptionsOp: &SetOptionsOp{MasterWeight: &weight, HomeDomain: &domain, Signer: &Signer{Key: SignerKey{Type: SignerKeyTypeSignerKeyTypeHashX, HashX: &Uint256{}}, Weight: 1}}},
		{Type: OperationTypeChangeTrust, ChangeTrustOp: &ChangeTrustOp{Line: ChangeTrustAsset{Type: AssetTypeAssetTypeNative}, Limit: 1}},
		{Type: OperationTypeAllowTrust, AllowTrustOp: &AllowTrustOp{Trustor: dest, Asset: AssetCode{Type: AssetTypeAssetTypeCreditAlphanum12, AssetCode12: &AssetCode12{}}}},
		{Type: OperationTypeAccountMerge, Destination: &muxed},
		{Type: OperationTypeInflation},
		{Type: OperationTypeManageData, ManageDataOp: &ManageDataOp{DataName: "k", DataValue: &value}},
		{Type: OperationTypeBumpSequence, BumpSequenceOp: &BumpSequenceOp{BumpTo: 100}},
		{Type: OperationTypeManageBuyOffer, ManageBuyOfferOp: &ManageBuyOfferOp{Selling: native, Buying: native}},
		{Type: OperationTypePathPaymentStrictSend, PathPaymentStrictSendOp: &PathPaymentStrictSendOp{SendAsset: native, Destination: muxed, DestAsset: native}},
		{Type: OperationTypeBeginSponsoringFutureReserves, BeginSponsoringFutureReserves: &BeginSponsoringFutureReservesOp{SponsoredID: dest}},
		{Type: OperationTypeEndSponsoringFutureReserves},
		{Type: OperationTypeClawback, ClawbackOp: &ClawbackOp{Asset: native, From: muxed, Amount: 1}},
		{Type: OperationTypeSetTrustLineFlags, SetTrustLineFlagsOp: &SetTrustLineFlagsOp{Trustor: dest, Asset: native}},
		{Type: OperationTypeLiquidityPoolDeposit, LiquidityPoolDepositOp: &LiquidityPoolDepositOp{LiquidityPoolID: pool}},
		{Type: OperationTypeLiquidityPoolWithdraw, LiquidityPoolWithdrawOp: &LiquidityPoolWithdrawOp{LiquidityPoolID: pool}},
		{Type: OperationTypeInvokeHostFunction, InvokeHostFunctionOp: &InvokeHostFunctionOp{HostFunction: testInvokeHostFunction()}},
		{Type: OperationTypeExtendFootprintTtl, ExtendFootprintTtlOp: &ExtendFootprintTtlOp{ExtendTo: 1000}},
		{Type: OperationTypeRestoreFootprint, RestoreFootprintOp: &RestoreFootprintOp{}},
	}
	for _, body := range ops {
		assertRoundTrip(t, Operation{SourceAccount: &muxed, Body: body})
	}
}

func testInvokeHostFunction() HostFunction {
	return HostFunction{
		Type: HostFunctionTypeHostFunctionTypeInvokeContract,
		InvokeContract: &InvokeContractArgs{
			ContractAddress: testContract(1),
			FunctionName:    "transfer",
			Args:            []ScVal{ScvAddress(AccountAddress([32]byte{1})), ScvI128FromInt64(100)},
		},
	}
}

func testAuthEntry() SorobanAuthorizationEntry {
	return SorobanAuthorizationEntry{
		Credentials: SorobanCredentials{
			Type: SorobanCredentialsTypeSorobanCredentialsAddress,
			Address: &SorobanAddressCredentials{
				Address:                   AccountAddress([32]byte{7}),
				Nonce:                     12345,
				SignatureExpirationLedger: 100,
				Signature:                 ScvVoid(),
			},
		},
		RootInvocation: SorobanAuthorizedInvocation{
			Function: SorobanAuthorizedFunction{
				Type:       SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn,
				ContractFn: testInvokeHostFunction().InvokeContract,
			},
			SubInvocations: []SorobanAuthorizedInvocation{},
		},
	}
}

func TestHostFunctionsRoundTrip(t *testing.T) {
	wasm := []byte{0, 'a', 's', 'm'}
	wasmHash := Hash{1}
	preimage := ContractIDPreimage{
		Type:        ContractIDPreimageTypeContractIDPreimageFromAddress,
		FromAddress: &ContractIDPreimageFromAddress{Address: AccountAddress([32]byte{1}), Salt: Uint256{2}},
	}
	exec := ContractExecutable{Type: ContractExecutableTypeContractExecutableWasm, WasmHash: &wasmHash}
	for _, hf := range []HostFunction{
		testInvokeHostFunction(),
		{Type: HostFunctionTypeHostFunctionTypeUploadContractWasm, Wasm: &wasm},
		{Type: HostFunctionTypeHostFunctionTypeCreateContract, CreateContract: &CreateContractArgs{ContractIDPreimage: preimage, Executable: exec}},
		{Type: HostFunctionTypeHostFunctionTypeCreateContractV2, CreateContractV2: &CreateContractArgsV2{ContractIDPreimage: preimage, Executable: exec, ConstructorArgs: []ScVal{ScvU32(1)}}},
	} {
		assertRoundTrip(t, InvokeHostFunctionOp{HostFunction: hf, Auth: []SorobanAuthorizationEntry{testAuthEntry()}})
	}
}

func TestSorobanTransactionDataRoundTrip(t *testing.T) {
	key := LedgerKey{Type: LedgerEntryTypeContractData, ContractData: &LedgerKeyContractData{
		Contract:   testContract(1),
		Key:        ScvLedgerKeyContractInstance(),
		Durability: ContractDataDurabilityPersistent,
	}}
	code := LedgerKey{Type: LedgerEntryTypeContractCode, ContractCode: &LedgerKeyContractCode{Hash: Hash{3}}}
	data := SorobanTransactionData{
		Ext: SorobanTransactionDataExt{V: 1, ResourceExt: &SorobanResourcesExtV0{ArchivedSorobanEntries: []uint32{0}}},
		Resources: SorobanResources{
			Footprint:     LedgerFootprint{ReadOnly: []LedgerKey{code}, ReadWrite: []LedgerKey{key}},
			Instructions:  1000,
			DiskReadBytes: 200,
			WriteBytes:    100,
		},
		ResourceFee: 5000,
	}
	assertRoundTrip(t, data)
	assert.True(t, key.Equals(data.Resources.Footprint.ReadWrite[0]))
	assert.False(t, key.Equals(code))
}

func TestLedgerKeysRoundTrip(t *testing.T) {
	acct := testAccount(1)
	cb := ClaimableBalanceID{V0: &Hash{1}}
	for _, k := range []LedgerKey{
		{Type: LedgerEntryTypeAccount, Account: &LedgerKeyAccount{AccountID: acct}},
		{Type: LedgerEntryTypeTrustline, TrustLine: &LedgerKeyTrustLine{AccountID: acct, Asset: TrustLineAsset{}}},
		{Type: LedgerEntryTypeOffer, Offer: &LedgerKeyOffer{SellerID: acct, OfferID: 1}},
		{Type: LedgerEntryTypeData, Data: &LedgerKeyData{AccountID: acct, DataName: "name"}},
		{Type: LedgerEntryTypeClaimableBalance, ClaimableBalance: &LedgerKeyClaimableBalance{BalanceID: cb}},
		{Type: LedgerEntryTypeLiquidityPool, LiquidityPool: &LedgerKeyLiquidityPool{}},
		{Type: LedgerEntryTypeConfigSetting, ConfigSetting: &LedgerKeyConfigSetting{ConfigSettingID: 16}},
		{Type: LedgerEntryTypeTtl, Ttl: &LedgerKeyTtl{KeyHash: Hash{1}}},
	} {
		assertRoundTrip(t, k)
	}
}

func TestLedgerEntryDataRoundTrip(t *testing.T) {
	acct := testAccount(1)
	sponsor := testAccount(2)
	entries := []LedgerEntryData{
		{Type: LedgerEntryTypeAccount, Account: &AccountEntry{
			AccountID: acct, Balance: 100, SeqNum: 4294967296, HomeDomain: "x",
			Thresholds: Thresholds{1, 0, 0, 0},
			V1: &AccountEntryExtensionV1{V2: &AccountEntryExtensionV2{
				SignerSponsoringIDs: []SponsorshipDescriptor{{SponsorID: &sponsor}, {}},
				V3:                  &AccountEntryExtensionV3{SeqLedger: 5, SeqTime: 6},
			}},
		}},
		{Type: LedgerEntryTypeContractData, ContractData: &ContractDataEntry{Contract: testContract(1), Key: ScvSymbol("k"), Val: ScvU32(1)}},
		{Type: LedgerEntryTypeContractCode, ContractCode: &ContractCodeEntry{V1: &ContractCodeEntryV1{}, Code: []byte{1}}},
		{Type: LedgerEntryTypeTtl, Ttl: &TtlEntry{LiveUntilLedgerSeq: 9}},
	}
	for _, e := range entries {
		assertRoundTrip(t, e)
	}

	var out LedgerEntryData
	assert.Regexp(t, "FF21212", Unmarshal([]byte{0, 0, 0, 2}, &out))
}

func testTransaction() Transaction {
	text := "memo"
	return Transaction{
		SourceAccount: testMuxed(1),
		Fee:           100,
		SeqNum:        101,
		Cond:          Preconditions{Type: PreconditionTypePrecondTime, TimeBounds: &TimeBounds{MaxTime: 1000}},
		Memo:          Memo{Type: MemoTypeMemoText, Text: &text},
		Operations: []Operation{{Body: OperationBody{
			Type:           OperationTypeBumpSequence,
			BumpSequenceOp: &BumpSequenceOp{BumpTo: 200},
		}}},
	}
}

func TestTransactionEnvelopesRoundTrip(t *testing.T) {
	tx := testTransaction()
	sig := DecoratedSignature{Hint: SignatureHint{1, 2, 3, 4}, Signature: make([]byte, 64)}
	v1 := TransactionV1Envelope{Tx: tx, Signatures: []DecoratedSignature{sig}}
	assertRoundTrip(t, TransactionEnvelope{Type: EnvelopeTypeEnvelopeTypeTx, V1: &v1})

	v0 := TransactionV0Envelope{Tx: TransactionV0{SourceAccountEd25519: Uint256{1}, Fee: 100, Memo: Memo{}, Operations: tx.Operations}}
	assertRoundTrip(t, TransactionEnvelope{Type: EnvelopeTypeEnvelopeTypeTxV0, V0: &v0})

	fb := FeeBumpTransactionEnvelope{Tx: FeeBumpTransaction{
		FeeSource: testMuxed(2),
		Fee:       400,
		InnerTx:   FeeBumpTransactionInnerTx{Type: EnvelopeTypeEnvelopeTypeTx, V1: &v1},
	}, Signatures: []DecoratedSignature{sig}}
	env := TransactionEnvelope{Type: EnvelopeTypeEnvelopeTypeTxFeeBump, FeeBump: &fb}
	assertRoundTrip(t, env)
	assert.Len(t, env.Signatures(), 1)
}

func TestPreconditionsV2RoundTrip(t *testing.T) {
	minSeq := int64(5)
	assertRoundTrip(t, Preconditions{Type: PreconditionTypePrecondV2, V2: &PreconditionsV2{
		TimeBounds:      &TimeBounds{MinTime: 1, MaxTime: 2},
		LedgerBounds:    &LedgerBounds{MinLedger: 3, MaxLedger: 4},
		MinSeqNum:       &minSeq,
		MinSeqAge:       10,
		MinSeqLedgerGap: 2,
		ExtraSigners:    []SignerKey{{Type: SignerKeyTypeSignerKeyTypeEd25519SignedPayload, Ed25519SignedPayload: &SignerKeyEd25519SignedPayload{Payload: []byte{1}}}},
	}})

	_, err := Marshal(PreconditionsV2{ExtraSigners: make([]SignerKey, 3)})
	assert.Regexp(t, "FF21203", err)
}

func TestTransactionV0ToV1(t *testing.T) {
	v0 := TransactionV0{SourceAccountEd25519: Uint256{1}, Fee: 100, SeqNum: 2, TimeBounds: &TimeBounds{MaxTime: 5}}
	v1 := v0.ToV1()
	assert.Equal(t, Uint256{1}, *v1.SourceAccount.Ed25519)
	assert.Equal(t, PreconditionTypePrecondTime, v1.Cond.Type)
	assert.Equal(t, uint64(5), v1.Cond.TimeBounds.MaxTime)
}

func TestHashIDPreimageRoundTrip(t *testing.T) {
	entry := testAuthEntry()
	assertRoundTrip(t, HashIDPreimage{
		Type: EnvelopeTypeEnvelopeTypeSorobanAuthorization,
		SorobanAuthorization: &HashIDPreimageSorobanAuthorization{
			NetworkID:                 Hash{1},
			Nonce:                     entry.Credentials.Address.Nonce,
			SignatureExpirationLedger: 50,
			Invocation:                entry.RootInvocation,
		},
	})
	assertRoundTrip(t, HashIDPreimage{
		Type: EnvelopeTypeEnvelopeTypeContractID,
		ContractID: &HashIDPreimageContractID{
			ContractIDPreimage: ContractIDPreimage{Type: ContractIDPreimageTypeContractIDPreimageFromAsset, FromAsset: &Asset{}},
		},
	})
	assertRoundTrip(t, HashIDPreimage{
		Type:        EnvelopeTypeEnvelopeTypeOpID,
		OperationID: &HashIDPreimageOperationID{SourceAccount: testAccount(1), SeqNum: 1, OpNum: 0},
	})
}

func TestDecodeTransactionResultHeader(t *testing.T) {
	e := NewEncoder()
	e.Int64(100)
	e.Int32(int32(TransactionResultCodeTxBadSeq))
	e.Uint32(0)
	h, err := DecodeTransactionResultHeader(e.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, int64(100), h.FeeCharged)
	assert.Equal(t, "txBAD_SEQ", h.Code.String())

	_, err = DecodeTransactionResultHeader([]byte{0})
	assert.Regexp(t, "FF21200", err)
}
