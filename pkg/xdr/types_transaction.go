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

// MaxOperations is the operation limit of a transaction
const MaxOperations = 100

// MaxSignatures is the signature limit of an envelope
const MaxSignatures = 20

type EnvelopeType int32

const (
	EnvelopeTypeEnvelopeTypeTxV0                 EnvelopeType = 0
	EnvelopeTypeEnvelopeTypeScp                  EnvelopeType = 1
	EnvelopeTypeEnvelopeTypeTx                   EnvelopeType = 2
	EnvelopeTypeEnvelopeTypeAuth                 EnvelopeType = 3
	EnvelopeTypeEnvelopeTypeScpvalue             EnvelopeType = 4
	EnvelopeTypeEnvelopeTypeTxFeeBump            EnvelopeType = 5
	EnvelopeTypeEnvelopeTypeOpID                 EnvelopeType = 6
	EnvelopeTypeEnvelopeTypePoolRevokeOpID       EnvelopeType = 7
	EnvelopeTypeEnvelopeTypeContractID           EnvelopeType = 8
	EnvelopeTypeEnvelopeTypeSorobanAuthorization EnvelopeType = 9
)

var envelopeTypeNames = map[int32]string{
	0: "EnvelopeTypeTxV0",
	1: "EnvelopeTypeScp",
	2: "EnvelopeTypeTx",
	3: "EnvelopeTypeAuth",
	4: "EnvelopeTypeScpvalue",
	5: "EnvelopeTypeTxFeeBump",
	6: "EnvelopeTypeOpId",
	7: "EnvelopeTypePoolRevokeOpId",
	8: "EnvelopeTypeContractId",
	9: "EnvelopeTypeSorobanAuthorization",
}

func (t EnvelopeType) String() string        { return enumString(envelopeTypeNames, int32(t)) }
func (t EnvelopeType) EncodeTo(e *Encoder)    { e.Enum("EnvelopeType", envelopeTypeNames, int32(t)) }
func (t *EnvelopeType) DecodeFrom(d *Decoder) { *t = EnvelopeType(d.Enum("EnvelopeType", envelopeTypeNames)) }

type TransactionExt struct {
	V           int32
	SorobanData *SorobanTransactionData
}

func (x TransactionExt) EncodeTo(e *Encoder) {
	switch x.V {
	case 0:
		e.Int32(0)
	case 1:
		if x.SorobanData == nil {
			e.ArmMissing("TransactionExt", x.V)
			return
		}
		e.Int32(1)
		x.SorobanData.EncodeTo(e)
	default:
		e.UnknownArm("TransactionExt", x.V)
	}
}

func (x *TransactionExt) DecodeFrom(d *Decoder) {
	x.V = d.Int32()
	if d.err != nil {
		return
	}
	switch x.V {
	case 0:
	case 1:
		x.SorobanData = new(SorobanTransactionData)
		x.SorobanData.DecodeFrom(d)
	default:
		d.UnknownArm("TransactionExt", x.V)
	}
}

type Transaction struct {
	SourceAccount MuxedAccount
	Fee           uint32
	SeqNum        int64
	Cond          Preconditions
	Memo          Memo
	Operations    []Operation
	Ext           TransactionExt
}

func (t Transaction) EncodeTo(e *Encoder) {
	t.SourceAccount.EncodeTo(e)
	e.Uint32(t.Fee)
	e.Int64(t.SeqNum)
	t.Cond.EncodeTo(e)
	t.Memo.EncodeTo(e)
	encodeArray(e, "Transaction.Operations", t.Operations, MaxOperations)
	t.Ext.EncodeTo(e)
}

func (t *Transaction) DecodeFrom(d *Decoder) {
	t.SourceAccount.DecodeFrom(d)
	t.Fee = d.Uint32()
	t.SeqNum = d.Int64()
	t.Cond.DecodeFrom(d)
	t.Memo.DecodeFrom(d)
	t.Operations = decodeArray[Operation](d, "Transaction.Operations", MaxOperations)
	t.Ext.DecodeFrom(d)
}

// TransactionV0 is the legacy transaction form, with a bare ed25519 source
type TransactionV0 struct {
	SourceAccountEd25519 Uint256
	Fee                  uint32
	SeqNum               int64
	TimeBounds           *TimeBounds
	Memo                 Memo
	Operations           []Operation
	Ext                  ExtensionPoint
}

func (t TransactionV0) EncodeTo(e *Encoder) {
	t.SourceAccountEd25519.EncodeTo(e)
	e.Uint32(t.Fee)
	e.Int64(t.SeqNum)
	encodeOptional(e, t.TimeBounds)
	t.Memo.EncodeTo(e)
	encodeArray(e, "TransactionV0.Operations", t.Operations, MaxOperations)
	t.Ext.EncodeTo(e)
}

func (t *TransactionV0) DecodeFrom(d *Decoder) {
	t.SourceAccountEd25519.DecodeFrom(d)
	t.Fee = d.Uint32()
	t.SeqNum = d.Int64()
	t.TimeBounds = decodeOptional[TimeBounds](d)
	t.Memo.DecodeFrom(d)
	t.Operations = decodeArray[Operation](d, "TransactionV0.Operations", MaxOperations)
	t.Ext.DecodeFrom(d)
}

// ToV1 returns the equivalent V1 transaction, which is also the form V0 transactions are hashed in
func (t TransactionV0) ToV1() Transaction {
	src := t.SourceAccountEd25519
	cond := Preconditions{Type: PreconditionTypePrecondNone}
	if t.TimeBounds != nil {
		tb := *t.TimeBounds
		cond = Preconditions{Type: PreconditionTypePrecondTime, TimeBounds: &tb}
	}
	return Transaction{
		SourceAccount: MuxedAccount{Type: CryptoKeyTypeKeyTypeEd25519, Ed25519: &src},
		Fee:           t.Fee,
		SeqNum:        t.SeqNum,
		Cond:          cond,
		Memo:          t.Memo,
		Operations:    t.Operations,
	}
}

type TransactionV0Envelope struct {
	Tx         TransactionV0
	Signatures []DecoratedSignature
}

func (v TransactionV0Envelope) EncodeTo(e *Encoder) {
	v.Tx.EncodeTo(e)
	encodeArray(e, "TransactionV0Envelope.Signatures", v.Signatures, MaxSignatures)
}

func (v *TransactionV0Envelope) DecodeFrom(d *Decoder) {
	v.Tx.DecodeFrom(d)
	v.Signatures = decodeArray[DecoratedSignature](d, "TransactionV0Envelope.Signatures", MaxSignatures)
}

type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

func (v TransactionV1Envelope) EncodeTo(e *Encoder) {
	v.Tx.EncodeTo(e)
	encodeArray(e, "TransactionV1Envelope.Signatures", v.Signatures, MaxSignatures)
}

func (v *TransactionV1Envelope) DecodeFrom(d *Decoder) {
	v.Tx.DecodeFrom(d)
	v.Signatures = decodeArray[DecoratedSignature](d, "TransactionV1Envelope.Signatures", MaxSignatures)
}

type FeeBumpTransactionInnerTx struct {
	Type EnvelopeType
	V1   *TransactionV1Envelope
}

func (i FeeBumpTransactionInnerTx) EncodeTo(e *Encoder) {
	i.Type.EncodeTo(e)
	switch i.Type {
	case EnvelopeTypeEnvelopeTypeTx:
		if i.V1 == nil {
			e.ArmMissing("FeeBumpTransactionInnerTx", int32(i.Type))
			return
		}
		i.V1.EncodeTo(e)
	default:
		e.UnknownArm("FeeBumpTransactionInnerTx", int32(i.Type))
	}
}

func (i *FeeBumpTransactionInnerTx) DecodeFrom(d *Decoder) {
	i.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch i.Type {
	case EnvelopeTypeEnvelopeTypeTx:
		i.V1 = new(TransactionV1Envelope)
		i.V1.DecodeFrom(d)
	default:
		d.UnknownArm("FeeBumpTransactionInnerTx", int32(i.Type))
	}
}

type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       int64
	InnerTx   FeeBumpTransactionInnerTx
	Ext       ExtensionPoint
}

func (f FeeBumpTransaction) EncodeTo(e *Encoder) {
	f.FeeSource.EncodeTo(e)
	e.Int64(f.Fee)
	f.InnerTx.EncodeTo(e)
	f.Ext.EncodeTo(e)
}

func (f *FeeBumpTransaction) DecodeFrom(d *Decoder) {
	f.FeeSource.DecodeFrom(d)
	f.Fee = d.Int64()
	f.InnerTx.DecodeFrom(d)
	f.Ext.DecodeFrom(d)
}

type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature
}

func (v FeeBumpTransactionEnvelope) EncodeTo(e *Encoder) {
	v.Tx.EncodeTo(e)
	encodeArray(e, "FeeBumpTransactionEnvelope.Signatures", v.Signatures, MaxSignatures)
}

func (v *FeeBumpTransactionEnvelope) DecodeFrom(d *Decoder) {
	v.Tx.DecodeFrom(d)
	v.Signatures = decodeArray[DecoratedSignature](d, "FeeBumpTransactionEnvelope.Signatures", MaxSignatures)
}

type TransactionEnvelope struct {
	Type    EnvelopeType
	V0      *TransactionV0Envelope
	V1      *TransactionV1Envelope
	FeeBump *FeeBumpTransactionEnvelope
}

func (v TransactionEnvelope) EncodeTo(e *Encoder) {
	v.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	switch v.Type {
	case EnvelopeTypeEnvelopeTypeTxV0:
		if v.V0 != nil {
			v.V0.EncodeTo(e)
			return
		}
	case EnvelopeTypeEnvelopeTypeTx:
		if v.V1 != nil {
			v.V1.EncodeTo(e)
			return
		}
	case EnvelopeTypeEnvelopeTypeTxFeeBump:
		if v.FeeBump != nil {
			v.FeeBump.EncodeTo(e)
			return
		}
	default:
		e.UnknownArm("TransactionEnvelope", int32(v.Type))
		return
	}
	e.ArmMissing("TransactionEnvelope", int32(v.Type))
}

func (v *TransactionEnvelope) DecodeFrom(d *Decoder) {
	v.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch v.Type {
	case EnvelopeTypeEnvelopeTypeTxV0:
		v.V0 = new(TransactionV0Envelope)
		v.V0.DecodeFrom(d)
	case EnvelopeTypeEnvelopeTypeTx:
		v.V1 = new(TransactionV1Envelope)
		v.V1.DecodeFrom(d)
	case EnvelopeTypeEnvelopeTypeTxFeeBump:
		v.FeeBump = new(FeeBumpTransactionEnvelope)
		v.FeeBump.DecodeFrom(d)
	default:
		d.UnknownArm("TransactionEnvelope", int32(v.Type))
	}
}

// Signatures returns the signatures of the outermost transaction
func (v TransactionEnvelope) Signatures() []DecoratedSignature {
	switch {
	case v.V0 != nil:
		return v.V0.Signatures
	case v.V1 != nil:
		return v.V1.Signatures
	case v.FeeBump != nil:
		return v.FeeBump.Signatures
	default:
		return nil
	}
}

type TransactionSignaturePayloadTaggedTransaction struct {
	Type    EnvelopeType
	Tx      *Transaction
	FeeBump *FeeBumpTransaction
}

func (t TransactionSignaturePayloadTaggedTransaction) EncodeTo(e *Encoder) {
	t.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	switch t.Type {
	case EnvelopeTypeEnvelopeTypeTx:
		if t.Tx != nil {
			t.Tx.EncodeTo(e)
			return
		}
	case EnvelopeTypeEnvelopeTypeTxFeeBump:
		if t.FeeBump != nil {
			t.FeeBump.EncodeTo(e)
			return
		}
	default:
		e.UnknownArm("TransactionSignaturePayloadTaggedTransaction", int32(t.Type))
		return
	}
	e.ArmMissing("TransactionSignaturePayloadTaggedTransaction", int32(t.Type))
}

func (t *TransactionSignaturePayloadTaggedTransaction) DecodeFrom(d *Decoder) {
	t.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch t.Type {
	case EnvelopeTypeEnvelopeTypeTx:
		t.Tx = new(Transaction)
		t.Tx.DecodeFrom(d)
	case EnvelopeTypeEnvelopeTypeTxFeeBump:
		t.FeeBump = new(FeeBumpTransaction)
		t.FeeBump.DecodeFrom(d)
	default:
		d.UnknownArm("TransactionSignaturePayloadTaggedTransaction", int32(t.Type))
	}
}

// TransactionSignaturePayload is what gets hashed and signed for a transaction
type TransactionSignaturePayload struct {
	NetworkID         Hash
	TaggedTransaction TransactionSignaturePayloadTaggedTransaction
}

func (p TransactionSignaturePayload) EncodeTo(e *Encoder) {
	p.NetworkID.EncodeTo(e)
	p.TaggedTransaction.EncodeTo(e)
}

func (p *TransactionSignaturePayload) DecodeFrom(d *Decoder) {
	p.NetworkID.DecodeFrom(d)
	p.TaggedTransaction.DecodeFrom(d)
}

type HashIDPreimageOperationID struct {
	SourceAccount AccountID
	SeqNum        int64
	OpNum         uint32
}

func (p HashIDPreimageOperationID) EncodeTo(e *Encoder) {
	p.SourceAccount.EncodeTo(e)
	e.Int64(p.SeqNum)
	e.Uint32(p.OpNum)
}

func (p *HashIDPreimageOperationID) DecodeFrom(d *Decoder) {
	p.SourceAccount.DecodeFrom(d)
	p.SeqNum = d.Int64()
	p.OpNum = d.Uint32()
}

type HashIDPreimageRevokeID struct {
	SourceAccount   AccountID
	SeqNum          int64
	OpNum           uint32
	LiquidityPoolID PoolID
	Asset           Asset
}

func (p HashIDPreimageRevokeID) EncodeTo(e *Encoder) {
	p.SourceAccount.EncodeTo(e)
	e.Int64(p.SeqNum)
	e.Uint32(p.OpNum)
	p.LiquidityPoolID.EncodeTo(e)
	p.Asset.EncodeTo(e)
}

func (p *HashIDPreimageRevokeID) DecodeFrom(d *Decoder) {
	p.SourceAccount.DecodeFrom(d)
	p.SeqNum = d.Int64()
	p.OpNum = d.Uint32()
	p.LiquidityPoolID.DecodeFrom(d)
	p.Asset.DecodeFrom(d)
}

type HashIDPreimageContractID struct {
	NetworkID          Hash
	ContractIDPreimage ContractIDPreimage
}

func (p HashIDPreimageContractID) EncodeTo(e *Encoder) {
	p.NetworkID.EncodeTo(e)
	p.ContractIDPreimage.EncodeTo(e)
}

func (p *HashIDPreimageContractID) DecodeFrom(d *Decoder) {
	p.NetworkID.DecodeFrom(d)
	p.ContractIDPreimage.DecodeFrom(d)
}

type HashIDPreimageSorobanAuthorization struct {
	NetworkID                 Hash
	Nonce                     int64
	SignatureExpirationLedger uint32
	Invocation                SorobanAuthorizedInvocation
}

func (p HashIDPreimageSorobanAuthorization) EncodeTo(e *Encoder) {
	p.NetworkID.EncodeTo(e)
	e.Int64(p.Nonce)
	e.Uint32(p.SignatureExpirationLedger)
	p.Invocation.EncodeTo(e)
}

func (p *HashIDPreimageSorobanAuthorization) DecodeFrom(d *Decoder) {
	p.NetworkID.DecodeFrom(d)
	p.Nonce = d.Int64()
	p.SignatureExpirationLedger = d.Uint32()
	p.Invocation.DecodeFrom(d)
}

// HashIDPreimage is hashed to derive operation ids, contract ids and the
// payload of Soroban authorization signatures
type HashIDPreimage struct {
	Type                 EnvelopeType
	OperationID          *HashIDPreimageOperationID
	RevokeID             *HashIDPreimageRevokeID
	ContractID           *HashIDPreimageContractID
	SorobanAuthorization *HashIDPreimageSorobanAuthorization
}

func (p HashIDPreimage) EncodeTo(e *Encoder) {
	p.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	switch p.Type {
	case EnvelopeTypeEnvelopeTypeOpID:
		if p.OperationID != nil {
			p.OperationID.EncodeTo(e)
			return
		}
	case EnvelopeTypeEnvelopeTypePoolRevokeOpID:
		if p.RevokeID != nil {
			p.RevokeID.EncodeTo(e)
			return
		}
	case EnvelopeTypeEnvelopeTypeContractID:
		if p.ContractID != nil {
			p.ContractID.EncodeTo(e)
			return
		}
	case EnvelopeTypeEnvelopeTypeSorobanAuthorization:
		if p.SorobanAuthorization != nil {
			p.SorobanAuthorization.EncodeTo(e)
			return
		}
	default:
		e.UnknownArm("HashIDPreimage", int32(p.Type))
		return
	}
	e.ArmMissing("HashIDPreimage", int32(p.Type))
}

func (p *HashIDPreimage) DecodeFrom(d *Decoder) {
	p.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch p.Type {
	case EnvelopeTypeEnvelopeTypeOpID:
		p.OperationID = new(HashIDPreimageOperationID)
		p.OperationID.DecodeFrom(d)
	case EnvelopeTypeEnvelopeTypePoolRevokeOpID:
		p.RevokeID = new(HashIDPreimageRevokeID)
		p.RevokeID.DecodeFrom(d)
	case EnvelopeTypeEnvelopeTypeContractID:
		p.ContractID = new(HashIDPreimageContractID)
		p.ContractID.DecodeFrom(d)
	case EnvelopeTypeEnvelopeTypeSorobanAuthorization:
		p.SorobanAuthorization = new(HashIDPreimageSorobanAuthorization)
		p.SorobanAuthorization.DecodeFrom(d)
	default:
		d.UnknownArm("HashIDPreimage", int32(p.Type))
	}
}

type TransactionResultCode int32

const (
	TransactionResultCodeTxFeeBumpInnerSuccess TransactionResultCode = 1
	TransactionResultCodeTxSuccess             TransactionResultCode = 0
	TransactionResultCodeTxFailed              TransactionResultCode = -1
	TransactionResultCodeTxTooEarly            TransactionResultCode = -2
	TransactionResultCodeTxTooLate             TransactionResultCode = -3
	TransactionResultCodeTxMissingOperation    TransactionResultCode = -4
	TransactionResultCodeTxBadSeq              TransactionResultCode = -5
	TransactionResultCodeTxBadAuth             TransactionResultCode = -6
	TransactionResultCodeTxInsufficientBalance TransactionResultCode = -7
	TransactionResultCodeTxNoAccount           TransactionResultCode = -8
	TransactionResultCodeTxInsufficientFee     TransactionResultCode = -9
	TransactionResultCodeTxBadAuthExtra        TransactionResultCode = -10
	TransactionResultCodeTxInternalError       TransactionResultCode = -11
	TransactionResultCodeTxNotSupported        TransactionResultCode = -12
	TransactionResultCodeTxFeeBumpInnerFailed  TransactionResultCode = -13
	TransactionResultCodeTxBadSponsorship      TransactionResultCode = -14
	TransactionResultCodeTxBadMinSeqAgeOrGap   TransactionResultCode = -15
	TransactionResultCodeTxMalformed           TransactionResultCode = -16
	TransactionResultCodeTxSorobanInvalid      TransactionResultCode = -17
)

var transactionResultCodeNames = map[int32]string{
	1:   "txFEE_BUMP_INNER_SUCCESS",
	0:   "txSUCCESS",
	-1:  "txFAILED",
	-2:  "txTOO_EARLY",
	-3:  "txTOO_LATE",
	-4:  "txMISSING_OPERATION",
	-5:  "txBAD_SEQ",
	-6:  "txBAD_AUTH",
	-7:  "txINSUFFICIENT_BALANCE",
	-8:  "txNO_ACCOUNT",
	-9:  "txINSUFFICIENT_FEE",
	-10: "txBAD_AUTH_EXTRA",
	-11: "txINTERNAL_ERROR",
	-12: "txNOT_SUPPORTED",
	-13: "txFEE_BUMP_INNER_FAILED",
	-14: "txBAD_SPONSORSHIP",
	-15: "txBAD_MIN_SEQ_AGE_OR_GAP",
	-16: "txMALFORMED",
	-17: "txSOROBAN_INVALID",
}

func (c TransactionResultCode) String() string { return enumString(transactionResultCodeNames, int32(c)) }
func (c TransactionResultCode) EncodeTo(e *Encoder) {
	e.Enum("TransactionResultCode", transactionResultCodeNames, int32(c))
}
func (c *TransactionResultCode) DecodeFrom(d *Decoder) {
	*c = TransactionResultCode(d.Enum("TransactionResultCode", transactionResultCodeNames))
}

// TransactionResultHeader is the leading fee and result code of a
// TransactionResult, enough to explain why a transaction failed
type TransactionResultHeader struct {
	FeeCharged int64
	Code       TransactionResultCode
}

// DecodeTransactionResultHeader reads the header of a TransactionResult,
// ignoring the per-operation results that follow it
func DecodeTransactionResultHeader(b []byte) (*TransactionResultHeader, error) {
	d := NewDecoder(b)
	h := &TransactionResultHeader{}
	h.FeeCharged = d.Int64()
	h.Code.DecodeFrom(d)
	if d.err != nil {
		return nil, d.err
	}
	return h, nil
}
