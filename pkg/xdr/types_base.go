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

import "fmt"

func enumString(names map[int32]string, v int32) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(%d)", v)
}

type Hash [32]byte

func (h Hash) EncodeTo(e *Encoder)    { e.FixedOpaque("Hash", h[:], 32) }
func (h *Hash) DecodeFrom(d *Decoder) { d.ReadFixed(h[:]) }

type Uint256 [32]byte

func (u Uint256) EncodeTo(e *Encoder)    { e.FixedOpaque("Uint256", u[:], 32) }
func (u *Uint256) DecodeFrom(d *Decoder) { d.ReadFixed(u[:]) }

type PoolID = Hash
type ContractID = Hash

type SignatureHint [4]byte

func (h SignatureHint) EncodeTo(e *Encoder)    { e.FixedOpaque("SignatureHint", h[:], 4) }
func (h *SignatureHint) DecodeFrom(d *Decoder) { d.ReadFixed(h[:]) }

type Signature []byte

func (s Signature) EncodeTo(e *Encoder)    { e.Opaque("Signature", s, 64) }
func (s *Signature) DecodeFrom(d *Decoder) { *s = d.Opaque("Signature", 64) }

type DecoratedSignature struct {
	Hint      SignatureHint
	Signature Signature
}

func (s DecoratedSignature) EncodeTo(e *Encoder) {
	s.Hint.EncodeTo(e)
	s.Signature.EncodeTo(e)
}

func (s *DecoratedSignature) DecodeFrom(d *Decoder) {
	s.Hint.DecodeFrom(d)
	s.Signature.DecodeFrom(d)
}

// ExtensionPoint is the reserved "union switch (int v) { case 0: void; }"
type ExtensionPoint struct {
	V int32
}

func (x ExtensionPoint) EncodeTo(e *Encoder) {
	if x.V != 0 {
		e.UnknownArm("ExtensionPoint", x.V)
		return
	}
	e.Int32(0)
}

func (x *ExtensionPoint) DecodeFrom(d *Decoder) {
	x.V = d.Int32()
	if d.err == nil && x.V != 0 {
		d.UnknownArm("ExtensionPoint", x.V)
	}
}

type PublicKeyType int32

const (
	PublicKeyTypePublicKeyTypeEd25519 PublicKeyType = 0
)

var publicKeyTypeNames = map[int32]string{
	0: "PublicKeyTypeEd25519",
}

func (t PublicKeyType) String() string        { return enumString(publicKeyTypeNames, int32(t)) }
func (t PublicKeyType) EncodeTo(e *Encoder)    { e.Enum("PublicKeyType", publicKeyTypeNames, int32(t)) }
func (t *PublicKeyType) DecodeFrom(d *Decoder) { *t = PublicKeyType(d.Enum("PublicKeyType", publicKeyTypeNames)) }

type PublicKey struct {
	Type    PublicKeyType
	Ed25519 *Uint256
}

// AccountID is the ed25519 public key of an account
type AccountID = PublicKey

func (k PublicKey) EncodeTo(e *Encoder) {
	k.Type.EncodeTo(e)
	switch k.Type {
	case PublicKeyTypePublicKeyTypeEd25519:
		if k.Ed25519 == nil {
			e.ArmMissing("PublicKey", int32(k.Type))
			return
		}
		k.Ed25519.EncodeTo(e)
	default:
		e.UnknownArm("PublicKey", int32(k.Type))
	}
}

func (k *PublicKey) DecodeFrom(d *Decoder) {
	k.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch k.Type {
	case PublicKeyTypePublicKeyTypeEd25519:
		k.Ed25519 = new(Uint256)
		k.Ed25519.DecodeFrom(d)
	default:
		d.UnknownArm("PublicKey", int32(k.Type))
	}
}

type CryptoKeyType int32

const (
	CryptoKeyTypeKeyTypeEd25519              CryptoKeyType = 0
	CryptoKeyTypeKeyTypePreAuthTx            CryptoKeyType = 1
	CryptoKeyTypeKeyTypeHashX                CryptoKeyType = 2
	CryptoKeyTypeKeyTypeEd25519SignedPayload CryptoKeyType = 3
	CryptoKeyTypeKeyTypeMuxedEd25519         CryptoKeyType = 0x100
)

var cryptoKeyTypeNames = map[int32]string{
	0:     "KeyTypeEd25519",
	1:     "KeyTypePreAuthTx",
	2:     "KeyTypeHashX",
	3:     "KeyTypeEd25519SignedPayload",
	0x100: "KeyTypeMuxedEd25519",
}

func (t CryptoKeyType) String() string        { return enumString(cryptoKeyTypeNames, int32(t)) }
func (t CryptoKeyType) EncodeTo(e *Encoder)    { e.Enum("CryptoKeyType", cryptoKeyTypeNames, int32(t)) }
func (t *CryptoKeyType) DecodeFrom(d *Decoder) { *t = CryptoKeyType(d.Enum("CryptoKeyType", cryptoKeyTypeNames)) }

type MuxedAccountMed25519 struct {
	ID      uint64
	Ed25519 Uint256
}

func (m MuxedAccountMed25519) EncodeTo(e *Encoder) {
	e.Uint64(m.ID)
	m.Ed25519.EncodeTo(e)
}

func (m *MuxedAccountMed25519) DecodeFrom(d *Decoder) {
	m.ID = d.Uint64()
	m.Ed25519.DecodeFrom(d)
}

type MuxedAccount struct {
	Type     CryptoKeyType
	Ed25519  *Uint256
	Med25519 *MuxedAccountMed25519
}

func (m MuxedAccount) EncodeTo(e *Encoder) {
	m.Type.EncodeTo(e)
	switch m.Type {
	case CryptoKeyTypeKeyTypeEd25519:
		if m.Ed25519 == nil {
			e.ArmMissing("MuxedAccount", int32(m.Type))
			return
		}
		m.Ed25519.EncodeTo(e)
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		if m.Med25519 == nil {
			e.ArmMissing("MuxedAccount", int32(m.Type))
			return
		}
		m.Med25519.EncodeTo(e)
	default:
		e.UnknownArm("MuxedAccount", int32(m.Type))
	}
}

func (m *MuxedAccount) DecodeFrom(d *Decoder) {
	m.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch m.Type {
	case CryptoKeyTypeKeyTypeEd25519:
		m.Ed25519 = new(Uint256)
		m.Ed25519.DecodeFrom(d)
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		m.Med25519 = new(MuxedAccountMed25519)
		m.Med25519.DecodeFrom(d)
	default:
		d.UnknownArm("MuxedAccount", int32(m.Type))
	}
}

// ToAccountID drops any multiplexing id
func (m MuxedAccount) ToAccountID() AccountID {
	var raw Uint256
	if m.Med25519 != nil {
		raw = m.Med25519.Ed25519
	} else if m.Ed25519 != nil {
		raw = *m.Ed25519
	}
	return AccountID{Type: PublicKeyTypePublicKeyTypeEd25519, Ed25519: &raw}
}

type SignerKeyType int32

const (
	SignerKeyTypeSignerKeyTypeEd25519              SignerKeyType = 0
	SignerKeyTypeSignerKeyTypePreAuthTx            SignerKeyType = 1
	SignerKeyTypeSignerKeyTypeHashX                SignerKeyType = 2
	SignerKeyTypeSignerKeyTypeEd25519SignedPayload SignerKeyType = 3
)

var signerKeyTypeNames = map[int32]string{
	0: "SignerKeyTypeEd25519",
	1: "SignerKeyTypePreAuthTx",
	2: "SignerKeyTypeHashX",
	3: "SignerKeyTypeEd25519SignedPayload",
}

func (t SignerKeyType) String() string        { return enumString(signerKeyTypeNames, int32(t)) }
func (t SignerKeyType) EncodeTo(e *Encoder)    { e.Enum("SignerKeyType", signerKeyTypeNames, int32(t)) }
func (t *SignerKeyType) DecodeFrom(d *Decoder) { *t = SignerKeyType(d.Enum("SignerKeyType", signerKeyTypeNames)) }

type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte
}

func (p SignerKeyEd25519SignedPayload) EncodeTo(e *Encoder) {
	p.Ed25519.EncodeTo(e)
	e.Opaque("SignerKeyEd25519SignedPayload.Payload", p.Payload, 64)
}

func (p *SignerKeyEd25519SignedPayload) DecodeFrom(d *Decoder) {
	p.Ed25519.DecodeFrom(d)
	p.Payload = d.Opaque("SignerKeyEd25519SignedPayload.Payload", 64)
}

type SignerKey struct {
	Type                 SignerKeyType
	Ed25519              *Uint256
	PreAuthTx            *Uint256
	HashX                *Uint256
	Ed25519SignedPayload *SignerKeyEd25519SignedPayload
}

func (k SignerKey) EncodeTo(e *Encoder) {
	k.Type.EncodeTo(e)
	var arm Encodable
	switch k.Type {
	case SignerKeyTypeSignerKeyTypeEd25519:
		if k.Ed25519 != nil {
			arm = k.Ed25519
		}
	case SignerKeyTypeSignerKeyTypePreAuthTx:
		if k.PreAuthTx != nil {
			arm = k.PreAuthTx
		}
	case SignerKeyTypeSignerKeyTypeHashX:
		if k.HashX != nil {
			arm = k.HashX
		}
	case SignerKeyTypeSignerKeyTypeEd25519SignedPayload:
		if k.Ed25519SignedPayload != nil {
			arm = k.Ed25519SignedPayload
		}
	default:
		e.UnknownArm("SignerKey", int32(k.Type))
		return
	}
	if arm == nil {
		e.ArmMissing("SignerKey", int32(k.Type))
		return
	}
	arm.EncodeTo(e)
}

func (k *SignerKey) DecodeFrom(d *Decoder) {
	k.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch k.Type {
	case SignerKeyTypeSignerKeyTypeEd25519:
		k.Ed25519 = new(Uint256)
		k.Ed25519.DecodeFrom(d)
	case SignerKeyTypeSignerKeyTypePreAuthTx:
		k.PreAuthTx = new(Uint256)
		k.PreAuthTx.DecodeFrom(d)
	case SignerKeyTypeSignerKeyTypeHashX:
		k.HashX = new(Uint256)
		k.HashX.DecodeFrom(d)
	case SignerKeyTypeSignerKeyTypeEd25519SignedPayload:
		k.Ed25519SignedPayload = new(SignerKeyEd25519SignedPayload)
		k.Ed25519SignedPayload.DecodeFrom(d)
	default:
		d.UnknownArm("SignerKey", int32(k.Type))
	}
}

type Signer struct {
	Key    SignerKey
	Weight uint32
}

func (s Signer) EncodeTo(e *Encoder) {
	s.Key.EncodeTo(e)
	e.Uint32(s.Weight)
}

func (s *Signer) DecodeFrom(d *Decoder) {
	s.Key.DecodeFrom(d)
	s.Weight = d.Uint32()
}

type AssetType int32

const (
	AssetTypeAssetTypeNative           AssetType = 0
	AssetTypeAssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeAssetTypeCreditAlphanum12 AssetType = 2
	AssetTypeAssetTypePoolShare        AssetType = 3
)

var assetTypeNames = map[int32]string{
	0: "AssetTypeNative",
	1: "AssetTypeCreditAlphanum4",
	2: "AssetTypeCreditAlphanum12",
	3: "AssetTypePoolShare",
}

func (t AssetType) String() string        { return enumString(assetTypeNames, int32(t)) }
func (t AssetType) EncodeTo(e *Encoder)    { e.Enum("AssetType", assetTypeNames, int32(t)) }
func (t *AssetType) DecodeFrom(d *Decoder) { *t = AssetType(d.Enum("AssetType", assetTypeNames)) }

type AssetCode4 [4]byte

func (c AssetCode4) EncodeTo(e *Encoder)    { e.FixedOpaque("AssetCode4", c[:], 4) }
func (c *AssetCode4) DecodeFrom(d *Decoder) { d.ReadFixed(c[:]) }

type AssetCode12 [12]byte

func (c AssetCode12) EncodeTo(e *Encoder)    { e.FixedOpaque("AssetCode12", c[:], 12) }
func (c *AssetCode12) DecodeFrom(d *Decoder) { d.ReadFixed(c[:]) }

type AlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountID
}

func (a AlphaNum4) EncodeTo(e *Encoder) {
	a.AssetCode.EncodeTo(e)
	a.Issuer.EncodeTo(e)
}

func (a *AlphaNum4) DecodeFrom(d *Decoder) {
	a.AssetCode.DecodeFrom(d)
	a.Issuer.DecodeFrom(d)
}

type AlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountID
}

func (a AlphaNum12) EncodeTo(e *Encoder) {
	a.AssetCode.EncodeTo(e)
	a.Issuer.EncodeTo(e)
}

func (a *AlphaNum12) DecodeFrom(d *Decoder) {
	a.AssetCode.DecodeFrom(d)
	a.Issuer.DecodeFrom(d)
}

// encodeAssetArms writes the arms shared by Asset, TrustLineAsset and
// ChangeTrustAsset, returning false for a type it does not cover
func encodeAssetArms(e *Encoder, union string, t AssetType, a4 *AlphaNum4, a12 *AlphaNum12) bool {
	switch t {
	case AssetTypeAssetTypeNative:
	case AssetTypeAssetTypeCreditAlphanum4:
		if a4 == nil {
			e.ArmMissing(union, int32(t))
			return true
		}
		a4.EncodeTo(e)
	case AssetTypeAssetTypeCreditAlphanum12:
		if a12 == nil {
			e.ArmMissing(union, int32(t))
			return true
		}
		a12.EncodeTo(e)
	default:
		return false
	}
	return true
}

func decodeAssetArms(d *Decoder, t AssetType, a4 **AlphaNum4, a12 **AlphaNum12) bool {
	switch t {
	case AssetTypeAssetTypeNative:
	case AssetTypeAssetTypeCreditAlphanum4:
		*a4 = new(AlphaNum4)
		(*a4).DecodeFrom(d)
	case AssetTypeAssetTypeCreditAlphanum12:
		*a12 = new(AlphaNum12)
		(*a12).DecodeFrom(d)
	default:
		return false
	}
	return true
}

type Asset struct {
	Type       AssetType
	AlphaNum4  *AlphaNum4
	AlphaNum12 *AlphaNum12
}

func (a Asset) EncodeTo(e *Encoder) {
	a.Type.EncodeTo(e)
	if e.err == nil && !encodeAssetArms(e, "Asset", a.Type, a.AlphaNum4, a.AlphaNum12) {
		e.UnknownArm("Asset", int32(a.Type))
	}
}

func (a *Asset) DecodeFrom(d *Decoder) {
	a.Type.DecodeFrom(d)
	if d.err == nil && !decodeAssetArms(d, a.Type, &a.AlphaNum4, &a.AlphaNum12) {
		d.UnknownArm("Asset", int32(a.Type))
	}
}

type TrustLineAsset struct {
	Type            AssetType
	AlphaNum4       *AlphaNum4
	AlphaNum12      *AlphaNum12
	LiquidityPoolID *PoolID
}

func (a TrustLineAsset) EncodeTo(e *Encoder) {
	a.Type.EncodeTo(e)
	if e.err != nil || encodeAssetArms(e, "TrustLineAsset", a.Type, a.AlphaNum4, a.AlphaNum12) {
		return
	}
	if a.Type != AssetTypeAssetTypePoolShare {
		e.UnknownArm("TrustLineAsset", int32(a.Type))
		return
	}
	if a.LiquidityPoolID == nil {
		e.ArmMissing("TrustLineAsset", int32(a.Type))
		return
	}
	a.LiquidityPoolID.EncodeTo(e)
}

func (a *TrustLineAsset) DecodeFrom(d *Decoder) {
	a.Type.DecodeFrom(d)
	if d.err != nil || decodeAssetArms(d, a.Type, &a.AlphaNum4, &a.AlphaNum12) {
		return
	}
	if a.Type != AssetTypeAssetTypePoolShare {
		d.UnknownArm("TrustLineAsset", int32(a.Type))
		return
	}
	a.LiquidityPoolID = new(PoolID)
	a.LiquidityPoolID.DecodeFrom(d)
}

type LiquidityPoolType int32

const (
	LiquidityPoolTypeLiquidityPoolConstantProduct LiquidityPoolType = 0
)

var liquidityPoolTypeNames = map[int32]string{
	0: "LiquidityPoolConstantProduct",
}

func (t LiquidityPoolType) String() string     { return enumString(liquidityPoolTypeNames, int32(t)) }
func (t LiquidityPoolType) EncodeTo(e *Encoder) { e.Enum("LiquidityPoolType", liquidityPoolTypeNames, int32(t)) }
func (t *LiquidityPoolType) DecodeFrom(d *Decoder) {
	*t = LiquidityPoolType(d.Enum("LiquidityPoolType", liquidityPoolTypeNames))
}

type LiquidityPoolConstantProductParameters struct {
	AssetA Asset
	AssetB Asset
	Fee    int32
}

func (p LiquidityPoolConstantProductParameters) EncodeTo(e *Encoder) {
	p.AssetA.EncodeTo(e)
	p.AssetB.EncodeTo(e)
	e.Int32(p.Fee)
}

func (p *LiquidityPoolConstantProductParameters) DecodeFrom(d *Decoder) {
	p.AssetA.DecodeFrom(d)
	p.AssetB.DecodeFrom(d)
	p.Fee = d.Int32()
}

type LiquidityPoolParameters struct {
	Type            LiquidityPoolType
	ConstantProduct *LiquidityPoolConstantProductParameters
}

func (p LiquidityPoolParameters) EncodeTo(e *Encoder) {
	p.Type.EncodeTo(e)
	switch p.Type {
	case LiquidityPoolTypeLiquidityPoolConstantProduct:
		if p.ConstantProduct == nil {
			e.ArmMissing("LiquidityPoolParameters", int32(p.Type))
			return
		}
		p.ConstantProduct.EncodeTo(e)
	default:
		e.UnknownArm("LiquidityPoolParameters", int32(p.Type))
	}
}

func (p *LiquidityPoolParameters) DecodeFrom(d *Decoder) {
	p.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch p.Type {
	case LiquidityPoolTypeLiquidityPoolConstantProduct:
		p.ConstantProduct = new(LiquidityPoolConstantProductParameters)
		p.ConstantProduct.DecodeFrom(d)
	default:
		d.UnknownArm("LiquidityPoolParameters", int32(p.Type))
	}
}

type ChangeTrustAsset struct {
	Type          AssetType
	AlphaNum4     *AlphaNum4
	AlphaNum12    *AlphaNum12
	LiquidityPool *LiquidityPoolParameters
}

func (a ChangeTrustAsset) EncodeTo(e *Encoder) {
	a.Type.EncodeTo(e)
	if e.err != nil || encodeAssetArms(e, "ChangeTrustAsset", a.Type, a.AlphaNum4, a.AlphaNum12) {
		return
	}
	if a.Type != AssetTypeAssetTypePoolShare {
		e.UnknownArm("ChangeTrustAsset", int32(a.Type))
		return
	}
	if a.LiquidityPool == nil {
		e.ArmMissing("ChangeTrustAsset", int32(a.Type))
		return
	}
	a.LiquidityPool.EncodeTo(e)
}

func (a *ChangeTrustAsset) DecodeFrom(d *Decoder) {
	a.Type.DecodeFrom(d)
	if d.err != nil || decodeAssetArms(d, a.Type, &a.AlphaNum4, &a.AlphaNum12) {
		return
	}
	if a.Type != AssetTypeAssetTypePoolShare {
		d.UnknownArm("ChangeTrustAsset", int32(a.Type))
		return
	}
	a.LiquidityPool = new(LiquidityPoolParameters)
	a.LiquidityPool.DecodeFrom(d)
}

// AssetCode is the code-only union used by AllowTrust and SetTrustLineFlags
type AssetCode struct {
	Type        AssetType
	AssetCode4  *AssetCode4
	AssetCode12 *AssetCode12
}

func (c AssetCode) EncodeTo(e *Encoder) {
	c.Type.EncodeTo(e)
	switch c.Type {
	case AssetTypeAssetTypeCreditAlphanum4:
		if c.AssetCode4 == nil {
			e.ArmMissing("AssetCode", int32(c.Type))
			return
		}
		c.AssetCode4.EncodeTo(e)
	case AssetTypeAssetTypeCreditAlphanum12:
		if c.AssetCode12 == nil {
			e.ArmMissing("AssetCode", int32(c.Type))
			return
		}
		c.AssetCode12.EncodeTo(e)
	default:
		e.UnknownArm("AssetCode", int32(c.Type))
	}
}

func (c *AssetCode) DecodeFrom(d *Decoder) {
	c.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch c.Type {
	case AssetTypeAssetTypeCreditAlphanum4:
		c.AssetCode4 = new(AssetCode4)
		c.AssetCode4.DecodeFrom(d)
	case AssetTypeAssetTypeCreditAlphanum12:
		c.AssetCode12 = new(AssetCode12)
		c.AssetCode12.DecodeFrom(d)
	default:
		d.UnknownArm("AssetCode", int32(c.Type))
	}
}

type Price struct {
	N int32
	D int32
}

func (p Price) EncodeTo(e *Encoder) {
	e.Int32(p.N)
	e.Int32(p.D)
}

func (p *Price) DecodeFrom(d *Decoder) {
	p.N = d.Int32()
	p.D = d.Int32()
}

type MemoType int32

const (
	MemoTypeMemoNone   MemoType = 0
	MemoTypeMemoText   MemoType = 1
	MemoTypeMemoID     MemoType = 2
	MemoTypeMemoHash   MemoType = 3
	MemoTypeMemoReturn MemoType = 4
)

var memoTypeNames = map[int32]string{
	0: "MemoNone",
	1: "MemoText",
	2: "MemoId",
	3: "MemoHash",
	4: "MemoReturn",
}

func (t MemoType) String() string        { return enumString(memoTypeNames, int32(t)) }
func (t MemoType) EncodeTo(e *Encoder)    { e.Enum("MemoType", memoTypeNames, int32(t)) }
func (t *MemoType) DecodeFrom(d *Decoder) { *t = MemoType(d.Enum("MemoType", memoTypeNames)) }

// MaxMemoTextLength is the byte limit of a text memo
const MaxMemoTextLength = 28

type Memo struct {
	Type    MemoType
	Text    *string
	ID      *uint64
	Hash    *Hash
	RetHash *Hash
}

func (m Memo) EncodeTo(e *Encoder) {
	m.Type.EncodeTo(e)
	switch m.Type {
	case MemoTypeMemoNone:
	case MemoTypeMemoText:
		if m.Text == nil {
			e.ArmMissing("Memo", int32(m.Type))
			return
		}
		e.String("Memo.Text", *m.Text, MaxMemoTextLength)
	case MemoTypeMemoID:
		if m.ID == nil {
			e.ArmMissing("Memo", int32(m.Type))
			return
		}
		e.Uint64(*m.ID)
	case MemoTypeMemoHash:
		if m.Hash == nil {
			e.ArmMissing("Memo", int32(m.Type))
			return
		}
		m.Hash.EncodeTo(e)
	case MemoTypeMemoReturn:
		if m.RetHash == nil {
			e.ArmMissing("Memo", int32(m.Type))
			return
		}
		m.RetHash.EncodeTo(e)
	default:
		e.UnknownArm("Memo", int32(m.Type))
	}
}

func (m *Memo) DecodeFrom(d *Decoder) {
	m.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch m.Type {
	case MemoTypeMemoNone:
	case MemoTypeMemoText:
		s := d.String("Memo.Text", MaxMemoTextLength)
		m.Text = &s
	case MemoTypeMemoID:
		id := d.Uint64()
		m.ID = &id
	case MemoTypeMemoHash:
		m.Hash = new(Hash)
		m.Hash.DecodeFrom(d)
	case MemoTypeMemoReturn:
		m.RetHash = new(Hash)
		m.RetHash.DecodeFrom(d)
	default:
		d.UnknownArm("Memo", int32(m.Type))
	}
}

type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

func (t TimeBounds) EncodeTo(e *Encoder) {
	e.Uint64(t.MinTime)
	e.Uint64(t.MaxTime)
}

func (t *TimeBounds) DecodeFrom(d *Decoder) {
	t.MinTime = d.Uint64()
	t.MaxTime = d.Uint64()
}

type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

func (l LedgerBounds) EncodeTo(e *Encoder) {
	e.Uint32(l.MinLedger)
	e.Uint32(l.MaxLedger)
}

func (l *LedgerBounds) DecodeFrom(d *Decoder) {
	l.MinLedger = d.Uint32()
	l.MaxLedger = d.Uint32()
}

type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *int64
	MinSeqAge       uint64
	MinSeqLedgerGap uint32
	ExtraSigners    []SignerKey
}

func (p PreconditionsV2) EncodeTo(e *Encoder) {
	encodeOptional(e, p.TimeBounds)
	encodeOptional(e, p.LedgerBounds)
	e.Present(p.MinSeqNum != nil)
	if p.MinSeqNum != nil {
		e.Int64(*p.MinSeqNum)
	}
	e.Uint64(p.MinSeqAge)
	e.Uint32(p.MinSeqLedgerGap)
	encodeArray(e, "PreconditionsV2.ExtraSigners", p.ExtraSigners, 2)
}

func (p *PreconditionsV2) DecodeFrom(d *Decoder) {
	p.TimeBounds = decodeOptional[TimeBounds](d)
	p.LedgerBounds = decodeOptional[LedgerBounds](d)
	if d.Present() {
		seq := d.Int64()
		p.MinSeqNum = &seq
	}
	p.MinSeqAge = d.Uint64()
	p.MinSeqLedgerGap = d.Uint32()
	p.ExtraSigners = decodeArray[SignerKey](d, "PreconditionsV2.ExtraSigners", 2)
}

type PreconditionType int32

const (
	PreconditionTypePrecondNone PreconditionType = 0
	PreconditionTypePrecondTime PreconditionType = 1
	PreconditionTypePrecondV2   PreconditionType = 2
)

var preconditionTypeNames = map[int32]string{
	0: "PrecondNone",
	1: "PrecondTime",
	2: "PrecondV2",
}

func (t PreconditionType) String() string     { return enumString(preconditionTypeNames, int32(t)) }
func (t PreconditionType) EncodeTo(e *Encoder) { e.Enum("PreconditionType", preconditionTypeNames, int32(t)) }
func (t *PreconditionType) DecodeFrom(d *Decoder) {
	*t = PreconditionType(d.Enum("PreconditionType", preconditionTypeNames))
}

type Preconditions struct {
	Type       PreconditionType
	TimeBounds *TimeBounds
	V2         *PreconditionsV2
}

func (p Preconditions) EncodeTo(e *Encoder) {
	p.Type.EncodeTo(e)
	switch p.Type {
	case PreconditionTypePrecondNone:
	case PreconditionTypePrecondTime:
		if p.TimeBounds == nil {
			e.ArmMissing("Preconditions", int32(p.Type))
			return
		}
		p.TimeBounds.EncodeTo(e)
	case PreconditionTypePrecondV2:
		if p.V2 == nil {
			e.ArmMissing("Preconditions", int32(p.Type))
			return
		}
		p.V2.EncodeTo(e)
	default:
		e.UnknownArm("Preconditions", int32(p.Type))
	}
}

func (p *Preconditions) DecodeFrom(d *Decoder) {
	p.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch p.Type {
	case PreconditionTypePrecondNone:
	case PreconditionTypePrecondTime:
		p.TimeBounds = new(TimeBounds)
		p.TimeBounds.DecodeFrom(d)
	case PreconditionTypePrecondV2:
		p.V2 = new(PreconditionsV2)
		p.V2.DecodeFrom(d)
	default:
		d.UnknownArm("Preconditions", int32(p.Type))
	}
}
