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

type ScValType int32

const (
	ScValTypeScvBool                      ScValType = 0
	ScValTypeScvVoid                      ScValType = 1
	ScValTypeScvError                     ScValType = 2
	ScValTypeScvU32                       ScValType = 3
	ScValTypeScvI32                       ScValType = 4
	ScValTypeScvU64                       ScValType = 5
	ScValTypeScvI64                       ScValType = 6
	ScValTypeScvTimepoint                 ScValType = 7
	ScValTypeScvDuration                  ScValType = 8
	ScValTypeScvU128                      ScValType = 9
	ScValTypeScvI128                      ScValType = 10
	ScValTypeScvU256                      ScValType = 11
	ScValTypeScvI256                      ScValType = 12
	ScValTypeScvBytes                     ScValType = 13
	ScValTypeScvString                    ScValType = 14
	ScValTypeScvSymbol                    ScValType = 15
	ScValTypeScvVec                       ScValType = 16
	ScValTypeScvMap                       ScValType = 17
	ScValTypeScvAddress                   ScValType = 18
	ScValTypeScvContractInstance          ScValType = 19
	ScValTypeScvLedgerKeyContractInstance ScValType = 20
	ScValTypeScvLedgerKeyNonce            ScValType = 21
)

var scValTypeNames = map[int32]string{
	0:  "ScvBool",
	1:  "ScvVoid",
	2:  "ScvError",
	3:  "ScvU32",
	4:  "ScvI32",
	5:  "ScvU64",
	6:  "ScvI64",
	7:  "ScvTimepoint",
	8:  "ScvDuration",
	9:  "ScvU128",
	10: "ScvI128",
	11: "ScvU256",
	12: "ScvI256",
	13: "ScvBytes",
	14: "ScvString",
	15: "ScvSymbol",
	16: "ScvVec",
	17: "ScvMap",
	18: "ScvAddress",
	19: "ScvContractInstance",
	20: "ScvLedgerKeyContractInstance",
	21: "ScvLedgerKeyNonce",
}

func (t ScValType) String() string        { return enumString(scValTypeNames, int32(t)) }
func (t ScValType) EncodeTo(e *Encoder)    { e.Enum("ScValType", scValTypeNames, int32(t)) }
func (t *ScValType) DecodeFrom(d *Decoder) { *t = ScValType(d.Enum("ScValType", scValTypeNames)) }

type ScErrorType int32

const (
	ScErrorTypeSceContract ScErrorType = 0
	ScErrorTypeSceWasmVm   ScErrorType = 1
	ScErrorTypeSceContext  ScErrorType = 2
	ScErrorTypeSceStorage  ScErrorType = 3
	ScErrorTypeSceObject   ScErrorType = 4
	ScErrorTypeSceCrypto   ScErrorType = 5
	ScErrorTypeSceEvents   ScErrorType = 6
	ScErrorTypeSceBudget   ScErrorType = 7
	ScErrorTypeSceValue    ScErrorType = 8
	ScErrorTypeSceAuth     ScErrorType = 9
)

var scErrorTypeNames = map[int32]string{
	0: "SceContract",
	1: "SceWasmVm",
	2: "SceContext",
	3: "SceStorage",
	4: "SceObject",
	5: "SceCrypto",
	6: "SceEvents",
	7: "SceBudget",
	8: "SceValue",
	9: "SceAuth",
}

func (t ScErrorType) String() string        { return enumString(scErrorTypeNames, int32(t)) }
func (t ScErrorType) EncodeTo(e *Encoder)    { e.Enum("ScErrorType", scErrorTypeNames, int32(t)) }
func (t *ScErrorType) DecodeFrom(d *Decoder) { *t = ScErrorType(d.Enum("ScErrorType", scErrorTypeNames)) }

type ScErrorCode int32

const (
	ScErrorCodeScecArithDomain    ScErrorCode = 0
	ScErrorCodeScecIndexBounds    ScErrorCode = 1
	ScErrorCodeScecInvalidInput   ScErrorCode = 2
	ScErrorCodeScecMissingValue   ScErrorCode = 3
	ScErrorCodeScecExistingValue  ScErrorCode = 4
	ScErrorCodeScecExceededLimit  ScErrorCode = 5
	ScErrorCodeScecInvalidAction  ScErrorCode = 6
	ScErrorCodeScecInternalError  ScErrorCode = 7
	ScErrorCodeScecUnexpectedType ScErrorCode = 8
	ScErrorCodeScecUnexpectedSize ScErrorCode = 9
)

var scErrorCodeNames = map[int32]string{
	0: "ScecArithDomain",
	1: "ScecIndexBounds",
	2: "ScecInvalidInput",
	3: "ScecMissingValue",
	4: "ScecExistingValue",
	5: "ScecExceededLimit",
	6: "ScecInvalidAction",
	7: "ScecInternalError",
	8: "ScecUnexpectedType",
	9: "ScecUnexpectedSize",
}

func (c ScErrorCode) String() string        { return enumString(scErrorCodeNames, int32(c)) }
func (c ScErrorCode) EncodeTo(e *Encoder)    { e.Enum("ScErrorCode", scErrorCodeNames, int32(c)) }
func (c *ScErrorCode) DecodeFrom(d *Decoder) { *c = ScErrorCode(d.Enum("ScErrorCode", scErrorCodeNames)) }

// ScError carries a contract defined code for SceContract, and a host code otherwise
type ScError struct {
	Type         ScErrorType
	ContractCode *uint32
	Code         *ScErrorCode
}

func (s ScError) EncodeTo(e *Encoder) {
	s.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	if s.Type == ScErrorTypeSceContract {
		if s.ContractCode == nil {
			e.ArmMissing("ScError", int32(s.Type))
			return
		}
		e.Uint32(*s.ContractCode)
		return
	}
	if s.Code == nil {
		e.ArmMissing("ScError", int32(s.Type))
		return
	}
	s.Code.EncodeTo(e)
}

func (s *ScError) DecodeFrom(d *Decoder) {
	s.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	if s.Type == ScErrorTypeSceContract {
		code := d.Uint32()
		s.ContractCode = &code
		return
	}
	s.Code = new(ScErrorCode)
	s.Code.DecodeFrom(d)
}

type UInt128Parts struct {
	Hi uint64
	Lo uint64
}

func (p UInt128Parts) EncodeTo(e *Encoder) {
	e.Uint64(p.Hi)
	e.Uint64(p.Lo)
}

func (p *UInt128Parts) DecodeFrom(d *Decoder) {
	p.Hi = d.Uint64()
	p.Lo = d.Uint64()
}

type Int128Parts struct {
	Hi int64
	Lo uint64
}

func (p Int128Parts) EncodeTo(e *Encoder) {
	e.Int64(p.Hi)
	e.Uint64(p.Lo)
}

func (p *Int128Parts) DecodeFrom(d *Decoder) {
	p.Hi = d.Int64()
	p.Lo = d.Uint64()
}

type UInt256Parts struct {
	HiHi uint64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

func (p UInt256Parts) EncodeTo(e *Encoder) {
	e.Uint64(p.HiHi)
	e.Uint64(p.HiLo)
	e.Uint64(p.LoHi)
	e.Uint64(p.LoLo)
}

func (p *UInt256Parts) DecodeFrom(d *Decoder) {
	p.HiHi = d.Uint64()
	p.HiLo = d.Uint64()
	p.LoHi = d.Uint64()
	p.LoLo = d.Uint64()
}

type Int256Parts struct {
	HiHi int64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

func (p Int256Parts) EncodeTo(e *Encoder) {
	e.Int64(p.HiHi)
	e.Uint64(p.HiLo)
	e.Uint64(p.LoHi)
	e.Uint64(p.LoLo)
}

func (p *Int256Parts) DecodeFrom(d *Decoder) {
	p.HiHi = d.Int64()
	p.HiLo = d.Uint64()
	p.LoHi = d.Uint64()
	p.LoLo = d.Uint64()
}

type ScBytes []byte

func (b ScBytes) EncodeTo(e *Encoder)    { e.Opaque("ScBytes", b, Unbounded) }
func (b *ScBytes) DecodeFrom(d *Decoder) { *b = d.Opaque("ScBytes", Unbounded) }

type ScString string

func (s ScString) EncodeTo(e *Encoder)    { e.String("ScString", string(s), Unbounded) }
func (s *ScString) DecodeFrom(d *Decoder) { *s = ScString(d.String("ScString", Unbounded)) }

// MaxSymbolLength is the byte limit of an ScSymbol
const MaxSymbolLength = 32

type ScSymbol string

func (s ScSymbol) EncodeTo(e *Encoder)    { e.String("ScSymbol", string(s), MaxSymbolLength) }
func (s *ScSymbol) DecodeFrom(d *Decoder) { *s = ScSymbol(d.String("ScSymbol", MaxSymbolLength)) }

type ScVec []ScVal

func (v ScVec) EncodeTo(e *Encoder)    { encodeArray(e, "ScVec", v, Unbounded) }
func (v *ScVec) DecodeFrom(d *Decoder) { *v = decodeArray[ScVal](d, "ScVec", Unbounded) }

type ScMapEntry struct {
	Key ScVal
	Val ScVal
}

func (m ScMapEntry) EncodeTo(e *Encoder) {
	m.Key.EncodeTo(e)
	m.Val.EncodeTo(e)
}

func (m *ScMapEntry) DecodeFrom(d *Decoder) {
	m.Key.DecodeFrom(d)
	m.Val.DecodeFrom(d)
}

type ScMap []ScMapEntry

func (m ScMap) EncodeTo(e *Encoder)    { encodeArray(e, "ScMap", m, Unbounded) }
func (m *ScMap) DecodeFrom(d *Decoder) { *m = decodeArray[ScMapEntry](d, "ScMap", Unbounded) }

type ScAddressType int32

const (
	ScAddressTypeScAddressTypeAccount          ScAddressType = 0
	ScAddressTypeScAddressTypeContract         ScAddressType = 1
	ScAddressTypeScAddressTypeMuxedAccount     ScAddressType = 2
	ScAddressTypeScAddressTypeClaimableBalance ScAddressType = 3
	ScAddressTypeScAddressTypeLiquidityPool    ScAddressType = 4
)

var scAddressTypeNames = map[int32]string{
	0: "ScAddressTypeAccount",
	1: "ScAddressTypeContract",
	2: "ScAddressTypeMuxedAccount",
	3: "ScAddressTypeClaimableBalance",
	4: "ScAddressTypeLiquidityPool",
}

func (t ScAddressType) String() string        { return enumString(scAddressTypeNames, int32(t)) }
func (t ScAddressType) EncodeTo(e *Encoder)    { e.Enum("ScAddressType", scAddressTypeNames, int32(t)) }
func (t *ScAddressType) DecodeFrom(d *Decoder) { *t = ScAddressType(d.Enum("ScAddressType", scAddressTypeNames)) }

type MuxedEd25519Account struct {
	ID      uint64
	Ed25519 Uint256
}

func (m MuxedEd25519Account) EncodeTo(e *Encoder) {
	e.Uint64(m.ID)
	m.Ed25519.EncodeTo(e)
}

func (m *MuxedEd25519Account) DecodeFrom(d *Decoder) {
	m.ID = d.Uint64()
	m.Ed25519.DecodeFrom(d)
}

type ClaimableBalanceIDType int32

const (
	ClaimableBalanceIDTypeClaimableBalanceIDTypeV0 ClaimableBalanceIDType = 0
)

var claimableBalanceIDTypeNames = map[int32]string{
	0: "ClaimableBalanceIdTypeV0",
}

func (t ClaimableBalanceIDType) String() string { return enumString(claimableBalanceIDTypeNames, int32(t)) }
func (t ClaimableBalanceIDType) EncodeTo(e *Encoder) {
	e.Enum("ClaimableBalanceIDType", claimableBalanceIDTypeNames, int32(t))
}
func (t *ClaimableBalanceIDType) DecodeFrom(d *Decoder) {
	*t = ClaimableBalanceIDType(d.Enum("ClaimableBalanceIDType", claimableBalanceIDTypeNames))
}

type ClaimableBalanceID struct {
	Type ClaimableBalanceIDType
	V0   *Hash
}

func (c ClaimableBalanceID) EncodeTo(e *Encoder) {
	c.Type.EncodeTo(e)
	switch c.Type {
	case ClaimableBalanceIDTypeClaimableBalanceIDTypeV0:
		if c.V0 == nil {
			e.ArmMissing("ClaimableBalanceID", int32(c.Type))
			return
		}
		c.V0.EncodeTo(e)
	default:
		e.UnknownArm("ClaimableBalanceID", int32(c.Type))
	}
}

func (c *ClaimableBalanceID) DecodeFrom(d *Decoder) {
	c.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch c.Type {
	case ClaimableBalanceIDTypeClaimableBalanceIDTypeV0:
		c.V0 = new(Hash)
		c.V0.DecodeFrom(d)
	default:
		d.UnknownArm("ClaimableBalanceID", int32(c.Type))
	}
}

type ScAddress struct {
	Type               ScAddressType
	AccountID          *AccountID
	ContractID         *ContractID
	MuxedAccount       *MuxedEd25519Account
	ClaimableBalanceID *ClaimableBalanceID
	LiquidityPoolID    *PoolID
}

func (a ScAddress) arm() Encodable {
	switch a.Type {
	case ScAddressTypeScAddressTypeAccount:
		if a.AccountID != nil {
			return a.AccountID
		}
	case ScAddressTypeScAddressTypeContract:
		if a.ContractID != nil {
			return a.ContractID
		}
	case ScAddressTypeScAddressTypeMuxedAccount:
		if a.MuxedAccount != nil {
			return a.MuxedAccount
		}
	case ScAddressTypeScAddressTypeClaimableBalance:
		if a.ClaimableBalanceID != nil {
			return a.ClaimableBalanceID
		}
	case ScAddressTypeScAddressTypeLiquidityPool:
		if a.LiquidityPoolID != nil {
			return a.LiquidityPoolID
		}
	}
	return nil
}

func (a ScAddress) EncodeTo(e *Encoder) {
	a.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	arm := a.arm()
	if arm == nil {
		e.ArmMissing("ScAddress", int32(a.Type))
		return
	}
	arm.EncodeTo(e)
}

func (a *ScAddress) DecodeFrom(d *Decoder) {
	a.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch a.Type {
	case ScAddressTypeScAddressTypeAccount:
		a.AccountID = new(AccountID)
		a.AccountID.DecodeFrom(d)
	case ScAddressTypeScAddressTypeContract:
		a.ContractID = new(ContractID)
		a.ContractID.DecodeFrom(d)
	case ScAddressTypeScAddressTypeMuxedAccount:
		a.MuxedAccount = new(MuxedEd25519Account)
		a.MuxedAccount.DecodeFrom(d)
	case ScAddressTypeScAddressTypeClaimableBalance:
		a.ClaimableBalanceID = new(ClaimableBalanceID)
		a.ClaimableBalanceID.DecodeFrom(d)
	case ScAddressTypeScAddressTypeLiquidityPool:
		a.LiquidityPoolID = new(PoolID)
		a.LiquidityPoolID.DecodeFrom(d)
	default:
		d.UnknownArm("ScAddress", int32(a.Type))
	}
}

type ContractExecutableType int32

const (
	ContractExecutableTypeContractExecutableWasm         ContractExecutableType = 0
	ContractExecutableTypeContractExecutableStellarAsset ContractExecutableType = 1
)

var contractExecutableTypeNames = map[int32]string{
	0: "ContractExecutableWasm",
	1: "ContractExecutableStellarAsset",
}

func (t ContractExecutableType) String() string { return enumString(contractExecutableTypeNames, int32(t)) }
func (t ContractExecutableType) EncodeTo(e *Encoder) {
	e.Enum("ContractExecutableType", contractExecutableTypeNames, int32(t))
}
func (t *ContractExecutableType) DecodeFrom(d *Decoder) {
	*t = ContractExecutableType(d.Enum("ContractExecutableType", contractExecutableTypeNames))
}

type ContractExecutable struct {
	Type     ContractExecutableType
	WasmHash *Hash
}

func (c ContractExecutable) EncodeTo(e *Encoder) {
	c.Type.EncodeTo(e)
	switch c.Type {
	case ContractExecutableTypeContractExecutableWasm:
		if c.WasmHash == nil {
			e.ArmMissing("ContractExecutable", int32(c.Type))
			return
		}
		c.WasmHash.EncodeTo(e)
	case ContractExecutableTypeContractExecutableStellarAsset:
	default:
		e.UnknownArm("ContractExecutable", int32(c.Type))
	}
}

func (c *ContractExecutable) DecodeFrom(d *Decoder) {
	c.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch c.Type {
	case ContractExecutableTypeContractExecutableWasm:
		c.WasmHash = new(Hash)
		c.WasmHash.DecodeFrom(d)
	case ContractExecutableTypeContractExecutableStellarAsset:
	default:
		d.UnknownArm("ContractExecutable", int32(c.Type))
	}
}

type ScContractInstance struct {
	Executable ContractExecutable
	Storage    *ScMap
}

func (c ScContractInstance) EncodeTo(e *Encoder) {
	c.Executable.EncodeTo(e)
	encodeOptional(e, c.Storage)
}

func (c *ScContractInstance) DecodeFrom(d *Decoder) {
	c.Executable.DecodeFrom(d)
	c.Storage = decodeOptional[ScMap](d)
}

type ScNonceKey struct {
	Nonce int64
}

func (n ScNonceKey) EncodeTo(e *Encoder)    { e.Int64(n.Nonce) }
func (n *ScNonceKey) DecodeFrom(d *Decoder) { n.Nonce = d.Int64() }

// ScVal is the tagged value exchanged with contracts. The Vec and Map arms
// are optional on the wire: a non-nil Vec pointing at a nil slice is encoded
// as absent, while an empty non-nil slice is encoded as present and empty.
type ScVal struct {
	Type      ScValType
	B         *bool
	Error     *ScError
	U32       *uint32
	I32       *int32
	U64       *uint64
	I64       *int64
	Timepoint *uint64
	Duration  *uint64
	U128      *UInt128Parts
	I128      *Int128Parts
	U256      *UInt256Parts
	I256      *Int256Parts
	Bytes     *ScBytes
	Str       *ScString
	Sym       *ScSymbol
	Vec       *ScVec
	Map       *ScMap
	Address   *ScAddress
	Instance  *ScContractInstance
	NonceKey  *ScNonceKey
}

func (v ScVal) EncodeTo(e *Encoder) {
	v.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	missing := false
	switch v.Type {
	case ScValTypeScvBool:
		if missing = v.B == nil; !missing {
			e.Bool(*v.B)
		}
	case ScValTypeScvVoid, ScValTypeScvLedgerKeyContractInstance:
	case ScValTypeScvError:
		if missing = v.Error == nil; !missing {
			v.Error.EncodeTo(e)
		}
	case ScValTypeScvU32:
		if missing = v.U32 == nil; !missing {
			e.Uint32(*v.U32)
		}
	case ScValTypeScvI32:
		if missing = v.I32 == nil; !missing {
			e.Int32(*v.I32)
		}
	case ScValTypeScvU64:
		if missing = v.U64 == nil; !missing {
			e.Uint64(*v.U64)
		}
	case ScValTypeScvI64:
		if missing = v.I64 == nil; !missing {
			e.Int64(*v.I64)
		}
	case ScValTypeScvTimepoint:
		if missing = v.Timepoint == nil; !missing {
			e.Uint64(*v.Timepoint)
		}
	case ScValTypeScvDuration:
		if missing = v.Duration == nil; !missing {
			e.Uint64(*v.Duration)
		}
	case ScValTypeScvU128:
		if missing = v.U128 == nil; !missing {
			v.U128.EncodeTo(e)
		}
	case ScValTypeScvI128:
		if missing = v.I128 == nil; !missing {
			v.I128.EncodeTo(e)
		}
	case ScValTypeScvU256:
		if missing = v.U256 == nil; !missing {
			v.U256.EncodeTo(e)
		}
	case ScValTypeScvI256:
		if missing = v.I256 == nil; !missing {
			v.I256.EncodeTo(e)
		}
	case ScValTypeScvBytes:
		if missing = v.Bytes == nil; !missing {
			v.Bytes.EncodeTo(e)
		}
	case ScValTypeScvString:
		if missing = v.Str == nil; !missing {
			v.Str.EncodeTo(e)
		}
	case ScValTypeScvSymbol:
		if missing = v.Sym == nil; !missing {
			v.Sym.EncodeTo(e)
		}
	case ScValTypeScvVec:
		if missing = v.Vec == nil; !missing {
			e.Present(*v.Vec != nil)
			if *v.Vec != nil {
				v.Vec.EncodeTo(e)
			}
		}
	case ScValTypeScvMap:
		if missing = v.Map == nil; !missing {
			e.Present(*v.Map != nil)
			if *v.Map != nil {
				v.Map.EncodeTo(e)
			}
		}
	case ScValTypeScvAddress:
		if missing = v.Address == nil; !missing {
			v.Address.EncodeTo(e)
		}
	case ScValTypeScvContractInstance:
		if missing = v.Instance == nil; !missing {
			v.Instance.EncodeTo(e)
		}
	case ScValTypeScvLedgerKeyNonce:
		if missing = v.NonceKey == nil; !missing {
			v.NonceKey.EncodeTo(e)
		}
	default:
		e.UnknownArm("ScVal", int32(v.Type))
	}
	if missing {
		e.ArmMissing("ScVal", int32(v.Type))
	}
}

func (v *ScVal) DecodeFrom(d *Decoder) {
	ok := d.enter()
	defer d.leave()
	if !ok {
		return
	}
	v.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch v.Type {
	case ScValTypeScvBool:
		b := d.Bool()
		v.B = &b
	case ScValTypeScvVoid, ScValTypeScvLedgerKeyContractInstance:
	case ScValTypeScvError:
		v.Error = new(ScError)
		v.Error.DecodeFrom(d)
	case ScValTypeScvU32:
		u := d.Uint32()
		v.U32 = &u
	case ScValTypeScvI32:
		i := d.Int32()
		v.I32 = &i
	case ScValTypeScvU64:
		u := d.Uint64()
		v.U64 = &u
	case ScValTypeScvI64:
		i := d.Int64()
		v.I64 = &i
	case ScValTypeScvTimepoint:
		t := d.Uint64()
		v.Timepoint = &t
	case ScValTypeScvDuration:
		t := d.Uint64()
		v.Duration = &t
	case ScValTypeScvU128:
		v.U128 = new(UInt128Parts)
		v.U128.DecodeFrom(d)
	case ScValTypeScvI128:
		v.I128 = new(Int128Parts)
		v.I128.DecodeFrom(d)
	case ScValTypeScvU256:
		v.U256 = new(UInt256Parts)
		v.U256.DecodeFrom(d)
	case ScValTypeScvI256:
		v.I256 = new(Int256Parts)
		v.I256.DecodeFrom(d)
	case ScValTypeScvBytes:
		v.Bytes = new(ScBytes)
		v.Bytes.DecodeFrom(d)
	case ScValTypeScvString:
		v.Str = new(ScString)
		v.Str.DecodeFrom(d)
	case ScValTypeScvSymbol:
		v.Sym = new(ScSymbol)
		v.Sym.DecodeFrom(d)
	case ScValTypeScvVec:
		v.Vec = new(ScVec)
		if d.Present() {
			v.Vec.DecodeFrom(d)
			if *v.Vec == nil && d.err == nil {
				*v.Vec = ScVec{}
			}
		}
	case ScValTypeScvMap:
		v.Map = new(ScMap)
		if d.Present() {
			v.Map.DecodeFrom(d)
			if *v.Map == nil && d.err == nil {
				*v.Map = ScMap{}
			}
		}
	case ScValTypeScvAddress:
		v.Address = new(ScAddress)
		v.Address.DecodeFrom(d)
	case ScValTypeScvContractInstance:
		v.Instance = new(ScContractInstance)
		v.Instance.DecodeFrom(d)
	case ScValTypeScvLedgerKeyNonce:
		v.NonceKey = new(ScNonceKey)
		v.NonceKey.DecodeFrom(d)
	default:
		d.UnknownArm("ScVal", int32(v.Type))
	}
}
