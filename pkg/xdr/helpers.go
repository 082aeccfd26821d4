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

import "bytes"

func ScvBool(b bool) ScVal     { return ScVal{Type: ScValTypeScvBool, B: &b} }
func ScvVoid() ScVal           { return ScVal{Type: ScValTypeScvVoid} }
func ScvU32(v uint32) ScVal    { return ScVal{Type: ScValTypeScvU32, U32: &v} }
func ScvI32(v int32) ScVal     { return ScVal{Type: ScValTypeScvI32, I32: &v} }
func ScvU64(v uint64) ScVal    { return ScVal{Type: ScValTypeScvU64, U64: &v} }
func ScvI64(v int64) ScVal     { return ScVal{Type: ScValTypeScvI64, I64: &v} }
func ScvBytes(b []byte) ScVal  { v := ScBytes(b); return ScVal{Type: ScValTypeScvBytes, Bytes: &v} }
func ScvString(s string) ScVal { v := ScString(s); return ScVal{Type: ScValTypeScvString, Str: &v} }
func ScvSymbol(s string) ScVal { v := ScSymbol(s); return ScVal{Type: ScValTypeScvSymbol, Sym: &v} }

func ScvU128(hi, lo uint64) ScVal {
	return ScVal{Type: ScValTypeScvU128, U128: &UInt128Parts{Hi: hi, Lo: lo}}
}

func ScvI128(hi int64, lo uint64) ScVal {
	return ScVal{Type: ScValTypeScvI128, I128: &Int128Parts{Hi: hi, Lo: lo}}
}

// ScvI128FromInt64 sign extends v into an i128
func ScvI128FromInt64(v int64) ScVal {
	return ScvI128(v>>63, uint64(v))
}

// ScvVec builds a present vector, which is empty rather than absent when no values are passed
func ScvVec(vals ...ScVal) ScVal {
	vec := ScVec(append([]ScVal{}, vals...))
	return ScVal{Type: ScValTypeScvVec, Vec: &vec}
}

func ScvMap(entries ...ScMapEntry) ScVal {
	m := ScMap(append([]ScMapEntry{}, entries...))
	return ScVal{Type: ScValTypeScvMap, Map: &m}
}

func ScvAddress(a ScAddress) ScVal {
	return ScVal{Type: ScValTypeScvAddress, Address: &a}
}

func ScvLedgerKeyContractInstance() ScVal {
	return ScVal{Type: ScValTypeScvLedgerKeyContractInstance}
}

func ScvLedgerKeyNonce(nonce int64) ScVal {
	return ScVal{Type: ScValTypeScvLedgerKeyNonce, NonceKey: &ScNonceKey{Nonce: nonce}}
}

// GetVec returns the elements of a present vector
func (v ScVal) GetVec() (ScVec, bool) {
	if v.Type != ScValTypeScvVec || v.Vec == nil || *v.Vec == nil {
		return nil, false
	}
	return *v.Vec, true
}

// GetMap returns the entries of a present map
func (v ScVal) GetMap() (ScMap, bool) {
	if v.Type != ScValTypeScvMap || v.Map == nil || *v.Map == nil {
		return nil, false
	}
	return *v.Map, true
}

func (v ScVal) GetBytes() ([]byte, bool) {
	if v.Type != ScValTypeScvBytes || v.Bytes == nil {
		return nil, false
	}
	return *v.Bytes, true
}

func (v ScVal) GetSymbol() (string, bool) {
	if v.Type != ScValTypeScvSymbol || v.Sym == nil {
		return "", false
	}
	return string(*v.Sym), true
}

// AccountAddress wraps an ed25519 public key as an account ScAddress
func AccountAddress(pub [32]byte) ScAddress {
	u := Uint256(pub)
	return ScAddress{
		Type:      ScAddressTypeScAddressTypeAccount,
		AccountID: &AccountID{Type: PublicKeyTypePublicKeyTypeEd25519, Ed25519: &u},
	}
}

func ContractAddress(id [32]byte) ScAddress {
	c := ContractID(id)
	return ScAddress{Type: ScAddressTypeScAddressTypeContract, ContractID: &c}
}

// Equals compares the canonical encodings of two values, so unions
// compare equal exactly when they select the same arm with the same content
func Equals(a, b Encodable) bool {
	ab, errA := Marshal(a)
	bb, errB := Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ab, bb)
}

func (k LedgerKey) Equals(other LedgerKey) bool {
	return Equals(k, other)
}
