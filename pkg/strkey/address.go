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

package strkey

import (
	"context"
	"encoding/binary"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// AccountIDFromAddress parses a G address
func AccountIDFromAddress(address string) (xdr.AccountID, error) {
	raw, err := Decode(VersionByteAccountID, address)
	if err != nil {
		return xdr.AccountID{}, err
	}
	var u xdr.Uint256
	copy(u[:], raw)
	return xdr.AccountID{Type: xdr.PublicKeyTypePublicKeyTypeEd25519, Ed25519: &u}, nil
}

func AccountIDToAddress(id xdr.AccountID) (string, error) {
	if id.Ed25519 == nil {
		return "", i18n.NewError(context.Background(), sbmsgs.MsgAddressUnsupported, id.Type.String())
	}
	return Encode(VersionByteAccountID, id.Ed25519[:])
}

// MuxedAccountFromAddress parses a G address, or an M address carrying a multiplexing id
func MuxedAccountFromAddress(address string) (xdr.MuxedAccount, error) {
	ctx := context.Background()
	version, payload, err := decodeRaw(ctx, address)
	if err != nil {
		return xdr.MuxedAccount{}, err
	}
	switch version {
	case VersionByteAccountID:
		var u xdr.Uint256
		copy(u[:], payload)
		return xdr.MuxedAccount{Type: xdr.CryptoKeyTypeKeyTypeEd25519, Ed25519: &u}, nil
	case VersionByteMuxedAccount:
		m := &xdr.MuxedAccountMed25519{ID: binary.BigEndian.Uint64(payload[32:])}
		copy(m.Ed25519[:], payload[:32])
		return xdr.MuxedAccount{Type: xdr.CryptoKeyTypeKeyTypeMuxedEd25519, Med25519: m}, nil
	default:
		return xdr.MuxedAccount{}, i18n.NewError(ctx, sbmsgs.MsgAddressUnsupported, address)
	}
}

func MuxedAccountToAddress(m xdr.MuxedAccount) (string, error) {
	switch {
	case m.Type == xdr.CryptoKeyTypeKeyTypeEd25519 && m.Ed25519 != nil:
		return Encode(VersionByteAccountID, m.Ed25519[:])
	case m.Type == xdr.CryptoKeyTypeKeyTypeMuxedEd25519 && m.Med25519 != nil:
		return Encode(VersionByteMuxedAccount, muxedPayload(m.Med25519.Ed25519, m.Med25519.ID))
	default:
		return "", i18n.NewError(context.Background(), sbmsgs.MsgAddressUnsupported, m.Type.String())
	}
}

func muxedPayload(key xdr.Uint256, id uint64) []byte {
	return binary.BigEndian.AppendUint64(append([]byte{}, key[:]...), id)
}

// ScAddressFromString parses any address that can appear in a contract call:
// G accounts, M muxed accounts, C contracts, B claimable balances and L liquidity pools
func ScAddressFromString(address string) (xdr.ScAddress, error) {
	ctx := context.Background()
	version, payload, err := decodeRaw(ctx, address)
	if err != nil {
		return xdr.ScAddress{}, err
	}
	switch version {
	case VersionByteAccountID:
		var pub [32]byte
		copy(pub[:], payload)
		return xdr.AccountAddress(pub), nil
	case VersionByteContract:
		var id [32]byte
		copy(id[:], payload)
		return xdr.ContractAddress(id), nil
	case VersionByteMuxedAccount:
		m := &xdr.MuxedEd25519Account{ID: binary.BigEndian.Uint64(payload[32:])}
		copy(m.Ed25519[:], payload[:32])
		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeMuxedAccount, MuxedAccount: m}, nil
	case VersionByteClaimableBalance:
		if payload[0] != byte(xdr.ClaimableBalanceIDTypeClaimableBalanceIDTypeV0) {
			return xdr.ScAddress{}, i18n.NewError(ctx, sbmsgs.MsgAddressUnsupported, address)
		}
		var h xdr.Hash
		copy(h[:], payload[1:])
		return xdr.ScAddress{
			Type:               xdr.ScAddressTypeScAddressTypeClaimableBalance,
			ClaimableBalanceID: &xdr.ClaimableBalanceID{Type: xdr.ClaimableBalanceIDTypeClaimableBalanceIDTypeV0, V0: &h},
		}, nil
	case VersionByteLiquidityPool:
		var p xdr.PoolID
		copy(p[:], payload)
		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeLiquidityPool, LiquidityPoolID: &p}, nil
	default:
		return xdr.ScAddress{}, i18n.NewError(ctx, sbmsgs.MsgAddressUnsupported, address)
	}
}

// AddressString renders an ScAddress in its strkey form
func AddressString(a xdr.ScAddress) (string, error) {
	switch {
	case a.Type == xdr.ScAddressTypeScAddressTypeAccount && a.AccountID != nil:
		return AccountIDToAddress(*a.AccountID)
	case a.Type == xdr.ScAddressTypeScAddressTypeContract && a.ContractID != nil:
		return Encode(VersionByteContract, a.ContractID[:])
	case a.Type == xdr.ScAddressTypeScAddressTypeMuxedAccount && a.MuxedAccount != nil:
		return Encode(VersionByteMuxedAccount, muxedPayload(a.MuxedAccount.Ed25519, a.MuxedAccount.ID))
	case a.Type == xdr.ScAddressTypeScAddressTypeClaimableBalance && a.ClaimableBalanceID != nil && a.ClaimableBalanceID.V0 != nil:
		return Encode(VersionByteClaimableBalance, append([]byte{byte(a.ClaimableBalanceID.Type)}, a.ClaimableBalanceID.V0[:]...))
	case a.Type == xdr.ScAddressTypeScAddressTypeLiquidityPool && a.LiquidityPoolID != nil:
		return Encode(VersionByteLiquidityPool, a.LiquidityPoolID[:])
	default:
		return "", i18n.NewError(context.Background(), sbmsgs.MsgAddressUnsupported, a.Type.String())
	}
}
