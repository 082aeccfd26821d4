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
	"github.com/hyperledger/firefly-soroban/pkg/strkey"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// Asset is the native asset or an issued credit asset
type Asset interface {
	IsNative() bool
	ToXDR() (xdr.Asset, error)
}

type NativeAsset struct{}

func (NativeAsset) IsNative() bool { return true }

func (NativeAsset) ToXDR() (xdr.Asset, error) {
	return xdr.Asset{Type: xdr.AssetTypeAssetTypeNative}, nil
}

// CreditAsset is identified by a 1-12 character code and its issuer's G address
type CreditAsset struct {
	Code   string
	Issuer string
}

func (CreditAsset) IsNative() bool { return false }

func validAssetCode(code string) bool {
	if len(code) == 0 || len(code) > 12 {
		return false
	}
	for _, c := range code {
		if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

func (a CreditAsset) ToXDR() (xdr.Asset, error) {
	if !validAssetCode(a.Code) {
		return xdr.Asset{}, i18n.NewError(context.Background(), sbmsgs.MsgTxInvalidField, "asset code", a.Code)
	}
	issuer, err := strkey.AccountIDFromAddress(a.Issuer)
	if err != nil {
		return xdr.Asset{}, err
	}
	if len(a.Code) <= 4 {
		var code xdr.AssetCode4
		copy(code[:], a.Code)
		return xdr.Asset{
			Type:      xdr.AssetTypeAssetTypeCreditAlphanum4,
			AlphaNum4: &xdr.AlphaNum4{AssetCode: code, Issuer: issuer},
		}, nil
	}
	var code xdr.AssetCode12
	copy(code[:], a.Code)
	return xdr.Asset{
		Type:       xdr.AssetTypeAssetTypeCreditAlphanum12,
		AlphaNum12: &xdr.AlphaNum12{AssetCode: code, Issuer: issuer},
	}, nil
}
