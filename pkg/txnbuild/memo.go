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
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// Memo is attached to a transaction. A nil Memo encodes as MEMO_NONE.
type Memo interface {
	ToXDR() (xdr.Memo, error)
}

type MemoText string
type MemoID uint64
type MemoHash [32]byte
type MemoReturn [32]byte

func (m MemoText) ToXDR() (xdr.Memo, error) {
	if len(m) > xdr.MaxMemoTextLength {
		return xdr.Memo{}, i18n.NewError(context.Background(), sbmsgs.MsgTxMemoTooLong, len(m), xdr.MaxMemoTextLength)
	}
	text := string(m)
	return xdr.Memo{Type: xdr.MemoTypeMemoText, Text: &text}, nil
}

func (m MemoID) ToXDR() (xdr.Memo, error) {
	id := uint64(m)
	return xdr.Memo{Type: xdr.MemoTypeMemoID, ID: &id}, nil
}

func (m MemoHash) ToXDR() (xdr.Memo, error) {
	h := xdr.Hash(m)
	return xdr.Memo{Type: xdr.MemoTypeMemoHash, Hash: &h}, nil
}

func (m MemoReturn) ToXDR() (xdr.Memo, error) {
	h := xdr.Hash(m)
	return xdr.Memo{Type: xdr.MemoTypeMemoReturn, RetHash: &h}, nil
}

func memoToXDR(m Memo) (xdr.Memo, error) {
	if m == nil {
		return xdr.Memo{Type: xdr.MemoTypeMemoNone}, nil
	}
	return m.ToXDR()
}
