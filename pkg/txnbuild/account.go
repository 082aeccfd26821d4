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
)

// Account is the source of a transaction, tracking the sequence number that
// the next built transaction will use
type Account interface {
	GetAccountID() string
	GetSequenceNumber() (int64, error)
	IncrementSequenceNumber() (int64, error)
}

// SimpleAccount is an in-memory Account, typically loaded from the network
// just before building
type SimpleAccount struct {
	AccountID string
	Sequence  int64
}

func NewSimpleAccount(accountID string, sequence int64) SimpleAccount {
	return SimpleAccount{AccountID: accountID, Sequence: sequence}
}

func (sa *SimpleAccount) GetAccountID() string {
	return sa.AccountID
}

func (sa *SimpleAccount) GetSequenceNumber() (int64, error) {
	return sa.Sequence, nil
}

func (sa *SimpleAccount) IncrementSequenceNumber() (int64, error) {
	if sa.Sequence == int64(^uint64(0)>>1) {
		return 0, i18n.NewError(context.Background(), sbmsgs.MsgTxSequenceFailed, sa.AccountID)
	}
	sa.Sequence++
	return sa.Sequence, nil
}
