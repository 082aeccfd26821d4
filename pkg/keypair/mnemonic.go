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

package keypair

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/tyler-smith/go-bip39"
)

const (
	hardenedOffset = 0x80000000
	stellarCoin    = 148
)

var slip10Curve = []byte("ed25519 seed")

// NewMnemonic returns a fresh BIP-39 phrase with the given entropy (128 to 256 bits)
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// FromMnemonic derives the account at m/44'/148'/index' from a BIP-39
// phrase, using the SLIP-10 ed25519 derivation
func FromMnemonic(mnemonic, passphrase string, index uint32) (*Full, error) {
	ctx := context.Background()
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, i18n.NewError(ctx, sbmsgs.MsgKeypairMnemonicInvalid)
	}
	if index >= hardenedOffset {
		return nil, i18n.NewError(ctx, sbmsgs.MsgKeypairDeriveFailed, index)
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	key, chain := slip10Master(seed)
	for _, i := range []uint32{44, stellarCoin, index} {
		key, chain = slip10Child(key, chain, i+hardenedOffset)
	}
	return FromRawSeed(key)
}

func slip10Master(seed []byte) (key, chain []byte) {
	mac := hmac.New(sha512.New, slip10Curve)
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// slip10Child derives a hardened child, the only kind ed25519 supports
func slip10Child(key, chain []byte, index uint32) ([]byte, []byte) {
	data := make([]byte, 0, 1+32+4)
	data = append(data, 0)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, index)
	mac := hmac.New(sha512.New, chain)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}
