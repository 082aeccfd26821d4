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
	"crypto/ed25519"
	"crypto/rand"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/strkey"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// KP is a public key that can verify signatures, and sign if it holds the secret
type KP interface {
	Address() string
	RawPublicKey() [32]byte
	Hint() xdr.SignatureHint
	Verify(input []byte, signature []byte) error
	Sign(input []byte) ([]byte, error)
	SignDecorated(input []byte) (xdr.DecoratedSignature, error)
}

// FromAddress is a verify-only keypair
type FromAddress struct {
	address   string
	publicKey ed25519.PublicKey
}

// Full holds an ed25519 secret seed
type Full struct {
	FromAddress
	seed       string
	privateKey ed25519.PrivateKey
}

// hint is the last 4 bytes of the public key, matching how the network
// looks up the signer of a decorated signature
func hint(pub ed25519.PublicKey) (h xdr.SignatureHint) {
	copy(h[:], pub[len(pub)-4:])
	return h
}

func ParseAddress(address string) (*FromAddress, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return nil, err
	}
	return &FromAddress{address: address, publicKey: ed25519.PublicKey(raw)}, nil
}

// FromPublicKey builds a verify-only keypair from a raw ed25519 public key
func FromPublicKey(pub [32]byte) *FromAddress {
	return &FromAddress{
		address:   strkey.MustEncode(strkey.VersionByteAccountID, pub[:]),
		publicKey: ed25519.PublicKey(append([]byte{}, pub[:]...)),
	}
}

func (kp *FromAddress) Address() string { return kp.address }

func (kp *FromAddress) RawPublicKey() (pub [32]byte) {
	copy(pub[:], kp.publicKey)
	return pub
}

func (kp *FromAddress) Hint() xdr.SignatureHint { return hint(kp.publicKey) }

func (kp *FromAddress) Verify(input []byte, signature []byte) error {
	if len(signature) != ed25519.SignatureSize || !ed25519.Verify(kp.publicKey, input, signature) {
		return i18n.NewError(context.Background(), sbmsgs.MsgKeypairSignatureInvalid, kp.address)
	}
	return nil
}

func (kp *FromAddress) Sign(input []byte) ([]byte, error) {
	return nil, i18n.NewError(context.Background(), sbmsgs.MsgKeypairNoSecret, kp.address)
}

func (kp *FromAddress) SignDecorated(input []byte) (xdr.DecoratedSignature, error) {
	return xdr.DecoratedSignature{}, i18n.NewError(context.Background(), sbmsgs.MsgKeypairNoSecret, kp.address)
}

// FromRawSeed builds a signing keypair from a 32 byte ed25519 seed
func FromRawSeed(rawSeed []byte) (*Full, error) {
	if len(rawSeed) != ed25519.SeedSize {
		return nil, i18n.NewError(context.Background(), sbmsgs.MsgKeypairInvalidSeed, ed25519.SeedSize, len(rawSeed))
	}
	priv := ed25519.NewKeyFromSeed(rawSeed)
	pub := priv.Public().(ed25519.PublicKey)
	return &Full{
		FromAddress: FromAddress{
			address:   strkey.MustEncode(strkey.VersionByteAccountID, pub),
			publicKey: pub,
		},
		seed:       strkey.MustEncode(strkey.VersionByteSeed, rawSeed),
		privateKey: priv,
	}, nil
}

// ParseFull parses an S secret seed
func ParseFull(seed string) (*Full, error) {
	raw, err := strkey.Decode(strkey.VersionByteSeed, seed)
	if err != nil {
		return nil, err
	}
	return FromRawSeed(raw)
}

// Parse accepts either a G address or an S secret seed
func Parse(s string) (KP, error) {
	version, _, err := strkey.DecodeAny(s)
	if err != nil {
		return nil, err
	}
	if version == strkey.VersionByteSeed {
		return ParseFull(s)
	}
	return ParseAddress(s)
}

func Random() (*Full, error) {
	raw := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	return FromRawSeed(raw)
}

// MustRandom is Random for tests and tools, panicking if the system has no entropy
func MustRandom() *Full {
	kp, err := Random()
	if err != nil {
		panic(err)
	}
	return kp
}

func (kp *Full) Seed() string { return kp.seed }

func (kp *Full) Sign(input []byte) ([]byte, error) {
	return ed25519.Sign(kp.privateKey, input), nil
}

func (kp *Full) SignDecorated(input []byte) (xdr.DecoratedSignature, error) {
	sig, _ := kp.Sign(input)
	return xdr.DecoratedSignature{Hint: kp.Hint(), Signature: sig}, nil
}

// Public returns the verify-only half of the keypair
func (kp *Full) Public() *FromAddress {
	pub := kp.FromAddress
	return &pub
}
