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

package sorobanauth

import (
	"context"
	"crypto/rand"
	"encoding/binary"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/keypair"
	"github.com/hyperledger/firefly-soroban/pkg/network"
	"github.com/hyperledger/firefly-soroban/pkg/strkey"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// DelegateSigner signs an entry outside this process, for example on a
// hardware wallet or a remote signing service. It receives the entry with
// its expiration already set, and returns it with the signature filled in.
type DelegateSigner func(ctx context.Context, unsigned xdr.SorobanAuthorizationEntry, passphrase string) (xdr.SorobanAuthorizationEntry, error)

// SignaturePayload is the hash an address signs to authorize entry
func SignaturePayload(entry xdr.SorobanAuthorizationEntry, passphrase string) (xdr.Hash, error) {
	creds := entry.Credentials.Address
	if entry.Credentials.Type != xdr.SorobanCredentialsTypeSorobanCredentialsAddress || creds == nil {
		return xdr.Hash{}, i18n.NewError(context.Background(), sbmsgs.MsgAuthSourceCredentials)
	}
	return network.HashIDPreimage(xdr.HashIDPreimage{
		Type: xdr.EnvelopeTypeEnvelopeTypeSorobanAuthorization,
		SorobanAuthorization: &xdr.HashIDPreimageSorobanAuthorization{
			NetworkID:                 network.ID(passphrase),
			Nonce:                     creds.Nonce,
			SignatureExpirationLedger: creds.SignatureExpirationLedger,
			Invocation:                entry.RootInvocation,
		},
	})
}

// NeedsSignature reports whether entry is address-credentialed and still unsigned
func NeedsSignature(entry xdr.SorobanAuthorizationEntry) bool {
	creds := entry.Credentials.Address
	return entry.Credentials.Type == xdr.SorobanCredentialsTypeSorobanCredentialsAddress &&
		creds != nil &&
		creds.Signature.Type == xdr.ScValTypeScvVoid
}

// EntryAddress returns the strkey of the address that must sign entry,
// or false for source account credentials
func EntryAddress(entry xdr.SorobanAuthorizationEntry) (string, bool) {
	creds := entry.Credentials.Address
	if entry.Credentials.Type != xdr.SorobanCredentialsTypeSorobanCredentialsAddress || creds == nil {
		return "", false
	}
	address, err := strkey.AddressString(creds.Address)
	if err != nil {
		return "", false
	}
	return address, true
}

// withExpiration copies entry with a fresh credentials struct, so the
// caller's entry is never modified
func withExpiration(ctx context.Context, entry xdr.SorobanAuthorizationEntry, validUntilLedger uint32) (xdr.SorobanAuthorizationEntry, error) {
	if validUntilLedger == 0 {
		return entry, i18n.NewError(ctx, sbmsgs.MsgAuthExpirationRequired)
	}
	creds := *entry.Credentials.Address
	creds.SignatureExpirationLedger = validUntilLedger
	entry.Credentials = xdr.SorobanCredentials{Type: entry.Credentials.Type, Address: &creds}
	return entry, nil
}

// AccountSignature is the signature value the account contract expects: a
// vector holding one map of public_key and signature
func AccountSignature(publicKey [32]byte, signature []byte) xdr.ScVal {
	return xdr.ScvVec(xdr.ScvMap(
		xdr.ScMapEntry{Key: xdr.ScvSymbol("public_key"), Val: xdr.ScvBytes(publicKey[:])},
		xdr.ScMapEntry{Key: xdr.ScvSymbol("signature"), Val: xdr.ScvBytes(signature)},
	))
}

// AuthorizeEntry signs an address-credentialed entry with signer, valid
// until validUntilLedger. Source account entries are returned unchanged.
func AuthorizeEntry(ctx context.Context, entry xdr.SorobanAuthorizationEntry, signer keypair.KP, validUntilLedger uint32, passphrase string) (xdr.SorobanAuthorizationEntry, error) {
	if entry.Credentials.Type != xdr.SorobanCredentialsTypeSorobanCredentialsAddress {
		return entry, nil
	}
	address, _ := EntryAddress(entry)
	if entry.Credentials.Address == nil || entry.Credentials.Address.Address.Type != xdr.ScAddressTypeScAddressTypeAccount {
		return entry, i18n.NewError(ctx, sbmsgs.MsgAuthContractAddress, address)
	}
	if address != signer.Address() {
		return entry, i18n.NewError(ctx, sbmsgs.MsgAuthSignerMismatch, signer.Address(), address)
	}
	signed, err := withExpiration(ctx, entry, validUntilLedger)
	if err != nil {
		return entry, err
	}
	payload, err := SignaturePayload(signed, passphrase)
	if err != nil {
		return entry, err
	}
	sig, err := signer.Sign(payload[:])
	if err != nil {
		return entry, i18n.WrapError(ctx, err, sbmsgs.MsgAuthEntrySignFailed, address)
	}
	if err := signer.Verify(payload[:], sig); err != nil {
		return entry, i18n.WrapError(ctx, err, sbmsgs.MsgAuthEntrySignFailed, address)
	}
	signed.Credentials.Address.Signature = AccountSignature(signer.RawPublicKey(), sig)
	log.L(ctx).Debugf("Signed authorization entry for %s nonce=%d expiration=%d", address, signed.Credentials.Address.Nonce, validUntilLedger)
	return signed, nil
}

// AuthorizeEntryWithDelegate hands entry to a delegate signer, and checks
// it came back signed for the same address, nonce, expiration and invocation
func AuthorizeEntryWithDelegate(ctx context.Context, entry xdr.SorobanAuthorizationEntry, delegate DelegateSigner, validUntilLedger uint32, passphrase string) (xdr.SorobanAuthorizationEntry, error) {
	if entry.Credentials.Type != xdr.SorobanCredentialsTypeSorobanCredentialsAddress {
		return entry, nil
	}
	address, ok := EntryAddress(entry)
	if !ok {
		return entry, i18n.NewError(ctx, sbmsgs.MsgAuthDelegateWrongEntry)
	}
	unsigned, err := withExpiration(ctx, entry, validUntilLedger)
	if err != nil {
		return entry, err
	}
	toSign := unsigned
	creds := *unsigned.Credentials.Address
	toSign.Credentials.Address = &creds
	signed, err := delegate(ctx, toSign, passphrase)
	if err != nil {
		return entry, i18n.WrapError(ctx, err, sbmsgs.MsgAuthDelegateFailed, address)
	}
	if !sameAuthorization(unsigned, signed) || NeedsSignature(signed) {
		return entry, i18n.NewError(ctx, sbmsgs.MsgAuthDelegateWrongEntry)
	}
	if signed.Credentials.Address.Address.Type == xdr.ScAddressTypeScAddressTypeAccount {
		if err := VerifyEntry(signed, passphrase); err != nil {
			return entry, i18n.WrapError(ctx, err, sbmsgs.MsgAuthDelegateFailed, address)
		}
	}
	log.L(ctx).Debugf("Delegate signed authorization entry for %s", address)
	return signed, nil
}

func sameAuthorization(a, b xdr.SorobanAuthorizationEntry) bool {
	ca, cb := a.Credentials.Address, b.Credentials.Address
	return cb != nil &&
		b.Credentials.Type == a.Credentials.Type &&
		ca.Nonce == cb.Nonce &&
		ca.SignatureExpirationLedger == cb.SignatureExpirationLedger &&
		xdr.Equals(ca.Address, cb.Address) &&
		xdr.Equals(a.RootInvocation, b.RootInvocation)
}

// VerifyEntry checks the signature of an account-credentialed entry
func VerifyEntry(entry xdr.SorobanAuthorizationEntry, passphrase string) error {
	ctx := context.Background()
	address, _ := EntryAddress(entry)
	payload, err := SignaturePayload(entry, passphrase)
	if err != nil {
		return err
	}
	kp, err := keypair.ParseAddress(address)
	if err != nil {
		return err
	}
	pub, sig, ok := parseAccountSignature(entry.Credentials.Address.Signature)
	if !ok || pub != kp.RawPublicKey() {
		return i18n.NewError(ctx, sbmsgs.MsgKeypairSignatureInvalid, address)
	}
	return kp.Verify(payload[:], sig)
}

func parseAccountSignature(v xdr.ScVal) (pub [32]byte, sig []byte, ok bool) {
	vec, ok := v.GetVec()
	if !ok || len(vec) != 1 {
		return pub, nil, false
	}
	m, ok := vec[0].GetMap()
	if !ok {
		return pub, nil, false
	}
	var pubBytes []byte
	for _, e := range m {
		name, _ := e.Key.GetSymbol()
		b, _ := e.Val.GetBytes()
		switch name {
		case "public_key":
			pubBytes = b
		case "signature":
			sig = b
		}
	}
	if len(pubBytes) != 32 || sig == nil {
		return pub, nil, false
	}
	copy(pub[:], pubBytes)
	return pub, sig, true
}

// Nonce returns a random nonce. Uniqueness per address is the signer's responsibility.
func Nonce() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, i18n.WrapError(context.Background(), err, sbmsgs.MsgAuthNonceFailed)
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

// AuthorizeInvocation builds and signs a new entry authorizing invocation
// on behalf of signer, with a fresh random nonce
func AuthorizeInvocation(ctx context.Context, signer keypair.KP, validUntilLedger uint32, invocation xdr.SorobanAuthorizedInvocation, passphrase string) (xdr.SorobanAuthorizationEntry, error) {
	nonce, err := Nonce()
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	entry := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeSorobanCredentialsAddress,
			Address: &xdr.SorobanAddressCredentials{
				Address:   xdr.AccountAddress(signer.RawPublicKey()),
				Nonce:     nonce,
				Signature: xdr.ScvVoid(),
			},
		},
		RootInvocation: invocation,
	}
	return AuthorizeEntry(ctx, entry, signer, validUntilLedger, passphrase)
}
