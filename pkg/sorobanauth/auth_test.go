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
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/hyperledger/firefly-soroban/pkg/keypair"
	"github.com/hyperledger/firefly-soroban/pkg/network"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassphrase = network.TestNetworkPassphrase

func testInvocation() xdr.SorobanAuthorizedInvocation {
	return xdr.SorobanAuthorizedInvocation{
		Function: xdr.SorobanAuthorizedFunction{
			Type: xdr.SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn,
			ContractFn: &xdr.InvokeContractArgs{
				ContractAddress: xdr.ContractAddress([32]byte{7}),
				FunctionName:    "swap",
				Args:            []xdr.ScVal{xdr.ScvU32(1)},
			},
		},
		SubInvocations: []xdr.SorobanAuthorizedInvocation{{
			Function: xdr.SorobanAuthorizedFunction{
				Type: xdr.SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn,
				ContractFn: &xdr.InvokeContractArgs{
					ContractAddress: xdr.ContractAddress([32]byte{8}),
					FunctionName:    "transfer",
				},
			},
		}},
	}
}

func unsignedEntry(address xdr.ScAddress, nonce int64) xdr.SorobanAuthorizationEntry {
	return xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeSorobanCredentialsAddress,
			Address: &xdr.SorobanAddressCredentials{
				Address:   address,
				Nonce:     nonce,
				Signature: xdr.ScvVoid(),
			},
		},
		RootInvocation: testInvocation(),
	}
}

func sourceEntry() xdr.SorobanAuthorizationEntry {
	return xdr.SorobanAuthorizationEntry{
		Credentials:    xdr.SorobanCredentials{Type: xdr.SorobanCredentialsTypeSorobanCredentialsSourceAccount},
		RootInvocation: testInvocation(),
	}
}

func TestSignaturePayloadLayout(t *testing.T) {
	kp := keypair.MustRandom()
	entry := unsignedEntry(xdr.AccountAddress(kp.RawPublicKey()), 42)
	entry.Credentials.Address.SignatureExpirationLedger = 1000

	e := xdr.NewEncoder()
	e.Int32(int32(xdr.EnvelopeTypeEnvelopeTypeSorobanAuthorization))
	id := network.ID(testPassphrase)
	e.FixedOpaque("networkId", id[:], 32)
	e.Int64(42)
	e.Uint32(1000)
	entry.RootInvocation.EncodeTo(e)
	require.NoError(t, e.Err())

	payload, err := SignaturePayload(entry, testPassphrase)
	require.NoError(t, err)
	assert.Equal(t, xdr.Hash(sha256.Sum256(e.Bytes())), payload)
}

func TestSignaturePayloadNonceAndExpiry(t *testing.T) {
	address := xdr.AccountAddress(keypair.MustRandom().RawPublicKey())
	a := unsignedEntry(address, 1)
	a.Credentials.Address.SignatureExpirationLedger = 100
	b := unsignedEntry(address, 1)
	b.Credentials.Address.SignatureExpirationLedger = 101
	c := unsignedEntry(address, 2)
	c.Credentials.Address.SignatureExpirationLedger = 100

	ha, err := SignaturePayload(a, testPassphrase)
	require.NoError(t, err)
	hb, err := SignaturePayload(b, testPassphrase)
	require.NoError(t, err)
	hc, err := SignaturePayload(c, testPassphrase)
	require.NoError(t, err)
	hd, err := SignaturePayload(a, network.PublicNetworkPassphrase)
	require.NoError(t, err)

	assert.NotEqual(t, ha, hb)
	assert.NotEqual(t, ha, hc)
	assert.NotEqual(t, ha, hd)

	_, err = SignaturePayload(sourceEntry(), testPassphrase)
	assert.Regexp(t, "FF21259", err)
}

func TestNeedsSignatureAndEntryAddress(t *testing.T) {
	kp := keypair.MustRandom()
	entry := unsignedEntry(xdr.AccountAddress(kp.RawPublicKey()), 1)
	assert.True(t, NeedsSignature(entry))
	address, ok := EntryAddress(entry)
	assert.True(t, ok)
	assert.Equal(t, kp.Address(), address)

	assert.False(t, NeedsSignature(sourceEntry()))
	_, ok = EntryAddress(sourceEntry())
	assert.False(t, ok)
}

func TestAuthorizeEntry(t *testing.T) {
	ctx := context.Background()
	kp := keypair.MustRandom()
	entry := unsignedEntry(xdr.AccountAddress(kp.RawPublicKey()), 99)

	signed, err := AuthorizeEntry(ctx, entry, kp, 5000, testPassphrase)
	require.NoError(t, err)
	assert.False(t, NeedsSignature(signed))
	assert.Equal(t, uint32(5000), signed.Credentials.Address.SignatureExpirationLedger)
	assert.Equal(t, int64(99), signed.Credentials.Address.Nonce)
	require.NoError(t, VerifyEntry(signed, testPassphrase))

	// the input entry is not modified
	assert.True(t, NeedsSignature(entry))
	assert.Zero(t, entry.Credentials.Address.SignatureExpirationLedger)

	// the signature commits to the expiration
	tampered, _ := withExpiration(ctx, signed, 5001)
	assert.Regexp(t, "FF21225", VerifyEntry(tampered, testPassphrase))

	// and to the network
	assert.Regexp(t, "FF21225", VerifyEntry(signed, network.PublicNetworkPassphrase))

	vec, ok := signed.Credentials.Address.Signature.GetVec()
	require.True(t, ok)
	m, ok := vec[0].GetMap()
	require.True(t, ok)
	k0, _ := m[0].Key.GetSymbol()
	k1, _ := m[1].Key.GetSymbol()
	assert.Equal(t, []string{"public_key", "signature"}, []string{k0, k1})
}

func TestAuthorizeEntrySourceAccountUnchanged(t *testing.T) {
	entry := sourceEntry()
	out, err := AuthorizeEntry(context.Background(), entry, keypair.MustRandom(), 10, testPassphrase)
	require.NoError(t, err)
	assert.True(t, xdr.Equals(entry, out))
}

func TestAuthorizeEntryErrors(t *testing.T) {
	ctx := context.Background()
	kp := keypair.MustRandom()
	entry := unsignedEntry(xdr.AccountAddress(kp.RawPublicKey()), 1)

	_, err := AuthorizeEntry(ctx, entry, keypair.MustRandom(), 10, testPassphrase)
	assert.Regexp(t, "FF21252", err)

	_, err = AuthorizeEntry(ctx, entry, kp, 0, testPassphrase)
	assert.Regexp(t, "FF21253", err)

	_, err = AuthorizeEntry(ctx, entry, kp.Public(), 10, testPassphrase)
	assert.Regexp(t, "FF21250.*FF21223", err)

	contractEntry := unsignedEntry(xdr.ContractAddress([32]byte{3}), 1)
	_, err = AuthorizeEntry(ctx, contractEntry, kp, 10, testPassphrase)
	assert.Regexp(t, "FF21256", err)
}

func TestAuthorizeEntryWithDelegate(t *testing.T) {
	ctx := context.Background()
	kp := keypair.MustRandom()
	entry := unsignedEntry(xdr.AccountAddress(kp.RawPublicKey()), 5)

	called := 0
	delegate := func(ctx context.Context, unsigned xdr.SorobanAuthorizationEntry, passphrase string) (xdr.SorobanAuthorizationEntry, error) {
		called++
		assert.Equal(t, uint32(77), unsigned.Credentials.Address.SignatureExpirationLedger)
		assert.Equal(t, testPassphrase, passphrase)
		return AuthorizeEntry(ctx, unsigned, kp, unsigned.Credentials.Address.SignatureExpirationLedger, passphrase)
	}
	signed, err := AuthorizeEntryWithDelegate(ctx, entry, delegate, 77, testPassphrase)
	require.NoError(t, err)
	assert.Equal(t, 1, called)
	require.NoError(t, VerifyEntry(signed, testPassphrase))

	out, err := AuthorizeEntryWithDelegate(ctx, sourceEntry(), delegate, 77, testPassphrase)
	require.NoError(t, err)
	assert.Equal(t, 1, called, "source account entries never reach the delegate")
	assert.False(t, NeedsSignature(out))
}

func TestAuthorizeEntryWithDelegateFailures(t *testing.T) {
	ctx := context.Background()
	kp := keypair.MustRandom()
	entry := unsignedEntry(xdr.AccountAddress(kp.RawPublicKey()), 5)

	_, err := AuthorizeEntryWithDelegate(ctx, entry, func(ctx context.Context, e xdr.SorobanAuthorizationEntry, pp string) (xdr.SorobanAuthorizationEntry, error) {
		return e, fmt.Errorf("hardware wallet unplugged")
	}, 10, testPassphrase)
	assert.Regexp(t, "FF21251.*hardware wallet unplugged", err)

	_, err = AuthorizeEntryWithDelegate(ctx, entry, func(ctx context.Context, e xdr.SorobanAuthorizationEntry, pp string) (xdr.SorobanAuthorizationEntry, error) {
		return e, nil
	}, 10, testPassphrase)
	assert.Regexp(t, "FF21258", err)

	_, err = AuthorizeEntryWithDelegate(ctx, entry, func(ctx context.Context, e xdr.SorobanAuthorizationEntry, pp string) (xdr.SorobanAuthorizationEntry, error) {
		e.Credentials.Address.Nonce++
		return AuthorizeEntry(ctx, e, kp, 10, pp)
	}, 10, testPassphrase)
	assert.Regexp(t, "FF21258", err)

	_, err = AuthorizeEntryWithDelegate(ctx, entry, func(ctx context.Context, e xdr.SorobanAuthorizationEntry, pp string) (xdr.SorobanAuthorizationEntry, error) {
		e.Credentials.Address.Signature = AccountSignature(kp.RawPublicKey(), make([]byte, 64))
		return e, nil
	}, 10, testPassphrase)
	assert.Regexp(t, "FF21251.*FF21225", err)

	_, err = AuthorizeEntryWithDelegate(ctx, entry, nil, 0, testPassphrase)
	assert.Regexp(t, "FF21253", err)
}

func TestAuthorizeInvocation(t *testing.T) {
	ctx := context.Background()
	kp := keypair.MustRandom()
	a, err := AuthorizeInvocation(ctx, kp, 200, testInvocation(), testPassphrase)
	require.NoError(t, err)
	b, err := AuthorizeInvocation(ctx, kp, 200, testInvocation(), testPassphrase)
	require.NoError(t, err)

	require.NoError(t, VerifyEntry(a, testPassphrase))
	address, _ := EntryAddress(a)
	assert.Equal(t, kp.Address(), address)
	assert.NotEqual(t, a.Credentials.Address.Nonce, b.Credentials.Address.Nonce)

	// the entry survives the wire
	b64, err := xdr.MarshalBase64(a)
	require.NoError(t, err)
	var decoded xdr.SorobanAuthorizationEntry
	require.NoError(t, xdr.SafeUnmarshalBase64(b64, &decoded))
	require.NoError(t, VerifyEntry(decoded, testPassphrase))
}
