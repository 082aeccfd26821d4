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

package contract

import (
	"context"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-soroban/internal/sbconfig"
	"github.com/hyperledger/firefly-soroban/pkg/keypair"
	"github.com/hyperledger/firefly-soroban/pkg/rpcapi"
	"github.com/hyperledger/firefly-soroban/pkg/sorobanauth"
	"github.com/hyperledger/firefly-soroban/pkg/txnbuild"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testInvocation(method string) xdr.SorobanAuthorizedInvocation {
	return xdr.SorobanAuthorizedInvocation{
		Function: xdr.SorobanAuthorizedFunction{
			Type: xdr.SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn,
			ContractFn: &xdr.InvokeContractArgs{
				ContractAddress: xdr.ContractAddress(testContractHash),
				FunctionName:    xdr.ScSymbol(method),
			},
		},
	}
}

func addressEntry(kp keypair.KP, nonce int64) xdr.SorobanAuthorizationEntry {
	return xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeSorobanCredentialsAddress,
			Address: &xdr.SorobanAddressCredentials{
				Address:   xdr.AccountAddress(kp.RawPublicKey()),
				Nonce:     nonce,
				Signature: xdr.ScvVoid(),
			},
		},
		RootInvocation: testInvocation("swap"),
	}
}

func sourceAccountEntry() xdr.SorobanAuthorizationEntry {
	return xdr.SorobanAuthorizationEntry{
		Credentials:    xdr.SorobanCredentials{Type: xdr.SorobanCredentialsTypeSorobanCredentialsSourceAccount},
		RootInvocation: testInvocation("swap"),
	}
}

func decodeEnvelope(t *testing.T, b64 string) *txnbuild.Transaction {
	gtx, err := txnbuild.TransactionFromXDR(b64)
	require.NoError(t, err)
	tx, ok := gtx.Transaction()
	require.True(t, ok)
	return tx
}

func TestInvokeWriteCallSignAndSend(t *testing.T) {
	kp := keypair.MustRandom()
	ctx, c, api, done := newTestClient(t, ClientOptions{PublicKey: kp.Address()})
	defer done()

	mockAccount(api, kp, 100)
	api.On("SimulateTransaction", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		tx := decodeEnvelope(t, args[1].(*rpcapi.SimulateTransactionRequest).Transaction)
		assert.Equal(t, int64(101), tx.SequenceNumber())
		assert.Equal(t, int64(100), tx.MaxFee())
		assert.Empty(t, tx.Signatures())
	}).Return(&rpcapi.SimulateTransactionResponse{
		LatestLedger:    1000,
		MinResourceFee:  5000,
		TransactionData: simData(nil, []xdr.LedgerKey{contractDataKey(1)}),
		Results: []rpcapi.SimulateHostFunctionResult{{
			Auth:   []xdr.SorobanAuthorizationEntry{sourceAccountEntry()},
			Retval: xdr.ScvU32(41),
		}},
	}, rpcapi.ErrorReason(""), nil)

	var sentHash string
	api.On("SendTransaction", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		tx := decodeEnvelope(t, args[1].(*rpcapi.SendTransactionRequest).Transaction)
		assert.Equal(t, int64(101), tx.SequenceNumber())
		assert.Equal(t, int64(5100), tx.MaxFee())
		assert.Len(t, tx.AuthEntries(), 1)
		assert.NoError(t, txnbuild.VerifySignatures(tx, sbconfig.TestnetPassphrase, kp.Address()))
		sentHash, _ = tx.HashHex(sbconfig.TestnetPassphrase)
	}).Return(&rpcapi.SendTransactionResponse{
		Status:       rpcapi.SendTransactionStatusPending,
		LatestLedger: 1000,
	}, rpcapi.ErrorReason(""), nil)

	api.On("GetTransaction", mock.Anything, mock.Anything).Return(&rpcapi.GetTransactionResponse{
		Status: rpcapi.TransactionStatusNotFound,
	}, rpcapi.ErrorReason(""), nil).Once()
	ret := xdr.ScvU32(42)
	api.On("GetTransaction", mock.Anything, mock.Anything).Return(&rpcapi.GetTransactionResponse{
		Status:      rpcapi.TransactionStatusSuccess,
		Ledger:      1002,
		ReturnValue: &ret,
	}, rpcapi.ErrorReason(""), nil).Once()

	at, err := c.Invoke(ctx, "increment", xdr.ScvU32(1))
	require.NoError(t, err)
	assert.False(t, at.IsReadCall())
	assert.Empty(t, at.NeedsNonInvokerSigningBy(true))

	simulated, err := at.Result()
	require.NoError(t, err)
	assert.Equal(t, uint32(41), *simulated.U32)

	sent, err := at.SignAndSend(ctx, KeypairSigner(kp), false)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, at.State())
	assert.Equal(t, sentHash, sent.Hash)
	assert.Equal(t, 2, sent.Attempts)
	assert.Equal(t, rpcapi.TransactionStatusSuccess, sent.Status)
	assert.Equal(t, rpcapi.SendTransactionStatusPending, sent.SendResponse.Status)

	result, err := sent.Result()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), *result.U32)

	_, err = at.Send(ctx)
	assert.Regexp(t, "FF21278", err)
	err = at.Simulate(ctx)
	assert.Regexp(t, "FF21278", err)
}

func TestInvokeReadCallNoSigner(t *testing.T) {
	ctx, c, api, done := newTestClient(t, ClientOptions{})
	defer done()

	api.On("SimulateTransaction", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		tx := decodeEnvelope(t, args[1].(*rpcapi.SimulateTransactionRequest).Transaction)
		assert.Equal(t, NullAccount, tx.SourceAccount())
		assert.Equal(t, int64(1), tx.SequenceNumber())
	}).Return(&rpcapi.SimulateTransactionResponse{
		LatestLedger:    1000,
		TransactionData: simData([]xdr.LedgerKey{contractDataKey(1)}, nil),
		Results:         []rpcapi.SimulateHostFunctionResult{{Retval: xdr.ScvString("hello world")}},
	}, rpcapi.ErrorReason(""), nil)

	at, err := c.Invoke(ctx, "hello", xdr.ScvSymbol("world"))
	require.NoError(t, err)
	assert.True(t, at.IsReadCall())
	assert.NotNil(t, at.Simulation())

	v, err := at.Execute(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScString("hello world"), *v.Str)

	err = at.Sign(ctx, nil, false)
	assert.Regexp(t, "FF21273", err)
	err = at.Sign(ctx, nil, true)
	assert.Regexp(t, "FF21279", err)
	err = at.Sign(ctx, KeypairSigner(keypair.MustRandom()), true)
	assert.Regexp(t, "FF21282", err)

	_, err = at.Send(ctx)
	assert.Regexp(t, "FF21274", err)
	api.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
}

func TestMultiPartyAuthorization(t *testing.T) {
	invoker := keypair.MustRandom()
	alice := keypair.MustRandom()
	bob := keypair.MustRandom()
	ctx, c, api, done := newTestClient(t, ClientOptions{PublicKey: invoker.Address()})
	defer done()

	mockAccount(api, invoker, 100)
	api.On("SimulateTransaction", mock.Anything, mock.Anything).Return(&rpcapi.SimulateTransactionResponse{
		LatestLedger:    1000,
		MinResourceFee:  5000,
		TransactionData: simData(nil, []xdr.LedgerKey{contractDataKey(1), contractDataKey(2)}),
		Results: []rpcapi.SimulateHostFunctionResult{{
			Auth: []xdr.SorobanAuthorizationEntry{
				addressEntry(alice, 1),
				addressEntry(bob, 2),
				sourceAccountEntry(),
			},
			Retval: xdr.ScvVoid(),
		}},
	}, rpcapi.ErrorReason(""), nil)
	api.On("GetLatestLedger", mock.Anything, mock.Anything).Return(&rpcapi.GetLatestLedgerResponse{
		Sequence: 1000,
	}, rpcapi.ErrorReason(""), nil)

	at, err := c.Invoke(ctx, "swap")
	require.NoError(t, err)
	assert.False(t, at.IsReadCall())
	assert.Equal(t, []string{alice.Address(), bob.Address()}, at.NeedsNonInvokerSigningBy(false))

	// Nothing reaches the network while entries are unsigned
	_, err = at.Send(ctx)
	assert.Regexp(t, "FF21274", err)
	assert.Equal(t, ErrorReasonInvalidInputs, ReasonOf(err))
	err = at.Sign(ctx, KeypairSigner(invoker), false)
	assert.Regexp(t, "FF21254", err)
	assert.Equal(t, ErrorReasonAuthorizationFailed, ReasonOf(err))
	api.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)

	err = at.SignAuthEntries(ctx, AuthSignOptions{Signer: alice})
	require.NoError(t, err)
	assert.Equal(t, StatePartiallySigned, at.State())
	assert.Equal(t, []string{bob.Address()}, at.NeedsNonInvokerSigningBy(false))

	err = at.SignAuthEntries(ctx, AuthSignOptions{Signer: alice})
	assert.Regexp(t, "FF21255", err)

	delegateCalled := false
	err = at.SignAuthEntries(ctx, AuthSignOptions{
		Address:          bob.Address(),
		ExpirationLedger: 2000,
		Delegate: func(ctx context.Context, unsigned xdr.SorobanAuthorizationEntry, passphrase string) (xdr.SorobanAuthorizationEntry, error) {
			delegateCalled = true
			assert.Equal(t, uint32(2000), unsigned.Credentials.Address.SignatureExpirationLedger)
			return sorobanauth.AuthorizeEntry(ctx, unsigned, bob, 2000, passphrase)
		},
	})
	require.NoError(t, err)
	assert.True(t, delegateCalled)
	assert.Empty(t, at.NeedsNonInvokerSigningBy(false))
	assert.Equal(t, []string{alice.Address(), bob.Address()}, at.NeedsNonInvokerSigningBy(true))

	entries := at.Transaction().AuthEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, uint32(1100), entries[0].Credentials.Address.SignatureExpirationLedger)
	assert.NoError(t, sorobanauth.VerifyEntry(entries[0], sbconfig.TestnetPassphrase))
	assert.NoError(t, sorobanauth.VerifyEntry(entries[1], sbconfig.TestnetPassphrase))

	err = at.Sign(ctx, KeypairSigner(invoker), false)
	require.NoError(t, err)
	assert.Equal(t, StateFullySigned, at.State())
	assert.NoError(t, txnbuild.VerifySignatures(at.Transaction(), sbconfig.TestnetPassphrase, invoker.Address()))

	api.On("SendTransaction", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		tx := decodeEnvelope(t, args[1].(*rpcapi.SendTransactionRequest).Transaction)
		auth := tx.AuthEntries()
		require.Len(t, auth, 3)
		assert.NoError(t, sorobanauth.VerifyEntry(auth[0], sbconfig.TestnetPassphrase))
		assert.NoError(t, sorobanauth.VerifyEntry(auth[1], sbconfig.TestnetPassphrase))
		assert.Equal(t, xdr.SorobanCredentialsTypeSorobanCredentialsSourceAccount, auth[2].Credentials.Type)
		assert.Len(t, tx.Signatures(), 1)
		assert.NoError(t, txnbuild.VerifySignatures(tx, sbconfig.TestnetPassphrase, invoker.Address()))
	}).Return(&rpcapi.SendTransactionResponse{
		Status:       rpcapi.SendTransactionStatusPending,
		LatestLedger: 1000,
	}, rpcapi.ErrorReason(""), nil).Once()
	api.On("GetTransaction", mock.Anything, mock.Anything).Return(&rpcapi.GetTransactionResponse{
		Status: rpcapi.TransactionStatusSuccess,
		Ledger: 1001,
	}, rpcapi.ErrorReason(""), nil).Once()

	sent, err := at.Send(ctx)
	require.NoError(t, err)
	assert.Equal(t, rpcapi.TransactionStatusSuccess, sent.Status)
	assert.Equal(t, StateSubmitted, at.State())
	api.AssertNumberOfCalls(t, "SendTransaction", 1)
}

func TestSignTwiceKeepsOneSignature(t *testing.T) {
	kp := keypair.MustRandom()
	ctx, c, api, done := newTestClient(t, ClientOptions{PublicKey: kp.Address()})
	defer done()

	at := signedInvoke(ctx, t, c, api, kp)
	assert.Equal(t, StateFullySigned, at.State())
	hash := at.hash()

	err := at.Sign(ctx, KeypairSigner(kp), false)
	require.NoError(t, err)
	assert.Equal(t, StateFullySigned, at.State())
	assert.Len(t, at.Transaction().Signatures(), 1)
	assert.Equal(t, hash, at.hash())
	assert.NoError(t, txnbuild.VerifySignatures(at.Transaction(), sbconfig.TestnetPassphrase, kp.Address()))
}

func TestSignAuthEntriesErrors(t *testing.T) {
	invoker := keypair.MustRandom()
	alice := keypair.MustRandom()
	ctx, c, api, done := newTestClient(t, ClientOptions{PublicKey: invoker.Address()})
	defer done()

	mockAccount(api, invoker, 100)
	api.On("SimulateTransaction", mock.Anything, mock.Anything).Return(&rpcapi.SimulateTransactionResponse{
		TransactionData: simData(nil, []xdr.LedgerKey{contractDataKey(1)}),
		Results: []rpcapi.SimulateHostFunctionResult{{
			Auth: []xdr.SorobanAuthorizationEntry{addressEntry(alice, 1)},
		}},
	}, rpcapi.ErrorReason(""), nil)
	api.On("GetLatestLedger", mock.Anything, mock.Anything).
		Return(nil, rpcapi.ErrorReasonDownstreamDown, assert.AnError)

	at, err := c.Invoke(ctx, "swap")
	require.NoError(t, err)

	err = at.SignAuthEntries(ctx, AuthSignOptions{})
	assert.Regexp(t, "FF21279", err)

	err = at.SignAuthEntries(ctx, AuthSignOptions{Signer: alice})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, ErrorReasonAuthorizationFailed, ReasonOf(err))

	err = at.SignAuthEntries(ctx, AuthSignOptions{
		Address:          alice.Address(),
		ExpirationLedger: 10,
		Delegate: func(ctx context.Context, unsigned xdr.SorobanAuthorizationEntry, passphrase string) (xdr.SorobanAuthorizationEntry, error) {
			return unsigned, assert.AnError
		},
	})
	assert.Equal(t, ErrorReasonAuthorizationFailed, ReasonOf(err))
	assert.Equal(t, []string{alice.Address()}, at.NeedsNonInvokerSigningBy(false))
}

type failingSigner struct{ address string }

func (f *failingSigner) Address() string { return f.address }

func (f *failingSigner) SignTransaction(_ context.Context, tx *txnbuild.Transaction, _ string) (*txnbuild.Transaction, error) {
	return tx, nil
}

func TestSignWrongSigner(t *testing.T) {
	kp := keypair.MustRandom()
	ctx, c, api, done := newTestClient(t, ClientOptions{PublicKey: kp.Address()})
	defer done()

	mockAccount(api, kp, 100)
	api.On("SimulateTransaction", mock.Anything, mock.Anything).Return(&rpcapi.SimulateTransactionResponse{
		TransactionData: simData(nil, []xdr.LedgerKey{contractDataKey(1)}),
	}, rpcapi.ErrorReason(""), nil)

	at, err := c.Invoke(ctx, "increment")
	require.NoError(t, err)

	err = at.Sign(ctx, KeypairSigner(keypair.MustRandom()), false)
	assert.Regexp(t, "FF21244", err)
	err = at.Sign(ctx, &failingSigner{address: kp.Address()}, false)
	assert.Regexp(t, "FF21244", err)
	assert.Equal(t, ErrorReasonAuthorizationFailed, ReasonOf(err))
	assert.Equal(t, StatePrepared, at.State())
}

func TestSimulationFailed(t *testing.T) {
	ctx, c, api, done := newTestClient(t, ClientOptions{})
	defer done()

	api.On("SimulateTransaction", mock.Anything, mock.Anything).Return(&rpcapi.SimulateTransactionResponse{
		Error:  "HostError: Error(WasmVm, InvalidAction)",
		Events: []string{"AAAA"},
	}, rpcapi.ErrorReason(""), nil)

	_, err := c.Invoke(ctx, "boom")
	assert.Regexp(t, "FF21270.*InvalidAction", err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrorReasonSimulationFailed, e.Reason)
	assert.Contains(t, e.Diagnostic, "AAAA")
	assert.False(t, e.Retryable())
}

func TestSimulationRPCError(t *testing.T) {
	ctx, c, api, done := newTestClient(t, ClientOptions{})
	defer done()

	api.On("SimulateTransaction", mock.Anything, mock.Anything).
		Return(nil, rpcapi.ErrorReasonDownstreamDown, assert.AnError)

	_, err := c.Invoke(ctx, "hello")
	assert.Regexp(t, "FF21270", err)
	assert.ErrorIs(t, err, assert.AnError)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, string(rpcapi.ErrorReasonDownstreamDown), e.Diagnostic)
}

func TestSimulationRestoreRequired(t *testing.T) {
	kp := keypair.MustRandom()
	ctx, c, api, done := newTestClient(t, ClientOptions{PublicKey: kp.Address()})
	defer done()

	mockAccount(api, kp, 100)
	api.On("SimulateTransaction", mock.Anything, mock.Anything).Return(&rpcapi.SimulateTransactionResponse{
		TransactionData: simData(nil, []xdr.LedgerKey{contractDataKey(1)}),
		RestorePreamble: &rpcapi.RestorePreamble{
			TransactionData: *simData(nil, []xdr.LedgerKey{contractDataKey(1)}),
			MinResourceFee:  700,
		},
	}, rpcapi.ErrorReason(""), nil)

	_, err := c.Invoke(ctx, "increment")
	assert.Regexp(t, "FF21271.*700", err)
	assert.Equal(t, ErrorReasonSimulationFailed, ReasonOf(err))
	api.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
}

func TestSimulationRestoreIfNeeded(t *testing.T) {
	kp := keypair.MustRandom()
	ctx, c, api, done := newTestClient(t, ClientOptions{PublicKey: kp.Address(), Signer: KeypairSigner(kp)})
	defer done()
	config.Set(sbconfig.TransactionsRestoreIfNeeded, true)
	c.conf = readConfig()

	mockAccount(api, kp, 100).Once()
	mockAccount(api, kp, 100).Once()
	mockAccount(api, kp, 101).Once()
	api.On("SimulateTransaction", mock.Anything, mock.Anything).Return(&rpcapi.SimulateTransactionResponse{
		TransactionData: simData(nil, []xdr.LedgerKey{contractDataKey(1)}),
		RestorePreamble: &rpcapi.RestorePreamble{
			TransactionData: *simData(nil, []xdr.LedgerKey{contractDataKey(1)}),
			MinResourceFee:  700,
		},
	}, rpcapi.ErrorReason(""), nil).Once()
	api.On("SendTransaction", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		tx := decodeEnvelope(t, args[1].(*rpcapi.SendTransactionRequest).Transaction)
		ops := tx.Operations()
		require.Len(t, ops, 1)
		assert.NotNil(t, ops[0].Body.RestoreFootprintOp)
		assert.Equal(t, int64(101), tx.SequenceNumber())
		assert.Equal(t, int64(800), tx.MaxFee())
	}).Return(&rpcapi.SendTransactionResponse{
		Status: rpcapi.SendTransactionStatusPending,
	}, rpcapi.ErrorReason(""), nil).Once()
	api.On("GetTransaction", mock.Anything, mock.Anything).Return(&rpcapi.GetTransactionResponse{
		Status: rpcapi.TransactionStatusSuccess,
	}, rpcapi.ErrorReason(""), nil).Once()
	api.On("SimulateTransaction", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		tx := decodeEnvelope(t, args[1].(*rpcapi.SimulateTransactionRequest).Transaction)
		assert.Equal(t, int64(102), tx.SequenceNumber())
	}).Return(&rpcapi.SimulateTransactionResponse{
		TransactionData: simData(nil, []xdr.LedgerKey{contractDataKey(1)}),
		Results:         []rpcapi.SimulateHostFunctionResult{{Retval: xdr.ScvU32(1)}},
	}, rpcapi.ErrorReason(""), nil).Once()

	at, err := c.Invoke(ctx, "increment")
	require.NoError(t, err)
	assert.Equal(t, StateSimulated, at.State())
	assert.Equal(t, int64(102), at.Transaction().SequenceNumber())
}

func TestSimulationRestoreIfNeededNoSigner(t *testing.T) {
	kp := keypair.MustRandom()
	ctx, c, api, done := newTestClient(t, ClientOptions{PublicKey: kp.Address()})
	defer done()
	config.Set(sbconfig.TransactionsRestoreIfNeeded, true)
	c.conf = readConfig()

	mockAccount(api, kp, 100)
	api.On("SimulateTransaction", mock.Anything, mock.Anything).Return(&rpcapi.SimulateTransactionResponse{
		RestorePreamble: &rpcapi.RestorePreamble{
			TransactionData: *simData(nil, []xdr.LedgerKey{contractDataKey(1)}),
		},
	}, rpcapi.ErrorReason(""), nil)

	_, err := c.Invoke(ctx, "increment")
	assert.Regexp(t, "FF21279", err)
}

func TestResultNotSimulated(t *testing.T) {
	at := &AssembledTransaction{}
	_, err := at.Result()
	assert.Regexp(t, "FF21272", err)
	assert.False(t, at.IsReadCall())

	err = at.Sign(context.Background(), nil, false)
	assert.Regexp(t, "FF21272", err)
}

func TestResultVoidWithoutResults(t *testing.T) {
	at := &AssembledTransaction{simulation: &rpcapi.SimulateTransactionResponse{}}
	v, err := at.Result()
	require.NoError(t, err)
	assert.Equal(t, xdr.ScValTypeScvVoid, v.Type)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Draft", StateDraft.String())
	assert.Equal(t, "FullySigned", StateFullySigned.String())
	assert.Equal(t, "Submitted", StateSubmitted.String())
}
