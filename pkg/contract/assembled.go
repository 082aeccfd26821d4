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
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-soroban/internal/persistence"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/keypair"
	"github.com/hyperledger/firefly-soroban/pkg/rpcapi"
	"github.com/hyperledger/firefly-soroban/pkg/sorobanauth"
	"github.com/hyperledger/firefly-soroban/pkg/txnbuild"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

type State int

const (
	StateDraft State = iota
	StateSimulated
	StatePrepared
	StatePartiallySigned
	StateFullySigned
	StateSubmitted
)

var stateNames = map[State]string{
	StateDraft:           "Draft",
	StateSimulated:       "Simulated",
	StatePrepared:        "Prepared",
	StatePartiallySigned: "PartiallySigned",
	StateFullySigned:     "FullySigned",
	StateSubmitted:       "Submitted",
}

func (s State) String() string {
	return stateNames[s]
}

// AssembledTransaction carries one Soroban operation from simulation to
// submission. It is mutated in place by each step, and must not be shared
// between concurrent submission attempts.
type AssembledTransaction struct {
	client      *Client
	method      string
	op          txnbuild.SorobanOperation
	draft       *txnbuild.Transaction
	built       *txnbuild.Transaction
	simulation  *rpcapi.SimulateTransactionResponse
	instanceKey *xdr.LedgerKey
	state       State
}

// AuthSignOptions selects the entries to sign, and how. Exactly one of
// Signer and Delegate is normally set; Address defaults to the signer's.
type AuthSignOptions struct {
	Address          string
	Signer           keypair.KP
	Delegate         sorobanauth.DelegateSigner
	ExpirationLedger uint32
}

func (at *AssembledTransaction) State() State { return at.state }

func (at *AssembledTransaction) Method() string { return at.method }

// Transaction is the current envelope: unsigned until Sign succeeds
func (at *AssembledTransaction) Transaction() *txnbuild.Transaction { return at.built }

func (at *AssembledTransaction) Simulation() *rpcapi.SimulateTransactionResponse { return at.simulation }

func simulationDiagnostic(sim *rpcapi.SimulateTransactionResponse) string {
	if len(sim.Events) == 0 {
		return sim.Error
	}
	return sim.Error + "\n" + strings.Join(sim.Events, "\n")
}

// simulate runs one dry run of tx. Failures are never retried here.
func (c *Client) simulate(ctx context.Context, tx *txnbuild.Transaction) (*rpcapi.SimulateTransactionResponse, error) {
	envelope, err := tx.Base64()
	if err != nil {
		return nil, newError(ErrorReasonInvalidInputs, err)
	}
	sim, reason, err := c.api.SimulateTransaction(ctx, &rpcapi.SimulateTransactionRequest{Transaction: envelope})
	if err != nil {
		c.metrics.SimulationOutcome(ctx, "error")
		return nil, &Error{
			Reason:     ErrorReasonSimulationFailed,
			Diagnostic: string(reason),
			Err:        i18n.NewError(ctx, sbmsgs.MsgSimulationFailed, err.Error()),
			Cause:      err,
		}
	}
	if sim.Failed() {
		c.metrics.SimulationOutcome(ctx, "failed")
		log.L(ctx).Debugf("Simulation failed: %s", sim.Error)
		return nil, &Error{
			Reason:     ErrorReasonSimulationFailed,
			Diagnostic: simulationDiagnostic(sim),
			Err:        i18n.NewError(ctx, sbmsgs.MsgSimulationFailed, sim.Error),
		}
	}
	return sim, nil
}

// Simulate dry-runs the draft transaction. When archived entries must be
// restored first, and restoreIfNeeded is configured, the restore is
// submitted and the draft rebuilt on the reloaded account before simulating
// again. Otherwise the restore requirement is reported as a failure.
func (at *AssembledTransaction) Simulate(ctx context.Context) error {
	c := at.client
	if at.state == StateSubmitted {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgAlreadySubmitted, at.hash()))
	}
	if at.draft == nil {
		at.draft = at.built
	}
	sim, err := c.simulate(ctx, at.draft)
	if err != nil {
		return err
	}
	if sim.RestorePreamble != nil {
		if !c.conf.restoreIfNeeded {
			c.metrics.SimulationOutcome(ctx, "restore_required")
			return &Error{
				Reason: ErrorReasonSimulationFailed,
				Err:    i18n.NewError(ctx, sbmsgs.MsgRestoreRequired, sim.RestorePreamble.MinResourceFee),
			}
		}
		c.metrics.SimulationOutcome(ctx, "restore")
		if err := c.restoreFromPreamble(ctx, sim.RestorePreamble); err != nil {
			return err
		}
		// The restore consumed a sequence number
		draft, err := c.buildTransaction(ctx, at.op)
		if err != nil {
			return err
		}
		at.draft = draft
		if sim, err = c.simulate(ctx, draft); err != nil {
			return err
		}
		if sim.RestorePreamble != nil {
			c.metrics.SimulationOutcome(ctx, "restore_required")
			return &Error{
				Reason: ErrorReasonSimulationFailed,
				Err:    i18n.NewError(ctx, sbmsgs.MsgRestoreRequired, sim.RestorePreamble.MinResourceFee),
			}
		}
	}
	c.metrics.SimulationOutcome(ctx, "success")
	at.simulation = sim
	at.built = at.draft
	at.state = StateSimulated
	log.L(ctx).Debugf("Simulated %s: minResourceFee=%d latestLedger=%d", at.method, sim.MinResourceFee, sim.LatestLedger)
	return nil
}

// restoreFromPreamble submits the RestoreFootprint transaction described by
// a simulation, signed by the client signer
func (c *Client) restoreFromPreamble(ctx context.Context, preamble *rpcapi.RestorePreamble) error {
	if c.publicKey == "" {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgMissingPublicKey))
	}
	if c.signer == nil {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgNoSigner))
	}
	op := &txnbuild.RestoreFootprint{}
	tx, err := c.buildTransaction(ctx, op)
	if err != nil {
		return err
	}
	if tx, err = tx.WithSorobanData(preamble.TransactionData, preamble.MinResourceFee); err != nil {
		return newError(ErrorReasonInvalidInputs, err)
	}
	restore := &AssembledTransaction{
		client: c,
		method: "restore",
		op:     op,
		draft:  tx,
		built:  tx,
		state:  StatePrepared,
	}
	log.L(ctx).Infof("Restoring archived entries before invoking")
	if err := restore.signPrepared(ctx, c.signer); err != nil {
		return err
	}
	_, err = restore.Send(ctx)
	return err
}

// IsReadCall reports whether the simulated invocation changes no state and
// needs no authorization, so its result can be used without submitting it
func (at *AssembledTransaction) IsReadCall() bool {
	if at.simulation == nil || at.simulation.TransactionData == nil {
		return false
	}
	if _, ok := at.op.(*txnbuild.InvokeHostFunction); !ok {
		return false
	}
	for _, r := range at.simulation.Results {
		if len(r.Auth) > 0 {
			return false
		}
	}
	return len(at.simulation.TransactionData.Resources.Footprint.ReadWrite) == 0
}

// Result is the value returned by the simulated invocation
func (at *AssembledTransaction) Result() (xdr.ScVal, error) {
	if at.simulation == nil {
		return xdr.ScVal{}, newError(ErrorReasonInvalidInputs, i18n.NewError(context.Background(), sbmsgs.MsgNotSimulated))
	}
	if len(at.simulation.Results) == 0 {
		return xdr.ScvVoid(), nil
	}
	return at.simulation.Results[0].Retval, nil
}

func withInstanceKey(data xdr.SorobanTransactionData, key xdr.LedgerKey) xdr.SorobanTransactionData {
	fp := data.Resources.Footprint
	for _, k := range append(append([]xdr.LedgerKey(nil), fp.ReadOnly...), fp.ReadWrite...) {
		if k.Equals(key) {
			return data
		}
	}
	data.Resources.Footprint.ReadWrite = append(append([]xdr.LedgerKey(nil), fp.ReadWrite...), key)
	return data
}

// prepare attaches the simulated resources and authorization entries. The
// sequence number of the draft is kept, the account is not reloaded.
func (at *AssembledTransaction) prepare(ctx context.Context) error {
	if at.state >= StatePrepared {
		return nil
	}
	if at.simulation == nil {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgNotSimulated))
	}
	sim := at.simulation
	if sim.TransactionData == nil {
		return newError(ErrorReasonSimulationFailed, i18n.NewError(ctx, sbmsgs.MsgNoFootprint))
	}
	data := *sim.TransactionData
	if at.instanceKey != nil {
		data = withInstanceKey(data, *at.instanceKey)
	}
	tx, err := at.draft.WithSorobanData(data, sim.MinResourceFee)
	if err != nil {
		return newError(ErrorReasonInvalidInputs, err)
	}
	if _, ok := at.op.(*txnbuild.InvokeHostFunction); ok && len(sim.Results) > 0 {
		if tx, err = tx.WithOperationAuth(sim.Results[0].Auth); err != nil {
			return newError(ErrorReasonInvalidInputs, err)
		}
	}
	at.built = tx
	at.state = StatePrepared
	return nil
}

func (at *AssembledTransaction) authEntries() []xdr.SorobanAuthorizationEntry {
	if at.state >= StatePrepared {
		return at.built.AuthEntries()
	}
	if at.simulation != nil && len(at.simulation.Results) > 0 {
		return at.simulation.Results[0].Auth
	}
	return nil
}

// NeedsNonInvokerSigningBy lists the addresses, other than the invoker,
// that authorization entries require a signature from. Addresses that
// have already signed are only listed when includeAlreadySigned is set.
func (at *AssembledTransaction) NeedsNonInvokerSigningBy(includeAlreadySigned bool) []string {
	seen := map[string]bool{}
	var addresses []string
	for _, entry := range at.authEntries() {
		address, ok := sorobanauth.EntryAddress(entry)
		if !ok || address == at.client.publicKey || seen[address] {
			continue
		}
		if includeAlreadySigned || sorobanauth.NeedsSignature(entry) {
			seen[address] = true
			addresses = append(addresses, address)
		}
	}
	return addresses
}

// SignAuthEntries signs every unsigned entry for one address, directly with
// a key or through a delegate. Any transaction signature already applied is
// dropped, since the entries are part of the signed payload.
func (at *AssembledTransaction) SignAuthEntries(ctx context.Context, opts AuthSignOptions) error {
	c := at.client
	if at.state == StateSubmitted {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgAlreadySubmitted, at.hash()))
	}
	address := opts.Address
	if address == "" && opts.Signer != nil {
		address = opts.Signer.Address()
	}
	if address == "" || (opts.Signer == nil && opts.Delegate == nil) {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgNoSigner))
	}
	if err := at.prepare(ctx); err != nil {
		return err
	}

	expiration := opts.ExpirationLedger
	if expiration == 0 {
		latest, _, err := c.api.GetLatestLedger(ctx, &rpcapi.GetLatestLedgerRequest{})
		if err != nil {
			return newError(ErrorReasonAuthorizationFailed, err)
		}
		expiration = latest.Sequence + c.conf.authValidityLedgers
	}

	entries := at.built.AuthEntries()
	signed := 0
	for i, entry := range entries {
		entryAddress, ok := sorobanauth.EntryAddress(entry)
		if !ok || entryAddress != address || !sorobanauth.NeedsSignature(entry) {
			continue
		}
		var err error
		if opts.Delegate != nil {
			entries[i], err = sorobanauth.AuthorizeEntryWithDelegate(ctx, entry, opts.Delegate, expiration, c.conf.passphrase)
		} else {
			entries[i], err = sorobanauth.AuthorizeEntry(ctx, entry, opts.Signer, expiration, c.conf.passphrase)
		}
		if err != nil {
			return newError(ErrorReasonAuthorizationFailed, err)
		}
		signed++
	}
	if signed == 0 {
		return newError(ErrorReasonAuthorizationFailed, i18n.NewError(ctx, sbmsgs.MsgAuthNoEntriesForAddress, address))
	}
	tx, err := at.built.WithOperationAuth(entries)
	if err != nil {
		return newError(ErrorReasonInvalidInputs, err)
	}
	at.built = tx
	at.state = StatePartiallySigned
	log.L(ctx).Debugf("Signed %d authorization entries for %s, valid until ledger %d", signed, address, expiration)
	return nil
}

// Sign applies the invoker's transaction signature. Every non-invoker
// authorization entry must already be signed. A read call is refused
// unless force is set, as it does not need to be submitted. Signing a
// transaction that is already fully signed does nothing.
func (at *AssembledTransaction) Sign(ctx context.Context, signer TransactionSigner, force bool) error {
	if at.state == StateSubmitted {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgAlreadySubmitted, at.hash()))
	}
	if at.state == StateFullySigned {
		// The invoker signature must appear only once
		return nil
	}
	if at.simulation == nil {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgNotSimulated))
	}
	if !force && at.IsReadCall() {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgReadCallNoSign))
	}
	if err := at.prepare(ctx); err != nil {
		return err
	}
	return at.signPrepared(ctx, signer)
}

func (at *AssembledTransaction) signPrepared(ctx context.Context, signer TransactionSigner) error {
	c := at.client
	if signer == nil {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgNoSigner))
	}
	if c.publicKey == "" {
		return newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgMissingPublicKey))
	}
	if missing := at.NeedsNonInvokerSigningBy(false); len(missing) > 0 {
		return newError(ErrorReasonAuthorizationFailed, i18n.NewError(ctx, sbmsgs.MsgAuthMissingSignatures, strings.Join(missing, ", ")))
	}
	signed, err := signer.SignTransaction(ctx, at.built, c.conf.passphrase)
	if err != nil {
		return newError(ErrorReasonAuthorizationFailed, err)
	}
	if err := txnbuild.VerifySignatures(signed, c.conf.passphrase, c.publicKey); err != nil {
		return newError(ErrorReasonAuthorizationFailed, err)
	}
	at.built = signed
	at.state = StateFullySigned
	return nil
}

func (at *AssembledTransaction) hash() string {
	h, _ := at.built.HashHex(at.client.conf.passphrase)
	return h
}

// Send submits the signed envelope and polls until a final status is seen
// or the attempt budget runs out. The envelope must round trip through the
// codec unchanged before it is handed over.
func (at *AssembledTransaction) Send(ctx context.Context) (*SentTransaction, error) {
	c := at.client
	if at.state == StateSubmitted {
		return nil, newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgAlreadySubmitted, at.hash()))
	}
	if at.state != StateFullySigned {
		return nil, newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgNotSigned))
	}
	envelope, err := at.built.Base64()
	if err != nil {
		return nil, newError(ErrorReasonDecodeFailed, err)
	}
	var check xdr.TransactionEnvelope
	if err := xdr.SafeUnmarshalBase64(envelope, &check); err != nil {
		return nil, newError(ErrorReasonDecodeFailed, err)
	}
	hash, err := at.built.HashHex(c.conf.passphrase)
	if err != nil {
		return nil, newError(ErrorReasonDecodeFailed, err)
	}
	ctx = log.WithLogField(ctx, "tx", hash)

	if c.persistence != nil {
		err := c.persistence.WriteInFlight(ctx, &persistence.InFlightTransaction{
			Hash:     hash,
			Envelope: envelope,
			Source:   c.publicKey,
			Method:   at.method,
		})
		if err != nil {
			return nil, &Error{Reason: ErrorReasonSubmissionFailed, Hash: hash, Err: err}
		}
	}
	at.state = StateSubmitted
	return c.submit(ctx, hash, envelope)
}

// SignAndSend is Sign followed by Send
func (at *AssembledTransaction) SignAndSend(ctx context.Context, signer TransactionSigner, force bool) (*SentTransaction, error) {
	if at.state < StateFullySigned {
		if err := at.Sign(ctx, signer, force); err != nil {
			return nil, err
		}
	}
	return at.Send(ctx)
}

// Execute resolves the invocation. A read call returns the simulated result
// without signing anything, any other call is signed and submitted.
func (at *AssembledTransaction) Execute(ctx context.Context, signer TransactionSigner) (xdr.ScVal, error) {
	if at.IsReadCall() {
		return at.Result()
	}
	sent, err := at.SignAndSend(ctx, signer, false)
	if err != nil {
		return xdr.ScVal{}, err
	}
	return sent.Result()
}
