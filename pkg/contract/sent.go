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
	"errors"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-soroban/internal/persistence"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/rpcapi"
	"github.com/hyperledger/firefly-soroban/pkg/txnbuild"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// SentTransaction is a transaction that reached a final status on the network
type SentTransaction struct {
	Hash         string
	Status       rpcapi.TransactionStatus
	Attempts     int
	SendResponse *rpcapi.SendTransactionResponse
	Response     *rpcapi.GetTransactionResponse
}

// Result is the value returned by the host function, void when the
// transaction had none
func (st *SentTransaction) Result() (xdr.ScVal, error) {
	if st.Response == nil || st.Status != rpcapi.TransactionStatusSuccess {
		return xdr.ScVal{}, &Error{
			Reason: ErrorReasonTransactionFailed,
			Hash:   st.Hash,
			Status: string(st.Status),
			Err:    i18n.NewError(context.Background(), sbmsgs.MsgTransactionFailed, st.Hash, st.Status),
		}
	}
	if st.Response.ReturnValue == nil {
		return xdr.ScvVoid(), nil
	}
	return *st.Response.ReturnValue, nil
}

func (c *Client) clearInFlight(ctx context.Context, hash string) {
	if c.persistence == nil {
		return
	}
	if err := c.persistence.ClearInFlight(ctx, hash); err != nil {
		log.L(ctx).Warnf("Failed to clear in-flight transaction: %s", err)
	}
}

func (c *Client) updateInFlight(ctx context.Context, hash string, status string, latestLedger uint32) {
	if c.persistence == nil {
		return
	}
	inflight, err := c.persistence.GetInFlight(ctx)
	if err == nil && inflight != nil && inflight.Hash == hash {
		inflight.Status = status
		inflight.LatestLedger = latestLedger
		err = c.persistence.WriteInFlight(ctx, inflight)
	}
	if err != nil {
		log.L(ctx).Warnf("Failed to update in-flight transaction: %s", err)
	}
}

func sendErrorDetail(res *rpcapi.SendTransactionResponse) string {
	if res.ErrorResult != nil {
		return res.ErrorResult.Code.String()
	}
	if res.ErrorResultXdr != "" {
		return res.ErrorResultXdr
	}
	return string(res.Status)
}

// submit sends the envelope once, then polls for its final status. Only a
// PENDING or DUPLICATE answer leads to polling.
func (c *Client) submit(ctx context.Context, hash, envelope string) (*SentTransaction, error) {
	c.metrics.SubmissionStarted(ctx, hash)
	res, reason, err := c.api.SendTransaction(ctx, &rpcapi.SendTransactionRequest{Transaction: envelope})
	if err != nil {
		c.metrics.SubmissionFinished(ctx, hash, "send_error", 0)
		c.clearInFlight(ctx, hash)
		return nil, &Error{
			Reason:     ErrorReasonSubmissionFailed,
			Hash:       hash,
			Diagnostic: string(reason),
			Err:        err,
		}
	}
	log.L(ctx).Infof("Sent transaction status=%s latestLedger=%d", res.Status, res.LatestLedger)
	switch res.Status {
	case rpcapi.SendTransactionStatusPending, rpcapi.SendTransactionStatusDuplicate:
	default:
		detail := sendErrorDetail(res)
		c.metrics.SubmissionFinished(ctx, hash, string(res.Status), 0)
		c.clearInFlight(ctx, hash)
		return nil, &Error{
			Reason:     ErrorReasonSubmissionFailed,
			Hash:       hash,
			Status:     string(res.Status),
			Diagnostic: detail,
			Err:        i18n.NewError(ctx, sbmsgs.MsgSubmissionFailed, hash, res.Status, detail),
		}
	}
	sent, err := c.poll(ctx, hash)
	if sent != nil {
		sent.SendResponse = res
	}
	return sent, err
}

// poll checks the status of hash until it is final. NOT_FOUND and transient
// RPC failures are retried with backoff, up to the configured attempts.
func (c *Client) poll(ctx context.Context, hash string) (*SentTransaction, error) {
	sent := &SentTransaction{Hash: hash, Status: rpcapi.TransactionStatusNotFound}
	var latestLedger uint32
	var final error
	err := c.conf.poll.Do(ctx, "getTransaction", func(attempt int) (bool, error) {
		sent.Attempts = attempt
		res, reason, err := c.api.GetTransaction(ctx, &rpcapi.GetTransactionRequest{Hash: hash})
		if err != nil {
			return reason.Retryable() && attempt < c.conf.pollMaxAttempts, err
		}
		latestLedger = res.LatestLedger
		sent.Status = res.Status
		sent.Response = res
		switch res.Status {
		case rpcapi.TransactionStatusSuccess:
			return false, nil
		case rpcapi.TransactionStatusFailed:
			detail := res.ResultXdr
			if res.Result != nil {
				detail = res.Result.Code.String()
			}
			final = &Error{
				Reason:     ErrorReasonTransactionFailed,
				Hash:       hash,
				Status:     string(res.Status),
				Diagnostic: res.ResultXdr,
				Err:        i18n.NewError(ctx, sbmsgs.MsgTransactionFailed, hash, detail),
			}
			return false, final
		default:
			return attempt < c.conf.pollMaxAttempts,
				i18n.NewError(ctx, sbmsgs.MsgTransactionStatusUnknown, hash, attempt, res.Status)
		}
	})

	switch {
	case err == nil:
		c.metrics.SubmissionFinished(ctx, hash, string(sent.Status), sent.Attempts)
		c.clearInFlight(ctx, hash)
		log.L(ctx).Infof("Transaction succeeded in ledger %d after %d polls", sent.Response.Ledger, sent.Attempts)
		return sent, nil
	case final != nil && errors.Is(err, final):
		c.metrics.SubmissionFinished(ctx, hash, string(sent.Status), sent.Attempts)
		c.clearInFlight(ctx, hash)
		return sent, final
	default:
		c.metrics.SubmissionFinished(ctx, hash, "unknown", sent.Attempts)
		c.updateInFlight(ctx, hash, string(sent.Status), latestLedger)
		e := &Error{
			Reason: ErrorReasonStatusUnknown,
			Hash:   hash,
			Status: string(sent.Status),
			Err:    err,
		}
		if ctx.Err() != nil {
			e.Err = i18n.NewError(ctx, sbmsgs.MsgShuttingDown)
			e.Cause = err
		}
		return sent, e
	}
}

// Resume polls the transaction recorded in flight by an earlier Send, for
// example after a restart. The envelope is not sent again.
func (c *Client) Resume(ctx context.Context) (*SentTransaction, error) {
	if c.persistence == nil {
		return nil, newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgNoInFlightTransaction))
	}
	inflight, err := c.persistence.GetInFlight(ctx)
	if err != nil {
		return nil, newError(ErrorReasonStatusUnknown, err)
	}
	if inflight == nil {
		return nil, newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgNoInFlightTransaction))
	}
	gtx, err := txnbuild.TransactionFromXDR(inflight.Envelope)
	if err != nil {
		return nil, newError(ErrorReasonDecodeFailed, err)
	}
	var hash string
	if fb, ok := gtx.FeeBump(); ok {
		hash, err = fb.HashHex(c.conf.passphrase)
	} else {
		tx, _ := gtx.Transaction()
		hash, err = tx.HashHex(c.conf.passphrase)
	}
	if err != nil {
		return nil, newError(ErrorReasonDecodeFailed, err)
	}
	if hash != inflight.Hash {
		return nil, newError(ErrorReasonDecodeFailed, i18n.NewError(ctx, sbmsgs.MsgInFlightHashMismatch, hash, inflight.Hash))
	}
	ctx = log.WithLogField(ctx, "tx", hash)
	log.L(ctx).Infof("Resuming in-flight transaction %s (%s)", inflight.ID, inflight.Method)
	c.metrics.SubmissionStarted(ctx, hash)
	return c.poll(ctx, hash)
}

// InFlight returns the transaction recorded as in flight, or nil
func (c *Client) InFlight(ctx context.Context) (*persistence.InFlightTransaction, error) {
	if c.persistence == nil {
		return nil, nil
	}
	return c.persistence.GetInFlight(ctx)
}
