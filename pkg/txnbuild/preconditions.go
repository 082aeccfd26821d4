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
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/strkey"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// TimeoutInfinite leaves the upper time bound unset
const TimeoutInfinite int64 = 0

// TimeBounds must be created with NewTimebounds, NewTimeout or
// NewInfiniteTimeout. A zero value is rejected when building, so that a
// transaction that never expires is always an explicit choice.
type TimeBounds struct {
	MinTime  int64
	MaxTime  int64
	wasBuilt bool
}

func NewTimebounds(minTime, maxTime int64) TimeBounds {
	return TimeBounds{MinTime: minTime, MaxTime: maxTime, wasBuilt: true}
}

// NewTimeout bounds the transaction to the next timeout seconds
func NewTimeout(timeout int64) TimeBounds {
	return NewTimebounds(0, time.Now().UTC().Unix()+timeout)
}

func NewInfiniteTimeout() TimeBounds {
	return NewTimebounds(0, TimeoutInfinite)
}

func (tb TimeBounds) validate(ctx context.Context) error {
	if !tb.wasBuilt {
		return i18n.NewError(ctx, sbmsgs.MsgTxMissingTimebounds)
	}
	if tb.MinTime < 0 || tb.MaxTime < 0 {
		return i18n.NewError(ctx, sbmsgs.MsgTxInvalidField, "timebounds", "negative time")
	}
	if tb.MaxTime != TimeoutInfinite && tb.MaxTime < tb.MinTime {
		return i18n.NewError(ctx, sbmsgs.MsgTxInvalidField, "timebounds", "maxTime before minTime")
	}
	return nil
}

type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

// Preconditions gate when a transaction is valid. Anything beyond
// TimeBounds switches the encoding to PRECOND_V2.
type Preconditions struct {
	TimeBounds                 TimeBounds
	LedgerBounds               *LedgerBounds
	MinSequenceNumber          *int64
	MinSequenceNumberAge       uint64
	MinSequenceNumberLedgerGap uint32
	ExtraSigners               []string
}

func (p Preconditions) hasV2() bool {
	return p.LedgerBounds != nil ||
		p.MinSequenceNumber != nil ||
		p.MinSequenceNumberAge > 0 ||
		p.MinSequenceNumberLedgerGap > 0 ||
		len(p.ExtraSigners) > 0
}

func (p Preconditions) toXDR(ctx context.Context) (xdr.Preconditions, error) {
	if err := p.TimeBounds.validate(ctx); err != nil {
		return xdr.Preconditions{}, err
	}
	tb := xdr.TimeBounds{MinTime: uint64(p.TimeBounds.MinTime), MaxTime: uint64(p.TimeBounds.MaxTime)}
	if !p.hasV2() {
		return xdr.Preconditions{Type: xdr.PreconditionTypePrecondTime, TimeBounds: &tb}, nil
	}
	if len(p.ExtraSigners) > 2 {
		return xdr.Preconditions{}, i18n.NewError(ctx, sbmsgs.MsgTxInvalidField, "extraSigners", "at most 2 extra signers")
	}
	v2 := &xdr.PreconditionsV2{
		TimeBounds:      &tb,
		MinSeqNum:       p.MinSequenceNumber,
		MinSeqAge:       p.MinSequenceNumberAge,
		MinSeqLedgerGap: p.MinSequenceNumberLedgerGap,
	}
	if p.LedgerBounds != nil {
		v2.LedgerBounds = &xdr.LedgerBounds{MinLedger: p.LedgerBounds.MinLedger, MaxLedger: p.LedgerBounds.MaxLedger}
	}
	for _, s := range p.ExtraSigners {
		sk, err := SignerKeyFromAddress(s)
		if err != nil {
			return xdr.Preconditions{}, err
		}
		v2.ExtraSigners = append(v2.ExtraSigners, sk)
	}
	return xdr.Preconditions{Type: xdr.PreconditionTypePrecondV2, V2: v2}, nil
}

// SignerKeyFromAddress parses a G, T, X or P strkey into a signer key
func SignerKeyFromAddress(address string) (xdr.SignerKey, error) {
	version, payload, err := strkey.DecodeAny(address)
	if err != nil {
		return xdr.SignerKey{}, err
	}
	var key xdr.Uint256
	switch version {
	case strkey.VersionByteAccountID:
		copy(key[:], payload)
		return xdr.SignerKey{Type: xdr.SignerKeyTypeSignerKeyTypeEd25519, Ed25519: &key}, nil
	case strkey.VersionByteHashTx:
		copy(key[:], payload)
		return xdr.SignerKey{Type: xdr.SignerKeyTypeSignerKeyTypePreAuthTx, PreAuthTx: &key}, nil
	case strkey.VersionByteHashX:
		copy(key[:], payload)
		return xdr.SignerKey{Type: xdr.SignerKeyTypeSignerKeyTypeHashX, HashX: &key}, nil
	case strkey.VersionByteSignedPayload:
		// key, then the payload as XDR variable opaque
		var sp xdr.SignerKeyEd25519SignedPayload
		if err := xdr.Unmarshal(payload, &sp); err != nil {
			return xdr.SignerKey{}, err
		}
		return xdr.SignerKey{Type: xdr.SignerKeyTypeSignerKeyTypeEd25519SignedPayload, Ed25519SignedPayload: &sp}, nil
	default:
		return xdr.SignerKey{}, i18n.NewError(context.Background(), sbmsgs.MsgAddressUnsupported, address)
	}
}
