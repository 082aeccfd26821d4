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

package persistence

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	ulid "github.com/oklog/ulid/v2"
)

var ulidReader = &ulid.LockedMonotonicReader{
	MonotonicReader: &ulid.MonotonicEntropy{
		Reader: rand.Reader,
	},
}

// NewULID returns a Universally Unique Lexicographically Sortable Identifier (ULID),
// formatted like a UUID
func NewULID() *fftypes.UUID {
	u := ulid.MustNew(ulid.Timestamp(time.Now()), ulidReader)
	return (*fftypes.UUID)(&u)
}

// InFlightTransaction is the record of a transaction that has been handed to
// the network, but whose final status has not yet been observed. The envelope
// is kept so the submission can be resumed, or re-verified, after a restart.
type InFlightTransaction struct {
	ID           *fftypes.UUID   `json:"id"`
	Hash         string          `json:"hash"`
	Envelope     string          `json:"envelope"`
	Source       string          `json:"source,omitempty"`
	Method       string          `json:"method,omitempty"`
	Status       string          `json:"status,omitempty"`
	LatestLedger uint32          `json:"latestLedger,omitempty"`
	Created      *fftypes.FFTime `json:"created"`
	Updated      *fftypes.FFTime `json:"updated"`
}

// Persistence holds at most one in-flight transaction
type Persistence interface {
	// WriteInFlight records tx in the slot. Rewriting the same hash updates
	// the record, while a different hash fails if the slot is occupied.
	WriteInFlight(ctx context.Context, tx *InFlightTransaction) error
	// GetInFlight returns nil if no transaction is in flight
	GetInFlight(ctx context.Context) (*InFlightTransaction, error)
	ClearInFlight(ctx context.Context, hash string) error
	Close(ctx context.Context)
}
