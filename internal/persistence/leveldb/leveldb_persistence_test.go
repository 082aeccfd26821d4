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

package leveldb

import (
	"context"
	"os"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-soroban/internal/persistence"
	"github.com/hyperledger/firefly-soroban/internal/sbconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

func newTestLevelDBPersistence(t *testing.T) (context.Context, *leveldbPersistence, func()) {
	ctx, cancelCtx := context.WithCancel(context.Background())

	sbconfig.Reset()
	config.Set(sbconfig.PersistenceLevelDBPath, t.TempDir())

	pp, err := NewLevelDBPersistence(ctx)
	require.NoError(t, err)

	p := pp.(*leveldbPersistence)
	return ctx, p, func() {
		p.Close(ctx)
		cancelCtx()
	}
}

func TestLevelDBInitMissingPath(t *testing.T) {
	sbconfig.Reset()

	_, err := NewLevelDBPersistence(context.Background())
	assert.Regexp(t, "FF21290", err)
}

func TestLevelDBInitFail(t *testing.T) {
	file, err := os.CreateTemp("", "ldb_*")
	require.NoError(t, err)
	defer os.Remove(file.Name())
	_, _ = file.Write([]byte("not a leveldb"))
	file.Close()

	sbconfig.Reset()
	config.Set(sbconfig.PersistenceLevelDBPath, file.Name())

	_, err = NewLevelDBPersistence(context.Background())
	assert.Regexp(t, "FF21291", err)
}

func TestInFlightEmpty(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	defer done()

	tx, err := p.GetInFlight(ctx)
	assert.NoError(t, err)
	assert.Nil(t, tx)

	assert.NoError(t, p.ClearInFlight(ctx, "anything"))
}

func TestInFlightWriteReadClear(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	defer done()

	err := p.WriteInFlight(ctx, &persistence.InFlightTransaction{
		Hash:     "aabb",
		Envelope: "AAAAAgAAAAA=",
		Method:   "increment",
		Status:   "PENDING",
	})
	require.NoError(t, err)

	tx, err := p.GetInFlight(ctx)
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, "aabb", tx.Hash)
	assert.Equal(t, "AAAAAgAAAAA=", tx.Envelope)
	assert.NotNil(t, tx.ID)
	assert.NotNil(t, tx.Created)
	id := tx.ID.String()
	created := tx.Created.String()

	// Same hash updates in place, keeping identity
	err = p.WriteInFlight(ctx, &persistence.InFlightTransaction{
		Hash:         "aabb",
		Envelope:     "AAAAAgAAAAA=",
		Status:       "NOT_FOUND",
		LatestLedger: 55,
	})
	require.NoError(t, err)
	tx, err = p.GetInFlight(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, tx.ID.String())
	assert.Equal(t, created, tx.Created.String())
	assert.Equal(t, "NOT_FOUND", tx.Status)
	assert.Equal(t, uint32(55), tx.LatestLedger)

	// Only one slot
	err = p.WriteInFlight(ctx, &persistence.InFlightTransaction{Hash: "ccdd"})
	assert.Regexp(t, "FF21285.*aabb", err)
	err = p.ClearInFlight(ctx, "ccdd")
	assert.Regexp(t, "FF21285.*aabb", err)

	require.NoError(t, p.ClearInFlight(ctx, "aabb"))
	tx, err = p.GetInFlight(ctx)
	assert.NoError(t, err)
	assert.Nil(t, tx)

	require.NoError(t, p.WriteInFlight(ctx, &persistence.InFlightTransaction{Hash: "ccdd"}))
}

func TestInFlightSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	sbconfig.Reset()
	config.Set(sbconfig.PersistenceLevelDBPath, t.TempDir())

	p1, err := NewLevelDBPersistence(ctx)
	require.NoError(t, err)
	require.NoError(t, p1.WriteInFlight(ctx, &persistence.InFlightTransaction{Hash: "aabb", Envelope: "AAAA"}))
	p1.Close(ctx)

	p2, err := NewLevelDBPersistence(ctx)
	require.NoError(t, err)
	defer p2.Close(ctx)
	tx, err := p2.GetInFlight(ctx)
	require.NoError(t, err)
	assert.Equal(t, "aabb", tx.Hash)
	assert.Equal(t, "AAAA", tx.Envelope)
}

func TestInFlightBadJSON(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	defer done()

	require.NoError(t, p.db.Put(inFlightKey, []byte("!json"), &opt.WriteOptions{}))

	_, err := p.GetInFlight(ctx)
	assert.Regexp(t, "FF21293", err)
	err = p.WriteInFlight(ctx, &persistence.InFlightTransaction{Hash: "aabb"})
	assert.Regexp(t, "FF21293", err)
	err = p.ClearInFlight(ctx, "aabb")
	assert.Regexp(t, "FF21293", err)
}

func TestInFlightClosedDB(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	done()

	_, err := p.GetInFlight(ctx)
	assert.Regexp(t, "FF21294", err)
	p.Close(ctx)
}
