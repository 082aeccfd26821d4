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
	"encoding/json"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-soroban/internal/persistence"
	"github.com/hyperledger/firefly-soroban/internal/sbconfig"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

type leveldbPersistence struct {
	db         *leveldb.DB
	syncWrites bool
	slotMux    sync.Mutex
}

func NewLevelDBPersistence(ctx context.Context) (persistence.Persistence, error) {
	dbPath := config.GetString(sbconfig.PersistenceLevelDBPath)
	if dbPath == "" {
		return nil, i18n.NewError(ctx, sbmsgs.MsgLevelDBPathMissing)
	}
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: config.GetInt(sbconfig.PersistenceLevelDBMaxHandles),
	})
	if err != nil {
		return nil, i18n.WrapError(ctx, err, sbmsgs.MsgPersistenceInitFailed, dbPath)
	}
	return &leveldbPersistence{
		db:         db,
		syncWrites: config.GetBool(sbconfig.PersistenceLevelDBSyncWrites),
	}, nil
}

var inFlightKey = []byte("inflight_0")

func (p *leveldbPersistence) writeKeyValue(ctx context.Context, key, value []byte) error {
	err := p.db.Put(key, value, &opt.WriteOptions{Sync: p.syncWrites})
	if err != nil {
		return i18n.WrapError(ctx, err, sbmsgs.MsgPersistenceWriteFailed, key)
	}
	return nil
}

func (p *leveldbPersistence) writeJSON(ctx context.Context, key []byte, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return i18n.WrapError(ctx, err, sbmsgs.MsgPersistenceMarshalFailed)
	}
	log.L(ctx).Debugf("Wrote %s", key)
	return p.writeKeyValue(ctx, key, b)
}

func (p *leveldbPersistence) getKeyValue(ctx context.Context, key []byte) ([]byte, error) {
	b, err := p.db.Get(key, &opt.ReadOptions{})
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, nil
		}
		return nil, i18n.WrapError(ctx, err, sbmsgs.MsgPersistenceReadFailed, key)
	}
	return b, err
}

func (p *leveldbPersistence) readJSON(ctx context.Context, key []byte, target interface{}) (bool, error) {
	b, err := p.getKeyValue(ctx, key)
	if err != nil || b == nil {
		return false, err
	}
	err = json.Unmarshal(b, target)
	if err != nil {
		return false, i18n.WrapError(ctx, err, sbmsgs.MsgPersistenceUnmarshalFailed)
	}
	log.L(ctx).Debugf("Read %s", key)
	return true, nil
}

func (p *leveldbPersistence) readInFlight(ctx context.Context) (*persistence.InFlightTransaction, error) {
	var tx persistence.InFlightTransaction
	found, err := p.readJSON(ctx, inFlightKey, &tx)
	if err != nil || !found {
		return nil, err
	}
	return &tx, nil
}

func (p *leveldbPersistence) WriteInFlight(ctx context.Context, tx *persistence.InFlightTransaction) error {
	p.slotMux.Lock()
	defer p.slotMux.Unlock()

	existing, err := p.readInFlight(ctx)
	if err != nil {
		return err
	}
	now := fftypes.Now()
	if existing != nil {
		if existing.Hash != tx.Hash {
			return i18n.NewError(ctx, sbmsgs.MsgInFlightSlotBusy, existing.Hash)
		}
		tx.ID = existing.ID
		tx.Created = existing.Created
	}
	if tx.ID == nil {
		tx.ID = persistence.NewULID()
	}
	if tx.Created == nil {
		tx.Created = now
	}
	tx.Updated = now
	return p.writeJSON(ctx, inFlightKey, tx)
}

func (p *leveldbPersistence) GetInFlight(ctx context.Context) (*persistence.InFlightTransaction, error) {
	p.slotMux.Lock()
	defer p.slotMux.Unlock()
	return p.readInFlight(ctx)
}

func (p *leveldbPersistence) ClearInFlight(ctx context.Context, hash string) error {
	p.slotMux.Lock()
	defer p.slotMux.Unlock()

	existing, err := p.readInFlight(ctx)
	if err != nil || existing == nil {
		return err
	}
	if existing.Hash != hash {
		return i18n.NewError(ctx, sbmsgs.MsgInFlightSlotBusy, existing.Hash)
	}
	if err := p.db.Delete(inFlightKey, &opt.WriteOptions{Sync: p.syncWrites}); err != nil {
		return i18n.WrapError(ctx, err, sbmsgs.MsgPersistenceDeleteFailed, inFlightKey)
	}
	log.L(ctx).Debugf("Cleared in-flight transaction %s", hash)
	return nil
}

func (p *leveldbPersistence) Close(ctx context.Context) {
	err := p.db.Close()
	if err != nil {
		log.L(ctx).Warnf("Error closing leveldb: %s", err)
	}
}
